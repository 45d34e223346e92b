package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("flows.json", "analyze-resume")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "resume analyst")
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("flows.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("flows.json", "generate-quiz")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Topic: {{.Topic}}\nDifficulty: {{.Difficulty}}"
	data := map[string]string{
		"Topic":      "Go",
		"Difficulty": "Medium",
	}

	result := Format(template, data)
	assert.Equal(t, "Topic: Go\nDifficulty: Medium", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("flows.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "analyze-resume")
	assert.Contains(t, keys, "generate-quiz")
	assert.Contains(t, keys, "summarize-candidate")
	assert.Contains(t, keys, "certificate-image")
	assert.Contains(t, keys, "homepage-content")
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get("flows.json", "summarize-candidate")
	require.NoError(t, err)

	prompt2, err := Get("flows.json", "summarize-candidate")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
