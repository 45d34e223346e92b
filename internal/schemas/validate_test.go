package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 2,
      "items": {
        "type": "object",
        "required": ["question", "answer"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "answer": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

func TestValidateJSONString_Valid(t *testing.T) {
	document := `{"questions": [
		{"question": "What is a goroutine?", "answer": "A lightweight thread"},
		{"question": "What does defer do?", "answer": "Delays a call"}
	]}`

	err := ValidateJSONString(quizSchema, document)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	document := `{"questions": [
		{"question": "What is a goroutine?"},
		{"question": "What does defer do?", "answer": "Delays a call"}
	]}`

	err := ValidateJSONString(quizSchema, document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "questions.0", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "answer")
}

func TestValidateJSONString_TooFewItems(t *testing.T) {
	document := `{"questions": [
		{"question": "What is a goroutine?", "answer": "A lightweight thread"}
	]}`

	err := ValidateJSONString(quizSchema, document)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(quizSchema, `{"questions": [`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_JoinsFields(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "headline", Message: "is required"},
		{Field: "subtext", Message: "is required"},
	}}
	assert.Equal(t, "headline: is required; subtext: is required", err.Error())
}
