package ai

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelogic/hirelogic-api/internal/llm"
)

// fakeClient returns canned responses and records the prompts it received.
type fakeClient struct {
	textResponse  string
	jsonResponse  string
	imageResponse string
	err           error
	prompts       []string
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.textResponse, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.jsonResponse, f.err
}

func (f *fakeClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.imageResponse, f.err
}

func (f *fakeClient) Close() error { return nil }

func validQuizJSON() string {
	var qs []string
	for i := 1; i <= 5; i++ {
		qs = append(qs, fmt.Sprintf(`{"question": "Q%d?", "options": ["a%d", "b%d", "c%d", "d%d"], "answer": "a%d"}`, i, i, i, i, i, i))
	}
	return `{"questions": [` + strings.Join(qs, ",") + `]}`
}

func TestAnalyzeResume(t *testing.T) {
	client := &fakeClient{
		jsonResponse: `{"domains": [{"name": "Backend Development", "confidence": "High"}], "skills": ["Go", "PostgreSQL"]}`,
	}
	flows := NewFlows(client)

	analysis, err := flows.AnalyzeResume(context.Background(), "Senior Go engineer, 8 years experience.")
	require.NoError(t, err)
	require.Len(t, analysis.Domains, 1)
	assert.Equal(t, "Backend Development", analysis.Domains[0].Name)
	assert.Equal(t, "High", analysis.Domains[0].Confidence)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, analysis.Skills)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Senior Go engineer")
}

func TestAnalyzeResumeEmptyInput(t *testing.T) {
	flows := NewFlows(&fakeClient{})
	_, err := flows.AnalyzeResume(context.Background(), "   ")
	assert.Error(t, err)
}

func TestAnalyzeResumeBadConfidence(t *testing.T) {
	client := &fakeClient{
		jsonResponse: `{"domains": [{"name": "Design", "confidence": "Certain"}], "skills": []}`,
	}
	flows := NewFlows(client)

	_, err := flows.AnalyzeResume(context.Background(), "UI designer with Figma experience.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestGenerateQuiz(t *testing.T) {
	client := &fakeClient{jsonResponse: validQuizJSON()}
	flows := NewFlows(client)

	quiz, err := flows.GenerateQuiz(context.Background(), QuizRequest{
		Topic:      "Go",
		SubTopic:   "Concurrency",
		Difficulty: "Medium",
	})
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 5)
	for _, q := range quiz.Questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.Answer)
	}

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Topic: Go")
	assert.Contains(t, client.prompts[0], "Sub-topic: Concurrency")
	assert.Contains(t, client.prompts[0], "Difficulty: Medium")
}

func TestGenerateQuizInvalidDifficulty(t *testing.T) {
	flows := NewFlows(&fakeClient{})
	_, err := flows.GenerateQuiz(context.Background(), QuizRequest{Topic: "Go", Difficulty: "Impossible"})
	assert.Error(t, err)
}

func TestGenerateQuizAnswerNotInOptions(t *testing.T) {
	raw := strings.Replace(validQuizJSON(), `"answer": "a3"`, `"answer": "nope"`, 1)
	flows := NewFlows(&fakeClient{jsonResponse: raw})

	_, err := flows.GenerateQuiz(context.Background(), QuizRequest{Topic: "Go", Difficulty: "Hard"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not among the options")
}

func TestGenerateQuizWrongQuestionCount(t *testing.T) {
	raw := `{"questions": [{"question": "Q?", "options": ["a", "b", "c", "d"], "answer": "a"}]}`
	flows := NewFlows(&fakeClient{jsonResponse: raw})

	_, err := flows.GenerateQuiz(context.Background(), QuizRequest{Topic: "Go", Difficulty: "Starting"})
	assert.Error(t, err)
}

func TestSummarizeCandidate(t *testing.T) {
	client := &fakeClient{textResponse: "Strong backend engineer with Go and Postgres experience."}
	flows := NewFlows(client)

	summary, err := flows.SummarizeCandidate(context.Background(), SummarizeRequest{
		CandidateData: "Resume: 8 years of Go, PostgreSQL, Kubernetes.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Strong backend engineer with Go and Postgres experience.", summary)
}

func TestSummarizeCandidateTooShort(t *testing.T) {
	flows := NewFlows(&fakeClient{})
	_, err := flows.SummarizeCandidate(context.Background(), SummarizeRequest{CandidateData: "short"})
	assert.Error(t, err)
}

func TestGenerateCertificateImage(t *testing.T) {
	client := &fakeClient{imageResponse: "data:image/png;base64,AAAA"}
	flows := NewFlows(client)

	uri, err := flows.GenerateCertificateImage(context.Background(), CertificateRequest{
		Title:    "Go Fundamentals",
		Issuer:   "HireLogic Academy",
		UserName: "Ada Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", uri)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Ada Lovelace")
	assert.Contains(t, client.prompts[0], "Go Fundamentals")
	assert.Contains(t, client.prompts[0], "Issued by HireLogic Academy")
}

func TestGenerateCertificateImageMissingFields(t *testing.T) {
	flows := NewFlows(&fakeClient{})
	_, err := flows.GenerateCertificateImage(context.Background(), CertificateRequest{Title: "Go"})
	assert.Error(t, err)
}

func TestGenerateHomepageContent(t *testing.T) {
	client := &fakeClient{
		jsonResponse: `{"headline": "Hire with Confidence", "subtext": "Verified talent.", "about_us_mission": "m", "about_us_screening": "s", "about_us_hiring": "h"}`,
	}
	flows := NewFlows(client)

	content, err := flows.GenerateHomepageContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hire with Confidence", content.Headline)
	assert.Equal(t, "Verified talent.", content.Subtext)
}

func TestGenerateHomepageContentMissingField(t *testing.T) {
	client := &fakeClient{jsonResponse: `{"headline": "x"}`}
	flows := NewFlows(client)

	_, err := flows.GenerateHomepageContent(context.Background())
	assert.Error(t, err)
}

func TestMockImplementsService(t *testing.T) {
	var svc Service = NewMock()

	quiz, err := svc.GenerateQuiz(context.Background(), QuizRequest{Topic: "SQL", Difficulty: "Starting"})
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 5)
	for _, q := range quiz.Questions {
		assert.Contains(t, q.Options, q.Answer)
	}

	analysis, err := svc.AnalyzeResume(context.Background(), "anything")
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.Skills)

	uri, err := svc.GenerateCertificateImage(context.Background(), CertificateRequest{
		Title: "SQL Basics", Issuer: "HireLogic", UserName: "Grace Hopper",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/"))
}
