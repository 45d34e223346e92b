package ai

import (
	"context"
	"fmt"
)

// Mock implements Service with canned output. It backs demo deployments that
// run without a Gemini API key, and doubles as a test double.
type Mock struct{}

// NewMock creates a canned Service implementation.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error) {
	return &ResumeAnalysis{
		Domains: []Domain{
			{Name: "Backend Development", Confidence: "High"},
			{Name: "Cloud Infrastructure", Confidence: "Medium"},
		},
		Skills: []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
	}, nil
}

func (m *Mock) GenerateQuiz(ctx context.Context, req QuizRequest) (*Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz request: %w", err)
	}
	questions := make([]QuizQuestion, 0, quizQuestionCount)
	for i := 1; i <= quizQuestionCount; i++ {
		options := []string{
			fmt.Sprintf("Option A for %s #%d", req.Topic, i),
			fmt.Sprintf("Option B for %s #%d", req.Topic, i),
			fmt.Sprintf("Option C for %s #%d", req.Topic, i),
			fmt.Sprintf("Option D for %s #%d", req.Topic, i),
		}
		questions = append(questions, QuizQuestion{
			Question: fmt.Sprintf("Sample %s question %d about %s?", req.Difficulty, i, req.Topic),
			Options:  options,
			Answer:   options[0],
		})
	}
	return &Quiz{Questions: questions}, nil
}

func (m *Mock) SummarizeCandidate(ctx context.Context, req SummarizeRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid summarize request: %w", err)
	}
	return "Experienced engineer with a strong backend background and a record of shipping reliable services.", nil
}

func (m *Mock) GenerateCertificateImage(ctx context.Context, req CertificateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid certificate request: %w", err)
	}
	// 1x1 transparent PNG.
	return "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==", nil
}

func (m *Mock) GenerateHomepageContent(ctx context.Context) (*HomepageContent, error) {
	return &HomepageContent{
		Headline:         "Hire with Confidence",
		Subtext:          "AI-verified candidates, from document checks to skill assessments.",
		AboutUsMission:   "We connect employers with candidates whose credentials have been verified end to end.",
		AboutUsScreening: "Our AI screening analyzes resumes and generates tailored assessments in seconds.",
		AboutUsHiring:    "Every profile you see has passed document verification, so you can hire with trust.",
	}, nil
}
