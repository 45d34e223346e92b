// Package ai exposes the platform's generative features as stateless
// request/response flows: resume analysis, quiz generation, candidate
// summaries, certificate images, and homepage content. Each flow builds a
// prompt, calls the LLM client, and validates structured output against an
// embedded JSON Schema before returning it.
package ai

import (
	"context"

	"github.com/hirelogic/hirelogic-api/internal/llm"
)

// Service is the contract for the generative flows. Flows is the real
// implementation; Mock returns canned output for demonstrations and tests.
type Service interface {
	AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error)
	GenerateQuiz(ctx context.Context, req QuizRequest) (*Quiz, error)
	SummarizeCandidate(ctx context.Context, req SummarizeRequest) (string, error)
	GenerateCertificateImage(ctx context.Context, req CertificateRequest) (string, error)
	GenerateHomepageContent(ctx context.Context) (*HomepageContent, error)
}

// Flows implements Service against an LLM client.
type Flows struct {
	client llm.Client
}

// NewFlows creates the generative flows on top of the given client.
func NewFlows(client llm.Client) *Flows {
	return &Flows{client: client}
}
