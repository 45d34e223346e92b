package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hirelogic/hirelogic-api/internal/llm"
	"github.com/hirelogic/hirelogic-api/internal/prompts"
)

// SummarizeRequest carries the candidate data to summarize, such as resume
// text or profile information.
type SummarizeRequest struct {
	CandidateData string `json:"candidate_data" validate:"required,min=10"`
}

// Validate validates the SummarizeRequest using the validator.
func (r *SummarizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SummarizeCandidate produces a concise recruiter-facing summary of the
// candidate's skills and experience.
func (f *Flows) SummarizeCandidate(ctx context.Context, req SummarizeRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid summarize request: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet("flows.json", "summarize-candidate"), map[string]string{
		"CandidateData": req.CandidateData,
	})

	summary, err := f.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to summarize candidate: %w", err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("summarization produced no output")
	}
	return summary, nil
}
