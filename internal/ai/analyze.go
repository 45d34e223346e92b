package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirelogic/hirelogic-api/internal/llm"
	"github.com/hirelogic/hirelogic-api/internal/prompts"
)

// Domain is one inferred professional domain with a confidence level.
type Domain struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence"`
}

// ResumeAnalysis is the structured result of analyzing a resume.
type ResumeAnalysis struct {
	Domains []Domain `json:"domains"`
	Skills  []string `json:"skills"`
}

// AnalyzeResume extracts the candidate's professional domains and top skills
// from resume text.
func (f *Flows) AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	prompt := prompts.Format(prompts.MustGet("flows.json", "analyze-resume"), map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := f.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	if err := validateJSON(resumeAnalysisSchema, raw); err != nil {
		return nil, fmt.Errorf("resume analysis failed validation: %w", err)
	}

	var analysis ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse resume analysis: %w", err)
	}
	return &analysis, nil
}
