package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hirelogic/hirelogic-api/internal/llm"
	"github.com/hirelogic/hirelogic-api/internal/prompts"
)

// HomepageContent is the generated marketing copy for the public homepage.
type HomepageContent struct {
	Headline         string `json:"headline"`
	Subtext          string `json:"subtext"`
	AboutUsMission   string `json:"about_us_mission"`
	AboutUsScreening string `json:"about_us_screening"`
	AboutUsHiring    string `json:"about_us_hiring"`
}

// siteDescription describes the site for the content generator.
const siteDescription = "An AI-powered recruiting platform that verifies candidate " +
	"documents, screens resumes, and connects trusted candidates with employers."

// GenerateHomepageContent produces a headline, subtext, and About Us copy for
// the homepage.
func (f *Flows) GenerateHomepageContent(ctx context.Context) (*HomepageContent, error) {
	prompt := prompts.Format(prompts.MustGet("flows.json", "homepage-content"), map[string]string{
		"Description": siteDescription,
	})

	raw, err := f.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate homepage content: %w", err)
	}

	if err := validateJSON(homepageContentSchema, raw); err != nil {
		return nil, fmt.Errorf("homepage content failed validation: %w", err)
	}

	var content HomepageContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("failed to parse homepage content: %w", err)
	}
	return &content, nil
}
