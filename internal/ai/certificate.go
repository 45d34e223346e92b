package ai

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hirelogic/hirelogic-api/internal/prompts"
)

// CertificateRequest describes the certificate image to generate.
type CertificateRequest struct {
	Title    string `json:"title" validate:"required"`
	Issuer   string `json:"issuer" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
}

// Validate validates the CertificateRequest using the validator.
func (r *CertificateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateCertificateImage renders a certificate image for a completed course
// and returns it as a data URI.
func (f *Flows) GenerateCertificateImage(ctx context.Context, req CertificateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid certificate request: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet("flows.json", "certificate-image"), map[string]string{
		"UserName": req.UserName,
		"Title":    req.Title,
		"Issuer":   req.Issuer,
	})

	dataURI, err := f.client.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate certificate image: %w", err)
	}
	if dataURI == "" {
		return "", fmt.Errorf("image generation produced no result")
	}
	return dataURI, nil
}
