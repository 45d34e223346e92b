package verification

import (
	"fmt"
	"strings"
)

// MaxUploadSize is the maximum accepted upload size for any document.
const MaxUploadSize = 10 * 1024 * 1024 // 10 MiB

// UploadPolicy restricts the size and declared content type of an upload.
type UploadPolicy struct {
	MaxSize      int64
	AllowedTypes []string
	// TypeHint names the allowed formats in user-facing rejection messages.
	TypeHint string
}

// DocumentUploadPolicy returns the policy for verification documents.
func DocumentUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSize:      MaxUploadSize,
		AllowedTypes: []string{"application/pdf", "image/jpeg", "image/jpg", "image/png"},
		TypeHint:     "PDF, JPG, and PNG",
	}
}

// ResumeUploadPolicy returns the policy for resume uploads.
func ResumeUploadPolicy() UploadPolicy {
	return UploadPolicy{
		MaxSize: MaxUploadSize,
		AllowedTypes: []string{
			"application/pdf",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		},
		TypeHint: "PDF, DOCX, and TXT",
	}
}

// SizeMessage returns the user-facing rejection message for an upload over
// the policy's size limit.
func (p UploadPolicy) SizeMessage() string {
	return fmt.Sprintf("File size exceeds %dMB limit.", p.MaxSize/1024/1024)
}

// Check validates an upload's size and declared content type against the
// policy. It returns a user-facing rejection message, or "" if the upload is
// acceptable. Content type comparison ignores media-type parameters.
func (p UploadPolicy) Check(size int64, contentType string) string {
	if size > p.MaxSize {
		return p.SizeMessage()
	}

	ct := strings.TrimSpace(strings.ToLower(contentType))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	for _, allowed := range p.AllowedTypes {
		if ct == allowed {
			return ""
		}
	}
	return fmt.Sprintf("Invalid file type. Only %s are allowed.", p.TypeHint)
}
