package verification

import "context"

// Source identifies where a slot's document came from.
type Source string

// Document sources
const (
	SourceUpload   Source = "upload"
	SourceExternal Source = "external"
)

// Request carries everything a strategy needs to classify one document.
type Request struct {
	DocumentType string `json:"documentType"`
	Source       Source `json:"source"`
	// FileHash is the SHA-256 of the uploaded bytes; set for upload sources.
	FileHash string `json:"fileHash,omitempty"`
	// ExternalRef identifies a remotely stored document; set for external sources.
	ExternalRef string `json:"externalRef,omitempty"`
	// FileName is advisory; the mock strategy uses it as a classification hint.
	FileName string `json:"-"`
}

// Outcome is the terminal result of a verification attempt. Status is always
// one of Genuine, Fraud, or Error; Detail carries an explanation for Error
// outcomes and optional context for the others.
type Outcome struct {
	Status Status
	Detail string
}

// Strategy resolves a document to a terminal verification outcome. A strategy
// must always return a terminal status — failures of any kind map to
// StatusError with a detail message, never to a panic or a non-terminal
// status. Implementations must honor ctx cancellation by resolving to Error.
type Strategy interface {
	Verify(ctx context.Context, req Request) Outcome
}
