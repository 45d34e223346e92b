package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultRemoteTimeout bounds a single verification call so a slot can never
// stay in Verifying indefinitely.
const defaultRemoteTimeout = 30 * time.Second

// remoteResponse is the verification service's reply contract.
type remoteResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// RemoteStrategy delegates classification to the external verification
// service. Every failure mode — transport error, non-success status code,
// malformed body, unknown classification — resolves to an Error outcome with
// a descriptive detail; nothing propagates to the caller as an error.
type RemoteStrategy struct {
	endpoint string
	client   *http.Client
}

// NewRemoteStrategy creates a strategy that POSTs verification requests to
// the given endpoint. A nil client uses a default with a 30s timeout.
func NewRemoteStrategy(endpoint string, client *http.Client) *RemoteStrategy {
	if client == nil {
		client = &http.Client{Timeout: defaultRemoteTimeout}
	}
	return &RemoteStrategy{endpoint: endpoint, client: client}
}

// Verify sends the request to the verification service and maps the reply to
// a terminal outcome.
func (s *RemoteStrategy) Verify(ctx context.Context, req Request) Outcome {
	if s.endpoint == "" {
		return Outcome{Status: StatusError, Detail: "Verification service is not configured."}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Outcome{Status: StatusError, Detail: fmt.Sprintf("Failed to encode verification request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Status: StatusError, Detail: fmt.Sprintf("Failed to build verification request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return Outcome{Status: StatusError, Detail: fmt.Sprintf("Verification service unreachable: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a little of the body for the detail message but don't trust it.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Outcome{
			Status: StatusError,
			Detail: fmt.Sprintf("Verification service returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)),
		}
	}

	var remote remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return Outcome{Status: StatusError, Detail: fmt.Sprintf("Invalid verification response: %v", err)}
	}

	switch Status(remote.Status) {
	case StatusGenuine:
		return Outcome{Status: StatusGenuine, Detail: remote.Detail}
	case StatusFraud:
		return Outcome{Status: StatusFraud, Detail: remote.Detail}
	default:
		return Outcome{Status: StatusError, Detail: fmt.Sprintf("Unknown classification %q from verification service.", remote.Status)}
	}
}
