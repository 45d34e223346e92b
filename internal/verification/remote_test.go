package verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteStrategy_GenuineResponse(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"status": "Genuine", "detail": "hash matched issuer record"})
	}))
	defer server.Close()

	strategy := NewRemoteStrategy(server.URL, server.Client())
	out := strategy.Verify(context.Background(), Request{
		DocumentType: "degree",
		Source:       SourceUpload,
		FileHash:     "abc123",
	})

	assert.Equal(t, StatusGenuine, out.Status)
	assert.Equal(t, "hash matched issuer record", out.Detail)
	assert.Equal(t, "degree", got.DocumentType)
	assert.Equal(t, SourceUpload, got.Source)
	assert.Equal(t, "abc123", got.FileHash)
}

func TestRemoteStrategy_FraudResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "Fraud"})
	}))
	defer server.Close()

	out := NewRemoteStrategy(server.URL, server.Client()).Verify(context.Background(), Request{
		DocumentType: "degree",
		Source:       SourceExternal,
		ExternalRef:  "dl:/degree/doc.pdf",
	})
	assert.Equal(t, StatusFraud, out.Status)
}

func TestRemoteStrategy_FailureModes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "internal error", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("{not json"))
			},
		},
		{
			name: "unknown classification",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"status": "Maybe"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			out := NewRemoteStrategy(server.URL, server.Client()).Verify(context.Background(), Request{DocumentType: "tenth"})
			assert.Equal(t, StatusError, out.Status)
			assert.NotEmpty(t, out.Detail)
		})
	}
}

func TestRemoteStrategy_TransportFailure(t *testing.T) {
	// Closed server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	out := NewRemoteStrategy(url, nil).Verify(context.Background(), Request{DocumentType: "tenth"})
	assert.Equal(t, StatusError, out.Status)
	assert.Contains(t, out.Detail, "unreachable")
}

func TestRemoteStrategy_Unconfigured(t *testing.T) {
	out := NewRemoteStrategy("", nil).Verify(context.Background(), Request{DocumentType: "tenth"})
	assert.Equal(t, StatusError, out.Status)
	assert.Contains(t, out.Detail, "not configured")
}
