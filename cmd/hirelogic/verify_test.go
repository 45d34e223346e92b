package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelogic/hirelogic-api/internal/config"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

func writeTempPDF(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0644))
	return path
}

func newCLISession(t *testing.T) *verification.Session {
	t.Helper()
	return verification.NewSession(context.Background(), verification.Config{
		Strategy: verification.NewSeededMockStrategy(1, 0),
	})
}

func TestAttachFile(t *testing.T) {
	session := newCLISession(t)
	path := writeTempPDF(t, "marksheet.pdf")

	err := attachFile(context.Background(), session, "tenth", path)
	require.NoError(t, err)

	for _, slot := range session.Snapshot() {
		if slot.ID == "tenth" {
			assert.Equal(t, verification.StatusReadyToVerify, slot.Status)
			require.NotNil(t, slot.File)
			assert.Equal(t, "marksheet.pdf", slot.File.Name)
			assert.Equal(t, "application/pdf", slot.File.ContentType)
		}
	}
}

func TestAttachFile_MissingFile(t *testing.T) {
	session := newCLISession(t)
	err := attachFile(context.Background(), session, "tenth", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestAttachFile_UnknownSlot(t *testing.T) {
	session := newCLISession(t)
	path := writeTempPDF(t, "cert.pdf")

	err := attachFile(context.Background(), session, "phd", path)
	assert.Error(t, err)
}

func TestBuildStrategySeededMock(t *testing.T) {
	strategy := buildStrategy(config.Config{MockSeed: 7})
	require.NotNil(t, strategy)

	outcome := strategy.Verify(context.Background(), verification.Request{
		DocumentType: "tenth",
		Source:       verification.SourceUpload,
		FileName:     "valid_marksheet.pdf",
	})
	assert.True(t, outcome.Status.IsTerminal())
}
