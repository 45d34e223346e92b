package verification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLog_NewestFirst(t *testing.T) {
	log := NewActivityLog()
	log.Append("first")
	log.Append("second")
	log.Append("third")

	entries := log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Timestamp)
	}
}

func TestActivityLog_Formatting(t *testing.T) {
	log := NewActivityLog()
	log.Append("Uploaded file for %s.", "10th Marksheet")
	assert.Equal(t, "Uploaded file for 10th Marksheet.", log.Entries()[0].Message)
}

func TestActivityLog_CapKeepsNewest(t *testing.T) {
	log := NewActivityLog()
	for i := 0; i < defaultLogCap+10; i++ {
		log.Append("entry %d", i)
	}

	entries := log.Entries()
	require.Len(t, entries, defaultLogCap)
	assert.Equal(t, fmt.Sprintf("entry %d", defaultLogCap+9), entries[0].Message)
}
