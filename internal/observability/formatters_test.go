package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelogic/hirelogic-api/internal/jobs"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

func TestPrintSlots(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	slots := []verification.Slot{
		{
			SlotDef: verification.SlotDef{ID: "tenth", Title: "10th Marksheet"},
			Status:  verification.StatusGenuine,
			File:    &verification.FileRef{Name: "10th.pdf"},
		},
		{
			SlotDef: verification.SlotDef{ID: "twelfth", Title: "12th Marksheet"},
			Status:  verification.StatusError,
			Error:   "verification service unavailable",
		},
	}

	p.PrintSlots(slots)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT VERIFICATION")
	assert.Contains(t, output, "10th Marksheet")
	assert.Contains(t, output, "Genuine")
	assert.Contains(t, output, "10th.pdf")
	assert.Contains(t, output, "12th Marksheet")
	assert.Contains(t, output, "verification service unavailable")
}

func TestPrintSlots_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSlots(nil)
	assert.Empty(t, buf.String())
}

func TestPrintOverall(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOverall(verification.OverallAllGenuine, verification.Progress{
		MandatorySubmitted: 3,
		MandatoryTotal:     3,
		OptionalSubmitted:  1,
		OptionalTotal:      2,
	})
	output := buf.String()

	assert.Contains(t, output, "OVERALL")
	assert.Contains(t, output, "3/3 submitted")
	assert.Contains(t, output, "1/2 submitted")
}

func TestPrintActivity_TruncatesLongLog(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := make([]verification.LogEntry, 8)
	for i := range entries {
		entries[i] = verification.LogEntry{Timestamp: "12:00:00", Message: "Uploaded a document."}
	}

	p.PrintActivity(entries)
	output := buf.String()

	assert.Contains(t, output, "RECENT ACTIVITY")
	assert.Contains(t, output, "... and 3 more entries")
	assert.Equal(t, maxItemsToShow, strings.Count(output, "Uploaded a document."))
}

func TestPrintActivity_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintActivity(nil)
	assert.Empty(t, buf.String())
}

func TestPrintListing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintListing(&jobs.Listing{
		Title:       "Platform Engineer",
		Company:     "Globex",
		Location:    "Remote",
		Description: "Own the deployment pipeline.",
	})
	output := buf.String()

	assert.Contains(t, output, "JOB LISTING")
	assert.Contains(t, output, "Platform Engineer")
	assert.Contains(t, output, "Globex")
	assert.Contains(t, output, "Remote")
	assert.Contains(t, output, "deployment pipeline")
}

func TestPrintListing_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintListing(nil)
	assert.Empty(t, buf.String())
}
