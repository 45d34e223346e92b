// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hirelogic/hirelogic-api/internal/jobs"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSlots outputs a per-document summary of the verification session.
func (p *Printer) PrintSlots(slots []verification.Slot) {
	if len(slots) == 0 {
		return
	}

	var sb strings.Builder
	for i, slot := range slots {
		sb.WriteString(fmt.Sprintf("%-22s %s\n", slot.Title, slot.Status))
		if slot.HasSource() {
			source := slot.SourceName()
			if len(source) > 40 {
				source = source[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  source: %s\n", source))
		}
		if slot.Error != "" {
			msg := slot.Error
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
		}
		if i < len(slots)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DOCUMENT VERIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOverall outputs the aggregate verification status and submission counts.
func (p *Printer) PrintOverall(overall verification.OverallStatus, progress verification.Progress) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:     %s\n", overall))
	sb.WriteString(fmt.Sprintf("Mandatory:  %d/%d submitted\n", progress.MandatorySubmitted, progress.MandatoryTotal))
	sb.WriteString(fmt.Sprintf("Optional:   %d/%d submitted", progress.OptionalSubmitted, progress.OptionalTotal))

	p.printBox("OVERALL", sb.String())
}

// PrintActivity outputs the most recent activity log entries, newest first.
func (p *Printer) PrintActivity(entries []verification.LogEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("[%s] %s", entry.Timestamp, entry.Message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("RECENT ACTIVITY", sb.String())
}

// PrintListing outputs a human-readable summary of an extracted job listing.
func (p *Printer) PrintListing(listing *jobs.Listing) {
	if listing == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", listing.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", listing.Company))
	if listing.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", listing.Location))
	}

	if listing.Description != "" {
		sb.WriteString("\n")
		desc := listing.Description
		if len(desc) > 150 {
			desc = desc[:147] + "..."
		}
		for len(desc) > boxWidth-4 {
			sb.WriteString(desc[:boxWidth-4] + "\n")
			desc = desc[boxWidth-4:]
		}
		sb.WriteString(desc)
	}

	p.printBox("JOB LISTING", strings.TrimSuffix(sb.String(), "\n"))
}
