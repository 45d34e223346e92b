package verification

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptEntry is one verified document on the receipt. Only slots that
// reached a terminal Genuine or Fraud classification appear; Error outcomes
// are retryable and excluded.
type ReceiptEntry struct {
	Title  string `json:"title"`
	Status Status `json:"status"`
}

// Receipt is the exportable summary of verification outcomes.
type Receipt struct {
	ID          uuid.UUID      `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Overall     OverallStatus  `json:"overall"`
	Entries     []ReceiptEntry `json:"entries"`
}

// Receipt builds the verification receipt. It fails if no document has
// reached a Genuine or Fraud outcome yet.
func (s *Session) Receipt() (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]ReceiptEntry, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.Status == StatusGenuine || slot.Status == StatusFraud {
			entries = append(entries, ReceiptEntry{Title: slot.Title, Status: slot.Status})
		}
	}
	if len(entries) == 0 {
		return nil, &ErrEmptyReceipt{}
	}

	s.activity.Append("Generated verification receipt.")
	return &Receipt{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		Overall:     DeriveOverall(s.slots),
		Entries:     entries,
	}, nil
}
