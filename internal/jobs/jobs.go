// Package jobs provides storage and import for job listings. The store is an
// explicitly constructed object owned by its caller; there is no package-level
// state.
package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks an application's stage once a listing is applied to.
type ApplicationStatus string

// Application statuses
const (
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusUnderReview  ApplicationStatus = "Under Review"
	StatusNotSelected  ApplicationStatus = "Not Selected"
)

// Document is an attachment submitted with an application.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Listing is one job posting on the board, together with the candidate's
// saved/applied state for it.
type Listing struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	Saved       bool              `json:"saved"`
	Applied     bool              `json:"applied"`
	PostedAt    time.Time         `json:"posted_at"`
	AppliedAt   *time.Time        `json:"applied_at,omitempty"`
	Documents   []Document        `json:"documents,omitempty"`
	NextStep    string            `json:"next_step,omitempty"`
	Status      ApplicationStatus `json:"status,omitempty"`
	Progress    int               `json:"progress,omitempty"`
}

// Store is the job-listing storage contract. Get returns nil without error
// when the listing does not exist.
type Store interface {
	List(ctx context.Context) ([]Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*Listing, error)
	Applied(ctx context.Context) ([]Listing, error)
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing Listing) (*Listing, error)
}
