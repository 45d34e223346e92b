package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store seeded with the demo job board.
type MemoryStore struct {
	mu       sync.RWMutex
	order    []uuid.UUID
	listings map[uuid.UUID]Listing
	now      func() time.Time
}

// NewMemoryStore creates a store pre-populated with the seed listings.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		listings: make(map[uuid.UUID]Listing),
		now:      time.Now,
	}
	for _, listing := range seedListings(time.Now()) {
		s.order = append(s.order, listing.ID)
		s.listings[listing.ID] = listing
	}
	return s
}

// NewEmptyMemoryStore creates a store with no listings, for tests and imports.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[uuid.UUID]Listing),
		now:      time.Now,
	}
}

// List returns all listings in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Listing, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listings[id])
	}
	return out, nil
}

// Get returns the listing by id, or nil when absent.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, nil
	}
	return &listing, nil
}

// Applied returns the listings the candidate has applied to.
func (s *MemoryStore) Applied(_ context.Context) ([]Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Listing, 0)
	for _, id := range s.order {
		if s.listings[id].Applied {
			out = append(out, s.listings[id])
		}
	}
	return out, nil
}

// Create adds a listing, assigning an id and posted time when missing.
func (s *MemoryStore) Create(_ context.Context, listing *Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.PostedAt.IsZero() {
		listing.PostedAt = s.now()
	}
	s.order = append(s.order, listing.ID)
	s.listings[listing.ID] = *listing
	return nil
}

// Update replaces a listing. Flipping applied to true stamps applied_at.
func (s *MemoryStore) Update(_ context.Context, listing Listing) (*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.listings[listing.ID]
	if !ok {
		return nil, nil
	}
	if listing.Applied && !current.Applied {
		now := s.now()
		listing.AppliedAt = &now
	}
	s.listings[listing.ID] = listing
	return &listing, nil
}

// seedListings returns the demo job board content.
func seedListings(now time.Time) []Listing {
	applied := now.Add(-14 * 24 * time.Hour)
	reviewed := now.Add(-7 * 24 * time.Hour)
	return []Listing{
		{
			ID: uuid.New(), Title: "Frontend Developer", Company: "Innovate Inc.", Location: "Remote",
			Description: "Innovate Inc. is seeking a passionate Frontend Developer to build beautiful and performant user interfaces for our next-generation products. You will work with React, Next.js, and Tailwind CSS.",
			Applied:     true, PostedAt: now.Add(-2 * time.Hour), AppliedAt: &applied,
			Documents: []Document{{Name: "Resume.pdf", URL: "#"}},
			NextStep:  "Second Round Interview: Technical Assessment on March 15th, 2024",
			Status:    StatusInterviewing, Progress: 75,
		},
		{
			ID: uuid.New(), Title: "Backend Engineer", Company: "Data Systems", Location: "New York, NY",
			Description: "We are looking for a skilled Backend Engineer to join our team. You will be responsible for designing and implementing server-side logic and APIs.",
			Saved:       true, PostedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "AI/ML Specialist", Company: "Future AI", Location: "San Francisco, CA",
			Description: "Join Future AI as an AI/ML Specialist and work on cutting-edge artificial intelligence projects that will shape the future.",
			PostedAt:    now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "DevOps Engineer", Company: "CloudWorks", Location: "Austin, TX",
			Description: "CloudWorks is hiring a DevOps Engineer to manage our cloud infrastructure and streamline our deployment processes.",
			PostedAt:    now.Add(-5 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "UI/UX Designer", Company: "Creative Solutions", Location: "Remote",
			Description: "Creative Solutions is looking for a talented UI/UX Designer to create intuitive and engaging experiences for our clients. You will be responsible for the entire design process from concept to final hand-off.",
			Saved:       true, Applied: true, PostedAt: now.Add(-7 * 24 * time.Hour), AppliedAt: &reviewed,
			Documents: []Document{{Name: "Resume.pdf", URL: "#"}, {Name: "Portfolio.pdf", URL: "#"}},
			NextStep:  "The hiring team is currently reviewing your application.",
			Status:    StatusUnderReview, Progress: 25,
		},
		{
			ID: uuid.New(), Title: "Full Stack Developer", Company: "Tech Solutions", Location: "London, UK",
			Description: "Looking for a Full Stack Developer proficient in both frontend and backend technologies. Experience with Node.js and React is a must.",
			PostedAt:    now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "Product Manager", Company: "Agile Innovations", Location: "Berlin, Germany",
			Description: "We are seeking an experienced Product Manager to lead our product development team. You will define product vision, strategy, and roadmap.",
			Saved:       true, PostedAt: now.Add(-4 * 24 * time.Hour),
		},
		{
			ID: uuid.New(), Title: "Data Scientist", Company: "Insightful Data", Location: "Remote",
			Description: "Join our team of data scientists to analyze large datasets and build predictive models that will drive business decisions.",
			PostedAt:    now.Add(-6 * 24 * time.Hour),
		},
	}
}
