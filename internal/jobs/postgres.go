package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a Store backed by PostgreSQL. Schema:
//
//	CREATE TABLE job_listings (
//	    id          UUID PRIMARY KEY,
//	    title       TEXT NOT NULL,
//	    company     TEXT NOT NULL,
//	    location    TEXT NOT NULL,
//	    description TEXT NOT NULL DEFAULT '',
//	    saved       BOOLEAN NOT NULL DEFAULT FALSE,
//	    applied     BOOLEAN NOT NULL DEFAULT FALSE,
//	    posted_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    applied_at  TIMESTAMPTZ,
//	    documents   JSONB NOT NULL DEFAULT '[]',
//	    next_step   TEXT NOT NULL DEFAULT '',
//	    status      TEXT NOT NULL DEFAULT '',
//	    progress    INT NOT NULL DEFAULT 0
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore establishes a connection pool and verifies it with a ping.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const listingColumns = `id, title, company, location, description, saved, applied, posted_at, applied_at, documents, next_step, status, progress`

// List returns all listings, newest first.
func (s *PostgresStore) List(ctx context.Context) ([]Listing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+listingColumns+` FROM job_listings ORDER BY posted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job listings: %w", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

// Get returns the listing by id, or nil when absent.
func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM job_listings WHERE id = $1`, id)

	listing, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job listing: %w", err)
	}
	return listing, nil
}

// Applied returns the listings the candidate has applied to, newest first.
func (s *PostgresStore) Applied(ctx context.Context) ([]Listing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+listingColumns+` FROM job_listings WHERE applied ORDER BY applied_at DESC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("failed to list applied jobs: %w", err)
	}
	defer rows.Close()
	return scanListings(rows)
}

// Create inserts a listing, assigning an id and posted time when missing.
func (s *PostgresStore) Create(ctx context.Context, listing *Listing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.PostedAt.IsZero() {
		listing.PostedAt = time.Now()
	}
	docs, err := json.Marshal(listing.Documents)
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO job_listings (`+listingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		listing.ID, listing.Title, listing.Company, listing.Location, listing.Description,
		listing.Saved, listing.Applied, listing.PostedAt, listing.AppliedAt,
		docs, listing.NextStep, string(listing.Status), listing.Progress,
	)
	if err != nil {
		return fmt.Errorf("failed to create job listing: %w", err)
	}
	return nil
}

// Update replaces a listing. Flipping applied to true stamps applied_at.
func (s *PostgresStore) Update(ctx context.Context, listing Listing) (*Listing, error) {
	current, err := s.Get(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	if listing.Applied && !current.Applied {
		now := time.Now()
		listing.AppliedAt = &now
	}

	docs, err := json.Marshal(listing.Documents)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal documents: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE job_listings
		 SET title = $2, company = $3, location = $4, description = $5, saved = $6,
		     applied = $7, posted_at = $8, applied_at = $9, documents = $10,
		     next_step = $11, status = $12, progress = $13
		 WHERE id = $1`,
		listing.ID, listing.Title, listing.Company, listing.Location, listing.Description,
		listing.Saved, listing.Applied, listing.PostedAt, listing.AppliedAt,
		docs, listing.NextStep, string(listing.Status), listing.Progress,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update job listing: %w", err)
	}
	return &listing, nil
}

func scanListings(rows pgx.Rows) ([]Listing, error) {
	listings := make([]Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job listings: %w", err)
	}
	return listings, nil
}

func scanListing(row pgx.Row) (*Listing, error) {
	var listing Listing
	var docs []byte
	var status string
	err := row.Scan(
		&listing.ID, &listing.Title, &listing.Company, &listing.Location, &listing.Description,
		&listing.Saved, &listing.Applied, &listing.PostedAt, &listing.AppliedAt,
		&docs, &listing.NextStep, &status, &listing.Progress,
	)
	if err != nil {
		return nil, err
	}
	listing.Status = ApplicationStatus(status)
	if len(docs) > 0 {
		if err := json.Unmarshal(docs, &listing.Documents); err != nil {
			return nil, fmt.Errorf("failed to unmarshal documents: %w", err)
		}
	}
	return &listing, nil
}
