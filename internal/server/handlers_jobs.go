package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/hirelogic/hirelogic-api/internal/fetch"
	"github.com/hirelogic/hirelogic-api/internal/jobs"
)

// handleListJobs returns every listing on the board.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	listings, err := s.jobs.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": listings})
}

// handleAppliedJobs returns only the listings the candidate has applied to.
func (s *Server) handleAppliedJobs(w http.ResponseWriter, r *http.Request) {
	listings, err := s.jobs.Applied(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list applied jobs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": listings})
}

// handleGetJob returns one listing by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return
	}

	listing, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	if listing == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, listing)
}

// updateJobRequest carries the mutable fields of a listing. Pointer fields
// distinguish "not sent" from zero values.
type updateJobRequest struct {
	Saved    *bool                   `json:"saved,omitempty"`
	Applied  *bool                   `json:"applied,omitempty"`
	Status   *jobs.ApplicationStatus `json:"status,omitempty"`
	NextStep *string                 `json:"next_step,omitempty"`
	Progress *int                    `json:"progress,omitempty"`
}

// handleUpdateJob applies a partial update to a listing.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req updateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	listing, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	if listing == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	if req.Saved != nil {
		listing.Saved = *req.Saved
	}
	if req.Applied != nil {
		listing.Applied = *req.Applied
	}
	if req.Status != nil {
		listing.Status = *req.Status
	}
	if req.NextStep != nil {
		listing.NextStep = *req.NextStep
	}
	if req.Progress != nil {
		listing.Progress = *req.Progress
	}

	updated, err := s.jobs.Update(r.Context(), *listing)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to update job")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// importJobRequest carries a job posting to ingest, either as raw HTML or as
// a URL to fetch. UseBrowser renders the page in a headless browser when the
// plain fetch returns a JavaScript shell.
type importJobRequest struct {
	HTML       string `json:"html,omitempty"`
	URL        string `json:"url,omitempty"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// handleImportJob extracts a listing from a posting page and stores it.
func (s *Server) handleImportJob(w http.ResponseWriter, r *http.Request) {
	var req importJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.HTML == "" && req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "'html' or 'url' is required")
		return
	}

	html := req.HTML
	if html == "" {
		fetched, err := fetch.URL(r.Context(), req.URL, nil)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		html = fetched.HTML
	}

	listing, err := jobs.ExtractListing(html)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Posting pages on known job boards bury the description in
	// platform-specific containers; re-extract it with their selectors.
	if req.URL != "" {
		platform := fetch.DetectPlatform(req.URL)
		text, terr := fetch.ExtractMainText(html,
			fetch.PlatformContentSelectors(platform),
			fetch.PlatformNoiseSelectors(platform)...)
		if terr == nil && len(text) > len(listing.Description) {
			listing.Description = text
		}
		if req.UseBrowser && fetch.ShouldUseBrowser(listing.Description) {
			rendered, berr := fetch.BrowserSimple(r.Context(), req.URL, false)
			if berr != nil {
				log.Printf("Browser rendering failed for %s: %v", req.URL, berr)
			} else if better, xerr := jobs.ExtractListing(rendered); xerr == nil {
				listing = better
			}
		}
	}

	if err := s.jobs.Create(r.Context(), listing); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store job")
		return
	}
	s.jsonResponse(w, http.StatusCreated, listing)
}
