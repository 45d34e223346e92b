package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hirelogic/hirelogic-api/internal/rendering"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

// slotView is the API representation of a document slot.
type slotView struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Mandatory   bool                  `json:"mandatory"`
	Status      verification.Status   `json:"status"`
	File        *verification.FileRef `json:"file,omitempty"`
	ExternalRef string                `json:"external_ref,omitempty"`
	Error       string                `json:"error,omitempty"`
}

// stateResponse is the full verification workflow state.
type stateResponse struct {
	Documents            []slotView                 `json:"documents"`
	Overall              verification.OverallStatus `json:"overall"`
	Progress             verification.Progress      `json:"progress"`
	ExternalSourceLinked bool                       `json:"external_source_linked"`
}

func toSlotViews(slots []verification.Slot) []slotView {
	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, slotView{
			ID:          s.ID,
			Title:       s.Title,
			Mandatory:   s.Mandatory,
			Status:      s.Status,
			File:        s.File,
			ExternalRef: s.ExternalRef,
			Error:       s.Error,
		})
	}
	return views
}

// handleVerificationState returns every slot plus the derived aggregate state.
func (s *Server) handleVerificationState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, stateResponse{
		Documents:            toSlotViews(s.session.Snapshot()),
		Overall:              s.session.Overall(),
		Progress:             s.session.Progress(),
		ExternalSourceLinked: s.session.Linked(),
	})
}

// handleLinkExternalSource links the external document source for the session.
func (s *Server) handleLinkExternalSource(w http.ResponseWriter, r *http.Request) {
	s.session.LinkExternalSource(r.Context())
	s.jsonResponse(w, http.StatusOK, map[string]bool{"linked": true})
}

// handleUpload accepts a multipart file upload for a slot.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Cap the request body: declared sizes are checked again inside Attach
	// against the bytes actually read.
	r.Body = http.MaxBytesReader(w, r.Body, verification.MaxUploadSize*2)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusBadRequest, verification.DocumentUploadPolicy().SizeMessage())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' form field")
		return
	}
	defer file.Close()

	upload := verification.Upload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	if err := s.session.Attach(r.Context(), id, upload); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": string(verification.StatusReadyToVerify)})
}

// pickRequest names a document in the external picker.
type pickRequest struct {
	Ref string `json:"ref"`
}

// handlePickExternal attaches a document from the linked external source.
func (s *Server) handlePickExternal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req pickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Ref == "" {
		s.errorResponse(w, http.StatusBadRequest, "'ref' is required")
		return
	}

	if err := s.session.PickExternal(r.Context(), id, req.Ref); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": string(verification.StatusReadyToVerify)})
}

// handleRemove detaches the slot's document.
func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.session.Remove(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": string(verification.StatusNotUploaded)})
}

// handleVerify runs verification for one slot and returns its final state.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.session.Verify(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	for _, slot := range s.session.Snapshot() {
		if slot.ID == id {
			views := toSlotViews([]verification.Slot{slot})
			s.jsonResponse(w, http.StatusOK, views[0])
			return
		}
	}
	s.errorResponse(w, http.StatusInternalServerError, "slot disappeared after verification")
}

// handleVerifyAll verifies every ready slot and returns the resulting state.
func (s *Server) handleVerifyAll(w http.ResponseWriter, r *http.Request) {
	started := s.session.VerifyAll(r.Context())
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"verified": started,
		"overall":  s.session.Overall(),
	})
}

// modeRequest selects the verification strategy.
type modeRequest struct {
	Mode string `json:"mode"` // "mock" or "real"
}

// handleSetMode switches between the mock and remote verification strategies.
func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Mode {
	case "mock":
		strategy := verification.NewMockStrategy()
		if s.mockSeed != 0 {
			strategy = verification.NewSeededMockStrategy(s.mockSeed, 0)
		}
		s.session.SetStrategy(strategy, "mock")
	case "real":
		if s.verifyEndpoint == "" {
			s.errorResponse(w, http.StatusBadRequest, "no verification endpoint configured")
			return
		}
		s.session.SetStrategy(verification.NewRemoteStrategy(s.verifyEndpoint, nil), "real")
	default:
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q", req.Mode))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"mode": req.Mode})
}

// handleReceipt exports the verification receipt as JSON, HTML, or PDF.
func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.session.Receipt()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		s.jsonResponse(w, http.StatusOK, receipt)
	case "html":
		html, err := rendering.RenderReceiptHTML(receipt)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, html)
	case "pdf":
		pdf, err := rendering.ReceiptPDF(r.Context(), receipt)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", receipt.ID))
		w.WriteHeader(http.StatusOK)
		w.Write(pdf)
	default:
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
	}
}

// handleActivityLog returns the session activity log, newest first.
func (s *Server) handleActivityLog(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"entries": s.session.Activity()})
}
