package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/hirelogic/hirelogic-api/internal/ai"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

// analyzeResumeRequest carries raw resume text to analyze.
type analyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

// handleAnalyzeResume extracts domains and skills from a resume. The body is
// either JSON with resume_text, or a multipart upload of the resume file.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var resumeText string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		text, ok := s.readResumeUpload(w, r)
		if !ok {
			return
		}
		resumeText = text
	} else {
		var req analyzeResumeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		resumeText = req.ResumeText
	}

	if resumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "'resume_text' or a resume file is required")
		return
	}

	analysis, err := s.ai.AnalyzeResume(r.Context(), resumeText)
	if err != nil {
		log.Printf("Resume analysis failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "resume analysis failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// readResumeUpload validates an uploaded resume file and returns its text.
// Text extraction for PDF and DOCX happens in the upload client; those
// uploads pass validation but must arrive as resume_text. On failure it
// writes the error response and returns ok=false.
func (s *Server) readResumeUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, verification.MaxUploadSize*2)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusBadRequest, verification.ResumeUploadPolicy().SizeMessage())
			return "", false
		}
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' form field")
		return "", false
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if msg := verification.ResumeUploadPolicy().Check(header.Size, contentType); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return "", false
	}

	if !strings.HasPrefix(contentType, "text/plain") {
		s.errorResponse(w, http.StatusUnprocessableEntity,
			"text extraction for this format is client-side; send the extracted text as 'resume_text'")
		return "", false
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return "", false
	}
	return string(content), true
}

// handleGenerateQuiz builds a multiple-choice quiz for a topic.
func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req ai.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	quiz, err := s.ai.GenerateQuiz(r.Context(), req)
	if err != nil {
		log.Printf("Quiz generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "quiz generation failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, quiz)
}

// handleSummarize produces a recruiter-facing candidate summary.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req ai.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.ai.SummarizeCandidate(r.Context(), req)
	if err != nil {
		log.Printf("Candidate summary failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "candidate summary failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

// handleCertificate generates a certificate image for a completed assessment.
func (s *Server) handleCertificate(w http.ResponseWriter, r *http.Request) {
	var req ai.CertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	dataURI, err := s.ai.GenerateCertificateImage(r.Context(), req)
	if err != nil {
		log.Printf("Certificate generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "certificate generation failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"image_data_uri": dataURI})
}

// handleHomepageContent generates marketing copy for the public homepage.
func (s *Server) handleHomepageContent(w http.ResponseWriter, r *http.Request) {
	content, err := s.ai.GenerateHomepageContent(r.Context())
	if err != nil {
		log.Printf("Homepage content generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "homepage content generation failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, content)
}
