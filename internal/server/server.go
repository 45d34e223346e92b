// Package server provides the HTTP REST API for the recruiting platform.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hirelogic/hirelogic-api/internal/ai"
	"github.com/hirelogic/hirelogic-api/internal/config"
	"github.com/hirelogic/hirelogic-api/internal/jobs"
	"github.com/hirelogic/hirelogic-api/internal/server/middleware"
	"github.com/hirelogic/hirelogic-api/internal/server/ratelimit"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	session     *verification.Session
	jobs        jobs.Store
	ai          ai.Service
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService

	// verifyEndpoint and mockSeed let the mode endpoint rebuild strategies.
	verifyEndpoint string
	mockSeed       int64
}

// Config holds server configuration. Session, Jobs, and AI are required;
// JWT is optional and, when set, protects the AI routes.
type Config struct {
	Addr           string
	Session        *verification.Session
	Jobs           jobs.Store
	AI             ai.Service
	Registry       *prometheus.Registry
	JWT            *config.JWTConfig
	VerifyEndpoint string
	MockSeed       int64
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("verification session is required")
	}
	if cfg.Jobs == nil {
		return nil, fmt.Errorf("jobs store is required")
	}
	if cfg.AI == nil {
		return nil, fmt.Errorf("ai service is required")
	}
	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		session:        cfg.Session,
		jobs:           cfg.Jobs,
		ai:             cfg.AI,
		verifyEndpoint: cfg.VerifyEndpoint,
		mockSeed:       cfg.MockSeed,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	if cfg.JWT != nil {
		s.jwtService = NewJWTService(cfg.JWT)
	}

	// Setup router
	mux := http.NewServeMux()

	// Verification workflow endpoints
	mux.HandleFunc("GET /verification", s.handleVerificationState)
	mux.HandleFunc("POST /verification/link", s.handleLinkExternalSource)
	mux.HandleFunc("POST /verification/verify-all", s.handleVerifyAll)
	mux.HandleFunc("POST /verification/mode", s.handleSetMode)
	mux.HandleFunc("GET /verification/receipt", s.handleReceipt)
	mux.HandleFunc("GET /verification/log", s.handleActivityLog)
	mux.HandleFunc("POST /verification/{id}/upload", s.handleUpload)
	mux.HandleFunc("POST /verification/{id}/pick", s.handlePickExternal)
	mux.HandleFunc("POST /verification/{id}/verify", s.handleVerify)
	mux.HandleFunc("DELETE /verification/{id}", s.handleRemove)

	// Job board endpoints
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/applied", s.handleAppliedJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PATCH /jobs/{id}", s.handleUpdateJob)
	mux.HandleFunc("POST /jobs/import", s.handleImportJob)

	// AI endpoints (JWT-protected when a secret is configured)
	mux.Handle("POST /ai/analyze-resume", s.protected(s.handleAnalyzeResume))
	mux.Handle("POST /ai/quiz", s.protected(s.handleGenerateQuiz))
	mux.Handle("POST /ai/summarize", s.protected(s.handleSummarize))
	mux.Handle("POST /ai/certificate", s.protected(s.handleCertificate))
	mux.Handle("GET /ai/homepage", s.protected(s.handleHomepageContent))

	mux.HandleFunc("GET /health", s.handleHealth)
	if cfg.Registry != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // verify-all and PDF export can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// Handler returns the fully assembled handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// protected wraps a handler with JWT auth when a JWT service is configured.
// Without one the handler is served as-is, which keeps single-user and demo
// deployments zero-config.
func (s *Server) protected(h http.HandlerFunc) http.Handler {
	if s.jwtService == nil {
		return h
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			// Set rate limit headers
			s.setRateLimitHeaders(w, info)
			// Return 429 Too Many Requests
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	// Log rate limit hit
	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
