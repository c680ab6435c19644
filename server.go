package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Server exposes the job risk API over HTTP.
type Server struct {
	svc        *JobService
	store      SearchStore
	advice     *AdviceClient
	listenAddr string
	httpServer *http.Server
}

func NewServer(cfg Config, svc *JobService, store SearchStore, advice *AdviceClient) *Server {
	return &Server{
		svc:        svc,
		store:      store,
		advice:     advice,
		listenAddr: cfg.ListenAddr,
	}
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/job", s.handleJob)
	mux.HandleFunc("/api/autocomplete", s.handleAutocomplete)
	mux.HandleFunc("/api/searches/popular", s.handlePopular)
	mux.HandleFunc("/api/searches/recent", s.handleRecent)
	mux.HandleFunc("/api/jobs/highest-risk", s.handleHighestRisk)
	mux.HandleFunc("/api/jobs/lowest-risk", s.handleLowestRisk)
	mux.HandleFunc("/api/advice", s.handleAdvice)
	return s.loggingMiddleware(mux)
}

// Start runs the server until SIGINT or SIGTERM, then drains in-flight
// requests before returning.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("http listening addr=%s", s.listenAddr)
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		log.Println("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
		log.Printf("http %s %s request_id=%s dur=%s", r.Method, r.URL.Path, requestID, time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	title := r.URL.Query().Get("title")
	if title == "" {
		jsonError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}
	jsonResponse(w, http.StatusOK, s.svc.GetJobRecord(title))
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	titles, err := s.store.ListJobTitles()
	if err != nil {
		jsonError(w, http.StatusInternalServerError, fmt.Sprintf("listing job titles: %v", err))
		return
	}
	suggestions := SearchJobTitles(titles, r.URL.Query().Get("q"), queryLimit(r, 10))
	if suggestions == nil {
		suggestions = []string{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rows, err := s.store.PopularSearches(queryLimit(r, 5))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, fmt.Sprintf("listing popular searches: %v", err))
		return
	}
	jsonResponse(w, http.StatusOK, rows)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rows, err := s.store.RecentSearches(queryLimit(r, 10))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, fmt.Sprintf("listing recent searches: %v", err))
		return
	}
	jsonResponse(w, http.StatusOK, rows)
}

func (s *Server) handleHighestRisk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rows, err := s.store.HighestRiskJobs(queryLimit(r, 5))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, fmt.Sprintf("ranking jobs: %v", err))
		return
	}
	jsonResponse(w, http.StatusOK, rows)
}

func (s *Server) handleLowestRisk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rows, err := s.store.LowestRiskJobs(queryLimit(r, 5))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, fmt.Sprintf("ranking jobs: %v", err))
		return
	}
	jsonResponse(w, http.StatusOK, rows)
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.advice == nil {
		jsonError(w, http.StatusNotFound, "advice is not configured")
		return
	}
	title := r.URL.Query().Get("title")
	if title == "" {
		jsonError(w, http.StatusBadRequest, "title query parameter is required")
		return
	}

	rec := s.svc.GetJobRecord(title)
	text, usage, err := s.advice.Advise(r.Context(), rec)
	if err != nil {
		jsonError(w, http.StatusBadGateway, fmt.Sprintf("generating advice: %v", err))
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"job_title": rec.JobTitle,
		"advice":    text,
		"tokens":    usage.TotalTokens(),
	})
}

func queryLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return fallback
	}
	return n
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
