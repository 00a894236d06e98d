// Package server exposes the solver over HTTP.
//
// Endpoints:
//   - POST /v1/solve: solve a cost matrix, with result caching
//   - GET  /v1/solves: recent solve history (when a history store is configured)
//   - GET  /healthz: liveness probe
//
// Every request is tagged with a UUID request ID (X-Request-ID) and logged
// with method, path, status and duration.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maandree/hungarian-algorithm-n3/pkg/cache"
	"github.com/maandree/hungarian-algorithm-n3/pkg/history"
	"github.com/maandree/hungarian-algorithm-n3/pkg/matrixio"
	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
	"github.com/maandree/hungarian-algorithm-n3/pkg/observability"
)

// cacheTTL bounds how long a cached solve result is served. Results are
// immutable, but a TTL keeps abandoned matrices from parking in Redis
// forever.
const cacheTTL = 24 * time.Hour

// Server wires the solver, its result cache and the optional history
// store into an http.Handler.
type Server struct {
	logger  *log.Logger
	cache   cache.Cache
	history history.Store
	router  chi.Router
}

// New creates a Server. Pass cache.NewNullCache() or history.NewNullStore()
// to disable the respective backend; neither may be nil.
func New(logger *log.Logger, c cache.Cache, h history.Store) *Server {
	s := &Server{
		logger:  logger,
		cache:   c,
		history: h,
		router:  chi.NewRouter(),
	}
	s.router.Use(s.requestID, s.logRequests)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/solves", s.handleRecent)
	})
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req matrixio.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()
	key := cache.SolveKey(req.Matrix)
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "solve")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "solve")

	n, m := len(req.Matrix), 0
	if n > 0 {
		m = len(req.Matrix[0])
	}
	observability.Solver().OnSolveStart(ctx, n, m)
	start := time.Now()
	assignment, err := munkres.Solve(req.Matrix)
	elapsed := time.Since(start)

	var cost int64
	if err == nil {
		cost = munkres.Cost(req.Matrix, assignment)
	}
	observability.Solver().OnSolveComplete(ctx, n, m, cost, elapsed, err)

	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	result := matrixio.SolveResult{
		Assignment: assignment,
		Cost:       cost,
		Rows:       n,
		Cols:       m,
	}
	data, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding result")
		return
	}

	if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
		s.logger.Warn("caching solve result", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "solve", len(data))
	}
	s.record(ctx, result, elapsed)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 || parsed > 500 {
			writeError(w, http.StatusBadRequest, "limit must be an integer in [1,500]")
			return
		}
		limit = parsed
	}

	records, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		s.logger.Error("reading solve history", "err", err)
		writeError(w, http.StatusInternalServerError, "reading history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"solves": records})
}

// record stores a solve in the history, logging failures rather than
// surfacing them: history is best-effort and must not fail the request.
func (s *Server) record(ctx context.Context, result matrixio.SolveResult, elapsed time.Duration) {
	rec := history.Record{
		ID:         uuid.NewString(),
		Rows:       result.Rows,
		Cols:       result.Cols,
		Cost:       result.Cost,
		Assignment: result.Assignment,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		s.logger.Warn("recording solve history", "err", err)
	}
}

// statusFor maps solver errors to HTTP status codes. Shape violations are
// the caller's fault; anything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, munkres.ErrEmptyMatrix),
		errors.Is(err, munkres.ErrRowsExceedCols),
		errors.Is(err, munkres.ErrRaggedMatrix):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
