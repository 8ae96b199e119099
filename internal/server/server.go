// Package server exposes the prime engine over a small HTTP API with
// Prometheus instrumentation: GET /api/v1/primes runs a scan, /healthz
// reports liveness, and /metrics serves the exposition format.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/talmage47/pprimes/internal/config"
	"github.com/talmage47/pprimes/internal/engine"
	"github.com/talmage47/pprimes/internal/logging"
)

// ShutdownTimeout bounds graceful shutdown once the context is canceled.
const ShutdownTimeout = 5 * time.Second

// MaxListedPrimes caps the number of primes included in a JSON response.
// Counts are always exact; the list is a preview for large ranges.
const MaxListedPrimes = 10000

// Server hosts the HTTP API.
type Server struct {
	addr    string
	logger  logging.Logger
	metrics *Metrics
}

// New creates a server bound to addr. A nil logger falls back to the default.
func New(addr string, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Server{
		addr:    addr,
		logger:  logger,
		metrics: NewMetrics(),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/primes", s.metricsMiddleware(s.handlePrimes))
	mux.HandleFunc("/healthz", s.metricsMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.metrics.WritePrometheus)
	return mux
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// metricsMiddleware tracks request counts and the in-flight gauge.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

// primesResponse is the JSON body returned by the primes endpoint.
type primesResponse struct {
	Max       uint64   `json:"max"`
	Workers   int      `json:"workers"`
	Count     int      `json:"count"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Primes    []uint64 `json:"primes,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
}

// errorResponse is the JSON body returned on request errors.
type errorResponse struct {
	Error string `json:"error"`
}

// handlePrimes runs a scan for the requested range and worker count.
//
// Query parameters: max (required, >= 2), workers (optional, >= 1, 0 for
// auto-detect), list (optional boolean, include the primes in the response).
func (s *Server) handlePrimes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	maxValue, err := strconv.ParseUint(r.URL.Query().Get("max"), 10, 64)
	if err != nil || maxValue < 2 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max must be an integer >= 2"})
		return
	}

	workers := config.DefaultWorkers
	if raw := r.URL.Query().Get("workers"); raw != "" {
		workers, err = strconv.Atoi(raw)
		if err != nil || workers < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "workers must be an integer >= 0"})
			return
		}
	}

	res, err := engine.Run(maxValue, workers, nil)
	if err != nil {
		s.logger.Error("scan failed", err,
			logging.Uint64("max", maxValue), logging.Int("workers", workers))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	s.metrics.ObserveScan(res.Elapsed.Seconds(), res.Count)
	s.logger.Info("scan complete",
		logging.Uint64("max", res.MaxValue),
		logging.Int("workers", res.Workers),
		logging.Int("count", res.Count),
		logging.Float64("elapsed_ms", float64(res.Elapsed.Milliseconds())))

	resp := primesResponse{
		Max:       res.MaxValue,
		Workers:   res.Workers,
		Count:     res.Count,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	if parseBoolParam(r.URL.Query().Get("list")) {
		if len(res.Primes) > MaxListedPrimes {
			resp.Primes = res.Primes[:MaxListedPrimes]
			resp.Truncated = true
		} else {
			resp.Primes = res.Primes
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseBoolParam accepts the usual boolean spellings, defaulting to false.
func parseBoolParam(v string) bool {
	switch v {
	case "1", "true", "yes":
		return true
	}
	return false
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"error":"encoding failure"}`)
	}
}
