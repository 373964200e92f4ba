package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jpalmerr/crunchboard/internal/compute"
	"github.com/jpalmerr/crunchboard/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server handles HTTP requests for the CrunchBoard demo page and API.
//
// Server provides three behaviors on two paths:
//   - GET /: Serves the fixed page with an empty results fragment
//   - POST /: Runs the workload synchronously and serves the page with results
//   - GET /api/runs: Returns recent runs and duration stats as JSON
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	store      store.Store
	workload   compute.Workload
	addr       string
	httpServer *http.Server
	onResult   func(compute.Result)
	logger     *slog.Logger
}

// NewServer creates a new HTTP [Server].
//
// Parameters:
//   - st: Store implementation for run history
//   - addr: host:port to listen on
//   - workload: Workload executed on every POST to "/"
//   - onResult: Called with each completed run before the response is
//     written (may be nil); the caller uses this to record history and
//     fan out callbacks
//   - logger: Logger for server events
//
// The server is not started until [Server.Start] is called.
func NewServer(st store.Store, addr string, workload compute.Workload, onResult func(compute.Result), logger *slog.Logger) *Server {
	return &Server{
		store:    st,
		workload: workload,
		addr:     addr,
		onResult: onResult,
		logger:   logger,
	}
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server continues running until the context is cancelled,
// at which point it initiates a graceful shutdown with a 5-second timeout.
//
// Returns an error if the server fails to bind to the configured address.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/runs", s.handleRuns)

	// create listener first to verify address availability synchronously
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.addr, err)
	}

	s.httpServer = &http.Server{
		Handler: mux,
		// BaseContext derives all request contexts from the server context,
		// so cancelling ctx also cancels in-flight request contexts.
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	// shutdown on context cancellation
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

// handleIndex serves the demonstration page.
//
// GET renders the page with an empty results fragment. POST runs the full
// workload synchronously in the request goroutine, reports the result, and
// renders the page with the populated fragment. The computation is pure and
// allocates per request, so concurrent POSTs never interfere.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.writePage(w, "")

	case http.MethodPost:
		result := s.workload.Run()
		if s.onResult != nil {
			s.onResult(result)
		}
		s.writePage(w, renderResults(result))

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// writePage renders the template with the given results fragment.
func (s *Server) writePage(w http.ResponseWriter, results string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(renderPage(results))); err != nil {
		s.logger.Error("failed to write page response", "error", err)
	}
}

// runsResponse is the JSON shape served by /api/runs.
type runsResponse struct {
	Runs  []store.RunRecord `json:"runs"`
	Stats store.Stats       `json:"stats"`
}

// handleRuns returns recent runs and aggregate stats as JSON.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := runsResponse{
		Runs:  s.store.Recent(),
		Stats: s.store.Stats(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode runs response", "error", err)
	}
}
