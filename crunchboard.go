package crunchboard

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/jpalmerr/crunchboard/internal/compute"
	"github.com/jpalmerr/crunchboard/internal/server"
	"github.com/jpalmerr/crunchboard/internal/store"
)

const (
	defaultListenAddr  = "127.0.0.1:8080"
	defaultPrimeBound  = 1_000_000
	defaultMatrixSize  = 200
	defaultHistorySize = 50
)

// CrunchBoard is the main orchestrator for the performance-demonstration
// server.
//
// CrunchBoard serves a fixed HTML page: GET "/" renders it idle, POST "/"
// runs the configured workload, measures elapsed wall-clock time, and
// renders the results into the page. It is created using [New] with
// functional options and started with [CrunchBoard.Start].
//
// The typical lifecycle is:
//
//	cb, err := crunchboard.New()
//	if err != nil {
//	    slog.Error("failed to create crunchboard", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	cb.Start(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context to
// trigger graceful shutdown.
type CrunchBoard struct {
	listenAddr   string
	primeBound   int
	matrixSize   int
	workers      int
	historySize  int
	logger       *slog.Logger
	runCallbacks []func(Report)
}

// New creates a new [CrunchBoard] instance with the given options.
//
// All options have defaults matching the reference demonstration:
//   - Listen address: 127.0.0.1:8080
//   - Prime bound: 1,000,000
//   - Matrix size: 200×200
//   - Workers: runtime.NumCPU
//   - History size: 50 runs
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*CrunchBoard, error) {
	cfg := &cbConfig{
		listenAddr:  defaultListenAddr,
		primeBound:  defaultPrimeBound,
		matrixSize:  defaultMatrixSize,
		historySize: defaultHistorySize,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	workers := cfg.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CrunchBoard{
		listenAddr:   cfg.listenAddr,
		primeBound:   cfg.primeBound,
		matrixSize:   cfg.matrixSize,
		workers:      workers,
		historySize:  cfg.historySize,
		logger:       logger,
		runCallbacks: cfg.runCallbacks,
	}, nil
}

// Start begins serving the demonstration page.
//
// Start is a blocking call that runs until the provided context is
// cancelled. During execution:
//
//   - A human-readable startup line is printed to stdout before the
//     listener is created
//   - The HTTP server serves "/" and "/api/runs" on the configured address
//   - Every POST-triggered run is recorded in the run history and fanned
//     out to registered run callbacks
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server
// fails to bind to the configured address.
func (cb *CrunchBoard) Start(ctx context.Context) error {
	cb.logger.Info("crunchboard starting",
		"prime_bound", cb.primeBound,
		"matrix_size", cb.matrixSize,
		"workers", cb.workers,
	)
	fmt.Printf("Server starting at http://%s\n", cb.listenAddr)

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	runStore := store.NewMemoryStore(cb.historySize)

	workload := compute.Workload{
		PrimeBound: cb.primeBound,
		MatrixSize: cb.matrixSize,
		Workers:    cb.workers,
	}

	// store update first (callbacks fire after data is persisted)
	onResult := func(res compute.Result) {
		rec := resultToRunRecord(res)
		runStore.Record(rec)

		if len(cb.runCallbacks) > 0 {
			report := resultToReport(res, rec.ID)
			for _, rcb := range cb.runCallbacks {
				invokeCallbackSafe(rcb, report, cb.logger)
			}
		}

		cb.logger.Info("run completed",
			"run_id", rec.ID,
			"elapsed_ms", rec.ElapsedMs,
			"prime_count", rec.PrimeCount,
			"matrix_sum", rec.MatrixSum,
		)
	}

	httpServer := server.NewServer(runStore, cb.listenAddr, workload, onResult, cb.logger)
	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	cb.logger.Info("crunchboard stopped")
	return nil
}

// RunOnce executes the configured workload a single time, without the HTTP
// server, and returns its [Report]. The run is not recorded in the run
// history and callbacks are not invoked.
func (cb *CrunchBoard) RunOnce() Report {
	workload := compute.Workload{
		PrimeBound: cb.primeBound,
		MatrixSize: cb.matrixSize,
		Workers:    cb.workers,
	}
	return resultToReport(workload.Run(), "")
}

// ListenAddr returns the configured host:port for the HTTP server.
func (cb *CrunchBoard) ListenAddr() string {
	return cb.listenAddr
}

// PrimeBound returns the configured inclusive upper bound for prime finding.
func (cb *CrunchBoard) PrimeBound() int {
	return cb.primeBound
}

// MatrixSize returns the configured square matrix dimension.
func (cb *CrunchBoard) MatrixSize() int {
	return cb.matrixSize
}

// Workers returns the per-computation fork-join parallelism.
func (cb *CrunchBoard) Workers() int {
	return cb.workers
}

// resultToRunRecord converts a compute result to a store record, assigning
// a fresh run ID.
func resultToRunRecord(res compute.Result) store.RunRecord {
	return store.RunRecord{
		ID:         uuid.NewString(),
		PrimeCount: res.PrimeCount,
		LastPrimes: res.LastPrimes,
		MatrixSum:  res.MatrixSum,
		ElapsedMs:  res.Elapsed.Milliseconds(),
		StartedAt:  res.StartedAt,
	}
}

// resultToReport converts an internal compute result to the public API type.
// Creates a defensive copy of the prime slice to keep Report immutable.
func resultToReport(res compute.Result, runID string) Report {
	last := make([]int, len(res.LastPrimes))
	copy(last, res.LastPrimes)

	return Report{
		RunID:      runID,
		PrimeCount: res.PrimeCount,
		LastPrimes: last,
		MatrixSum:  res.MatrixSum,
		Elapsed:    res.Elapsed,
		StartedAt:  res.StartedAt,
	}
}

// invokeCallbackSafe calls a run callback with panic recovery.
// Panics are logged with a correlation ID but do not propagate.
func invokeCallbackSafe(cb func(Report), report Report, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("run callback panicked",
				"correlation_id", uuid.NewString(),
				"panic", r,
				"run_id", report.RunID,
			)
		}
	}()
	cb(report)
}
