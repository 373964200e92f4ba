// Package crunchboard provides a small, embeddable performance-demonstration
// server: an HTTP page that runs a CPU-bound workload (bounded trial-division
// prime finding and a dense square matrix multiplication) fork-join parallel
// across workers, and reports the elapsed time and computation statistics.
//
// CrunchBoard is designed as an SDK-first library. The workload is pure and
// allocates per request, so concurrent requests are fully independent; the
// only cross-request state is an append-only run history served at
// /api/runs.
//
// # Quick Start
//
// Create a board with defaults (primes to 1,000,000, a 200×200 matrix, one
// worker per CPU, listening on 127.0.0.1:8080) and run it with graceful
// shutdown:
//
//	cb, err := crunchboard.New()
//	if err != nil {
//	    slog.Error("failed to create crunchboard", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	cb.Start(ctx) // blocks until context is cancelled
//
// # Configuration
//
// CrunchBoard uses the functional options pattern for configuration:
//
//	cb, err := crunchboard.New(
//	    crunchboard.WithListenAddr("0.0.0.0:9090"),
//	    crunchboard.WithPrimeBound(500_000),
//	    crunchboard.WithMatrixSize(100),
//	    crunchboard.WithWorkers(4),
//	)
//
// Completed runs can be observed with [WithRunCallback], which receives a
// [Report] for every POST-triggered workload execution.
//
// # Architecture
//
// CrunchBoard consists of several internal packages (under internal/):
//
//   - internal/compute: The fork-join prime and matrix kernels
//   - internal/server: HTTP server for the demo page and run-history API
//   - internal/store: Bounded in-memory run history with duration stats
//
// The internal packages are not part of the public API and may change
// without notice.
package crunchboard
