package crunchboard

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
)

// cbConfig holds mutable state during CrunchBoard construction.
type cbConfig struct {
	listenAddr   string
	primeBound   int
	matrixSize   int
	workers      int
	historySize  int
	logger       *slog.Logger
	runCallbacks []func(Report)
}

// Option is a function that configures a [CrunchBoard] instance during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithListenAddr], [WithPrimeBound], [WithMatrixSize],
// [WithWorkers], [WithHistorySize], [WithLogger], [WithRunCallback].
type Option func(*cbConfig) error

// WithListenAddr sets the host:port the HTTP server listens on.
//
// Defaults to "127.0.0.1:8080" if not specified.
//
// Example:
//
//	cb, err := crunchboard.New(
//	    crunchboard.WithListenAddr("0.0.0.0:9090"),
//	)
//
// Returns an error if the address is not a valid host:port pair.
func WithListenAddr(addr string) Option {
	return func(cfg *cbConfig) error {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("invalid listen address %q: %w", addr, err)
		}
		cfg.listenAddr = addr
		return nil
	}
}

// WithPrimeBound sets the inclusive upper bound for prime finding.
//
// Every POST to "/" finds all primes up to this bound by trial division.
// Defaults to 1,000,000 if not specified. Bounds below 2 are accepted and
// simply yield no primes.
//
// Returns an error if the bound is negative.
func WithPrimeBound(bound int) Option {
	return func(cfg *cbConfig) error {
		if bound < 0 {
			return errors.New("prime bound cannot be negative")
		}
		cfg.primeBound = bound
		return nil
	}
}

// WithMatrixSize sets the dimension of the square matrices multiplied on
// every POST to "/".
//
// Defaults to 200 if not specified. A size of 0 is accepted and yields an
// empty product with sum 0.
//
// Returns an error if the size is negative.
func WithMatrixSize(size int) Option {
	return func(cfg *cbConfig) error {
		if size < 0 {
			return errors.New("matrix size cannot be negative")
		}
		cfg.matrixSize = size
		return nil
	}
}

// WithWorkers sets how many goroutines each computation fans out across.
//
// This bounds the fork-join parallelism within a single request; it does
// not limit how many requests the HTTP server handles concurrently.
// Defaults to runtime.NumCPU if not specified.
//
// Returns an error if the value is zero or negative.
func WithWorkers(n int) Option {
	return func(cfg *cbConfig) error {
		if n <= 0 {
			return errors.New("workers must be positive")
		}
		cfg.workers = n
		return nil
	}
}

// WithHistorySize sets how many completed runs the /api/runs endpoint
// retains.
//
// Older runs age out of the recent list but remain in the aggregate
// duration statistics. Defaults to 50 if not specified.
//
// Returns an error if the value is zero or negative.
func WithHistorySize(n int) Option {
	return func(cfg *cbConfig) error {
		if n <= 0 {
			return errors.New("history size must be positive")
		}
		cfg.historySize = n
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the CrunchBoard instance.
//
// This allows SDK consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *cbConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithRunCallback registers a function to be called after every
// POST-triggered workload run completes.
//
// The callback receives a [Report] containing the run ID, timing, and
// computation statistics. Multiple callbacks may be registered by calling
// WithRunCallback multiple times; they execute in registration order.
//
// Callbacks run synchronously in the request goroutine before the response
// is written; long-running work should be dispatched to a separate
// goroutine. Panics within callbacks are recovered and logged with a
// correlation ID; they do not fail the request.
//
// Nil callbacks are silently ignored.
func WithRunCallback(cb func(Report)) Option {
	return func(cfg *cbConfig) error {
		if cb == nil {
			return nil // no-op for nil callback (safe to call)
		}
		cfg.runCallbacks = append(cfg.runCallbacks, cb)
		return nil
	}
}
