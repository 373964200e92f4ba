package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/crunchboard"
	"github.com/jpalmerr/crunchboard/config"
)

const shutdownTimeout = 10 * time.Second

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// serveCmd starts the CrunchBoard demo server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demonstration server",
	Long: `Start the CrunchBoard demonstration server.

With no arguments the server uses the reference defaults: primes up to
1,000,000, a 200x200 matrix, one worker per CPU, listening on
127.0.0.1:8080. A YAML config file and/or flags can override any of
these; flags win over the config file.

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  crunchboard serve
  crunchboard serve -c config.yaml
  crunchboard serve --listen-addr 0.0.0.0:9090 --prime-bound 500000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
	serveCmd.Flags().String("listen-addr", "", "host:port to listen on")
	serveCmd.Flags().Int("prime-bound", 0, "inclusive upper bound for prime finding")
	serveCmd.Flags().Int("matrix-size", 0, "square matrix dimension")
	serveCmd.Flags().Int("workers", 0, "fork-join parallelism per computation")
}

// buildServeOptions assembles SDK options from the optional config file and
// any flag overrides. Flags win over config values.
func buildServeOptions(cmd *cobra.Command) ([]crunchboard.Option, error) {
	var opts []crunchboard.Option

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		opts = config.BuildOptions(cfg)
	}

	if addr, _ := cmd.Flags().GetString("listen-addr"); addr != "" {
		opts = append(opts, crunchboard.WithListenAddr(addr))
	}
	if bound, _ := cmd.Flags().GetInt("prime-bound"); bound > 0 {
		opts = append(opts, crunchboard.WithPrimeBound(bound))
	}
	if size, _ := cmd.Flags().GetInt("matrix-size"); size > 0 {
		opts = append(opts, crunchboard.WithMatrixSize(size))
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		opts = append(opts, crunchboard.WithWorkers(workers))
	}

	return opts, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	opts, err := buildServeOptions(cmd)
	if err != nil {
		return err
	}
	opts = append(opts, crunchboard.WithLogger(logger))

	cb, err := crunchboard.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create CrunchBoard: %w", err)
	}

	logger.Info("starting server",
		"listen_addr", cb.ListenAddr(),
		"prime_bound", cb.PrimeBound(),
		"matrix_size", cb.MatrixSize(),
		"workers", cb.Workers(),
	)

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// start server - blocks until context cancelled
	errChan := make(chan error, 1)
	go func() {
		errChan <- cb.Start(ctx)
	}()

	// wait for server to finish
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		// signal received, wait for graceful shutdown with timeout
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(shutdownTimeout):
			logger.Warn("shutdown timed out",
				"timeout", shutdownTimeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}
