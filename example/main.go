package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpalmerr/crunchboard"
)

func main() {
	// a lighter workload than the reference defaults, so runs finish fast
	cb, err := crunchboard.New(
		crunchboard.WithListenAddr("127.0.0.1:8080"),
		crunchboard.WithPrimeBound(100_000),
		crunchboard.WithMatrixSize(100),
		crunchboard.WithRunCallback(func(r crunchboard.Report) {
			fmt.Printf("run %s: %d primes, last %s, matrix sum %d in %.2fs\n",
				r.RunID, r.PrimeCount, r.FormattedPrimes(), r.MatrixSum, r.Elapsed.Seconds())
		}),
	)
	if err != nil {
		slog.Error("failed to create crunchboard", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  CrunchBoard Demo")
	fmt.Println("  Open http://127.0.0.1:8080 and press the button")
	fmt.Println("  Recent runs: http://127.0.0.1:8080/api/runs")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cb.Start(ctx); err != nil {
		slog.Error("crunchboard exited with error", "error", err)
		os.Exit(1)
	}
}
