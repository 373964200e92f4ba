package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/crunchboard"
)

// runCmd executes the workload once without starting the HTTP server.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the workload once and print the statistics",
	Long: `Execute the demonstration workload a single time, without the HTTP
server, and print the same statistics the web page would show.

Useful for benchmarking from the shell or comparing against the web
path.

Example:
  crunchboard run
  crunchboard run --prime-bound 100000 --matrix-size 100 --workers 4`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("prime-bound", 0, "inclusive upper bound for prime finding")
	runCmd.Flags().Int("matrix-size", 0, "square matrix dimension")
	runCmd.Flags().Int("workers", 0, "fork-join parallelism per computation")
}

func runRun(cmd *cobra.Command, args []string) error {
	var opts []crunchboard.Option

	if bound, _ := cmd.Flags().GetInt("prime-bound"); bound > 0 {
		opts = append(opts, crunchboard.WithPrimeBound(bound))
	}
	if size, _ := cmd.Flags().GetInt("matrix-size"); size > 0 {
		opts = append(opts, crunchboard.WithMatrixSize(size))
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		opts = append(opts, crunchboard.WithWorkers(workers))
	}

	cb, err := crunchboard.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create CrunchBoard: %w", err)
	}

	fmt.Printf("Running workload: primes up to %d, %dx%d matrix, %d workers\n",
		cb.PrimeBound(), cb.MatrixSize(), cb.MatrixSize(), cb.Workers())

	report := cb.RunOnce()

	fmt.Printf("Time taken: %.2f seconds\n", report.Elapsed.Seconds())
	fmt.Printf("Number of primes found: %d\n", report.PrimeCount)
	fmt.Printf("Last few primes: %s\n", report.FormattedPrimes())
	fmt.Printf("Matrix multiplication sum: %d\n", report.MatrixSum)

	return nil
}
