package crunchboard

import (
	"time"

	"github.com/jpalmerr/crunchboard/internal/compute"
)

// Report holds the outcome of one workload run.
//
// Report is immutable after creation and is the public representation of a
// completed run, delivered to [WithRunCallback] callbacks and returned by
// [CrunchBoard.RunOnce].
type Report struct {
	// RunID uniquely identifies the run. Empty for RunOnce results, which
	// are not recorded in the run history.
	RunID string

	// PrimeCount is the number of primes found up to the configured bound.
	PrimeCount int

	// LastPrimes holds up to the five largest primes found, ascending.
	LastPrimes []int

	// MatrixSum is the sum of all entries of the matrix product.
	MatrixSum int64

	// Elapsed is the wall-clock time spanning both computations.
	Elapsed time.Duration

	// StartedAt is the timestamp when the run began.
	StartedAt time.Time
}

// FormattedPrimes returns LastPrimes as a bracketed, comma-separated list,
// e.g. "[999953, 999959, 999961, 999979, 999983]".
func (r Report) FormattedPrimes() string {
	return compute.FormatPrimes(r.LastPrimes)
}
