package compute

import (
	"runtime"
	"time"
)

// Workload describes one execution of the demonstration computation.
//
// A Workload is immutable and safe to share; Run allocates everything it
// needs per call, so concurrent Runs of the same Workload never interfere.
type Workload struct {
	// PrimeBound is the inclusive upper bound for prime finding.
	PrimeBound int

	// MatrixSize is the dimension of the square matrices to multiply.
	MatrixSize int

	// Workers is the number of goroutines each kernel fans out across.
	// Values below 1 default to runtime.NumCPU at Run time.
	Workers int
}

// Result holds the outcome of a single workload run.
//
// Result is immutable after creation. The prime list itself is not retained;
// only the count and the tail needed for reporting survive the run.
type Result struct {
	// PrimeCount is the number of primes found up to the bound.
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

// lastPrimesReported is how many trailing primes a Result retains.
const lastPrimesReported = 5

// Run executes the prime finder and the matrix multiplication sequentially,
// each internally fork-join parallel, and measures the wall-clock time
// spanning both. Rendering and storage are excluded from the measurement.
func (w Workload) Run() Result {
	workers := w.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	startedAt := time.Now()

	primes := PrimesUpTo(w.PrimeBound, workers)
	product := Multiply(Matrix1(w.MatrixSize), Matrix2(w.MatrixSize), workers)
	sum := Sum(product)

	elapsed := time.Since(startedAt)

	tail := primes
	if len(tail) > lastPrimesReported {
		tail = tail[len(tail)-lastPrimesReported:]
	}
	last := make([]int, len(tail))
	copy(last, tail)

	return Result{
		PrimeCount: len(primes),
		LastPrimes: last,
		MatrixSum:  sum,
		Elapsed:    elapsed,
		StartedAt:  startedAt,
	}
}
