package compute

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// chunk is a half-open interval [Lo, Hi) of work-unit indices.
type chunk struct {
	Lo, Hi int
}

// splitRange partitions [0, n) into at most workers contiguous chunks of
// near-equal size. Chunk order matches index order, so joining per-chunk
// results in chunk order preserves the ordering of the underlying range.
//
// Returns nil for n <= 0. Fewer than workers chunks are returned when
// n < workers (every chunk is non-empty).
func splitRange(n, workers int) []chunk {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunks := make([]chunk, 0, workers)
	size := n / workers
	rem := n % workers

	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		// spread the remainder across the first rem chunks
		if i < rem {
			hi++
		}
		chunks = append(chunks, chunk{Lo: lo, Hi: hi})
		lo = hi
	}
	return chunks
}

// isPrime reports whether n is prime by trial division: n is prime iff no
// integer in [2, floor(sqrt(n))] divides it. Callers must pass n >= 2.
//
// Trial division is deliberate; the program demonstrates parallel execution
// of a fixed reference algorithm, not algorithmic improvement.
func isPrime(n int) bool {
	sqrt := int(math.Sqrt(float64(n)))
	for i := 2; i <= sqrt; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns all primes p with 2 <= p <= bound, in ascending order.
//
// The candidate range [2, bound] is split into contiguous chunks, each
// evaluated by its own goroutine. Every chunk produces an ascending slice,
// and chunks cover ascending sub-ranges, so concatenating them in chunk
// order yields the full ascending sequence regardless of goroutine
// scheduling.
//
// A bound below 2 yields an empty (non-nil) slice. workers values below 1
// are treated as 1.
func PrimesUpTo(bound, workers int) []int {
	if bound < 2 {
		return []int{}
	}

	// candidate k = index + 2, indices cover [0, bound-1)
	chunks := splitRange(bound-1, workers)
	parts := make([][]int, len(chunks))

	var wg sync.WaitGroup
	for ci, c := range chunks {
		wg.Add(1)
		go func(ci int, c chunk) {
			defer wg.Done()
			part := make([]int, 0, (c.Hi-c.Lo)/2+1)
			for idx := c.Lo; idx < c.Hi; idx++ {
				if k := idx + 2; isPrime(k) {
					part = append(part, k)
				}
			}
			parts[ci] = part
		}(ci, c)
	}
	wg.Wait()

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	primes := make([]int, 0, total)
	for _, part := range parts {
		primes = append(primes, part...)
	}
	return primes
}

// FormatPrimes renders primes as a bracketed, comma-separated list,
// e.g. "[2, 3, 5, 7]". An empty slice renders as "[]".
func FormatPrimes(primes []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range primes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte(']')
	return b.String()
}
