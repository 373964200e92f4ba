package compute

import (
	"reflect"
	"testing"
)

// primesSequential is a straightforward single-threaded reference used to
// verify the parallel implementation against partitioning discrepancies.
func primesSequential(bound int) []int {
	primes := []int{}
	for k := 2; k <= bound; k++ {
		if isPrime(k) {
			primes = append(primes, k)
		}
	}
	return primes
}

func TestPrimesUpTo_KnownSets(t *testing.T) {
	tests := []struct {
		bound int
		want  []int
	}{
		{2, []int{2}},
		{10, []int{2, 3, 5, 7}},
		{30, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}

	for _, tt := range tests {
		got := PrimesUpTo(tt.bound, 4)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PrimesUpTo(%d) = %v, want %v", tt.bound, got, tt.want)
		}
	}
}

func TestPrimesUpTo_KnownCounts(t *testing.T) {
	tests := []struct {
		bound int
		want  int
	}{
		{100, 25},
		{1000, 168},
		{10000, 1229},
	}

	for _, tt := range tests {
		got := PrimesUpTo(tt.bound, 4)
		if len(got) != tt.want {
			t.Errorf("len(PrimesUpTo(%d)) = %d, want %d", tt.bound, len(got), tt.want)
		}
	}
}

func TestPrimesUpTo_BoundBelowTwo(t *testing.T) {
	for _, bound := range []int{-5, 0, 1} {
		got := PrimesUpTo(bound, 4)
		if got == nil {
			t.Errorf("PrimesUpTo(%d) = nil, want empty slice", bound)
		}
		if len(got) != 0 {
			t.Errorf("PrimesUpTo(%d) = %v, want empty", bound, got)
		}
	}
}

func TestPrimesUpTo_AscendingNoDuplicates(t *testing.T) {
	primes := PrimesUpTo(5000, 7)
	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			t.Fatalf("primes[%d] = %d not greater than primes[%d] = %d",
				i, primes[i], i-1, primes[i-1])
		}
	}
}

func TestPrimesUpTo_ParallelMatchesSequential(t *testing.T) {
	want := primesSequential(5000)

	for _, workers := range []int{1, 2, 3, 8, 32} {
		got := PrimesUpTo(5000, workers)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("PrimesUpTo(5000, %d) diverges from sequential reference: got %d primes, want %d",
				workers, len(got), len(want))
		}
	}
}

func TestPrimesUpTo_MoreWorkersThanCandidates(t *testing.T) {
	got := PrimesUpTo(5, 64)
	want := []int{2, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrimesUpTo(5, 64) = %v, want %v", got, want)
	}
}

func TestSplitRange(t *testing.T) {
	tests := []struct {
		n, workers int
	}{
		{10, 3},
		{10, 10},
		{10, 1},
		{3, 8},
		{1, 1},
		{100, 7},
	}

	for _, tt := range tests {
		chunks := splitRange(tt.n, tt.workers)

		// chunks must tile [0, n) contiguously in order
		next := 0
		for _, c := range chunks {
			if c.Lo != next {
				t.Errorf("splitRange(%d, %d): chunk starts at %d, want %d", tt.n, tt.workers, c.Lo, next)
			}
			if c.Hi <= c.Lo {
				t.Errorf("splitRange(%d, %d): empty chunk %+v", tt.n, tt.workers, c)
			}
			next = c.Hi
		}
		if next != tt.n {
			t.Errorf("splitRange(%d, %d): chunks end at %d, want %d", tt.n, tt.workers, next, tt.n)
		}

		if len(chunks) > tt.workers {
			t.Errorf("splitRange(%d, %d): %d chunks, want at most %d", tt.n, tt.workers, len(chunks), tt.workers)
		}
	}
}

func TestSplitRange_Empty(t *testing.T) {
	if chunks := splitRange(0, 4); chunks != nil {
		t.Errorf("splitRange(0, 4) = %v, want nil", chunks)
	}
	if chunks := splitRange(-1, 4); chunks != nil {
		t.Errorf("splitRange(-1, 4) = %v, want nil", chunks)
	}
}

func TestFormatPrimes(t *testing.T) {
	tests := []struct {
		primes []int
		want   string
	}{
		{nil, "[]"},
		{[]int{}, "[]"},
		{[]int{2}, "[2]"},
		{[]int{2, 3, 5}, "[2, 3, 5]"},
		{[]int{999953, 999959, 999961, 999979, 999983}, "[999953, 999959, 999961, 999979, 999983]"},
	}

	for _, tt := range tests {
		if got := FormatPrimes(tt.primes); got != tt.want {
			t.Errorf("FormatPrimes(%v) = %q, want %q", tt.primes, got, tt.want)
		}
	}
}
