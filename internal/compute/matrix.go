package compute

import "sync"

// Matrix1 builds the first operand of the demonstration product: a size×size
// matrix with cell[i][j] = i + j (0-indexed). Construction is a pure function
// of the indices; the same size always yields an identical matrix.
//
// size 0 yields an empty matrix.
func Matrix1(size int) [][]int64 {
	return buildMatrix(size, func(i, j int) int64 {
		return int64(i + j)
	})
}

// Matrix2 builds the second operand: a size×size matrix with
// cell[i][j] = i * j (0-indexed).
func Matrix2(size int) [][]int64 {
	return buildMatrix(size, func(i, j int) int64 {
		return int64(i * j)
	})
}

// buildMatrix constructs a size×size matrix where each cell is a pure
// function of its (row, column) indices.
func buildMatrix(size int, cell func(i, j int) int64) [][]int64 {
	m := make([][]int64, size)
	for i := range m {
		row := make([]int64, size)
		for j := range row {
			row[j] = cell(i, j)
		}
		m[i] = row
	}
	return m
}

// Multiply computes the standard matrix product of two square matrices of
// equal size: product[i][j] = Σ_k a[i][k] * b[k][j], with int64 accumulation.
//
// Rows of the product are independent, so they are partitioned into
// contiguous chunks across goroutines. Each goroutine writes only its own
// rows of the preallocated result, so the assembled product preserves row
// and column order without locking.
//
// Both operands must be size×size for the same size; an empty matrix yields
// an empty product. workers values below 1 are treated as 1.
func Multiply(a, b [][]int64, workers int) [][]int64 {
	size := len(a)
	product := make([][]int64, size)

	chunks := splitRange(size, workers)

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(c chunk) {
			defer wg.Done()
			for i := c.Lo; i < c.Hi; i++ {
				row := make([]int64, size)
				for j := 0; j < size; j++ {
					var sum int64
					for k := 0; k < size; k++ {
						sum += a[i][k] * b[k][j]
					}
					row[j] = sum
				}
				product[i] = row
			}
		}(c)
	}
	wg.Wait()

	return product
}

// Sum returns the sum of all entries of m as an int64.
//
// For the default 200×200 workload, per-cell values are bounded by roughly
// 3.2e7 and the total by roughly 1.9e13, well within int64 range.
func Sum(m [][]int64) int64 {
	var total int64
	for _, row := range m {
		for _, v := range row {
			total += v
		}
	}
	return total
}
