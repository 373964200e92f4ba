package compute

import (
	"reflect"
	"testing"
)

// multiplyNaive is the plain sequential triple loop used as a reference.
func multiplyNaive(a, b [][]int64) [][]int64 {
	size := len(a)
	product := make([][]int64, size)
	for i := 0; i < size; i++ {
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
	return product
}

func TestMatrix1_Cells(t *testing.T) {
	for _, size := range []int{0, 1, 5} {
		m := Matrix1(size)
		if len(m) != size {
			t.Fatalf("Matrix1(%d) has %d rows, want %d", size, len(m), size)
		}
		for i, row := range m {
			if len(row) != size {
				t.Fatalf("Matrix1(%d) row %d has %d columns, want %d", size, i, len(row), size)
			}
			for j, v := range row {
				if v != int64(i+j) {
					t.Errorf("Matrix1(%d)[%d][%d] = %d, want %d", size, i, j, v, i+j)
				}
			}
		}
	}
}

func TestMatrix2_Cells(t *testing.T) {
	for _, size := range []int{0, 1, 5} {
		m := Matrix2(size)
		if len(m) != size {
			t.Fatalf("Matrix2(%d) has %d rows, want %d", size, len(m), size)
		}
		for i, row := range m {
			for j, v := range row {
				if v != int64(i*j) {
					t.Errorf("Matrix2(%d)[%d][%d] = %d, want %d", size, i, j, v, i*j)
				}
			}
		}
	}
}

func TestMatrixConstruction_Deterministic(t *testing.T) {
	for _, size := range []int{1, 5, 50} {
		if !reflect.DeepEqual(Matrix1(size), Matrix1(size)) {
			t.Errorf("Matrix1(%d) not deterministic across constructions", size)
		}
		if !reflect.DeepEqual(Matrix2(size), Matrix2(size)) {
			t.Errorf("Matrix2(%d) not deterministic across constructions", size)
		}
	}
}

func TestMultiply_HandComputed(t *testing.T) {
	// matrix1 = [[0,1,2],[1,2,3],[2,3,4]], matrix2 = [[0,0,0],[0,1,2],[0,2,4]]
	want := [][]int64{
		{0, 5, 10},
		{0, 8, 16},
		{0, 11, 22},
	}

	got := Multiply(Matrix1(3), Matrix2(3), 2)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Multiply(Matrix1(3), Matrix2(3)) = %v, want %v", got, want)
	}

	if sum := Sum(got); sum != 72 {
		t.Errorf("Sum of 3x3 product = %d, want 72", sum)
	}
}

func TestMultiply_MatchesNaive(t *testing.T) {
	for _, size := range []int{0, 1, 2, 5, 17, 64} {
		a, b := Matrix1(size), Matrix2(size)
		want := multiplyNaive(a, b)

		for _, workers := range []int{1, 3, 8} {
			got := Multiply(a, b, workers)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Multiply(size=%d, workers=%d) diverges from naive reference", size, workers)
			}
		}
	}
}

func TestMultiply_EmptyMatrix(t *testing.T) {
	product := Multiply(Matrix1(0), Matrix2(0), 4)
	if len(product) != 0 {
		t.Errorf("Multiply of empty matrices has %d rows, want 0", len(product))
	}
	if sum := Sum(product); sum != 0 {
		t.Errorf("Sum of empty product = %d, want 0", sum)
	}
}

func TestMultiply_DefaultWorkloadSize(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 200x200 reference comparison in short mode")
	}

	a, b := Matrix1(200), Matrix2(200)
	want := Sum(multiplyNaive(a, b))
	got := Sum(Multiply(a, b, 8))

	if got != want {
		t.Errorf("Sum(Multiply(200x200)) = %d, want %d", got, want)
	}
}

func TestSum(t *testing.T) {
	m := [][]int64{
		{1, 2, 3},
		{4, 5, 6},
	}
	if got := Sum(m); got != 21 {
		t.Errorf("Sum = %d, want 21", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}
