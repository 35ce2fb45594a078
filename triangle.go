package ahc

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TriangularMatrix holds the pairwise distances between the live clusters of
// a run. Only the strictly lower triangle is stored; At reads the pair in
// either order, so every caller shares the same (min, max) convention.
type TriangularMatrix struct {
	n    int
	data *mat.TriDense
}

// NewTriangularMatrix returns an n×n zero distance matrix. n must be >= 1.
func NewTriangularMatrix(n int) *TriangularMatrix {
	return &TriangularMatrix{n: n, data: mat.NewTriDense(n, mat.Lower, nil)}
}

// Size returns the number of clusters the matrix covers.
func (t *TriangularMatrix) Size() int { return t.n }

// At returns the distance between clusters a and b. The diagonal is 0.
func (t *TriangularMatrix) At(a, b int) float64 {
	if a == b {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	return t.data.At(b, a)
}

// Set stores the distance between clusters a and b (a != b).
func (t *TriangularMatrix) Set(a, b int, v float64) {
	if a == b {
		panic("ahc: TriangularMatrix: diagonal is fixed at zero")
	}
	if a > b {
		a, b = b, a
	}
	t.data.SetTri(b, a, v)
}

// Nearest scans pairs (i, j), i < j, in row-major order and returns the
// first pair holding the smallest distance. NaN entries are skipped; ok is
// false when no pair is left to select.
func (t *TriangularMatrix) Nearest() (i, j int, d float64, ok bool) {
	d = math.Inf(1)
	for a := 0; a < t.n; a++ {
		for b := a + 1; b < t.n; b++ {
			v := t.At(a, b)
			if math.IsNaN(v) {
				continue
			}
			if !ok || v < d {
				i, j, d, ok = a, b, v, true
			}
		}
	}
	return i, j, d, ok
}

// Matrix exposes the stored triangle for formatting.
func (t *TriangularMatrix) Matrix() mat.Matrix { return t.data }
