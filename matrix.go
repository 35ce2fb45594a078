package ahc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a labeled featureCount×elementCount grid. Each column holds the
// feature vector of one element; rows are named by feature and columns by
// element. Permutations return new matrices and leave the receiver intact.
type Matrix struct {
	elements []string
	features []string
	data     *mat.Dense
}

// NewMatrix returns a zero-filled matrix with one column per element name
// and one row per feature name.
func NewMatrix(elementNames, featureNames []string) (*Matrix, error) {
	if len(elementNames) == 0 || len(featureNames) == 0 {
		return nil, fmt.Errorf("ahc: matrix needs at least one element and one feature, got %d×%d: %w",
			len(featureNames), len(elementNames), ErrInvalidShape)
	}
	return &Matrix{
		elements: append([]string(nil), elementNames...),
		features: append([]string(nil), featureNames...),
		data:     mat.NewDense(len(featureNames), len(elementNames), nil),
	}, nil
}

// MatrixFromVectors builds a matrix from one feature vector per element.
// vectors[i] belongs to elementNames[i] and must have len(featureNames)
// values.
func MatrixFromVectors(elementNames, featureNames []string, vectors [][]float64) (*Matrix, error) {
	if len(vectors) != len(elementNames) {
		return nil, fmt.Errorf("ahc: got %d vectors for %d elements: %w",
			len(vectors), len(elementNames), ErrInvalidShape)
	}
	m, err := NewMatrix(elementNames, featureNames)
	if err != nil {
		return nil, err
	}
	for e, v := range vectors {
		if len(v) != len(featureNames) {
			return nil, fmt.Errorf("ahc: vector %d has %d values, want %d: %w",
				e, len(v), len(featureNames), ErrInvalidShape)
		}
		m.data.SetCol(e, v)
	}
	return m, nil
}

// newSquareMatrix returns a zero matrix labeled by names on both axes.
func newSquareMatrix(names []string) *Matrix {
	return &Matrix{
		elements: append([]string(nil), names...),
		features: append([]string(nil), names...),
		data:     mat.NewDense(len(names), len(names), nil),
	}
}

func (m *Matrix) ElementCount() int { return len(m.elements) }

func (m *Matrix) FeatureCount() int { return len(m.features) }

// ElementNames returns a copy of the column labels.
func (m *Matrix) ElementNames() []string { return append([]string(nil), m.elements...) }

// FeatureNames returns a copy of the row labels.
func (m *Matrix) FeatureNames() []string { return append([]string(nil), m.features...) }

func (m *Matrix) ElementName(e int) string { return m.elements[e] }

func (m *Matrix) FeatureName(f int) string { return m.features[f] }

// At returns the value of feature f for element e.
func (m *Matrix) At(f, e int) float64 { return m.data.At(f, e) }

// Set stores the value of feature f for element e.
func (m *Matrix) Set(f, e int, v float64) { m.data.Set(f, e, v) }

// Vector returns a copy of the feature vector of element e.
func (m *Matrix) Vector(e int) []float64 {
	return mat.Col(nil, e, m.data)
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool { return len(m.elements) == len(m.features) }

// PermuteElements returns a copy whose column perm[i] is column i of m.
func (m *Matrix) PermuteElements(perm []int) (*Matrix, error) {
	if err := validatePermutation(perm, m.ElementCount()); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	for e, to := range perm {
		out.elements[to] = m.elements[e]
		for f := range m.features {
			out.data.Set(f, to, m.data.At(f, e))
		}
	}
	copy(out.features, m.features)
	return out, nil
}

// PermuteFeatures returns a copy whose row perm[i] is row i of m.
func (m *Matrix) PermuteFeatures(perm []int) (*Matrix, error) {
	if err := validatePermutation(perm, m.FeatureCount()); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	for f, to := range perm {
		out.features[to] = m.features[f]
		out.data.SetRow(to, m.data.RawRowView(f))
	}
	copy(out.elements, m.elements)
	return out, nil
}

// Permute reorders rows and columns of a square matrix by the same
// permutation: entry (i, j) moves to (perm[i], perm[j]).
func (m *Matrix) Permute(perm []int) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("ahc: cannot permute %d×%d matrix symmetrically: %w",
			m.FeatureCount(), m.ElementCount(), ErrInvalidShape)
	}
	if err := validatePermutation(perm, m.ElementCount()); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	for i, pi := range perm {
		out.elements[pi] = m.elements[i]
		out.features[pi] = m.features[i]
		for j, pj := range perm {
			out.data.Set(pi, pj, m.data.At(i, j))
		}
	}
	return out, nil
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.data, mat.Squeeze()))
}

func (m *Matrix) emptyLike() *Matrix {
	r, c := m.data.Dims()
	return &Matrix{
		elements: make([]string, len(m.elements)),
		features: make([]string, len(m.features)),
		data:     mat.NewDense(r, c, nil),
	}
}

// validatePermutation checks that perm is a bijection on [0, n).
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("ahc: permutation has length %d, want %d: %w", len(perm), n, ErrInvalidShape)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("ahc: permutation entry %d (%d) is not a bijection on [0, %d): %w",
				i, p, n, ErrInvalidShape)
		}
		seen[p] = true
	}
	return nil
}
