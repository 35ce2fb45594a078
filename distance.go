package ahc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DistanceMetric computes the dissimilarity between two feature vectors of
// equal length.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// featureRequirement is implemented by metrics that are undefined below a
// minimum vector length. The engine checks it before a run.
type featureRequirement interface {
	MinFeatures() int
}

// EuclideanMetric computes the squared Euclidean distance. The square root
// is never taken; Ward linkage expects squared distances.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func (EuclideanMetric) String() string { return "euclidean" }

// CityBlockMetric computes the L1 (Manhattan) distance.
type CityBlockMetric struct{}

func (CityBlockMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

func (CityBlockMetric) String() string { return "cityblock" }

// ChebyshevMetric computes the L-infinity distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

func (ChebyshevMetric) String() string { return "chebyshev" }

// PearsonMetric computes the correlation distance 1 - r, where r is the
// Pearson correlation of the two vectors. Identical vectors with non-zero
// variance are at distance 0; constant vectors give NaN.
//
// Some formulations use 2 - r instead. The orderings agree, but every
// reported distance here is one less.
type PearsonMetric struct{}

func (PearsonMetric) Distance(a, b []float64) float64 {
	// The n versus n-1 normalisation cancels in the ratio, so the sample
	// estimate equals the population one.
	return 1 - stat.Correlation(a, b, nil)
}

// MinFeatures reports that variance needs at least two observations.
func (PearsonMetric) MinFeatures() int { return 2 }

func (PearsonMetric) String() string { return "pearson" }

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	return 1.0 - floats.Dot(a, b)/(floats.Norm(a, 2)*floats.Norm(b, 2))
}

func (CosineMetric) String() string { return "cosine" }

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("ahc: MinkowskiMetric: P must be >= 1")
	}
	return floats.Distance(a, b, m.P)
}

func (MinkowskiMetric) String() string { return "minkowski" }
