package ahc

import "errors"

// Sentinel errors returned by the package. Call sites wrap them with
// context; match them with errors.Is.
var (
	// ErrConfiguration reports an unusable metric/linkage setup, such as
	// Ward linkage paired with a non-Euclidean metric or Pearson distance
	// over fewer than two features.
	ErrConfiguration = errors.New("ahc: invalid configuration")

	// ErrNotReady reports a run without input data, or a result accessed
	// before any run.
	ErrNotReady = errors.New("ahc: no clustering result")

	// ErrIncomplete reports a run that stopped with more than one
	// surviving cluster.
	ErrIncomplete = errors.New("ahc: clustering did not converge to a single cluster")

	// ErrInvalidShape reports a matrix or permutation whose dimensions do
	// not fit the requested operation.
	ErrInvalidShape = errors.New("ahc: invalid shape")
)
