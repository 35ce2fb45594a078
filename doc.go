// Package ahc implements agglomerative hierarchical clustering (AHC) over
// labeled feature matrices.
//
// Every element starts as its own cluster. The engine repeatedly merges the
// two nearest clusters and derives the distances to the merged cluster with
// a Lance-Williams linkage rule, so raw feature vectors are only read once.
// The result is a binary merge tree plus the leaf permutation used to draw
// a dendrogram. SortLeaves optionally reorders the leaves so that adjacent
// leaves are as close as possible.
//
// Basic usage:
//
//	m, err := ahc.MatrixFromVectors(names, features, vectors)
//	cfg := ahc.DefaultConfig()
//	cfg.Linkage = ahc.AverageLinkage{}
//	e := ahc.New(cfg)
//	e.SetData(m)
//	if err := e.Run(); err != nil { ... }
//	_ = e.SortLeaves()
//	root, _ := e.Tree()
//	perm, _ := e.Permutation() // perm[i] is the dendrogram position of element i
//
// # Metrics and linkages
//
// EuclideanMetric yields squared distances. WardLinkage is only accepted
// together with EuclideanMetric, and PearsonMetric needs at least two
// features; Run reports both with ErrConfiguration.
//
// # Flat clusters
//
// Labels(k) and LabelsAt(threshold) cut the tree into flat clusters, and
// LinkageMatrix exports the merge history in scipy's linkage format.
package ahc
