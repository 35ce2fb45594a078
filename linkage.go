package ahc

import "math"

// Linkage computes the distance from cluster r to the cluster formed by
// merging p and q, using only the pre-merge distances d and the leaf counts
// of the live nodes. Implementations are pure.
type Linkage interface {
	Distance(p, q, r int, d *TriangularMatrix, nodes []*Node) float64
}

// LinkageFunc adapts a plain function into a Linkage.
type LinkageFunc func(p, q, r int, d *TriangularMatrix, nodes []*Node) float64

func (f LinkageFunc) Distance(p, q, r int, d *TriangularMatrix, nodes []*Node) float64 {
	return f(p, q, r, d, nodes)
}

// SingleLinkage keeps the nearest-neighbour distance: min(d_rp, d_rq).
type SingleLinkage struct{}

func (SingleLinkage) Distance(p, q, r int, d *TriangularMatrix, _ []*Node) float64 {
	rp, rq := d.At(r, p), d.At(r, q)
	return 0.5*(rp+rq) - 0.5*math.Abs(rp-rq)
}

func (SingleLinkage) String() string { return "single" }

// CompleteLinkage keeps the furthest-neighbour distance: max(d_rp, d_rq).
type CompleteLinkage struct{}

func (CompleteLinkage) Distance(p, q, r int, d *TriangularMatrix, _ []*Node) float64 {
	rp, rq := d.At(r, p), d.At(r, q)
	return 0.5*(rp+rq) + 0.5*math.Abs(rp-rq)
}

func (CompleteLinkage) String() string { return "complete" }

// AverageLinkage takes the unweighted mean of the two distances.
type AverageLinkage struct{}

func (AverageLinkage) Distance(p, q, r int, d *TriangularMatrix, _ []*Node) float64 {
	return 0.5 * (d.At(r, p) + d.At(r, q))
}

func (AverageLinkage) String() string { return "average" }

// WeightedAverageLinkage weights each distance by the leaf count of the
// merging cluster it belongs to.
type WeightedAverageLinkage struct{}

func (WeightedAverageLinkage) Distance(p, q, r int, d *TriangularMatrix, nodes []*Node) float64 {
	np := float64(nodes[p].LeafCount())
	nq := float64(nodes[q].LeafCount())
	return (np*d.At(r, p) + nq*d.At(r, q)) / (np + nq)
}

func (WeightedAverageLinkage) String() string { return "weighted" }

// WardLinkage applies the Lance-Williams form of Ward's minimum variance
// criterion. It is only valid on squared Euclidean distances.
type WardLinkage struct{}

func (WardLinkage) Distance(p, q, r int, d *TriangularMatrix, nodes []*Node) float64 {
	np := float64(nodes[p].LeafCount())
	nq := float64(nodes[q].LeafCount())
	nr := float64(nodes[r].LeafCount())
	return ((np+nr)*d.At(r, p) + (nq+nr)*d.At(r, q) - nr*d.At(p, q)) / (np + nq + nr)
}

func (WardLinkage) String() string { return "ward" }
