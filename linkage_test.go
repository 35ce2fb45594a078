package ahc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourClusters returns a hand-built distance matrix over four clusters
// with leaf counts 1, 2, 3, 1:
//
//	    0   1   2   3
//	0   -
//	1   4   -
//	2   9   6   -
//	3   2   5   7   -
func fourClusters() (*TriangularMatrix, []*Node) {
	d := NewTriangularMatrix(4)
	d.Set(0, 1, 4)
	d.Set(0, 2, 9)
	d.Set(1, 2, 6)
	d.Set(0, 3, 2)
	d.Set(1, 3, 5)
	d.Set(2, 3, 7)

	a, b, c, x, y := newLeaf(0, "a"), newLeaf(1, "b"), newLeaf(2, "c"), newLeaf(3, "x"), newLeaf(4, "y")
	bc := newInternal(5, b, c, 1)
	xy := newInternal(6, x, y, 1)
	xyz := newInternal(7, xy, newLeaf(8, "z"), 1)
	return d, []*Node{a, bc, xyz, newLeaf(9, "w")}
}

func TestLinkage_SingleIsMinimum(t *testing.T) {
	d, nodes := fourClusters()
	// merge p=1, q=2; r=0: d_rp=4, d_rq=9
	assert.InDelta(t, 4.0, SingleLinkage{}.Distance(1, 2, 0, d, nodes), floatTol)
	// r=3: d_rp=5, d_rq=7
	assert.InDelta(t, 5.0, SingleLinkage{}.Distance(1, 2, 3, d, nodes), floatTol)
}

func TestLinkage_CompleteIsMaximum(t *testing.T) {
	d, nodes := fourClusters()
	assert.InDelta(t, 9.0, CompleteLinkage{}.Distance(1, 2, 0, d, nodes), floatTol)
	assert.InDelta(t, 7.0, CompleteLinkage{}.Distance(1, 2, 3, d, nodes), floatTol)
}

func TestLinkage_Average(t *testing.T) {
	d, nodes := fourClusters()
	assert.InDelta(t, 6.5, AverageLinkage{}.Distance(1, 2, 0, d, nodes), floatTol)
	assert.InDelta(t, 6.0, AverageLinkage{}.Distance(1, 2, 3, d, nodes), floatTol)
}

func TestLinkage_WeightedAverage(t *testing.T) {
	d, nodes := fourClusters()
	// n_p=2, n_q=3: (2*4 + 3*9) / 5 = 7
	assert.InDelta(t, 7.0, WeightedAverageLinkage{}.Distance(1, 2, 0, d, nodes), floatTol)
	// (2*5 + 3*7) / 5 = 6.2
	assert.InDelta(t, 6.2, WeightedAverageLinkage{}.Distance(1, 2, 3, d, nodes), floatTol)
}

func TestLinkage_Ward(t *testing.T) {
	d, nodes := fourClusters()
	// n_p=2, n_q=3, n_r=1, d_pq=6:
	// ((2+1)*4 + (3+1)*9 - 1*6) / (2+3+1) = (12 + 36 - 6) / 6 = 7
	assert.InDelta(t, 7.0, WardLinkage{}.Distance(1, 2, 0, d, nodes), floatTol)
	// ((2+1)*5 + (3+1)*7 - 6) / 6 = 37/6
	assert.InDelta(t, 37.0/6.0, WardLinkage{}.Distance(1, 2, 3, d, nodes), floatTol)
}

func TestLinkage_ArgumentOrderIrrelevant(t *testing.T) {
	d, nodes := fourClusters()
	rules := []Linkage{SingleLinkage{}, CompleteLinkage{}, AverageLinkage{}}
	for _, l := range rules {
		assert.InDelta(t, l.Distance(1, 2, 0, d, nodes), l.Distance(2, 1, 0, d, nodes), floatTol, "%T", l)
	}
}

func TestLinkageFunc(t *testing.T) {
	d, nodes := fourClusters()
	f := LinkageFunc(func(p, q, r int, d *TriangularMatrix, _ []*Node) float64 {
		return d.At(p, q) + float64(r)
	})
	require.InDelta(t, 9.0, f.Distance(1, 2, 3, d, nodes), floatTol)
}
