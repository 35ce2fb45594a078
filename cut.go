package ahc

import "fmt"

// LinkageMatrix returns the merge history in scipy format: one row
// [left, right, distance, size] per merge, where ids below n are input
// elements and id n+i is the cluster created by row i.
func (e *Engine) LinkageMatrix() ([][4]float64, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	rows := make([][4]float64, len(e.merges))
	for i, m := range e.merges {
		rows[i] = [4]float64{float64(m.Left), float64(m.Right), m.Distance, float64(m.Size)}
	}
	return rows, nil
}

// Labels cuts the tree into k flat clusters by replaying the first n-k
// merges. Labels are numbered by first appearance in input order.
func (e *Engine) Labels(k int) ([]int, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	n := e.root.LeafCount()
	if k < 1 || k > n {
		return nil, fmt.Errorf("ahc: cluster count must be in [1, %d], got %d: %w", n, k, ErrConfiguration)
	}
	return e.replay(n-k, func(Merge) bool { return true }), nil
}

// LabelsAt cuts the tree at a height: only merges with distance <=
// threshold are applied. For linkages without inversions this equals
// cutting the dendrogram at that height.
func (e *Engine) LabelsAt(threshold float64) ([]int, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.replay(len(e.merges), func(m Merge) bool { return m.Distance <= threshold }), nil
}

func (e *Engine) replay(limit int, keep func(Merge) bool) []int {
	n := e.root.LeafCount()
	uf := newUnionFind(n)
	for _, m := range e.merges[:limit] {
		if !keep(m) {
			continue
		}
		uf.union(m.Left, m.ID)
		uf.union(m.Right, m.ID)
	}
	return uf.labels(n)
}
