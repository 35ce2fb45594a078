package ahc

import "fmt"

// flipChoice names the child flips evaluated at an internal node, in the
// order they are tried. The first minimum wins.
type flipChoice int

const (
	flipNone flipChoice = iota
	flipLeft
	flipBoth
	flipRight
)

// leafDistance returns the distance between two leaves.
type leafDistance func(a, b *Node) float64

// SortLeaves reorders the dendrogram to minimise the sum of distances
// between adjacent leaves. Each internal node may mirror its left child,
// its right child, both or neither; subtrees are optimised bottom-up.
// The tree is flipped in place and the permutation is recomputed. A layout
// whose total cost would exceed the current one is discarded.
func (e *Engine) SortLeaves() error {
	if err := e.ready(); err != nil {
		return err
	}
	dist, err := e.layoutDistance()
	if err != nil {
		return err
	}

	before := adjacentCost(e.root, dist)
	orientation := map[*Node]*Node{}
	captureOrientation(e.root, orientation)

	optimalCost(e.root, dist)
	if adjacentCost(e.root, dist) > before {
		restoreOrientation(e.root, orientation)
	}
	e.perm = permutation(e.root)
	return nil
}

// OrderingCost returns the sum of the boundary distances of every internal
// node in the current layout, which equals the sum of distances between
// adjacent leaves.
func (e *Engine) OrderingCost() (float64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	dist, err := e.layoutDistance()
	if err != nil {
		return 0, err
	}
	return adjacentCost(e.root, dist), nil
}

func adjacentCost(root *Node, dist leafDistance) float64 {
	var cost float64
	leaves := root.Leaves()
	for i := 1; i < len(leaves); i++ {
		cost += dist(leaves[i-1], leaves[i])
	}
	return cost
}

// captureOrientation records the left child of every internal node.
func captureOrientation(v *Node, left map[*Node]*Node) {
	if v.IsLeaf() {
		return
	}
	left[v] = v.left
	captureOrientation(v.left, left)
	captureOrientation(v.right, left)
}

// restoreOrientation undoes any flips made since captureOrientation.
func restoreOrientation(v *Node, left map[*Node]*Node) {
	if v.IsLeaf() {
		return
	}
	restoreOrientation(v.left, left)
	restoreOrientation(v.right, left)
	if v.left != left[v] {
		v.left, v.right = v.right, v.left
	}
	v.rename()
}

// layoutDistance reindexes the distance matrix by the current permutation
// and returns a lookup by leaf.
func (e *Engine) layoutDistance() (leafDistance, error) {
	ordered, err := e.dist.Permute(e.perm)
	if err != nil {
		return nil, fmt.Errorf("ahc: reorder distances: %w", err)
	}
	pos := append([]int(nil), e.perm...)
	return func(a, b *Node) float64 {
		return ordered.At(pos[a.ID()], pos[b.ID()])
	}, nil
}

// optimalCost returns the minimal boundary cost of the subtree at v and
// leaves the subtree flipped to realise it.
func optimalCost(v *Node, dist leafDistance) float64 {
	if v.IsLeaf() {
		return 0
	}
	ml := optimalCost(v.left, dist)
	mr := optimalCost(v.right, dist)

	// Mirroring a child swaps its outer leaves, so every candidate can be
	// scored without flipping.
	lNear, lFar := v.left.rightmostLeaf(), v.left.leftmostLeaf()
	rNear, rFar := v.right.leftmostLeaf(), v.right.rightmostLeaf()
	costs := [...]float64{
		flipNone:  dist(lNear, rNear),
		flipLeft:  dist(lFar, rNear),
		flipBoth:  dist(lFar, rFar),
		flipRight: dist(lNear, rFar),
	}

	best := flipNone
	for c := flipLeft; c <= flipRight; c++ {
		if costs[c] < costs[best] {
			best = c
		}
	}

	switch best {
	case flipLeft:
		v.left.Flip()
	case flipBoth:
		v.left.Flip()
		v.right.Flip()
	case flipRight:
		v.right.Flip()
	}
	v.rename()
	return ml + mr + costs[best]
}
