package ahc

// Node is a merge tree node: either an original element (leaf) or the merge
// of two clusters. Leaves carry ids 0..n-1 in input order; internal nodes
// continue n..2n-2 in merge order, so the root of an n-element tree has id
// 2n-2.
//
// The topology is fixed once built. Flip is the only mutation and must not
// run concurrently with a traversal.
type Node struct {
	id        int
	level     int
	leafCount int
	name      string
	distance  float64

	left, right *Node
	parent      *Node
}

func newLeaf(id int, name string) *Node {
	return &Node{id: id, leafCount: 1, name: name}
}

// newInternal merges left and right at distance d. Both children must be
// roots; a node joins at most one parent.
func newInternal(id int, left, right *Node, d float64) *Node {
	if left.parent != nil || right.parent != nil {
		panic("ahc: node already has a parent")
	}
	n := &Node{
		id:        id,
		level:     max(left.level, right.level) + 1,
		leafCount: left.leafCount + right.leafCount,
		distance:  d,
		left:      left,
		right:     right,
	}
	n.rename()
	left.parent = n
	right.parent = n
	return n
}

func (n *Node) ID() int { return n.id }

// Level is 0 for leaves and one more than the deeper child otherwise.
func (n *Node) Level() int { return n.level }

// LeafCount is the number of original elements under n.
func (n *Node) LeafCount() int { return n.leafCount }

// Name is the element label for a leaf, or the comma-joined names of the
// children in their current left-to-right order.
func (n *Node) Name() string { return n.name }

// Distance is the merge distance; 0 for leaves.
func (n *Node) Distance() float64 { return n.distance }

func (n *Node) Left() *Node { return n.left }

func (n *Node) Right() *Node { return n.right }

// Parent returns the node n was merged into, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Flip mirrors the subtree: children are swapped at n and at every
// descendant. Flipping twice restores the original layout.
func (n *Node) Flip() {
	if n.IsLeaf() {
		return
	}
	n.left, n.right = n.right, n.left
	n.left.Flip()
	n.right.Flip()
	n.rename()
}

func (n *Node) rename() {
	n.name = n.left.name + "," + n.right.name
}

// Leaves returns the leaves under n in left-to-right order.
func (n *Node) Leaves() []*Node {
	leaves := make([]*Node, 0, n.leafCount)
	return n.appendLeaves(leaves)
}

func (n *Node) appendLeaves(dst []*Node) []*Node {
	if n.IsLeaf() {
		return append(dst, n)
	}
	dst = n.left.appendLeaves(dst)
	return n.right.appendLeaves(dst)
}

func (n *Node) leftmostLeaf() *Node {
	for !n.IsLeaf() {
		n = n.left
	}
	return n
}

func (n *Node) rightmostLeaf() *Node {
	for !n.IsLeaf() {
		n = n.right
	}
	return n
}

// permutation maps each leaf id under root to its position in the
// left-to-right leaf order. Leaf ids must cover [0, root.LeafCount()).
func permutation(root *Node) []int {
	perm := make([]int, root.leafCount)
	for pos, leaf := range root.Leaves() {
		perm[leaf.id] = pos
	}
	return perm
}
