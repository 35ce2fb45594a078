package ahc

// unionFind is a disjoint-set over merge tree node ids with path
// compression and union by size. It holds 2n-1 slots so that leaves
// (0..n-1) and merged clusters (n..2n-2) share one id space.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	total := max(2*n-1, 1)
	uf := &unionFind{
		parent: make([]int, total),
		size:   make([]int, total),
	}
	for i := range uf.parent {
		uf.parent[i] = -1 // -1 means "is a root"
		uf.size[i] = 1
	}
	return uf
}

// find returns the root of the set containing x.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets containing x and y and returns the new root.
func (uf *unionFind) union(x, y int) int {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return rx
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	return rx
}

// labels numbers the sets of the leaves 0..n-1 by first appearance.
func (uf *unionFind) labels(n int) []int {
	out := make([]int, n)
	ids := make(map[int]int)
	for i := range out {
		root := uf.find(i)
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		out[i] = id
	}
	return out
}
