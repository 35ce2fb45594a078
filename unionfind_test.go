package ahc

import "testing"

func TestNewUnionFind(t *testing.T) {
	uf := newUnionFind(5)

	// 2n-1 slots, each its own root.
	if len(uf.parent) != 9 {
		t.Fatalf("len(parent) = %d, want 9", len(uf.parent))
	}
	for i := range uf.parent {
		if root := uf.find(i); root != i {
			t.Errorf("find(%d) = %d, want %d", i, root, i)
		}
	}
}

func TestUnionFind_SingleElement(t *testing.T) {
	uf := newUnionFind(1)
	if len(uf.parent) != 1 {
		t.Fatalf("len(parent) = %d, want 1", len(uf.parent))
	}
	if got := uf.labels(1); got[0] != 0 {
		t.Errorf("labels = %v, want [0]", got)
	}
}

func TestUnionFind_UnionTwoElements(t *testing.T) {
	uf := newUnionFind(5)
	root := uf.union(1, 3)

	if uf.find(1) != uf.find(3) {
		t.Error("after union(1,3), find(1) != find(3)")
	}
	if root != uf.find(1) {
		t.Errorf("union returned %d, but find(1) = %d", root, uf.find(1))
	}
	if uf.size[root] != 2 {
		t.Errorf("size of root = %d, want 2", uf.size[root])
	}
}

func TestUnionFind_SameSetIsNoop(t *testing.T) {
	uf := newUnionFind(3)
	r1 := uf.union(0, 1)
	r2 := uf.union(1, 0)
	if r1 != r2 {
		t.Errorf("repeated union returned %d then %d", r1, r2)
	}
	if uf.size[r1] != 2 {
		t.Errorf("size = %d, want 2", uf.size[r1])
	}
}

func TestUnionFind_LabelsByFirstAppearance(t *testing.T) {
	uf := newUnionFind(6)

	// {0,4} {1,2,5} {3}, joined through merge ids like a dendrogram would.
	uf.union(1, 6)
	uf.union(5, 6)
	uf.union(2, 6)
	uf.union(0, 7)
	uf.union(4, 7)

	got := uf.labels(6)
	want := []int{0, 1, 1, 2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}
