package sets

// Forest is a disjoint-set forest over the integers [0, n) with path
// compression and union by rank.
type Forest struct {
	parent []int
	rank   []uint8
	count  int
}

// NewForest returns n singleton trees.
func NewForest(n int) *Forest {
	f := &Forest{parent: make([]int, n), rank: make([]uint8, n), count: n}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f
}

// Find returns the root of u's tree.
func (f *Forest) Find(u int) int {
	for f.parent[u] != u {
		// Path halving: point u at its grandparent.
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}
	return u
}

// Union joins the trees of u and v and reports whether they were distinct.
func (f *Forest) Union(u, v int) bool {
	ru, rv := f.Find(u), f.Find(v)
	if ru == rv {
		return false
	}
	if f.rank[ru] < f.rank[rv] {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	if f.rank[ru] == f.rank[rv] {
		f.rank[ru]++
	}
	f.count--
	return true
}

// Same reports whether u and v share a tree.
func (f *Forest) Same(u, v int) bool { return f.Find(u) == f.Find(v) }

// Count returns the number of trees.
func (f *Forest) Count() int { return f.count }
