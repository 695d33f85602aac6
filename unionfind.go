package jigsaw

// disjointSet partitions tile indices into trees. Besides the usual parent
// and rank arrays it keeps the member list of every root, which the
// assembler needs to check and translate whole trees.
type disjointSet struct {
	parent  []int
	rank    []int
	members [][]int // members[root]; nil for non-roots
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent:  make([]int, n),
		rank:    make([]int, n),
		members: make([][]int, n),
	}
	for i := range n {
		ds.parent[i] = i
		ds.members[i] = []int{i}
	}
	return ds
}

// find returns the root of u, halving the path as it goes.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the trees rooted at ru and rv and returns the new root.
func (ds *disjointSet) union(ru, rv int) int {
	if ru == rv {
		return ru
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
	ds.members[ru] = append(ds.members[ru], ds.members[rv]...)
	ds.members[rv] = nil
	return ru
}

// roots lists the current tree roots in ascending order.
func (ds *disjointSet) roots() []int {
	var out []int
	for i := range ds.parent {
		if ds.parent[i] == i {
			out = append(out, i)
		}
	}
	return out
}
