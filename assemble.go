package jigsaw

import (
	"cmp"
	"slices"
)

// Position is a tile's place in assembly coordinates. Coordinates are
// relative to the tile's tree and may be negative.
type Position struct {
	Row, Col int
}

// Add translates p by q.
func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns the translation that moves q onto p.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Assembly is the result of greedy tree merging.
type Assembly struct {
	// Positions[i] is the position of tile i within its tree.
	Positions []Position
	// Trees holds the member indices of each tree, ascending within a tree.
	// Larger trees come first; equal sizes are ordered by smallest member.
	Trees [][]int
}

// Assemble merges n tiles into trees by walking edges in the given order,
// normally WeightMatrix.Edges. An edge joining two tiles of one tree is
// skipped. An edge whose merge would stack two tiles on one position is
// rejected and the trees stay apart. No merge is ever undone.
func Assemble(n int, edges []Edge) *Assembly {
	positions := make([]Position, n)
	ds := newDisjointSet(n)

	occupied := make(map[Position]struct{})
	for _, e := range edges {
		ri, rj := ds.find(e.Source), ds.find(e.Target)
		if ri == rj {
			continue
		}

		shift := positions[e.Source].Sub(positions[e.Target]).Add(e.Relation.Offset())

		clear(occupied)
		for _, m := range ds.members[ri] {
			occupied[positions[m]] = struct{}{}
		}
		if collides(positions, ds.members[rj], shift, occupied) {
			continue
		}

		moved := ds.members[rj]
		for _, m := range moved {
			positions[m] = positions[m].Add(shift)
		}
		ds.union(ri, rj)
	}

	return &Assembly{
		Positions: positions,
		Trees:     collectTrees(ds),
	}
}

func collides(positions []Position, members []int, shift Position, occupied map[Position]struct{}) bool {
	for _, m := range members {
		if _, ok := occupied[positions[m].Add(shift)]; ok {
			return true
		}
	}
	return false
}

func collectTrees(ds *disjointSet) [][]int {
	roots := ds.roots()
	trees := make([][]int, 0, len(roots))
	for _, r := range roots {
		tree := slices.Clone(ds.members[r])
		slices.Sort(tree)
		trees = append(trees, tree)
	}
	slices.SortStableFunc(trees, func(a, b []int) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})
	return trees
}
