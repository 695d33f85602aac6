package jigsaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const E = EmptySlot

func gridOf(rows ...[]int) *Grid {
	g := NewGrid(len(rows[0]), len(rows))
	for r, row := range rows {
		for c, v := range row {
			g.Set(r, c, v)
		}
	}
	return g
}

func TestGridFilled(t *testing.T) {
	g := gridOf([]int{0, E})
	assert.True(t, g.Filled(0, 0))
	assert.False(t, g.Filled(0, 1))
	assert.False(t, g.Filled(-1, 0))
	assert.False(t, g.Filled(0, 2))
	assert.False(t, g.Filled(1, 0))
}

func TestGridSub(t *testing.T) {
	g := gridOf(
		[]int{0, 1, 2},
		[]int{3, 4, 5},
	)
	assert.Equal(t, [][]int{{4, 5}}, g.Sub(1, 1, 2, 1).Rows())
	assert.Equal(t, [][]int{{1}, {4}}, g.Sub(0, 1, 1, 2).Rows())
}

func TestAssemblyBounds(t *testing.T) {
	a := &Assembly{Positions: []Position{{-1, 2}, {3, -4}, {0, 0}}}
	origin, w, h := a.Bounds()
	assert.Equal(t, Position{-1, -4}, origin)
	assert.Equal(t, 7, w)
	assert.Equal(t, 5, h)
}

func TestLayoutKeepsLargerTree(t *testing.T) {
	a := &Assembly{
		Positions: []Position{{0, 0}, {0, 1}, {0, 1}, {0, 3}},
		Trees:     [][]int{{0, 1}, {2}, {3}},
	}
	assert.Equal(t, [][]int{{0, 1, E, 3}}, a.Layout().Rows())
}

func TestSelectWindowClamps(t *testing.T) {
	g := gridOf(
		[]int{0, 1},
		[]int{2, 3},
	)
	got := SelectWindow(g, 5, 1)
	assert.Equal(t, 2, got.Width)
	assert.Equal(t, 1, got.Height)
	assert.Equal(t, [][]int{{0, 1}}, got.Rows())
}

func TestSelectWindowFewestEmpty(t *testing.T) {
	g := gridOf(
		[]int{E, 0, 1},
		[]int{E, 2, 3},
	)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, SelectWindow(g, 2, 2).Rows())

	g = gridOf(
		[]int{E, E, 0},
		[]int{E, E, E},
	)
	assert.Equal(t, [][]int{{0}}, SelectWindow(g, 1, 1).Rows(), "last offset is a candidate")
}

func TestSelectWindowFirstOnTies(t *testing.T) {
	g := gridOf(
		[]int{0, 1, 2},
		[]int{3, 4, 5},
	)
	assert.Equal(t, [][]int{{0, 1}}, SelectWindow(g, 2, 1).Rows())

	g = gridOf(
		[]int{E, 0, E},
		[]int{1, E, 2},
	)
	assert.Equal(t, [][]int{{E, 0}}, SelectWindow(g, 2, 1).Rows())
}

func TestSelectWindowDoesNotAlias(t *testing.T) {
	g := gridOf([]int{0, 1})
	w := SelectWindow(g, 2, 1)
	w.Set(0, 0, E)
	assert.Equal(t, 0, g.At(0, 0))
}
