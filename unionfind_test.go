package jigsaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisjointSet(t *testing.T) {
	ds := newDisjointSet(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ds.roots())

	r := ds.union(ds.find(0), ds.find(1))
	r = ds.union(r, ds.find(2))
	assert.Equal(t, r, ds.find(2))
	assert.Equal(t, ds.find(0), ds.find(1))
	assert.NotEqual(t, ds.find(0), ds.find(3))
	assert.ElementsMatch(t, []int{0, 1, 2}, ds.members[r])
	assert.Len(t, ds.roots(), 3)

	assert.Equal(t, r, ds.union(r, r))
}
