package jigsaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationSymmetric(t *testing.T) {
	for _, r := range Relations {
		assert.Equal(t, r, r.Symmetric().Symmetric(), r.String())
		assert.NotEqual(t, r, r.Symmetric(), r.String())
		assert.NotEqual(t, r.IsBasic(), r.Symmetric().IsBasic(), r.String())
		assert.Equal(t, Position{}, r.Offset().Add(r.Symmetric().Offset()), r.String())
	}
}

func TestRelationOffset(t *testing.T) {
	assert.Equal(t, Position{Row: 0, Col: 1}, Left.Offset())
	assert.Equal(t, Position{Row: 0, Col: -1}, Right.Offset())
	assert.Equal(t, Position{Row: 1, Col: 0}, Up.Offset())
	assert.Equal(t, Position{Row: -1, Col: 0}, Down.Offset())
}

func TestCanonical(t *testing.T) {
	a, b, r := canonical(1, 2, Left)
	assert.Equal(t, []any{1, 2, Left}, []any{a, b, r})

	a, b, r = canonical(1, 2, Right)
	assert.Equal(t, []any{2, 1, Left}, []any{a, b, r})

	a, b, r = canonical(1, 2, Down)
	assert.Equal(t, []any{2, 1, Up}, []any{a, b, r})
}
