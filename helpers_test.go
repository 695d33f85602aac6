package jigsaw

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func solidTile(t *testing.T, c color.NRGBA, size int) *Tile {
	t.Helper()
	tile, err := NewTile(imaging.New(size, size, c))
	require.NoError(t, err)
	return tile
}

func noiseTiles(t *testing.T, n, size int, seed uint64) []*Tile {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed))
	imgs := make([]image.Image, n)
	for i := range imgs {
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		for p := range img.Pix {
			img.Pix[p] = uint8(rng.IntN(256))
		}
		imgs[i] = img
	}
	tiles, err := NewTiles(imgs)
	require.NoError(t, err)
	return tiles
}

// indexMeasure scores tiles by their position in tiles instead of their pixels.
func indexMeasure(tiles []*Tile, score func(i, j int, rel Relation) float64) Measure {
	idx := make(map[*Tile]int, len(tiles))
	for i, t := range tiles {
		idx[t] = i
	}
	return func(a, b *Tile, rel Relation) float64 {
		return score(idx[a], idx[b], rel)
	}
}
