package jigsaw

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite(t *testing.T) {
	tiles := noiseTiles(t, 2, 3, 4)
	bg := color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	img := Composite(gridOf([]int{1, E}, []int{E, 0}), tiles, bg)
	require.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())

	assert.Equal(t, tiles[1].Image().Pix, imaging.Crop(img, image.Rect(0, 0, 3, 3)).Pix)
	assert.Equal(t, tiles[0].Image().Pix, imaging.Crop(img, image.Rect(3, 3, 6, 6)).Pix)
	assert.Equal(t, bg, img.NRGBAAt(4, 1))
	assert.Equal(t, bg, img.NRGBAAt(0, 5))
}

func TestCompositeEmptyGrid(t *testing.T) {
	img := Composite(NewGrid(0, 0), nil, color.Black)
	assert.True(t, img.Bounds().Empty())
}

func TestMontage(t *testing.T) {
	tiles := noiseTiles(t, 5, 2, 4)
	img := Montage(tiles, 3, color.Transparent)
	require.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
	assert.Equal(t, tiles[4].Image().Pix, imaging.Crop(img, image.Rect(2, 2, 4, 4)).Pix)
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(5, 3))

	img = Montage(tiles, 0, color.Transparent)
	assert.Equal(t, image.Rect(0, 0, 2, 10), img.Bounds())
}
