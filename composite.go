package jigsaw

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Composite renders g into a single image. Every placed tile is copied
// verbatim to (col*size, row*size); empty cells show the background.
func Composite(g *Grid, tiles []*Tile, background color.Color) *image.NRGBA {
	size := 0
	if len(tiles) > 0 {
		size = tiles[0].size
	}
	canvas := imaging.New(g.Width*size, g.Height*size, background)
	for r := range g.Height {
		for c := range g.Width {
			if t := g.At(r, c); t != EmptySlot {
				paste(canvas, tiles[t].img, c*size, r*size)
			}
		}
	}
	return canvas
}

// paste copies src row by row into dst at (x, y). imaging.Paste would clone
// the whole canvas on every call.
func paste(dst, src *image.NRGBA, x, y int) {
	b := src.Bounds()
	rowLen := b.Dx() * 4
	for sy := range b.Dy() {
		si := src.PixOffset(b.Min.X, b.Min.Y+sy)
		di := dst.PixOffset(x, y+sy)
		copy(dst.Pix[di:di+rowLen], src.Pix[si:si+rowLen])
	}
}

// Montage lays the tiles out in index order, cols per row, as a contact sheet.
func Montage(tiles []*Tile, cols int, background color.Color) *image.NRGBA {
	cols = max(1, min(cols, len(tiles)))
	rows := (len(tiles) + cols - 1) / cols
	g := NewGrid(cols, rows)
	for i := range tiles {
		g.Cells[i] = i
	}
	return Composite(g, tiles, background)
}
