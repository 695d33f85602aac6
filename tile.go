package jigsaw

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Tile is one square fragment of the puzzle. It is read-only once built and
// safe to share between goroutines.
type Tile struct {
	img  *image.NRGBA
	size int
	rgb  []float64 // Interleaved RGB in [0,255], len = size*size*3
	lab  []float64 // Interleaved L*a*b*, len = size*size*3
}

// NewTile copies img into a tile. The image must be square and non-empty.
func NewTile(img image.Image) (*Tile, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrNonSquareTile)
	}
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: got %dx%d", ErrNonSquareTile, b.Dx(), b.Dy())
	}
	t := &Tile{
		img:  imaging.Clone(img),
		size: b.Dx(),
	}
	t.makeRGB()
	t.makeLab()
	return t, nil
}

// NewTiles builds a tile set and checks that every tile shares one edge length.
func NewTiles(imgs []image.Image) ([]*Tile, error) {
	if len(imgs) == 0 {
		return nil, ErrNoTiles
	}
	tiles := make([]*Tile, len(imgs))
	for i, img := range imgs {
		t, err := NewTile(img)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles[i] = t
	}
	if err := validateTiles(tiles); err != nil {
		return nil, err
	}
	return tiles, nil
}

func validateTiles(tiles []*Tile) error {
	if len(tiles) == 0 {
		return ErrNoTiles
	}
	size := tiles[0].size
	for i, t := range tiles {
		if t.size != size {
			return fmt.Errorf("%w: tile %d is %dpx, tile 0 is %dpx", ErrTileSizeMismatch, i, t.size, size)
		}
	}
	return nil
}

// Size is the edge length in pixels.
func (t *Tile) Size() int { return t.size }

// Image returns the tile pixels. Callers must not modify them.
func (t *Tile) Image() *image.NRGBA { return t.img }

func (t *Tile) makeRGB() {
	n := t.size
	t.rgb = make([]float64, n*n*3)
	for y := range n {
		row := t.img.Pix[y*t.img.Stride:]
		for x := range n {
			off := pixOffset(n, x, y)
			t.rgb[off] = float64(row[x*4])
			t.rgb[off+1] = float64(row[x*4+1])
			t.rgb[off+2] = float64(row[x*4+2])
		}
	}
}

func (t *Tile) makeLab() {
	t.lab = make([]float64, len(t.rgb))
	for off := 0; off < len(t.rgb); off += 3 {
		c := colorful.Color{
			R: t.rgb[off] / 255.0,
			G: t.rgb[off+1] / 255.0,
			B: t.rgb[off+2] / 255.0,
		}
		t.lab[off], t.lab[off+1], t.lab[off+2] = c.Lab()
	}
}

func pixOffset(w, x, y int) int {
	return (y*w + x) * 3
}

// sideOffset locates the i-th pixel along one side of the tile, depth pixels
// in from the border. Sides run top to bottom for Left/Right and left to
// right for Up/Down.
func (t *Tile) sideOffset(side Relation, depth, i int) int {
	last := t.size - 1
	switch side {
	case Left:
		return pixOffset(t.size, depth, i)
	case Right:
		return pixOffset(t.size, last-depth, i)
	case Up:
		return pixOffset(t.size, i, depth)
	default:
		return pixOffset(t.size, i, last-depth)
	}
}

func (t *Tile) side(side Relation, depth, i int) [3]float64 {
	off := t.sideOffset(side, depth, i)
	return [3]float64{t.rgb[off], t.rgb[off+1], t.rgb[off+2]}
}

func (t *Tile) sideLab(side Relation, i int) [3]float64 {
	off := t.sideOffset(side, 0, i)
	return [3]float64{t.lab[off], t.lab[off+1], t.lab[off+2]}
}

// sideGradient is the mean step from the row or column just inside a side
// to the side itself.
func (t *Tile) sideGradient(side Relation) [3]float64 {
	var g [3]float64
	for i := range t.size {
		outer := t.side(side, 0, i)
		inner := t.side(side, 1, i)
		for c := range 3 {
			g[c] += outer[c] - inner[c]
		}
	}
	for c := range 3 {
		g[c] /= float64(t.size)
	}
	return g
}
