package utils

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"
)

var ErrPieceSize = errors.New("piece size must be positive and fit the image")

// Puzzle is an image cut into square pieces.
type Puzzle struct {
	Pieces []image.Image
	// Width and Height count pieces, not pixels.
	Width, Height int
	// Order[i] is the row-major index in the source image of Pieces[i].
	Order []int
}

// GeneratePuzzle cuts img into pieceSize x pieceSize pieces in row-major
// order. Pixels past the last full row or column of pieces are dropped.
// With a non-nil rng the pieces are shuffled.
func GeneratePuzzle(img image.Image, pieceSize int, rng *rand.Rand) (*Puzzle, error) {
	b := img.Bounds()
	if pieceSize <= 0 || pieceSize > b.Dx() || pieceSize > b.Dy() {
		return nil, fmt.Errorf("%w: %d for %dx%d image", ErrPieceSize, pieceSize, b.Dx(), b.Dy())
	}
	p := &Puzzle{
		Width:  b.Dx() / pieceSize,
		Height: b.Dy() / pieceSize,
	}
	for r := range p.Height {
		for c := range p.Width {
			x, y := b.Min.X+c*pieceSize, b.Min.Y+r*pieceSize
			p.Pieces = append(p.Pieces, imaging.Crop(img, image.Rect(x, y, x+pieceSize, y+pieceSize)))
			p.Order = append(p.Order, len(p.Order))
		}
	}
	if rng != nil {
		rng.Shuffle(len(p.Pieces), func(i, j int) {
			p.Pieces[i], p.Pieces[j] = p.Pieces[j], p.Pieces[i]
			p.Order[i], p.Order[j] = p.Order[j], p.Order[i]
		})
	}
	return p, nil
}
