package jigsaw

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
)

type Options struct {
	// Puzzle size in tiles. The result shrinks when the assembled pieces
	// span fewer rows or columns than requested.
	Width, Height int
	// Goroutines used to score tile pairs. Zero means GOMAXPROCS.
	Workers int
	// Fill for cells no tile could be placed in.
	Background color.Color
}

func DefaultOptions() Options {
	return Options{
		Background: color.NRGBA{A: 255},
	}
}

// Solver runs the reassembly pipeline and keeps every stage's output for
// inspection once Solve returns.
type Solver struct {
	Tiles   []*Tile
	Measure Measure
	Logger  *log.Logger

	Weights   *WeightMatrix
	Edges     []Edge
	Assembly  *Assembly
	Layout    *Grid
	Placement *Grid
	Discarded []int
}

func NewSolver(tiles []*Tile, measure Measure) *Solver {
	if measure == nil {
		measure = RGBMGC
	}
	return &Solver{
		Tiles:   tiles,
		Measure: measure,
	}
}

// Solve is a shortcut for solving with default options.
func Solve(ctx context.Context, tiles []*Tile, measure Measure, height, width int) (*image.NRGBA, error) {
	opt := DefaultOptions()
	opt.Width, opt.Height = width, height
	return NewSolver(tiles, measure).Solve(ctx, opt)
}

// PieceCount is the number of tiles.
func (s *Solver) PieceCount() int { return len(s.Tiles) }

// PieceSize is the tile edge length in pixels, or 0 without tiles.
func (s *Solver) PieceSize() int {
	if len(s.Tiles) == 0 {
		return 0
	}
	return s.Tiles[0].size
}

func (s *Solver) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Solve scores the tiles, assembles them, crops the result to the requested
// size, fills what gaps it can and renders the image.
func (s *Solver) Solve(ctx context.Context, opt Options) (*image.NRGBA, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidPuzzleSize, opt.Width, opt.Height)
	}
	if opt.Background == nil {
		opt.Background = DefaultOptions().Background
	}
	l := s.logger()

	start := time.Now()
	weights, err := buildWeightMatrix(ctx, s.Tiles, s.Measure, opt.Workers)
	if err != nil {
		return nil, err
	}
	s.Weights = weights
	s.Edges = weights.Edges()
	l.Debug("scored tiles", "tiles", s.PieceCount(), "edges", len(s.Edges), "elapsed", time.Since(start).Round(time.Millisecond))

	// ============ ASSEMBLY ============

	start = time.Now()
	s.Assembly = Assemble(s.PieceCount(), s.Edges)
	s.Layout = s.Assembly.Layout()
	l.Debug("assembled tiles", "trees", len(s.Assembly.Trees), "span", fmt.Sprintf("%dx%d", s.Layout.Width, s.Layout.Height), "elapsed", time.Since(start).Round(time.Millisecond))

	// ============ CROP + FILL ============

	s.Placement = SelectWindow(s.Layout, opt.Width, opt.Height)
	if s.Placement.Width != opt.Width || s.Placement.Height != opt.Height {
		l.Warn("assembled span smaller than requested puzzle", "want", fmt.Sprintf("%dx%d", opt.Width, opt.Height), "got", fmt.Sprintf("%dx%d", s.Placement.Width, s.Placement.Height))
	}
	unused := Unused(s.Placement, s.PieceCount())
	s.Discarded = FillGaps(s.Placement, unused, s.Weights)
	l.Debug("filled gaps", "candidates", len(unused), "discarded", len(s.Discarded))

	return Composite(s.Placement, s.Tiles, opt.Background), nil
}
