package jigsaw

import "errors"

var (
	// ErrNoTiles indicates an empty tile set.
	ErrNoTiles = errors.New("jigsaw: no tiles")
	// ErrTileSizeMismatch indicates tiles of differing edge lengths.
	ErrTileSizeMismatch = errors.New("jigsaw: not all tiles are compatible by size")
	// ErrNonSquareTile indicates a tile whose width differs from its height.
	ErrNonSquareTile = errors.New("jigsaw: tiles are not square")
	// ErrInvalidPuzzleSize indicates a non-positive puzzle width or height.
	ErrInvalidPuzzleSize = errors.New("jigsaw: puzzle width and height must be positive")
	// ErrUnknownMeasure indicates a dissimilarity measure name with no implementation.
	ErrUnknownMeasure = errors.New("jigsaw: unknown dissimilarity measure")
)
