// Package jigsaw reassembles a shuffled set of equally sized square tiles
// into a picture without access to the source image.
//
// Every ordered pair of tiles is scored along the Left and Up relations by a
// boundary Measure (RGB, MGC, their product RGBMGC, or Lab). The normalized
// scores form a WeightMatrix whose edges, cheapest first, drive a greedy
// tree merge that never lets two tiles of a tree share a position. The
// merged layout is cropped to the requested size, leftover tiles are dropped
// into the remaining gaps, and the grid is rendered into one image.
//
//	tiles, _ := jigsaw.NewTiles(images)
//	img, err := jigsaw.Solve(ctx, tiles, jigsaw.RGBMGC, height, width)
//
// The result is a heuristic reconstruction; it is deterministic for a given
// tile order and measure.
package jigsaw
