package jigsaw

import "math"

// Unused lists, in ascending order, the tiles in [0, n) that the grid does
// not hold.
func Unused(g *Grid, n int) []int {
	placed := make([]bool, n)
	for _, t := range g.Cells {
		if t != EmptySlot {
			placed[t] = true
		}
	}
	var out []int
	for i, ok := range placed {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

type neighbor struct {
	tile int
	rel  Relation // side of the empty cell the neighbor sits on
}

func filledNeighbors(g *Grid, row, col int) []neighbor {
	var nbs []neighbor
	if g.Filled(row, col-1) {
		nbs = append(nbs, neighbor{g.At(row, col-1), Left})
	}
	if g.Filled(row, col+1) {
		nbs = append(nbs, neighbor{g.At(row, col+1), Right})
	}
	if g.Filled(row-1, col) {
		nbs = append(nbs, neighbor{g.At(row-1, col), Up})
	}
	if g.Filled(row+1, col) {
		nbs = append(nbs, neighbor{g.At(row+1, col), Down})
	}
	return nbs
}

// fitScore averages the dissimilarity of tile against its neighbors. Scores
// below Epsilon are treated as artifacts and never preferred.
func fitScore(w *WeightMatrix, tile int, nbs []neighbor) float64 {
	if len(nbs) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for _, nb := range nbs {
		sum += w.Dissimilarity(nb.tile, tile, nb.rel)
	}
	avg := sum / float64(len(nbs))
	if avg < Epsilon {
		return math.Inf(1)
	}
	return avg
}

// FillGaps places unused tiles into the empty cells of g one at a time. The
// empty cell with the most filled neighbors goes first (row-major scan,
// first found on ties) and receives the unused tile that fits those
// neighbors best (earliest in unused on ties, so a sole candidate is always
// placed). It stops when either runs out and returns the tiles that were
// not placed.
func FillGaps(g *Grid, unused []int, w *WeightMatrix) []int {
	pool := append([]int(nil), unused...)
	for len(pool) > 0 {
		row, col := -1, -1
		var nbs []neighbor
		for r := range g.Height {
			for c := range g.Width {
				if g.At(r, c) != EmptySlot {
					continue
				}
				cand := filledNeighbors(g, r, c)
				if row < 0 || len(cand) > len(nbs) {
					row, col, nbs = r, c, cand
				}
			}
		}
		if row < 0 {
			break
		}

		best, bestScore := 0, fitScore(w, pool[0], nbs)
		for k := 1; k < len(pool); k++ {
			if s := fitScore(w, pool[k], nbs); s < bestScore {
				best, bestScore = k, s
			}
		}

		g.Set(row, col, pool[best])
		pool = append(pool[:best], pool[best+1:]...)
	}
	return pool
}
