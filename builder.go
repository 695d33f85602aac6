package jigsaw

import (
	"cmp"
	"context"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Epsilon keeps normalization away from division by zero and marks
// near-zero gap filler scores as spurious.
const Epsilon = 1e-6

// Edge proposes placing Target next to Source along Relation.
type Edge struct {
	Source   int
	Target   int
	Relation Relation
	Weight   float64 // normalized dissimilarity
}

// WeightMatrix holds raw and normalized dissimilarities for every ordered
// tile pair and relation. Only Basic cells are computed; the rest stay +Inf.
// It is read-only once built.
type WeightMatrix struct {
	n    int
	raw  []float64 // len = n*n*4
	norm []float64
}

// BuildWeightMatrix scores every ordered pair of distinct tiles along the
// Basic relations using all available CPUs.
func BuildWeightMatrix(ctx context.Context, tiles []*Tile, measure Measure) (*WeightMatrix, error) {
	return buildWeightMatrix(ctx, tiles, measure, 0)
}

func buildWeightMatrix(ctx context.Context, tiles []*Tile, measure Measure, workers int) (*WeightMatrix, error) {
	if err := validateTiles(tiles); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(tiles)
	w := &WeightMatrix{
		n:   n,
		raw: make([]float64, n*n*len(Relations)),
	}
	for i := range w.raw {
		w.raw[i] = math.Inf(1)
	}

	// Each source row owns a disjoint slice of raw, so shards never overlap.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := range n {
				if i == j {
					continue
				}
				for _, rel := range Basic {
					d := measure(tiles[i], tiles[j], rel)
					if math.IsNaN(d) {
						d = math.Inf(1)
					}
					w.raw[w.offset(i, j, rel)] = d
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.normalize()
	return w, nil
}

func (w *WeightMatrix) offset(i, j int, rel Relation) int {
	return (i*w.n+j)*len(Relations) + int(rel)
}

// normalize divides each score by the best score its source row or target
// column achieves for the same relation, so that low-contrast tiles are not
// favored just for having small raw scores.
func (w *WeightMatrix) normalize() {
	n := w.n
	w.norm = slices.Clone(w.raw)
	for _, rel := range Basic {
		rowMin := make([]float64, n)
		colMin := make([]float64, n)
		for i := range n {
			rowMin[i] = math.Inf(1)
			colMin[i] = math.Inf(1)
		}
		for i := range n {
			for j := range n {
				d := w.raw[w.offset(i, j, rel)]
				rowMin[i] = min(rowMin[i], d)
				colMin[j] = min(colMin[j], d)
			}
		}
		for i := range n {
			for j := range n {
				if i == j {
					continue
				}
				off := w.offset(i, j, rel)
				best := min(rowMin[i], colMin[j])
				if math.IsInf(best, 1) {
					continue
				}
				w.norm[off] = w.raw[off] / (best + Epsilon)
			}
		}
	}
}

// Len is the number of tiles the matrix was built for.
func (w *WeightMatrix) Len() int { return w.n }

// Raw returns the unnormalized score for placing j along rel from i.
func (w *WeightMatrix) Raw(i, j int, rel Relation) float64 {
	i, j, rel = canonical(i, j, rel)
	return w.raw[w.offset(i, j, rel)]
}

// Dissimilarity returns the normalized score for placing j along rel from i.
func (w *WeightMatrix) Dissimilarity(i, j int, rel Relation) float64 {
	i, j, rel = canonical(i, j, rel)
	return w.norm[w.offset(i, j, rel)]
}

// Edges lists every Basic edge between distinct tiles, cheapest first. Equal
// weights keep generation order: by source, then target, then Left before Up.
func (w *WeightMatrix) Edges() []Edge {
	edges := make([]Edge, 0, w.n*(w.n-1)*len(Basic))
	for i := range w.n {
		for j := range w.n {
			if i == j {
				continue
			}
			for _, rel := range Basic {
				edges = append(edges, Edge{
					Source:   i,
					Target:   j,
					Relation: rel,
					Weight:   w.norm[w.offset(i, j, rel)],
				})
			}
		}
	}
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
	return edges
}
