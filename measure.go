package jigsaw

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Measure scores how poorly b fits next to a along rel. Lower is better;
// scores are non-negative. Implementations must be pure so that the weight
// builder can call them concurrently.
type Measure func(a, b *Tile, rel Relation) float64

// singularFallback replaces the inverse covariance when the residual
// covariance cannot be inverted. Read-only.
var singularFallback = mat.NewDense(3, 3, []float64{
	1, 1, 1,
	1, 1, 1,
	1, 1, 1,
})

// facing returns the sides of a and b that touch when a sits along rel from b.
func facing(rel Relation) (Relation, Relation) {
	return rel.Symmetric(), rel
}

// RGB is the Euclidean distance between the two touching pixel lines.
func RGB(a, b *Tile, rel Relation) float64 {
	a, b, rel = canonical(a, b, rel)
	as, bs := facing(rel)
	sum := 0.0
	for i := range a.size {
		pa := a.side(as, 0, i)
		pb := b.side(bs, 0, i)
		for c := range 3 {
			d := pa[c] - pb[c]
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// Lab is the Euclidean distance between the touching pixel lines in CIE L*a*b*.
func Lab(a, b *Tile, rel Relation) float64 {
	a, b, rel = canonical(a, b, rel)
	as, bs := facing(rel)
	sum := 0.0
	for i := range a.size {
		pa := a.sideLab(as, i)
		pb := b.sideLab(bs, i)
		for c := range 3 {
			d := pa[c] - pb[c]
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// MGC is the Mahalanobis gradient compatibility of a and b. Each tile
// extrapolates its own boundary gradient across the seam; the residuals
// against the neighbor's actual boundary are weighted by their inverse
// covariance. Both directions are summed.
func MGC(a, b *Tile, rel Relation) float64 {
	a, b, rel = canonical(a, b, rel)
	if a.size < 2 || b.size < 2 {
		return 0
	}
	as, bs := facing(rel)
	gradA := a.sideGradient(as)
	gradB := b.sideGradient(bs)

	n := a.size
	ab := mat.NewDense(n, 3, nil)
	ba := mat.NewDense(n, 3, nil)
	for i := range n {
		pa := a.side(as, 0, i)
		pb := b.side(bs, 0, i)
		for c := range 3 {
			ab.Set(i, c, pb[c]-pa[c]-gradA[c])
			ba.Set(i, c, pa[c]-pb[c]-gradB[c])
		}
	}
	return mahalanobis(ab) + mahalanobis(ba)
}

// mahalanobis sums the residual rows into s and returns sᵀ Σ⁻¹ s, which
// equals the sum of gᵢᵀ Σ⁻¹ gⱼ over every pair of rows.
func mahalanobis(residuals *mat.Dense) float64 {
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, residuals, nil)

	var inv mat.Dense
	var weight mat.Matrix = &inv
	if err := inv.Inverse(&cov); isSingular(err) {
		weight = singularFallback
	}

	rows, cols := residuals.Dims()
	s := mat.NewVecDense(cols, nil)
	for i := range rows {
		s.AddVec(s, residuals.RowView(i))
	}
	return mat.Inner(s, weight, s)
}

// isSingular reports whether Inverse failed on an exactly singular matrix.
// An ill-conditioned matrix is still inverted and its inverse is used.
func isSingular(err error) bool {
	if err == nil {
		return false
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return math.IsInf(float64(cond), 1)
	}
	return true
}

// RGBMGC multiplies the RGB and MGC scores. It is the default measure.
func RGBMGC(a, b *Tile, rel Relation) float64 {
	return RGB(a, b, rel) * MGC(a, b, rel)
}

const defaultMeasure = "rgb-mgc"

var measures = map[string]Measure{
	"rgb":     RGB,
	"mgc":     MGC,
	"rgb-mgc": RGBMGC,
	"lab":     Lab,
}

// MeasureByName resolves a measure by its command-line name. An empty name
// selects rgb-mgc.
func MeasureByName(name string) (Measure, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = defaultMeasure
	}
	m, ok := measures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMeasure, name, strings.Join(MeasureNames(), ", "))
	}
	return m, nil
}

// MeasureNames lists the registered measure names in sorted order.
func MeasureNames() []string {
	names := make([]string, 0, len(measures))
	for name := range measures {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
