package utils

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects how candidate colors are found.
type PaletteMethod int

const (
	PaletteDominant PaletteMethod = iota
	PaletteKMeans
)

func (m PaletteMethod) String() string {
	if m == PaletteKMeans {
		return "kmeans"
	}
	return "dominant"
}

// ParsePaletteMethod accepts "dominant" (or "dominantcolor") and "kmeans".
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dominant", "dominantcolor":
		return PaletteDominant, nil
	case "kmeans":
		return PaletteKMeans, nil
	}
	return 0, fmt.Errorf("unknown palette method %q", s)
}

type candidate struct {
	col    colorful.Color
	weight float64
}

const (
	minWeight  = 1e-6
	maxSamples = 12000
)

// ExtractPalette returns up to k representative colors of img. Candidates
// are reduced to k colors that are far apart in Lab while still favoring
// the heavy ones. A failed k-means run falls back to dominant colors.
func ExtractPalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	if k <= 0 {
		return nil
	}
	if method == PaletteKMeans {
		if p := pickDiverse(kmeansCandidates(img, k), k); len(p) > 0 {
			return p
		}
		log.Warn("k-means found no clusters, using dominant colors")
	}
	return pickDiverse(dominantCandidates(img, k), k)
}

func dominantCandidates(img image.Image, k int) []candidate {
	found := dominantcolor.FindWeight(img, max(24, k*8))
	if len(found) == 0 {
		return []candidate{{col: colorful.Color{R: 0.5, G: 0.5, B: 0.5}, weight: 1}}
	}
	out := make([]candidate, len(found))
	for i, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		out[i] = candidate{col: col.Clamped(), weight: c.Weight}
	}
	return out
}

func kmeansCandidates(img image.Image, k int) []candidate {
	b := img.Bounds()
	area := b.Dx() * b.Dy()
	if area == 0 {
		return nil
	}
	step := 1
	if area > maxSamples {
		step = int(math.Sqrt(float64(area)/maxSamples)) + 1
	}

	var obs clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			obs = append(obs, clusters.Coordinates{float64(r) / 0xffff, float64(g) / 0xffff, float64(bl) / 0xffff})
		}
	}
	if len(obs) == 0 {
		return nil
	}

	cc, err := kmeans.New().Partition(obs, min(max(k*4, k+2), len(obs)))
	if err != nil {
		log.Debug("k-means partition failed", "err", err)
		return nil
	}
	out := make([]candidate, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		out = append(out, candidate{col: col, weight: float64(len(c.Observations))})
	}
	slices.SortStableFunc(out, func(a, b candidate) int { return cmp.Compare(b.weight, a.weight) })
	return out
}

// pickDiverse seeds with the heaviest candidate, then repeatedly adds the
// one farthest from everything chosen, scaled by its relative weight.
func pickDiverse(cands []candidate, k int) []colorful.Color {
	if len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))
	heaviest := 0.0
	for i := range cands {
		cands[i].weight = max(cands[i].weight, minWeight)
		heaviest = max(heaviest, cands[i].weight)
	}

	chosen := []int{0}
	for i, c := range cands {
		if c.weight > cands[chosen[0]].weight {
			chosen[0] = i
		}
	}
	taken := make([]bool, len(cands))
	taken[chosen[0]] = true

	for len(chosen) < k {
		best, bestScore := -1, -1.0
		for i, c := range cands {
			if taken[i] {
				continue
			}
			nearest := math.Inf(1)
			for _, s := range chosen {
				nearest = min(nearest, c.col.DistanceLab(cands[s].col))
			}
			score := nearest * (0.55 + 0.45*math.Sqrt(c.weight/heaviest))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		taken[best] = true
		chosen = append(chosen, best)
	}

	out := make([]colorful.Color, len(chosen))
	for i, idx := range chosen {
		out[i] = cands[idx].col
	}
	return out
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		return cmp.Compare(luminance(a), luminance(b))
	})
}

// PaletteContrast is the smallest Lab distance between any two colors of
// the palette, or 0 when it has fewer than two.
func PaletteContrast(palette []colorful.Color) float64 {
	if len(palette) < 2 {
		return 0
	}
	lowest := math.Inf(1)
	for i := range palette {
		for j := i + 1; j < len(palette); j++ {
			lowest = min(lowest, palette[i].DistanceLab(palette[j]))
		}
	}
	return lowest
}

// PaletteImage renders the palette as a strip of size x size swatches.
func PaletteImage(palette []colorful.Color, size int) (*image.NRGBA, error) {
	if len(palette) == 0 {
		return nil, errors.New("empty palette")
	}
	if size <= 0 {
		size = 64
	}
	strip := imaging.New(size*len(palette), size, color.Transparent)
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		swatch := imaging.New(size, size, color.NRGBA{R: r, G: g, B: b, A: 255})
		strip = imaging.Paste(strip, swatch, image.Pt(i*size, 0))
	}
	return strip, nil
}

// SavePalette writes the swatch strip of palette to path.
func SavePalette(palette []colorful.Color, size int, path string) error {
	img, err := PaletteImage(palette, size)
	if err != nil {
		return err
	}
	return SaveImage(img, path)
}
