package jigsaw

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// rampTiles cuts a horizontal red ramp (R = 10*x) into two size x size tiles,
// left then right.
func rampTiles(t *testing.T, size int) (*Tile, *Tile) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2*size, size))
	for y := range size {
		for x := range 2 * size {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), A: 255})
		}
	}
	left, err := NewTile(img.SubImage(image.Rect(0, 0, size, size)))
	require.NoError(t, err)
	right, err := NewTile(img.SubImage(image.Rect(size, 0, 2*size, size)))
	require.NoError(t, err)
	return left, right
}

func TestRGB(t *testing.T) {
	a := solidTile(t, red, 2)
	b := solidTile(t, black, 2)

	assert.InDelta(t, 255*math.Sqrt2, RGB(a, b, Left), 1e-9)
	assert.InDelta(t, 255*math.Sqrt2, RGB(a, b, Up), 1e-9)
	assert.Zero(t, RGB(a, a, Left))

	c := solidTile(t, green, 2)
	assert.InDelta(t, 255*2, RGB(a, c, Left), 1e-9)
}

func TestMeasuresAreSymmetric(t *testing.T) {
	tiles := noiseTiles(t, 4, 5, 7)
	for name, m := range measures {
		for _, a := range tiles {
			for _, b := range tiles {
				assert.Equal(t, m(a, b, Right), m(b, a, Left), name)
				assert.Equal(t, m(a, b, Down), m(b, a, Up), name)
			}
		}
	}
}

func TestMGCSingularFallback(t *testing.T) {
	a := solidTile(t, red, 3)
	b := solidTile(t, black, 3)

	// Constant residuals have zero covariance. The 3 rows of each direction
	// sum to (-765, 0, 0) and the all-ones weight scores that 765^2.
	assert.InDelta(t, 18*255*255, MGC(a, b, Left), 1e-6)
	assert.InDelta(t, 18*255*255, MGC(a, b, Up), 1e-6)
}

func TestMahalanobisSumsAllRowPairs(t *testing.T) {
	residuals := mat.NewDense(4, 3, []float64{
		1, 2, 0,
		-3, 1, 4,
		2, -2, 1,
		0, 5, -1,
	})
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, residuals, nil)
	var inv mat.Dense
	require.NoError(t, inv.Inverse(&cov))

	want := 0.0
	for i := range 4 {
		for j := range 4 {
			want += mat.Inner(residuals.RowView(i), &inv, residuals.RowView(j))
		}
	}
	assert.InDelta(t, want, mahalanobis(residuals), 1e-9)
}

func TestIsSingular(t *testing.T) {
	assert.False(t, isSingular(nil))
	assert.False(t, isSingular(mat.Condition(1e20)), "ill-conditioned matrices are still inverted")
	assert.True(t, isSingular(mat.Condition(math.Inf(1))))
}

func TestMGCGradientContinuation(t *testing.T) {
	left, right := rampTiles(t, 4)

	assert.Zero(t, MGC(left, right, Left))
	assert.Greater(t, MGC(right, left, Left), 0.0)
	assert.Zero(t, RGBMGC(left, right, Left))
	assert.Greater(t, RGB(left, right, Left), 0.0)
}

func TestMGCTinyTiles(t *testing.T) {
	a := solidTile(t, red, 1)
	b := solidTile(t, blue, 1)
	assert.Zero(t, MGC(a, b, Left))
	assert.Zero(t, RGBMGC(a, b, Up))
}

func TestLab(t *testing.T) {
	a := solidTile(t, red, 2)
	assert.Zero(t, Lab(a, a, Left))
	assert.Greater(t, Lab(a, solidTile(t, black, 2), Left), Lab(a, solidTile(t, color.NRGBA{R: 200, A: 255}, 2), Left))
}

func TestMeasureByName(t *testing.T) {
	m, err := MeasureByName("")
	require.NoError(t, err)
	tiles := noiseTiles(t, 2, 3, 1)
	a, b := tiles[0], tiles[1]
	assert.Equal(t, RGBMGC(a, b, Left), m(a, b, Left))

	m, err = MeasureByName(" RGB ")
	require.NoError(t, err)
	assert.Equal(t, RGB(a, b, Up), m(a, b, Up))

	_, err = MeasureByName("sobel")
	require.ErrorIs(t, err, ErrUnknownMeasure)

	assert.Equal(t, []string{"lab", "mgc", "rgb", "rgb-mgc"}, MeasureNames())
}
