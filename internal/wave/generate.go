package wave

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Grid holds one frame, row-major.
type Grid []string

func (g Grid) Height() int { return len(g) }

// Width is the number of glyphs in a row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return utf8.RuneCountInString(g[0])
}

func (g Grid) String() string { return strings.Join(g, "\n") }

// Combined returns the averaged wave value of cell (x, y) at time t.
// Each of the three component waves lies in [-1, 1], so the result does too.
func Combined(x, y, width, height int, t float64, k Kind) float64 {
	fx, fy := float64(x), float64(y)
	cx, cy := float64(width)/2, float64(height)/2
	d := math.Hypot(fx-cx, fy-cy)

	var v1, v2, v3 float64
	switch k {
	case Ripple:
		v1 = math.Sin(d*0.3 - t*2)
		v2 = math.Cos(d*0.2 + t)
		v3 = math.Sin(fx*0.05 + fy*0.05)
	case Plasma:
		v1 = math.Sin(fx*0.08 + t)
		v2 = math.Sin(fy*0.08 + t*0.7)
		v3 = math.Sin((fx+fy)*0.06 + t*1.3)
	default:
		v1 = math.Sin(fx*0.1 + t)
		v2 = math.Sin(fy*0.2 + t*1.5)
		v3 = math.Cos(d*0.1 - t)
	}
	return (v1 + v2 + v3) / 3
}

// Generate renders a width x height frame with the default palette.
func Generate(width, height int, t float64, k Kind) Grid {
	return GenerateWith(DefaultPalette, width, height, t, k)
}

// GenerateWith renders a frame using palette p. Non-positive dimensions
// yield an empty grid.
func GenerateWith(p Palette, width, height int, t float64, k Kind) Grid {
	if width <= 0 || height <= 0 {
		return Grid{}
	}
	glyphs := p.Glyphs()
	grid := make(Grid, height)
	row := make([]rune, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = glyph(glyphs, Combined(x, y, width, height, t, k))
		}
		grid[y] = string(row)
	}
	return grid
}

// ClampRow limits row to [0, height-1].
func ClampRow(height, row int) int {
	return max(0, min(height-1, row))
}

// Profile samples the combined values along a single row.
// Rows outside the grid are clamped to the nearest edge.
func Profile(width, height, row int, t float64, k Kind) []float64 {
	if width <= 0 || height <= 0 {
		return nil
	}
	row = ClampRow(height, row)
	out := make([]float64, width)
	for x := range out {
		out[x] = Combined(x, row, width, height, t, k)
	}
	return out
}
