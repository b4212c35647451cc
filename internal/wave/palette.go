package wave

import (
	"strings"
	"unicode/utf8"
)

// Palette is an ordered run of glyphs from sparsest to densest. Glyphs
// are runes, so block characters such as " ░▒▓█" work as well as ASCII.
type Palette string

// DefaultPalette spans ten glyphs of increasing visual weight.
const DefaultPalette Palette = " .:-=+*#%@"

// Len is the number of glyphs, not bytes.
func (p Palette) Len() int { return utf8.RuneCountInString(string(p)) }

func (p Palette) Glyphs() []rune { return []rune(string(p)) }

// Index maps a combined wave value in [-1, 1] onto a palette slot.
// The scaled value is truncated toward zero and clamped to [0, Len()-1];
// NaN maps to 0.
func (p Palette) Index(combined float64) int {
	return index(p.Len(), combined)
}

func index(n int, combined float64) int {
	last := n - 1
	if last <= 0 {
		return 0
	}
	f := (combined + 1) * float64(last) / 2
	if !(f > 0) {
		return 0
	}
	if f >= float64(last) {
		return last
	}
	return int(f)
}

// Glyph returns the palette character for a combined wave value.
func (p Palette) Glyph(combined float64) rune {
	return glyph(p.Glyphs(), combined)
}

func glyph(glyphs []rune, combined float64) rune {
	if len(glyphs) == 0 {
		return ' '
	}
	return glyphs[index(len(glyphs), combined)]
}

func (p Palette) Contains(r rune) bool {
	return strings.ContainsRune(string(p), r)
}
