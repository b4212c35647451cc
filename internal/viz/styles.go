package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/asciiwave/internal/wave"
)

type styles struct {
	title  lipgloss.Style
	border lipgloss.Style
	status lipgloss.Style
	hint   lipgloss.Style
	glyphs map[rune]lipgloss.Style
}

func newStyles(t Theme, p wave.Palette) styles {
	s := styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		border: lipgloss.NewStyle().Foreground(t.Border),
		status: lipgloss.NewStyle().Foreground(t.Status),
		hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		glyphs: make(map[rune]lipgloss.Style, p.Len()),
	}
	glyphs := p.Glyphs()
	for i, r := range glyphs {
		s.glyphs[r] = lipgloss.NewStyle().Foreground(shade(t.Low, t.High, i, len(glyphs)))
	}
	return s
}

// renderRow colours a row of glyphs, grouping runs of the same glyph
// into a single styled span.
func (s styles) renderRow(row string) string {
	runes := []rune(row)
	var b strings.Builder
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		span := string(runes[i:j])
		if st, ok := s.glyphs[runes[i]]; ok {
			b.WriteString(st.Render(span))
		} else {
			b.WriteString(span)
		}
		i = j
	}
	return b.String()
}

// shade interpolates between two hex colours for slot i of n.
func shade(low, high lipgloss.Color, i, n int) lipgloss.Color {
	if n <= 1 {
		return high
	}
	t := float64(i) / float64(n-1)
	sr, sg, sb := parseHex(string(low))
	er, eg, eb := parseHex(string(high))
	r := int(float64(sr) + t*float64(er-sr))
	g := int(float64(sg) + t*float64(eg-sg))
	b := int(float64(sb) + t*float64(eb-sb))
	return lipgloss.Color(hexColor(r, g, b))
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = max(0, min(255, v))
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
