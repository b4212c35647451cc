package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours used by the TUI. Glyphs are shaded from Low
// (sparse) to High (dense).
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Border lipgloss.Color
	Status lipgloss.Color
	Muted  lipgloss.Color
	Low    lipgloss.Color
	High   lipgloss.Color
}

var (
	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#0077be"),
		Status: lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Low:    lipgloss.Color("#001a33"),
		High:   lipgloss.Color("#aaf0ff"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#88ff88"),
		Border: lipgloss.Color("#00cc00"),
		Status: lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Low:    lipgloss.Color("#003300"),
		High:   lipgloss.Color("#00ff00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Title:  lipgloss.Color("#feca57"),
		Border: lipgloss.Color("#ff6b6b"),
		Status: lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Low:    lipgloss.Color("#2d1b2e"),
		High:   lipgloss.Color("#ff9ff3"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Status: lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#888888"),
		Low:    lipgloss.Color("#444444"),
		High:   lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{
		ThemeOcean,
		ThemeRetroGreen,
		ThemeSunset,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to ocean.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
