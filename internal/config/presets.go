package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"compact": {
		Width: 60, Height: 18, FramesPerPattern: 40, TimeStep: 0.15,
		FrameDelay: Duration{40 * time.Millisecond}, PatternPause: Duration{500 * time.Millisecond},
		IntroPause: Duration{time.Second},
		Patterns:   []string{"sine", "ripple", "plasma"}, Palette: " .:-=+*#%@",
	},
	"calm": {
		Width: 80, Height: 24, FramesPerPattern: 120, TimeStep: 0.05,
		FrameDelay: Duration{80 * time.Millisecond}, PatternPause: Duration{2 * time.Second},
		IntroPause: Duration{2 * time.Second},
		Patterns:   []string{"plasma", "ripple", "sine"}, Palette: " .-=+*#",
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
