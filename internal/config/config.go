package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/san-kum/asciiwave/internal/wave"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth            = 80
	DefaultHeight           = 24
	DefaultFramesPerPattern = 50
	DefaultFrameDelay       = 50 * time.Millisecond
	DefaultPatternPause     = time.Second
	DefaultIntroPause       = 2 * time.Second
	DefaultTimeStep         = 0.15
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width            int      `yaml:"width"`
	Height           int      `yaml:"height"`
	FramesPerPattern int      `yaml:"frames_per_pattern"`
	FrameDelay       Duration `yaml:"frame_delay"`
	PatternPause     Duration `yaml:"pattern_pause"`
	IntroPause       Duration `yaml:"intro_pause"`
	TimeStep         float64  `yaml:"time_step"`
	Patterns         []string `yaml:"patterns"`
	Palette          string   `yaml:"palette"`
}

// Duration wraps time.Duration for YAML values like "50ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

func DefaultConfig() *Config {
	kinds := wave.Kinds()
	patterns := make([]string, len(kinds))
	for i, k := range kinds {
		patterns[i] = k.String()
	}
	return &Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		FramesPerPattern: DefaultFramesPerPattern,
		FrameDelay:       Duration{DefaultFrameDelay},
		PatternPause:     Duration{DefaultPatternPause},
		IntroPause:       Duration{DefaultIntroPause},
		TimeStep:         DefaultTimeStep,
		Patterns:         patterns,
		Palette:          string(wave.DefaultPalette),
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over base, so keys missing from the file keep
// base's values. base is not modified.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Clone() *Config {
	cfg := *c
	cfg.Patterns = append([]string(nil), c.Patterns...)
	return &cfg
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.FramesPerPattern <= 0:
		return fmt.Errorf("%w: frames_per_pattern must be positive, got %d", ErrInvalidConfig, c.FramesPerPattern)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time_step must be positive, got %f", ErrInvalidConfig, c.TimeStep)
	case c.FrameDelay.Duration < 0, c.PatternPause.Duration < 0, c.IntroPause.Duration < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	case len(c.Patterns) == 0:
		return fmt.Errorf("%w: at least one pattern is required", ErrInvalidConfig)
	case wave.Palette(c.Palette).Len() < 2:
		return fmt.Errorf("%w: palette needs at least two glyphs, got %q", ErrInvalidConfig, c.Palette)
	}
	// Every glyph must fill exactly one cell or rows lose alignment.
	for _, r := range c.Palette {
		if !unicode.IsPrint(r) || runewidth.RuneWidth(r) != 1 {
			return fmt.Errorf("%w: palette glyph %q is not a single-cell printable character", ErrInvalidConfig, r)
		}
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Kinds resolves the configured pattern names in cycle order.
func (c *Config) Kinds() ([]wave.Kind, error) {
	kinds := make([]wave.Kind, 0, len(c.Patterns))
	for _, name := range c.Patterns {
		k, err := wave.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (c *Config) GetPalette() wave.Palette {
	if c.Palette == "" {
		return wave.DefaultPalette
	}
	return wave.Palette(c.Palette)
}
