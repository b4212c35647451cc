package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/asciiwave/internal/anim"
	"github.com/san-kum/asciiwave/internal/config"
	"github.com/san-kum/asciiwave/internal/viz"
	"github.com/san-kum/asciiwave/internal/wave"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	start      string
	logFile    string
	theme      string
	frameTime  float64
	width      int
	height     int
	row        int
)

// main registers the asciiwave commands and runs the plain terminal
// animation when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "asciiwave",
		Short:        "animated ASCII wave patterns",
		SilenceUsage: true,
		RunE:         runAnimation,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&start, "start", "", "pattern to start with")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write debug log to file")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the animation as a full-screen TUI",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", viz.ThemeOcean.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	frameCmd := &cobra.Command{
		Use:   "frame [pattern]",
		Short: "print a single frame",
		Args:  cobra.ExactArgs(1),
		RunE:  printFrame,
	}
	frameCmd.Flags().Float64Var(&frameTime, "time", 0, "time offset")
	frameCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width (overrides config)")
	frameCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height (overrides config)")

	profileCmd := &cobra.Command{
		Use:   "profile [pattern]",
		Short: "plot the wave values along one row",
		Args:  cobra.ExactArgs(1),
		RunE:  plotProfile,
	}
	profileCmd.Flags().Float64Var(&frameTime, "time", 0, "time offset")
	profileCmd.Flags().IntVar(&row, "row", config.DefaultHeight/2, "grid row to sample")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list patterns in cycle order",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range wave.Kinds() {
				fmt.Printf("  %-8s %s\n", k, k.Title())
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the active configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, frameCmd, profileCmd, patternsCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, preset and config file, in that order.
// The config file only overrides the keys it sets.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// patternPosition finds k in the configured cycle.
func patternPosition(cfg *config.Config, k wave.Kind) (int, error) {
	kinds, err := cfg.Kinds()
	if err != nil {
		return 0, err
	}
	for i, ck := range kinds {
		if ck == k {
			return i, nil
		}
	}
	return 0, fmt.Errorf("pattern %s is not in the configured cycle %v", k, cfg.Patterns)
}

func openLogger() (*log.Logger, func(), error) {
	if logFile == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "asciiwave: ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

func newDriver(r anim.Renderer) (*anim.Driver, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := openLogger()
	if err != nil {
		return nil, nil, err
	}

	opts := []anim.Option{anim.WithLogger(logger)}
	if start != "" {
		k, err := wave.ParseKind(start)
		if err != nil {
			closeLog()
			return nil, nil, err
		}
		pos, err := patternPosition(cfg, k)
		if err != nil {
			closeLog()
			return nil, nil, err
		}
		opts = append(opts, anim.WithStart(anim.State{Pattern: pos}))
	}

	logger.Printf("starting %dx%d patterns=%v", cfg.Width, cfg.Height, cfg.Patterns)
	return anim.New(cfg, r, opts...), closeLog, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	t := anim.NewTerminal(os.Stdout)
	d, closeLog, err := newDriver(t)
	if err != nil {
		return err
	}
	defer closeLog()
	defer t.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.Run(ctx)
}

func runTUI(cmd *cobra.Command, args []string) error {
	d, closeLog, err := newDriver(nil)
	if err != nil {
		return err
	}
	defer closeLog()
	return viz.Run(d, viz.GetTheme(theme), os.Stdout)
}

func printFrame(cmd *cobra.Command, args []string) error {
	k, err := wave.ParseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	f, err := buildFrame(cfg, k, frameTime)
	if err != nil {
		return err
	}
	fmt.Print(anim.FormatFrame(f))
	return nil
}

// buildFrame renders k at time t using cfg's size, palette and cycle.
func buildFrame(cfg *config.Config, k wave.Kind, t float64) (anim.Frame, error) {
	if err := cfg.Validate(); err != nil {
		return anim.Frame{}, err
	}
	pos, err := patternPosition(cfg, k)
	if err != nil {
		return anim.Frame{}, err
	}
	return anim.Frame{
		Grid:     wave.GenerateWith(cfg.GetPalette(), cfg.Width, cfg.Height, t, k),
		Kind:     k,
		Title:    k.Title(),
		Number:   1,
		Pattern:  pos + 1,
		Patterns: len(cfg.Patterns),
	}, nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	k, err := wave.ParseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Println(renderProfile(cfg, k, row, frameTime))
	return nil
}

// renderProfile plots one row of k. Out-of-range rows are clamped before
// sampling so the caption names the row actually shown.
func renderProfile(cfg *config.Config, k wave.Kind, row int, t float64) string {
	r := wave.ClampRow(cfg.Height, row)
	return asciigraph.Plot(wave.Profile(cfg.Width, cfg.Height, r, t, k),
		asciigraph.Height(10),
		asciigraph.Width(cfg.Width),
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.Caption(fmt.Sprintf("%s row %d at t=%.2f", k.Title(), r, t)),
	)
}
