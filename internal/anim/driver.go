package anim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/san-kum/asciiwave/internal/config"
	"github.com/san-kum/asciiwave/internal/wave"
)

// Frame is everything a renderer needs to display one tick.
type Frame struct {
	Grid     wave.Grid
	Kind     wave.Kind
	Title    string
	Number   int // 1-based frame number within the current pattern
	Pattern  int // 1-based pattern position in the cycle
	Patterns int
}

type Renderer interface {
	Banner() error
	Clear() error
	Draw(f Frame) error
	Farewell() error
}

// Sleeper pauses for d or until ctx is done, whichever comes first.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the default Sleeper backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type Driver struct {
	cfg      config.Config
	kinds    []wave.Kind
	palette  wave.Palette
	renderer Renderer
	sleep    Sleeper
	logger   *log.Logger
	state    State
}

type Option func(*Driver)

func WithSleeper(s Sleeper) Option { return func(d *Driver) { d.sleep = s } }

func WithLogger(l *log.Logger) Option { return func(d *Driver) { d.logger = l } }

// WithStart replaces the initial state, e.g. to begin on a later pattern.
func WithStart(s State) Option { return func(d *Driver) { d.state = s } }

// New builds a driver for cfg. The config is expected to be valid; pattern
// names that fail to resolve fall back to the built-in cycle. r may be nil
// when the caller only uses Frame and Step.
func New(cfg *config.Config, r Renderer, opts ...Option) *Driver {
	kinds, err := cfg.Kinds()
	if err != nil || len(kinds) == 0 {
		kinds = wave.Kinds()
	}
	d := &Driver{
		cfg:      *cfg,
		kinds:    kinds,
		palette:  cfg.GetPalette(),
		renderer: r,
		sleep:    Sleep,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.state.Pattern < 0 || d.state.Pattern >= len(d.kinds) {
		d.state.Pattern = 0
	}
	return d
}

func (d *Driver) State() State { return d.state }

func (d *Driver) Kind() wave.Kind { return d.kinds[d.state.Pattern] }

// Frame generates the frame for the current state without advancing it.
func (d *Driver) Frame() Frame {
	k := d.Kind()
	return Frame{
		Grid:     wave.GenerateWith(d.palette, d.cfg.Width, d.cfg.Height, d.state.Time, k),
		Kind:     k,
		Title:    k.Title(),
		Number:   d.state.Frame + 1,
		Pattern:  d.state.Pattern + 1,
		Patterns: len(d.kinds),
	}
}

// Tick renders the current frame, waits out the frame delay and advances
// the clock. A pattern switch adds the longer pattern pause.
func (d *Driver) Tick(ctx context.Context) error {
	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if err := d.renderer.Draw(d.Frame()); err != nil {
		return fmt.Errorf("draw frame %d: %w", d.state.Frame+1, err)
	}
	if err := d.sleep(ctx, d.cfg.FrameDelay.Duration); err != nil {
		return err
	}
	if d.Step() {
		return d.sleep(ctx, d.cfg.PatternPause.Duration)
	}
	return nil
}

// Step advances the clock by one tick without rendering or sleeping and
// reports whether the pattern changed.
func (d *Driver) Step() bool {
	if !d.state.Advance(d.cfg.TimeStep, d.cfg.FramesPerPattern, len(d.kinds)) {
		return false
	}
	d.logger.Printf("switching to %s at t=%.2f", d.Kind(), d.state.Time)
	return true
}

func (d *Driver) Config() config.Config { return d.cfg }

// Run shows the banner and ticks until ctx is cancelled. Cancellation is
// the normal way to stop and returns nil after the farewell is printed.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.renderer.Banner(); err != nil {
		return fmt.Errorf("banner: %w", err)
	}
	err := d.sleep(ctx, d.cfg.IntroPause.Duration)
	for err == nil {
		if err = ctx.Err(); err != nil {
			break
		}
		err = d.Tick(ctx)
	}
	if ctx.Err() == nil || !errors.Is(err, ctx.Err()) {
		return err
	}
	d.logger.Printf("stopped at t=%.2f pattern=%s frame=%d", d.state.Time, d.Kind(), d.state.Frame)
	return d.shutdown()
}

func (d *Driver) shutdown() error {
	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return d.renderer.Farewell()
}
