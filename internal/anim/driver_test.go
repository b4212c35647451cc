package anim_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciiwave/internal/anim"
	"github.com/san-kum/asciiwave/internal/config"
	"github.com/san-kum/asciiwave/internal/wave"
)

type recorder struct {
	banners   int
	clears    int
	farewells int
	frames    []anim.Frame
	drawErr   error
}

func (r *recorder) Banner() error { r.banners++; return nil }
func (r *recorder) Clear() error  { r.clears++; return nil }
func (r *recorder) Farewell() error {
	r.farewells++
	return nil
}

func (r *recorder) Draw(f anim.Frame) error {
	if r.drawErr != nil {
		return r.drawErr
	}
	r.frames = append(r.frames, f)
	return nil
}

// pauses records requested sleeps without blocking.
type pauses struct {
	calls []time.Duration
}

func (p *pauses) sleep(ctx context.Context, d time.Duration) error {
	p.calls = append(p.calls, d)
	return ctx.Err()
}

var _ = Describe("State", func() {
	It("starts at time zero on the first pattern", func() {
		var s anim.State
		Expect(s).To(Equal(anim.State{Time: 0, Pattern: 0, Frame: 0}))
	})

	It("switches pattern and resets the frame counter after 50 ticks", func() {
		var s anim.State
		for i := 0; i < 49; i++ {
			Expect(s.Advance(0.15, 50, 3)).To(BeFalse())
		}
		Expect(s.Frame).To(Equal(49))
		Expect(s.Advance(0.15, 50, 3)).To(BeTrue())
		Expect(s.Pattern).To(Equal(1))
		Expect(s.Frame).To(Equal(0))
		Expect(s.Time).To(BeNumerically("~", 50*0.15, 1e-9))
	})

	It("cycles back to the first pattern after 150 ticks", func() {
		var s anim.State
		switches := 0
		for i := 0; i < 150; i++ {
			if s.Advance(0.15, 50, 3) {
				switches++
			}
		}
		Expect(switches).To(Equal(3))
		Expect(s.Pattern).To(Equal(0))
		Expect(s.Frame).To(Equal(0))
	})

	It("keeps time strictly increasing", func() {
		var s anim.State
		prev := s.Time
		for i := 0; i < 200; i++ {
			s.Advance(0.15, 50, 3)
			Expect(s.Time).To(BeNumerically(">", prev))
			prev = s.Time
		}
	})
})

var _ = Describe("Driver", func() {
	var (
		cfg *config.Config
		rec *recorder
		p   *pauses
		ctx context.Context
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Width, cfg.Height = 12, 4
		rec = &recorder{}
		p = &pauses{}
		ctx = context.Background()
	})

	It("renders the current frame before advancing", func() {
		d := anim.New(cfg, rec, anim.WithSleeper(p.sleep))
		Expect(d.Tick(ctx)).To(Succeed())

		Expect(rec.frames).To(HaveLen(1))
		f := rec.frames[0]
		Expect(f.Kind).To(Equal(wave.Sine))
		Expect(f.Title).To(Equal("SINE WAVE INTERFERENCE"))
		Expect(f.Number).To(Equal(1))
		Expect(f.Pattern).To(Equal(1))
		Expect(f.Patterns).To(Equal(3))
		Expect(f.Grid.String()).To(Equal(wave.Generate(12, 4, 0, wave.Sine).String()))

		Expect(rec.clears).To(Equal(1))
		Expect(d.State().Frame).To(Equal(1))
		Expect(d.State().Time).To(BeNumerically("~", 0.15, 1e-12))
		Expect(p.calls).To(Equal([]time.Duration{50 * time.Millisecond}))
	})

	It("switches to Ripple after 50 ticks with a pattern pause", func() {
		d := anim.New(cfg, rec, anim.WithSleeper(p.sleep))
		for i := 0; i < 50; i++ {
			Expect(d.Tick(ctx)).To(Succeed())
		}

		Expect(d.State().Pattern).To(Equal(1))
		Expect(d.State().Frame).To(Equal(0))
		Expect(d.Kind()).To(Equal(wave.Ripple))
		Expect(p.calls).To(HaveLen(51))
		Expect(p.calls[50]).To(Equal(time.Second))
		Expect(rec.frames[49].Number).To(Equal(50))

		Expect(d.Tick(ctx)).To(Succeed())
		Expect(rec.frames[50].Kind).To(Equal(wave.Ripple))
		Expect(rec.frames[50].Number).To(Equal(1))
	})

	It("returns to Sine after 150 ticks", func() {
		d := anim.New(cfg, rec, anim.WithSleeper(p.sleep))
		seen := map[wave.Kind]bool{}
		for i := 0; i < 150; i++ {
			Expect(d.Tick(ctx)).To(Succeed())
			seen[rec.frames[i].Kind] = true
		}
		Expect(d.Kind()).To(Equal(wave.Sine))
		Expect(d.State().Frame).To(Equal(0))
		Expect(seen).To(HaveLen(3))
	})

	It("follows a configured pattern order and start", func() {
		cfg.Patterns = []string{"plasma", "sine"}
		d := anim.New(cfg, rec, anim.WithSleeper(p.sleep), anim.WithStart(anim.State{Pattern: 1}))
		Expect(d.Kind()).To(Equal(wave.Sine))
		Expect(d.Frame().Patterns).To(Equal(2))
	})

	It("ignores an out of range start pattern", func() {
		d := anim.New(cfg, rec, anim.WithStart(anim.State{Pattern: 7}))
		Expect(d.State().Pattern).To(Equal(0))
	})

	It("wraps renderer failures", func() {
		boom := errors.New("tty gone")
		rec.drawErr = boom
		d := anim.New(cfg, rec, anim.WithSleeper(p.sleep))

		err := d.Run(ctx)
		Expect(err).To(MatchError(boom))
		Expect(rec.farewells).To(BeZero())
	})

	Context("when the context is cancelled", func() {
		It("stops between frames and says goodbye", func() {
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()

			ticks := 0
			sleeper := func(c context.Context, d time.Duration) error {
				if d == cfg.FrameDelay.Duration {
					ticks++
					if ticks == 7 {
						cancel()
					}
				}
				return c.Err()
			}

			var logs bytes.Buffer
			d := anim.New(cfg, rec, anim.WithSleeper(sleeper), anim.WithLogger(log.New(&logs, "", 0)))
			Expect(d.Run(cctx)).To(Succeed())

			Expect(rec.banners).To(Equal(1))
			Expect(rec.frames).To(HaveLen(7))
			Expect(rec.farewells).To(Equal(1))
			Expect(logs.String()).To(ContainSubstring("stopped"))
		})

		It("exits during the intro pause without drawing", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			d := anim.New(cfg, rec, anim.WithSleeper(p.sleep))
			Expect(d.Run(cctx)).To(Succeed())
			Expect(rec.frames).To(BeEmpty())
			Expect(rec.farewells).To(Equal(1))
		})

		It("wakes the default sleeper promptly", func() {
			cctx, cancel := context.WithCancel(ctx)
			go func() {
				time.Sleep(10 * time.Millisecond)
				cancel()
			}()

			start := time.Now()
			err := anim.Sleep(cctx, time.Minute)
			Expect(err).To(MatchError(context.Canceled))
			Expect(time.Since(start)).To(BeNumerically("<", 5*time.Second))
		})
	})

	It("sleeps for the full duration when not cancelled", func() {
		Expect(anim.Sleep(ctx, time.Millisecond)).To(Succeed())
		Expect(anim.Sleep(ctx, 0)).To(Succeed())
	})
})
