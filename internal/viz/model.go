package viz

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/asciiwave/internal/anim"
	"github.com/san-kum/asciiwave/internal/config"
)

type TickMsg time.Time

type introDoneMsg struct{}

// Model is the Bubble Tea model for the animation.
type Model struct {
	driver   *anim.Driver
	cfg      config.Config
	styles   styles
	intro    bool
	quitting bool
	width    int
	height   int
}

func NewModel(d *anim.Driver, theme Theme) Model {
	cfg := d.Config()
	return Model{
		driver: d,
		cfg:    cfg,
		styles: newStyles(theme, cfg.GetPalette()),
		intro:  cfg.IntroPause.Duration > 0,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.intro {
		return tea.Tick(m.cfg.IntroPause.Duration, func(time.Time) tea.Msg { return introDoneMsg{} })
	}
	return tick(m.cfg.FrameDelay.Duration)
}

// Update quits on q, esc or ctrl+c and advances the clock on every tick.
// A pattern switch delays the next tick by the pattern pause.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case introDoneMsg:
		m.intro = false
		return m, tick(m.cfg.FrameDelay.Duration)
	case TickMsg:
		if m.quitting || m.intro {
			return m, nil
		}
		if m.driver.Step() {
			return m, tick(m.cfg.PatternPause.Duration)
		}
		return m, tick(m.cfg.FrameDelay.Duration)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "\n" + m.styles.title.Render(anim.FarewellText) + "\n\n"
	}
	if m.intro {
		return fmt.Sprintf("\n%s\n\n%s\n%s\n",
			m.styles.title.Render(anim.BannerText),
			m.styles.status.Render(anim.Tagline),
			m.styles.hint.Render(anim.ExitHint))
	}

	f := m.driver.Frame()
	w := f.Grid.Width()
	border := m.styles.border.Render(strings.Repeat("=", w))

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(m.styles.title.Render(anim.Center(f.Title, w)) + "\n")
	b.WriteString(border + "\n\n")
	for _, row := range f.Grid {
		b.WriteString(m.styles.renderRow(row) + "\n")
	}
	b.WriteString("\n" + border + "\n\n")
	b.WriteString(m.styles.status.Render(fmt.Sprintf("Frame: %d | Pattern %d/%d", f.Number, f.Pattern, f.Patterns)) + "\n")
	b.WriteString(m.styles.hint.Render("Press q or Ctrl+C to exit"))

	out := b.String()
	if m.width > 0 && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// Run starts the Bubble Tea program on the alternate screen. The alternate
// screen is discarded on exit, so the farewell is written to out afterwards.
func Run(d *anim.Driver, theme Theme, out io.Writer, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(d, theme), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	_, err := fmt.Fprintf(out, "\n%s\n\n", anim.FarewellText)
	return err
}
