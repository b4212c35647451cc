package anim

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	BannerText   = "🌊 ASCII WAVE PATTERN ANIMATOR 🌊"
	Tagline      = "Watch the mesmerizing patterns flow!"
	ExitHint     = "Press Ctrl+C to exit"
	FarewellText = "✨ Thanks for watching the waves! ✨"
)

// Center pads s with spaces to width display cells, putting the odd
// space on the left when both the margin and the width are odd.
func Center(s string, width int) string {
	n := runewidth.StringWidth(s)
	if width <= n {
		return s
	}
	margin := width - n
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

// FormatFrame lays out a frame as bordered text followed by a status line.
func FormatFrame(f Frame) string {
	w := f.Grid.Width()
	border := strings.Repeat("=", w)

	var b strings.Builder
	b.WriteString("\n" + border + "\n")
	b.WriteString(Center(f.Title, w) + "\n")
	b.WriteString(border + "\n\n")
	for _, row := range f.Grid {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString("\n" + border + "\n")
	fmt.Fprintf(&b, "\nFrame: %d | Pattern %d/%d\n", f.Number, f.Pattern, f.Patterns)
	b.WriteString(ExitHint + "\n")
	return b.String()
}

// Terminal renders frames as plain text. Escape sequences are only
// emitted when the output is an interactive terminal.
type Terminal struct {
	w      io.Writer
	tty    bool
	hidden bool
}

func NewTerminal(w io.Writer) *Terminal {
	t := &Terminal{w: w}
	if f, ok := w.(*os.File); ok {
		t.tty = term.IsTerminal(int(f.Fd()))
	}
	return t
}

func (t *Terminal) IsTTY() bool { return t.tty }

func (t *Terminal) Banner() error {
	_, err := fmt.Fprintf(t.w, "\n%s\n\n%s\n%s\n\n", BannerText, Tagline, ExitHint)
	return err
}

func (t *Terminal) Clear() error {
	if !t.tty {
		return nil
	}
	_, err := io.WriteString(t.w, clearScreen+hideCursor)
	t.hidden = true
	return err
}

// Restore shows the cursor again if Clear hid it. It is safe to call
// more than once and should be deferred by whoever owns the terminal.
func (t *Terminal) Restore() error {
	if !t.hidden {
		return nil
	}
	t.hidden = false
	_, err := io.WriteString(t.w, showCursor)
	return err
}

func (t *Terminal) Draw(f Frame) error {
	_, err := io.WriteString(t.w, FormatFrame(f))
	return err
}

func (t *Terminal) Farewell() error {
	if err := t.Restore(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.w, "\n%s\n\n", FarewellText)
	return err
}
