package anim

import "io"

// NewTTYTerminal builds a Terminal that behaves as if attached to a tty.
func NewTTYTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, tty: true}
}
