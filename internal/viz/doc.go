// Package viz runs the wave animation as a Bubble Tea program.
//
// The [Model] drives the same [anim.Driver] clock as the plain terminal
// loop but renders through lipgloss, colouring each glyph by density
// using one of the built-in themes.
//
// # Key Bindings
//
//	q, Esc, Ctrl+C - Quit
package viz
