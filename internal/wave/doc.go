// Package wave generates ASCII wave patterns.
//
// Every frame is a pure function of grid size, time and pattern kind:
//
//   - [Kind]: one of the fixed wave formulas (Sine, Ripple, Plasma)
//   - [Palette]: ordered glyphs from sparse to dense
//   - [Grid]: rows of glyphs produced by [Generate]
//
// # Example
//
//	g := wave.Generate(80, 24, 0.15, wave.Ripple)
//	fmt.Println(g)
//
// Nothing is cached between calls, so identical inputs always produce
// identical grids.
package wave
