// Package viz draws gauges in the terminal.
//
//   - [Canvas]: braille dot canvas that plots scene outlines
//   - [Model]: Bubble Tea program that moves the needle interactively
//   - [RenderSweep]: asciigraph plot of the needle across a range
//
// # Key Bindings
//
//	↑/↓   - Move the value by 1/40 of the range
//	PgUp  - Move five steps
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
//
// The dial is painted in the threshold color of the current value, so the
// braille art changes color as the needle crosses bands.
package viz
