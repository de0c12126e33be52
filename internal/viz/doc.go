// Package viz is the terminal host: it runs a gravity well simulation inside
// a Bubble Tea program, without a GPU.
//
//   - [Model]: the bubbletea model driving a loop.Session from terminal ticks
//   - [Canvas]: braille dot canvas, 2x4 dots per terminal cell
//   - [CanvasRenderer]: sim.FrameRenderer drawing particle trails and wells
//     onto a Canvas
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	B     - Toggle borders
//	K     - Toggle screen clearing
//	M     - Toggle per-well mass
//	C     - Clear particles
//	R     - Remove 250 particles
//	W     - Remove all wells
//	↑/↓   - Gravity well mass
//	←/→   - Trail scale
//	+/-   - Simulation speed
//	T     - Cycle color themes
//	?     - Show help
//
// The mouse works as in the GUI: left button spawns particles or drags a
// well, ctrl or alt with the left button spawns a well, and the right button
// removes one.
package viz
