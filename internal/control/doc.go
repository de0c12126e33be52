// Package control maps raw pointer input onto simulation commands.
//
// The host feeds [Pointer] with button presses, moves and releases in canvas
// coordinates. Pointer decides what each press means:
//
//   - ctrl + left press: spawn a gravity well
//   - left press on a well: select it and start dragging
//   - left press elsewhere: start spawning particles at the pointer
//   - right press: remove the well under the pointer
//   - left release: stop spawning, end any drag and release the selection
//
// Particle spawning itself is left to the host loop, which checks
// [Pointer.Spawning] once per tick.
package control
