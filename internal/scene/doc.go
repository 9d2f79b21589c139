// Package scene holds the per-cell animation state machine and the grid
// scene built from it:
//
//   - [Cell]: one grid position's color crossfade and pulse phase
//   - [Visibility]: the thresholded sine gate that turns cells on and off
//   - [Scene]: all cells for a viewport, advanced once per frame
//   - [ColorSource]: pluggable random color generator (uniform or palette)
//
// Randomness and time are explicit inputs so tests can seed them; nothing
// in this package reads the global clock or global rand except the
// go-colorful palette generators.
package scene
