// Package geometry provides the pure point math behind the tiling:
//
//   - [HexagonPoints]: regular hexagon outline for triangle-fan filling
//   - [HeartPoints]: closed parametric heart outline
//   - [BuildGrid]: brick-offset hex grid of cell centers for a viewport
//
// All functions are deterministic and allocation-only; nothing here
// touches the window or the clock.
package geometry
