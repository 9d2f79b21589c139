package scene

import (
	"math/rand"

	"github.com/mkarren/pulsetile/internal/geometry"
)

// Scene owns every cell of one session. Cells are created once from the
// grid layout and live for the whole session; the viewport is assumed
// fixed, so the grid is never rebuilt.
type Scene struct {
	Cells []Cell
	Time  float64

	src ColorSource
}

// New lays out a grid for a width x height viewport and seeds one cell
// per center.
func New(width, height, radius float64, rng *rand.Rand, src ColorSource) *Scene {
	centers := geometry.BuildGrid(radius, width, height)

	s := &Scene{
		Cells: make([]Cell, 0, len(centers)),
		src:   src,
	}
	for _, c := range centers {
		s.Cells = append(s.Cells, NewCell(c, radius, rng, src))
	}
	return s
}

// Advance moves the clock forward and steps every cell's crossfade. Cells
// share no state, so update order does not matter.
func (s *Scene) Advance(dt float64, rng *rand.Rand) {
	s.Time += dt
	for i := range s.Cells {
		s.Cells[i].Update(dt, rng, s.src)
	}
}
