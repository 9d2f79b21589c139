package scene

import (
	"math"
	"math/rand"

	"github.com/mkarren/pulsetile/internal/geometry"
)

// TransitionRate is the color crossfade speed in progress units per
// second; a full crossfade takes 1/TransitionRate seconds.
const TransitionRate = 0.3

// Color is an RGB triple with each channel in [0, 1]. Alpha is derived
// per frame from the pulse and never stored.
type Color struct {
	R, G, B float64
}

// Cell is one grid position. Pos and Radius are fixed at creation; Color
// crossfades toward NextColor as Progress runs from 0 to 1, and
// PhaseOffset decorrelates this cell's pulse from its neighbors.
type Cell struct {
	Pos         geometry.Point
	Radius      float64
	Color       Color
	NextColor   Color
	Progress    float64
	PhaseOffset float64
}

// NewCell seeds a cell at pos with two colors drawn from src and a random
// phase in [0, 2π).
func NewCell(pos geometry.Point, radius float64, rng *rand.Rand, src ColorSource) Cell {
	return Cell{
		Pos:         pos,
		Radius:      radius,
		Color:       src(rng),
		NextColor:   src(rng),
		PhaseOffset: rng.Float64() * 2 * math.Pi,
	}
}

// Update advances the crossfade. On crossing 1, NextColor becomes the
// settled color, a fresh target is drawn from src, and Progress resets.
func (c *Cell) Update(dt float64, rng *rand.Rand, src ColorSource) {
	c.Progress += dt * TransitionRate

	if c.Progress >= 1.0 {
		c.Color = c.NextColor
		c.NextColor = src(rng)
		c.Progress = 0.0
	}
}

// BlendColor returns the draw color, interpolated per channel between the
// settled color and the upcoming target.
func (c *Cell) BlendColor() Color {
	return Color{
		R: c.Color.R + (c.NextColor.R-c.Color.R)*c.Progress,
		G: c.Color.G + (c.NextColor.G-c.Color.G)*c.Progress,
		B: c.Color.B + (c.NextColor.B-c.Color.B)*c.Progress,
	}
}

// Opacity returns this cell's pulse opacity at elapsed time t.
func (c *Cell) Opacity(t, threshold float64) float64 {
	return Visibility(t, c.PhaseOffset, threshold)
}

// Visibility maps elapsed time and a cell's phase to an opacity in [0, 1].
// The sine raw value must clear threshold for the cell to show at all;
// above it, opacity ramps as the square of the normalized overshoot, so
// visible time is biased toward brief pulses near the sine peak. The wave
// speed scales with (1-threshold): thresholds near 1 give rare, sharp,
// fast pulses.
func Visibility(t, phase, threshold float64) float64 {
	if threshold >= 1 {
		return 0
	}

	phaseSpeed := (1 - threshold) * 10
	raw := math.Sin(t*phaseSpeed + phase)
	if raw <= threshold {
		return 0
	}

	n := (raw - threshold) / (1 - threshold)
	return n * n
}
