package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mkarren/pulsetile/internal/geometry"
)

// phaseFor picks a phase so that sin(t*speed + phase) == raw at t=0.
func phaseFor(raw float64) float64 {
	return math.Asin(raw)
}

func TestVisibilityBelowThreshold(t *testing.T) {
	for _, threshold := range []float64{0, 0.25, 0.5, 0.9, 1.0} {
		for _, raw := range []float64{-1, -0.5, 0, threshold - 0.01, threshold} {
			if raw > threshold {
				continue
			}
			got := Visibility(0, phaseFor(raw), threshold)
			if got != 0 {
				t.Errorf("threshold %f, raw %f: expected opacity 0, got %f", threshold, raw, got)
			}
		}
	}
}

func TestVisibilityAboveThreshold(t *testing.T) {
	threshold := 0.5
	prev := 0.0
	for raw := 0.51; raw <= 1.0; raw += 0.01 {
		got := Visibility(0, phaseFor(raw), threshold)
		if got <= 0 || got > 1 {
			t.Errorf("raw %f: opacity %f out of (0, 1]", raw, got)
		}
		if got <= prev {
			t.Errorf("raw %f: opacity %f not increasing (prev %f)", raw, got, prev)
		}
		prev = got
	}
}

func TestVisibilityPeak(t *testing.T) {
	for _, threshold := range []float64{0, 0.3, 0.99} {
		got := Visibility(0, math.Pi/2, threshold)
		if math.Abs(got-1) > 1e-9 {
			t.Errorf("threshold %f: expected opacity 1 at sine peak, got %f", threshold, got)
		}
	}

	if got := Visibility(0, math.Pi/2, 1.0); got != 0 {
		t.Errorf("threshold 1 should never show, got opacity %f", got)
	}
}

func TestVisibilityPhaseSpeed(t *testing.T) {
	// At threshold 0 the wave runs at 10 rad/s, so t=π/20 puts a
	// zero-phase cell exactly at the sine peak.
	got := Visibility(math.Pi/20, 0, 0)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("expected peak opacity at t=π/20, got %f", got)
	}
}

func TestBlendColorEndpoints(t *testing.T) {
	c := Cell{
		Color:     Color{R: 0.1, G: 0.2, B: 0.3},
		NextColor: Color{R: 0.9, G: 0.8, B: 0.7},
	}

	if got := c.BlendColor(); got != c.Color {
		t.Errorf("at progress 0 expected settled color %v, got %v", c.Color, got)
	}

	c.Progress = 0.999999
	got := c.BlendColor()
	if math.Abs(got.R-c.NextColor.R) > 1e-5 ||
		math.Abs(got.G-c.NextColor.G) > 1e-5 ||
		math.Abs(got.B-c.NextColor.B) > 1e-5 {
		t.Errorf("near progress 1 expected ~%v, got %v", c.NextColor, got)
	}
}

func TestBlendColorMidpoint(t *testing.T) {
	c := Cell{
		Color:     Color{R: 0.0, G: 0.2, B: 1.0},
		NextColor: Color{R: 1.0, G: 0.6, B: 0.0},
		Progress:  0.5,
	}

	got := c.BlendColor()
	want := Color{R: 0.5, G: 0.4, B: 0.5}
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
		t.Errorf("expected midpoint %v, got %v", want, got)
	}
}

func TestUpdateCommitsOnCrossing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCell(geometry.Point{}, 40, rng, UniformColor)
	target := c.NextColor

	// rate 0.3/s: 34 steps of dt=0.1 cross progress 1.
	for i := 0; i < 34; i++ {
		c.Update(0.1, rng, UniformColor)
	}

	if c.Color != target {
		t.Errorf("expected settled color %v after crossing, got %v", target, c.Color)
	}
	if c.NextColor == target {
		t.Error("expected a fresh target color after crossing")
	}
	if c.Progress < 0 || c.Progress >= 0.1*TransitionRate {
		t.Errorf("expected progress reset near 0, got %f", c.Progress)
	}
}

func TestUpdateKeepsChannelsInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewCell(geometry.Point{}, 40, rng, UniformColor)

	for i := 0; i < 500; i++ {
		c.Update(0.05, rng, UniformColor)
		blend := c.BlendColor()
		for _, ch := range []float64{blend.R, blend.G, blend.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("channel %f out of [0,1] at step %d", ch, i)
			}
		}
	}
}

func TestNewCellPhaseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		c := NewCell(geometry.Point{}, 40, rng, UniformColor)
		if c.PhaseOffset < 0 || c.PhaseOffset >= 2*math.Pi {
			t.Fatalf("phase %f out of [0, 2π)", c.PhaseOffset)
		}
		if c.Progress != 0 {
			t.Fatalf("expected progress 0 at creation, got %f", c.Progress)
		}
	}
}

func TestPaletteSourceFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, name := range []string{"uniform", "happy", "warm", "nonsense", ""} {
		src := PaletteSource(name)
		c := src(rng)
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Errorf("palette %q: channel %f out of [0,1]", name, ch)
			}
		}
	}
}
