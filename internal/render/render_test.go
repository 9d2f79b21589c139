package render

import (
	"testing"

	"github.com/mkarren/pulsetile/internal/geometry"
	"github.com/mkarren/pulsetile/internal/scene"
)

func TestFanPoints(t *testing.T) {
	center := geometry.Point{X: 10, Y: 20}
	outline := []geometry.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

	pts := FanPoints(center, outline)

	if len(pts) != 4 {
		t.Fatalf("expected 4 fan points, got %d", len(pts))
	}
	if pts[0].X != 10 || pts[0].Y != 20 {
		t.Errorf("expected center first, got (%f, %f)", pts[0].X, pts[0].Y)
	}
	// Outline reversed for counterclockwise winding.
	if pts[1].X != -1 || pts[3].X != 1 {
		t.Errorf("expected reversed outline, got %v", pts[1:])
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in      scene.Color
		opacity float64
		r, g, b uint8
		a       uint8
	}{
		{scene.Color{R: 0, G: 0, B: 0}, 0, 0, 0, 0, 0},
		{scene.Color{R: 1, G: 1, B: 1}, 1, 255, 255, 255, 255},
		{scene.Color{R: 0.5, G: 0.25, B: 0.75}, 0.5, 128, 64, 191, 128},
		{scene.Color{R: -0.1, G: 1.2, B: 0.5}, 2, 0, 255, 128, 255},
	}

	for _, tt := range tests {
		got := ToRGBA(tt.in, tt.opacity)
		if got.R != tt.r || got.G != tt.g || got.B != tt.b || got.A != tt.a {
			t.Errorf("%v @ %f: expected (%d %d %d %d), got (%d %d %d %d)",
				tt.in, tt.opacity, tt.r, tt.g, tt.b, tt.a, got.R, got.G, got.B, got.A)
		}
	}
}
