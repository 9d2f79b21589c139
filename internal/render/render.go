// Package render is the boundary between the animation core and raylib:
// it picks the outline for the configured shape, gates cells on the pulse
// opacity, and emits the triangle fan that fills them.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/mkarren/pulsetile/internal/config"
	"github.com/mkarren/pulsetile/internal/geometry"
	"github.com/mkarren/pulsetile/internal/scene"
)

// OpacityFloor is the alpha below which a cell is skipped entirely. A
// render-cost cutoff, not part of the visibility contract.
const OpacityFloor = 0.01

// Scene draws every visible cell of s with the given shape and threshold.
func Scene(s *scene.Scene, shape config.Shape, threshold float64) {
	for i := range s.Cells {
		Cell(&s.Cells[i], shape, s.Time, threshold)
	}
}

// Cell draws one cell at elapsed time t, or nothing when its pulse
// opacity is at or below the floor.
func Cell(c *scene.Cell, shape config.Shape, t, threshold float64) {
	opacity := c.Opacity(t, threshold)
	if opacity <= OpacityFloor {
		return
	}

	var outline []geometry.Point
	switch shape {
	case config.ShapeHeart:
		outline = geometry.HeartPoints(c.Pos, c.Radius, geometry.HeartSegments)
	default:
		outline = geometry.HexagonPoints(c.Pos, c.Radius, 0)
		outline = append(outline, outline[0])
	}

	rl.DrawTriangleFan(FanPoints(c.Pos, outline), ToRGBA(c.BlendColor(), opacity))
}

// FanPoints assembles the raylib triangle-fan vertex list: the center
// first, then the outline. The outline is walked backwards because the
// generators emit it in increasing-angle order, which is clockwise in
// screen coordinates, and raylib only fills counterclockwise fans.
func FanPoints(center geometry.Point, outline []geometry.Point) []rl.Vector2 {
	pts := make([]rl.Vector2, 0, len(outline)+1)
	pts = append(pts, rl.NewVector2(float32(center.X), float32(center.Y)))
	for i := len(outline) - 1; i >= 0; i-- {
		pts = append(pts, rl.NewVector2(float32(outline[i].X), float32(outline[i].Y)))
	}
	return pts
}

// ToRGBA converts the core's [0,1] float channels plus a pulse opacity to
// an 8-bit raylib color.
func ToRGBA(c scene.Color, opacity float64) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(opacity))
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
