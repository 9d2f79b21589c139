package geometry

import "math"

// HeartSegments is the default outline resolution for HeartPoints.
const HeartSegments = 100

// sin(60°), the height factor of a pointy-side hexagon.
const sin60 = 0.8660254037844386

type Point struct {
	X, Y float64
}

// HexagonPoints returns the 6 vertices of a regular hexagon around center,
// vertex i at angle rotation + i*60°. Consecutive vertices together with
// the center form the triangle fan that fills the shape.
func HexagonPoints(center Point, radius, rotation float64) []Point {
	pts := make([]Point, 6)
	for i := range pts {
		angle := rotation + float64(i)*60.0*math.Pi/180.0
		pts[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}

// HeartPoints returns segments+1 vertices tracing the parametric heart
//
//	x(t) = 16 sin³t
//	y(t) = -(13 cos t - 5 cos 2t - 2 cos 3t - cos 4t)
//
// for t in [0, 2π], scaled by size/20 and translated to center. The first
// and last vertex coincide, closing the loop. The curve is star-shaped
// around its center, so a fan from center fills it correctly.
func HeartPoints(center Point, size float64, segments int) []Point {
	pts := make([]Point, 0, segments+1)
	scale := size / 20.0
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments) * 2.0 * math.Pi

		s := math.Sin(t)
		hx := 16.0 * s * s * s
		hy := -(13.0*math.Cos(t) - 5.0*math.Cos(2.0*t) - 2.0*math.Cos(3.0*t) - math.Cos(4.0*t))

		pts = append(pts, Point{
			X: center.X + hx*scale,
			Y: center.Y + hy*scale,
		})
	}
	return pts
}

// BuildGrid returns the cell centers of a brick-offset hex tiling covering
// a width x height viewport at the given cell radius. Rows are spaced
// 2·radius·sin60 apart vertically and 3·radius horizontally; every row
// position also emits a twin center shifted by (1.5·radius, half a row),
// which produces the interlocking pattern. Counts are padded by two per
// axis so the tiling runs slightly past the viewport edges.
func BuildGrid(radius, width, height float64) []Point {
	rowHeight := 2.0 * radius * sin60
	cols := int(math.Ceil(width/(radius*2.0))) + 2
	rows := int(math.Ceil(height/(radius*2.0))) + 2

	centers := make([]Point, 0, 2*rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float64(col) * radius * 3.0
			y := float64(row) * rowHeight
			centers = append(centers, Point{X: x, Y: y})
			centers = append(centers, Point{X: x + radius*1.5, Y: y + rowHeight*0.5})
		}
	}
	return centers
}
