package svgdoc

// This file defines the basic geometry value types

// Point is a position or an offset in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dimensions is a width and height pair. Negative values are not
// rejected, they simply serialize as given.
type Dimensions struct {
	Width, Height float64
}

// Dim is shorthand for Dimensions{w, h}.
func Dim(w, h float64) Dimensions { return Dimensions{Width: w, Height: h} }

// MinPoint returns the componentwise minimum of the points.
// ok is false when the slice is empty, in which case min must not be used.
func MinPoint(points []Point) (min Point, ok bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	min = points[0]
	for _, p := range points {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
	}
	return min, true
}

// MaxPoint returns the componentwise maximum of the points.
// ok is false when the slice is empty, in which case max must not be used.
func MaxPoint(points []Point) (max Point, ok bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	max = points[0]
	for _, p := range points {
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return max, true
}

func offsetPoints(points []Point, delta Point) {
	for i := range points {
		points[i].X += delta.X
		points[i].Y += delta.Y
	}
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
