package core

import "math"

// Rect is an axis-aligned rectangle described by two corners. Well-formed
// rects have X0 <= X1 and Y0 <= Y1; NewRect normalizes its arguments.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect returns the rectangle spanning the two given corner points,
// normalized so that width and height are non-negative.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: 0.5 * (r.X0 + r.X1), Y: 0.5 * (r.Y0 + r.Y1)}
}

// Contains reports whether p lies inside the rectangle or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// ContainsInterior reports whether p lies strictly inside the rectangle.
func (r Rect) ContainsInterior(p Point) bool {
	return p.X > r.X0 && p.X < r.X1 && p.Y > r.Y0 && p.Y < r.Y1
}

// Inflate grows the rectangle by d on every side. A negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X0: r.X0 - d, Y0: r.Y0 - d, X1: r.X1 + d, Y1: r.Y1 + d}
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// Intersects reports whether the interiors of r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Gap returns the axis-aligned distance between r and o, or 0 when they
// touch or overlap.
func (r Rect) Gap(o Rect) float64 {
	dx := math.Max(math.Max(r.X0-o.X1, o.X0-r.X1), 0)
	dy := math.Max(math.Max(r.Y0-o.Y1, o.Y0-r.Y1), 0)
	return math.Max(dx, dy)
}

// IsDegenerate reports whether the rectangle has zero or negative area, or a
// non-finite coordinate.
func (r Rect) IsDegenerate() bool {
	for _, v := range [4]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// SegmentCrossesRect reports whether the axis-aligned segment from a to b
// passes through the interior of r. A segment running along the boundary
// does not cross.
func SegmentCrossesRect(a, b Point, r Rect) bool {
	if a.Y == b.Y {
		y := a.Y
		if y <= r.Y0 || y >= r.Y1 {
			return false
		}
		minX := math.Min(a.X, b.X)
		maxX := math.Max(a.X, b.X)
		return minX < r.X1 && maxX > r.X0
	}
	if a.X == b.X {
		x := a.X
		if x <= r.X0 || x >= r.X1 {
			return false
		}
		minY := math.Min(a.Y, b.Y)
		maxY := math.Max(a.Y, b.Y)
		return minY < r.Y1 && maxY > r.Y0
	}
	return false
}
