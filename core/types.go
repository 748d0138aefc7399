// Package core contains the fundamental types used throughout the elbow
// routing engine.
package core

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate on the canvas.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns a compact representation for debugging and test output.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(p1, p2 Point) float64 {
	return math.Abs(p1.X-p2.X) + math.Abs(p1.Y-p2.Y)
}

// EuclideanDistance calculates the Euclidean distance between two points.
func EuclideanDistance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Direction represents a cardinal direction. The canvas is y-down, so North
// decreases Y and South increases it.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	// DirNone marks the absence of a direction, e.g. before the first step
	// of a search.
	DirNone
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Vector returns the unit step of the direction in canvas coordinates.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Horizontal reports whether the direction runs along the x axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// DirectionBetween returns the direction of the axis-aligned step from p1 to
// p2, or DirNone if the points coincide or are diagonal to each other.
func DirectionBetween(p1, p2 Point) Direction {
	if p1.X == p2.X {
		if p1.Y < p2.Y {
			return South
		} else if p1.Y > p2.Y {
			return North
		}
	} else if p1.Y == p2.Y {
		if p1.X < p2.X {
			return East
		}
		return West
	}
	return DirNone
}

// Anchor is a connector endpoint: a point plus the cardinal heading the
// connector should travel when leaving (or arriving at) it.
type Anchor struct {
	Point   Point
	Heading Direction
}

// Obstacle is an axis-aligned box the route must avoid, expanded by Padding
// on every side for clearance.
type Obstacle struct {
	Box     Rect
	Padding float64
}

// PaddedBox returns the obstacle's box inflated by its padding.
func (o Obstacle) PaddedBox() Rect {
	return o.Box.Inflate(o.Padding)
}

// Path represents a route through the canvas.
type Path struct {
	Points []Point
	Cost   float64 // Accumulated cost reported by the search
}

// Length returns the number of points in the path.
func (p Path) Length() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}
