// Package grid builds the sparse routing lattice and resolves which parts of
// it are blocked by obstacles.
package grid

import (
	"sort"

	"elbow/core"
)

// coordEpsilon is the tolerance used when de-duplicating and locating lattice
// coordinates.
const coordEpsilon = 1e-9

// NodeID identifies a lattice node as row*Cols+col. IDs are computed on
// demand; nodes are never enumerated in bulk.
type NodeID int32

// Lattice is the non-uniform routing grid: two sorted, de-duplicated
// coordinate sequences whose cross product forms the candidate bend points.
type Lattice struct {
	Xs, Ys []float64
}

// Build derives the candidate coordinates for a routing request. Each axis
// collects: the padded edges and the midpoint of every obstacle, each anchor
// coordinate, and the anchor's heading-ray ("antenna") coordinate extruded by
// margin. The result is sorted and de-duplicated per axis.
func Build(start, end core.Anchor, obstacles []core.Obstacle, margin float64) *Lattice {
	xs := make([]float64, 0, 16)
	ys := make([]float64, 0, 16)

	for _, o := range obstacles {
		padded := o.PaddedBox()
		xs = append(xs, padded.X0, padded.X1, o.Box.Center().X)
		ys = append(ys, padded.Y0, padded.Y1, o.Box.Center().Y)
	}

	for _, a := range []core.Anchor{start, end} {
		xs = append(xs, a.Point.X)
		ys = append(ys, a.Point.Y)
		dx, dy := a.Heading.Vector()
		if dx != 0 {
			xs = append(xs, a.Point.X+dx*margin)
		}
		if dy != 0 {
			ys = append(ys, a.Point.Y+dy*margin)
		}
	}

	return &Lattice{
		Xs: sortAndDedup(xs),
		Ys: sortAndDedup(ys),
	}
}

// Cols returns the number of distinct x coordinates.
func (l *Lattice) Cols() int { return len(l.Xs) }

// Rows returns the number of distinct y coordinates.
func (l *Lattice) Rows() int { return len(l.Ys) }

// ID returns the node identifier for the given column and row.
func (l *Lattice) ID(col, row int) NodeID {
	return NodeID(row*len(l.Xs) + col)
}

// Coords returns the column and row of a node.
func (l *Lattice) Coords(id NodeID) (col, row int) {
	return int(id) % len(l.Xs), int(id) / len(l.Xs)
}

// Point returns the canvas position of a node.
func (l *Lattice) Point(id NodeID) core.Point {
	col, row := l.Coords(id)
	return core.Point{X: l.Xs[col], Y: l.Ys[row]}
}

// Neighbor returns the grid-adjacent node in the given direction, or false
// when the lattice ends there.
func (l *Lattice) Neighbor(id NodeID, d core.Direction) (NodeID, bool) {
	col, row := l.Coords(id)
	switch d {
	case core.North:
		row--
	case core.South:
		row++
	case core.East:
		col++
	case core.West:
		col--
	default:
		return 0, false
	}
	if col < 0 || col >= len(l.Xs) || row < 0 || row >= len(l.Ys) {
		return 0, false
	}
	return l.ID(col, row), true
}

// Locate returns the node whose position matches p, or false if p does not
// lie on the lattice. Anchor points always match by construction.
func (l *Lattice) Locate(p core.Point) (NodeID, bool) {
	col, ok := locateCoord(l.Xs, p.X)
	if !ok {
		return 0, false
	}
	row, ok := locateCoord(l.Ys, p.Y)
	if !ok {
		return 0, false
	}
	return l.ID(col, row), true
}

func locateCoord(coords []float64, v float64) (int, bool) {
	i := sort.SearchFloat64s(coords, v-coordEpsilon)
	if i < len(coords) && coords[i] <= v+coordEpsilon {
		return i, true
	}
	return 0, false
}

func sortAndDedup(coords []float64) []float64 {
	sort.Float64s(coords)
	out := coords[:0]
	for _, v := range coords {
		if len(out) == 0 || v-out[len(out)-1] > coordEpsilon {
			out = append(out, v)
		}
	}
	return out
}
