package route

import "elbow/core"

// Simplify collapses runs of collinear consecutive points into single
// segments and drops zero-length steps, so every remaining waypoint marks an
// actual direction change.
func Simplify(points []core.Point) []core.Point {
	if len(points) <= 2 {
		return points
	}
	out := make([]core.Point, 0, len(points))
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		p := points[i]
		if p == out[len(out)-1] {
			continue
		}
		if len(out) >= 2 && aligned(out[len(out)-2], out[len(out)-1], p) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

// aligned reports whether three points share a row or a column.
func aligned(p1, p2, p3 core.Point) bool {
	return (p1.Y == p2.Y && p2.Y == p3.Y) || (p1.X == p2.X && p2.X == p3.X)
}

// EnsureHeadings verifies that the first segment travels in the start
// anchor's declared heading and the last segment in the end anchor's, and
// splices in a minimal stub detour where one does not. Endpoints stay exact
// and every segment stays axis-aligned; callers run Simplify afterwards to
// merge the collinear seams the splice can leave behind.
func EnsureHeadings(points []core.Point, start, end core.Anchor, stub float64) []core.Point {
	points = ensureHead(points, start.Heading, stub)
	// The arrival segment mirrors a departure along the opposite heading.
	reverse(points)
	points = ensureHead(points, end.Heading.Opposite(), stub)
	reverse(points)
	return points
}

// ensureHead makes the chain leave its first point traveling want. An
// orthogonal first segment gets a stub plus corner; a segment doubling
// straight back gets an additional side step, since a bare stub would be
// collinear with it and collapse away.
func ensureHead(points []core.Point, want core.Direction, stub float64) []core.Point {
	if len(points) < 2 {
		return points
	}
	dir := core.DirectionBetween(points[0], points[1])
	if dir == core.DirNone || dir == want {
		return points
	}

	a := points[0]
	dx, dy := want.Vector()
	stubEnd := core.Point{X: a.X + dx*stub, Y: a.Y + dy*stub}

	if dir == want.Opposite() {
		px, py := sideStep(want).Vector()
		jogOut := core.Point{X: stubEnd.X + px*stub, Y: stubEnd.Y + py*stub}
		jogIn := core.Point{X: points[1].X + px*stub, Y: points[1].Y + py*stub}
		return append([]core.Point{a, stubEnd, jogOut, jogIn}, points[1:]...)
	}

	corner := cornerBetween(stubEnd, points[1], want)
	return append([]core.Point{a, stubEnd, corner}, points[1:]...)
}

// sideStep is the fixed detour side used when a chain must double back
// against a heading.
func sideStep(d core.Direction) core.Direction {
	if d.Horizontal() {
		return core.South
	}
	return core.East
}

func reverse(points []core.Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// cornerBetween picks the elbow point joining from and to such that the
// segment leaving from runs orthogonal to the given heading axis.
func cornerBetween(from, to core.Point, heading core.Direction) core.Point {
	if heading.Horizontal() {
		// The stub ran horizontally; turn vertically next.
		return core.Point{X: from.X, Y: to.Y}
	}
	return core.Point{X: to.X, Y: from.Y}
}

// Bends counts the direction changes along a waypoint chain.
func Bends(points []core.Point) int {
	bends := 0
	for i := 2; i < len(points); i++ {
		if !aligned(points[i-2], points[i-1], points[i]) {
			bends++
		}
	}
	return bends
}
