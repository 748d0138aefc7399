package route

import "elbow/core"

// directRoute builds the obstacle-blind fallback: a straight, L- or Z-shaped
// chain between the anchors that honors the headings as closely as possible.
// The first segment always runs along the start heading's axis and the last
// along the end heading's axis.
func directRoute(start, end core.Anchor) []core.Point {
	a, b := start.Point, end.Point
	if a.X == b.X || a.Y == b.Y {
		return []core.Point{a, b}
	}

	if start.Heading.Horizontal() {
		if end.Heading.Horizontal() {
			midX := (a.X + b.X) / 2
			return []core.Point{a, {X: midX, Y: a.Y}, {X: midX, Y: b.Y}, b}
		}
		return []core.Point{a, {X: b.X, Y: a.Y}, b}
	}
	if !end.Heading.Horizontal() {
		midY := (a.Y + b.Y) / 2
		return []core.Point{a, {X: a.X, Y: midY}, {X: b.X, Y: midY}, b}
	}
	return []core.Point{a, {X: a.X, Y: b.Y}, b}
}

// directCandidates returns the cheap elbow chains worth testing before a
// search, heading-preferred first.
func directCandidates(start, end core.Anchor) [][]core.Point {
	a, b := start.Point, end.Point
	candidates := [][]core.Point{directRoute(start, end)}
	if a.X != b.X && a.Y != b.Y {
		candidates = append(candidates,
			[]core.Point{a, {X: b.X, Y: a.Y}, b},
			[]core.Point{a, {X: a.X, Y: b.Y}, b},
		)
	}
	return candidates
}
