package grid

import "elbow/core"

// Exclusion is the per-invocation blocked-region predicate. It holds only the
// obstacles still active after the anchor-overlap overrides; it never mutates
// shared state, so one Exclusion may serve exactly one search.
type Exclusion struct {
	obstacles []core.Obstacle
	padded    []core.Rect
}

// NewExclusion builds an exclusion over the given obstacles without applying
// any override. Most callers want Resolve.
func NewExclusion(obstacles []core.Obstacle) *Exclusion {
	e := &Exclusion{
		obstacles: obstacles,
		padded:    make([]core.Rect, len(obstacles)),
	}
	for i, o := range obstacles {
		e.padded[i] = o.PaddedBox()
	}
	return e
}

// Resolve builds the exclusion for a search between the two anchor points.
// An obstacle that traps either anchor (the anchor sits inside its box or
// strictly inside its padded box) is dropped entirely: keeping it would
// leave no legal path out of the anchor.
func Resolve(start, end core.Point, obstacles []core.Obstacle) *Exclusion {
	active := make([]core.Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if traps(o, start) || traps(o, end) {
			continue
		}
		active = append(active, o)
	}
	return NewExclusion(active)
}

func traps(o core.Obstacle, p core.Point) bool {
	return o.Box.Contains(p) || o.PaddedBox().ContainsInterior(p)
}

// Active returns the obstacles that survived the overrides.
func (e *Exclusion) Active() []core.Obstacle { return e.obstacles }

// Blocked reports whether a lattice node at p is impassable: strictly inside
// any active obstacle's padded box. Points on the padded boundary stay free
// so routes can hug the clearance outline.
func (e *Exclusion) Blocked(p core.Point) bool {
	for _, r := range e.padded {
		if r.ContainsInterior(p) {
			return true
		}
	}
	return false
}

// SegmentBlocked reports whether the axis-aligned segment a-b passes through
// a padded box interior. An edge can be blocked even when both of its
// endpoint nodes are free.
func (e *Exclusion) SegmentBlocked(a, b core.Point) bool {
	for _, r := range e.padded {
		if core.SegmentCrossesRect(a, b, r) {
			return true
		}
	}
	return false
}

// SideBias measures how unattractive it is to travel along the segment a-b
// where it runs on a padded obstacle edge. Running down the long side of an
// elongated box scores up to 1 per obstacle; steps elsewhere score 0. The
// cost model scales this into the g term to nudge routes around the shorter
// side of an obstacle.
func (e *Exclusion) SideBias(a, b core.Point) float64 {
	bias := 0.0
	for _, r := range e.padded {
		w, h := r.Width(), r.Height()
		if w+h <= 0 {
			continue
		}
		if a.X == b.X && (a.X == r.X0 || a.X == r.X1) && overlaps(a.Y, b.Y, r.Y0, r.Y1) {
			if h > w {
				bias += (h - w) / (h + w)
			}
		}
		if a.Y == b.Y && (a.Y == r.Y0 || a.Y == r.Y1) && overlaps(a.X, b.X, r.X0, r.X1) {
			if w > h {
				bias += (w - h) / (w + h)
			}
		}
	}
	return bias
}

// overlaps reports whether the 1D spans [a0,a1] and [b0,b1] share more than
// a single point.
func overlaps(a0, a1, b0, b1 float64) bool {
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	return a0 < b1 && b0 < a1
}
