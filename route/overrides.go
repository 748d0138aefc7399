package route

import "elbow/core"

// shortArrowOverride reports whether the degenerate close-quarters case
// applies: the anchors sit closer than the short-arrow threshold while the
// two obstacles overlap or nearly touch. The search tends to meander in this
// configuration, so the caller bypasses it with a direct minimal route.
//
// This is a named guard clause, not part of the generic cost model; keep it
// independently testable and its thresholds in Tuning.
func shortArrowOverride(req Request, t Tuning) bool {
	if len(req.Obstacles) < 2 {
		return false
	}
	if core.EuclideanDistance(req.Start.Point, req.End.Point) >= t.ShortArrowDistance {
		return false
	}
	a := req.Obstacles[0].Box
	b := req.Obstacles[1].Box
	return a.Intersects(b) || a.Gap(b) <= t.ShortArrowGap
}
