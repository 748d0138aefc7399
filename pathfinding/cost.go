// Package pathfinding implements the A* search over the routing lattice,
// with a cost model tuned for human-plausible elbow routes.
package pathfinding

import (
	"math"

	"elbow/core"
)

// CostModel defines the tunable constants of the route cost function. The
// defaults were calibrated by eye against interactive sessions; they are
// exported so hosts can re-tune them.
type CostModel struct {
	BendPenalty      float64 // Added whenever the travel direction changes
	BackwardPenalty  float64 // Added when a step reverses the previous direction; large but finite
	StraightBonus    float64 // Per-unit cost reduction for extending a straight run
	MaxStraightBonus float64 // Cap on the straight-run reduction per step
	SideBiasWeight   float64 // Scale for the obstacle-side bias term
}

// DefaultCostModel provides the calibrated defaults.
var DefaultCostModel = CostModel{
	BendPenalty:      30,
	BackwardPenalty:  2000,
	StraightBonus:    0.08,
	MaxStraightBonus: 12,
	SideBiasWeight:   8,
}

// Heuristic estimates the remaining cost from p to goal. Manhattan distance
// never overestimates the remaining step lengths, so the search stays
// near-optimal with respect to the augmented g.
func (m CostModel) Heuristic(p, goal core.Point) float64 {
	return core.ManhattanDistance(p, goal)
}

// StepCost returns the cost of moving one lattice edge of length stepLen in
// direction dir, given the direction and straight-run length that reached
// the parent, plus the obstacle-side bias of the edge. It also returns the
// straight-run length after the step.
func (m CostModel) StepCost(prevDir core.Direction, prevRun float64, dir core.Direction, stepLen, sideBias float64) (cost, run float64) {
	cost = stepLen + m.SideBiasWeight*sideBias
	if prevDir != core.DirNone && dir != prevDir {
		cost += m.BendPenalty
		if dir == prevDir.Opposite() {
			cost += m.BackwardPenalty
		}
		return cost, stepLen
	}
	// Continuing straight: reward longer runs, but never enough to make the
	// edge cheaper than half its length, which would break the heuristic
	// beyond the intended slack.
	bonus := math.Min(m.StraightBonus*prevRun, m.MaxStraightBonus)
	bonus = math.Min(bonus, stepLen*0.5)
	return cost - bonus, prevRun + stepLen
}
