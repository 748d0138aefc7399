package pathfinding

import (
	"container/heap"

	"elbow/core"
	"elbow/grid"
)

// Status describes how a search ended.
type Status int

const (
	// StatusFound means the goal was reached and Path holds the node chain.
	StatusFound Status = iota
	// StatusExhausted means the open set emptied without reaching the goal.
	StatusExhausted
	// StatusBudget means the expansion budget ran out first.
	StatusBudget
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// DefaultMaxExpansions bounds a single search. The reduced lattice rarely
// needs more than a few hundred expansions; the bound exists to keep a
// pathological configuration within the per-frame time budget.
const DefaultMaxExpansions = 4096

// Result is the outcome of one search invocation.
type Result struct {
	Path     core.Path
	Status   Status
	Expanded int
}

// searchNode is one arena record of per-node search state. Parent is an
// arena index rather than a pointer, so a finished search releases
// everything at once.
type searchNode struct {
	id      grid.NodeID
	g, f    float64
	run     float64 // Straight-run length ending at this node
	parent  int32   // Arena index, -1 for the start node
	dir     core.Direction
	seq     int32 // Discovery order, used for deterministic tie-breaking
	heapIdx int32
	closed  bool
}

// Searcher runs A* over a lattice. The zero value is not usable; construct
// with NewSearcher. A Searcher holds no per-call state and is safe for
// concurrent use.
type Searcher struct {
	costs         CostModel
	maxExpansions int

	// onPop observes the f-score of every node leaving the open set.
	// Test hook for the monotonicity invariant.
	onPop func(f float64)
}

// NewSearcher creates a searcher with the given cost model.
func NewSearcher(costs CostModel) *Searcher {
	return &Searcher{costs: costs, maxExpansions: DefaultMaxExpansions}
}

// SetMaxExpansions overrides the expansion budget. Zero restores the default.
func (s *Searcher) SetMaxExpansions(n int) {
	if n <= 0 {
		n = DefaultMaxExpansions
	}
	s.maxExpansions = n
}

// Search finds the cheapest node chain from start to goal. startDir seeds the
// direction state so that the first step is judged against the start
// anchor's heading: leaving any other way pays the bend (or backward)
// penalty.
func (s *Searcher) Search(lat *grid.Lattice, ex *grid.Exclusion, start, goal grid.NodeID, startDir core.Direction) Result {
	sc := getScratch()
	defer putScratch(sc)

	open := &openHeap{arena: &sc.nodes}
	open.items = sc.heapItems[:0]
	defer func() { sc.heapItems = open.items }()

	goalPoint := lat.Point(goal)
	startPoint := lat.Point(start)

	sc.nodes = append(sc.nodes, searchNode{
		id:      start,
		g:       0,
		f:       s.costs.Heuristic(startPoint, goalPoint),
		parent:  -1,
		dir:     startDir,
		heapIdx: -1,
	})
	sc.index[start] = 0
	heap.Push(open, int32(0))

	expanded := 0
	for open.Len() > 0 {
		curIdx := heap.Pop(open).(int32)
		cur := &sc.nodes[curIdx]
		if s.onPop != nil {
			s.onPop(cur.f)
		}

		if cur.id == goal {
			return Result{
				Path:     s.reconstruct(sc, lat, curIdx),
				Status:   StatusFound,
				Expanded: expanded,
			}
		}

		expanded++
		if expanded > s.maxExpansions {
			return Result{Status: StatusBudget, Expanded: expanded}
		}
		cur.closed = true

		curPoint := lat.Point(cur.id)
		for _, dir := range neighborOrder {
			nb, ok := lat.Neighbor(cur.id, dir)
			if !ok {
				continue
			}
			nbPoint := lat.Point(nb)
			if ex.Blocked(nbPoint) || ex.SegmentBlocked(curPoint, nbPoint) {
				continue
			}

			stepLen := core.ManhattanDistance(curPoint, nbPoint)
			bias := ex.SideBias(curPoint, nbPoint)
			stepCost, run := s.costs.StepCost(cur.dir, cur.run, dir, stepLen, bias)
			tentativeG := cur.g + stepCost

			nbIdx, seen := sc.index[nb]
			if !seen {
				idx := int32(len(sc.nodes))
				sc.nodes = append(sc.nodes, searchNode{
					id:      nb,
					g:       tentativeG,
					f:       tentativeG + s.costs.Heuristic(nbPoint, goalPoint),
					run:     run,
					parent:  curIdx,
					dir:     dir,
					seq:     idx,
					heapIdx: -1,
				})
				sc.index[nb] = idx
				heap.Push(open, idx)
				cur = &sc.nodes[curIdx] // arena may have grown
				continue
			}

			nbNode := &sc.nodes[nbIdx]
			if tentativeG >= nbNode.g {
				continue
			}
			nbNode.g = tentativeG
			nbNode.f = tentativeG + s.costs.Heuristic(nbPoint, goalPoint)
			nbNode.run = run
			nbNode.parent = curIdx
			nbNode.dir = dir
			if nbNode.closed {
				// Re-open: a strictly cheaper way in was found after the
				// node was finalized.
				nbNode.closed = false
				heap.Push(open, nbIdx)
			} else {
				heap.Fix(open, int(nbNode.heapIdx))
			}
		}
	}

	return Result{Status: StatusExhausted, Expanded: expanded}
}

// neighborOrder fixes the expansion order of lattice neighbors so equal-cost
// searches stay deterministic.
var neighborOrder = [4]core.Direction{core.North, core.East, core.South, core.West}

// reconstruct follows parent indices from the goal record back to the start
// and reverses the chain.
func (s *Searcher) reconstruct(sc *scratch, lat *grid.Lattice, goalIdx int32) core.Path {
	n := 0
	for idx := goalIdx; idx >= 0; idx = sc.nodes[idx].parent {
		n++
	}
	points := make([]core.Point, n)
	for idx := goalIdx; idx >= 0; idx = sc.nodes[idx].parent {
		n--
		points[n] = lat.Point(sc.nodes[idx].id)
	}
	return core.Path{Points: points, Cost: sc.nodes[goalIdx].g}
}
