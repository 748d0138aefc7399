// Package route exposes the elbow routing engine to host applications: a
// single synchronous operation that turns two anchors and up to two
// obstacles into an axis-aligned waypoint sequence.
package route

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"elbow/core"
	"elbow/grid"
	"elbow/pathfinding"
)

// ErrInvalidGeometry is wrapped by every input-validation failure.
var ErrInvalidGeometry = errors.New("invalid geometry")

// MaxObstacles is the obstacle budget of one routing request. The cost
// model's side bias and the backward-visit rule are only calibrated for up
// to two obstacles.
const MaxObstacles = 2

// Request describes one routing call.
type Request struct {
	Start, End core.Anchor
	Obstacles  []core.Obstacle

	// MaxExpansions optionally bounds the search; zero means the engine
	// default. When the budget runs out the fallback route is returned.
	MaxExpansions int
}

// Result is the routing outcome. Points always holds at least two waypoints
// whose first and last entries equal the anchor points exactly; Degraded
// marks a fallback route that could not honor all avoidance constraints.
type Result struct {
	Points   []core.Point
	Degraded bool
	Expanded int // Nodes expanded by the search, 0 for direct routes
}

// Tuning holds the empirically calibrated thresholds of the router. These
// are deliberate magic numbers: adjust them against real scenes, not from
// first principles.
type Tuning struct {
	Margin             float64 // Antenna extrusion and lattice margin
	ShortArrowDistance float64 // Anchor distance below which the short-arrow override may fire
	ShortArrowGap      float64 // Obstacle gap below which the short-arrow override may fire
	HeadingStub        float64 // Length of an inserted heading stub segment
}

// DefaultTuning provides the calibrated defaults.
var DefaultTuning = Tuning{
	Margin:             30,
	ShortArrowDistance: 40,
	ShortArrowGap:      12,
	HeadingStub:        10,
}

// Router routes connectors. A Router holds no per-call state and is safe
// for concurrent use; all search scratch is call-scoped.
type Router struct {
	Costs  pathfinding.CostModel
	Tuning Tuning
}

// NewRouter creates a router with the default cost model and tuning.
func NewRouter() *Router {
	return &Router{Costs: pathfinding.DefaultCostModel, Tuning: DefaultTuning}
}

var defaultRouter = NewRouter()

// Route computes a route using the default router.
func Route(req Request) (Result, error) {
	return defaultRouter.Route(req)
}

// RouteAll computes a batch of routes using the default router.
func RouteAll(ctx context.Context, reqs []Request) ([]Result, error) {
	return defaultRouter.RouteAll(ctx, reqs)
}

// Route computes an orthogonal route for the request. It returns an error
// only for invalid input; when no obstacle-clear path exists it returns the
// direct fallback route with Degraded set, never an empty result.
func (r *Router) Route(req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	if shortArrowOverride(req, r.Tuning) {
		return r.finish(directRoute(req.Start, req.End), req, false, 0, true), nil
	}

	ex := grid.Resolve(req.Start.Point, req.End.Point, req.Obstacles)
	if len(ex.Active()) == 0 {
		return r.finish(directRoute(req.Start, req.End), req, false, 0, true), nil
	}

	// Try the direct elbow candidates before paying for a search; this is
	// the common unobstructed case.
	for _, candidate := range directCandidates(req.Start, req.End) {
		if pathClear(candidate, ex) {
			return r.finish(candidate, req, false, 0, true), nil
		}
	}

	lat := grid.Build(req.Start, req.End, req.Obstacles, r.Tuning.Margin)
	startID, okStart := lat.Locate(req.Start.Point)
	goalID, okGoal := lat.Locate(req.End.Point)
	if !okStart || !okGoal {
		// Anchors are lattice members by construction; reaching this means
		// the coordinates were too extreme to distinguish.
		return Result{}, fmt.Errorf("%w: anchor not representable on lattice", ErrInvalidGeometry)
	}

	searcher := pathfinding.NewSearcher(r.Costs)
	searcher.SetMaxExpansions(req.MaxExpansions)
	res := searcher.Search(lat, ex, startID, goalID, req.Start.Heading)

	if res.Status != pathfinding.StatusFound {
		return r.finish(directRoute(req.Start, req.End), req, true, res.Expanded, true), nil
	}
	return r.finish(res.Path.Points, req, false, res.Expanded, false), nil
}

// finish applies the post-processing contract to a raw point chain: collapse
// collinear runs and, for direct routes that bypassed the search, align the
// terminal segments with the anchor headings. Search results already paid
// for their headings through the cost model, so forcing stubs onto them
// would only add bends.
func (r *Router) finish(points []core.Point, req Request, degraded bool, expanded int, stubs bool) Result {
	points = Simplify(points)
	if stubs {
		points = EnsureHeadings(points, req.Start, req.End, r.Tuning.HeadingStub)
		points = Simplify(points)
	}
	return Result{Points: points, Degraded: degraded, Expanded: expanded}
}

// RouteAll routes every request, spreading the work across workers. Results
// are positionally aligned with reqs. The first invalid request aborts the
// batch.
func (r *Router) RouteAll(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Route(reqs[i])
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// validate rejects degenerate input before any grid construction.
func validate(req Request) error {
	if !req.Start.Point.IsFinite() || !req.End.Point.IsFinite() {
		return fmt.Errorf("%w: non-finite anchor coordinate", ErrInvalidGeometry)
	}
	if req.Start.Heading == core.DirNone || req.End.Heading == core.DirNone {
		return fmt.Errorf("%w: anchor heading required", ErrInvalidGeometry)
	}
	if len(req.Obstacles) > MaxObstacles {
		return fmt.Errorf("%w: at most %d obstacles supported, got %d",
			ErrInvalidGeometry, MaxObstacles, len(req.Obstacles))
	}
	for i, o := range req.Obstacles {
		if o.Box.IsDegenerate() {
			return fmt.Errorf("%w: obstacle %d has a degenerate box", ErrInvalidGeometry, i)
		}
		if o.Padding < 0 {
			return fmt.Errorf("%w: obstacle %d has negative padding", ErrInvalidGeometry, i)
		}
	}
	return nil
}

// pathClear reports whether every segment of the chain avoids the active
// padded boxes.
func pathClear(points []core.Point, ex *grid.Exclusion) bool {
	for i := 0; i+1 < len(points); i++ {
		if ex.SegmentBlocked(points[i], points[i+1]) {
			return false
		}
	}
	return true
}
