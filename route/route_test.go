package route

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"elbow/core"
)

// assertContract checks the unconditional output guarantees of every route:
// at least two waypoints, exact endpoints, axis-aligned segments.
func assertContract(t *testing.T, res Result, req Request) {
	t.Helper()
	if len(res.Points) < 2 {
		t.Fatalf("route has %d waypoints, want >= 2", len(res.Points))
	}
	if res.Points[0] != req.Start.Point {
		t.Errorf("first waypoint %v, want start anchor %v", res.Points[0], req.Start.Point)
	}
	if res.Points[len(res.Points)-1] != req.End.Point {
		t.Errorf("last waypoint %v, want end anchor %v", res.Points[len(res.Points)-1], req.End.Point)
	}
	assertAxisAligned(t, res.Points)
}

// assertClear checks that no segment of the route crosses an obstacle's
// padded interior.
func assertClear(t *testing.T, res Result, obstacles []core.Obstacle) {
	t.Helper()
	for _, o := range obstacles {
		padded := o.PaddedBox()
		for i := 0; i+1 < len(res.Points); i++ {
			if core.SegmentCrossesRect(res.Points[i], res.Points[i+1], padded) {
				t.Errorf("segment %v-%v crosses padded box %+v", res.Points[i], res.Points[i+1], padded)
			}
		}
	}
}

func TestStraightConnector(t *testing.T) {
	req := Request{
		Start: core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
		End:   core.Anchor{Point: core.Pt(100, 0), Heading: core.East},
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Point{core.Pt(0, 0), core.Pt(100, 0)}
	if diff := cmp.Diff(want, res.Points); diff != "" {
		t.Errorf("route mismatch (-want +got):\n%s", diff)
	}
	if res.Degraded {
		t.Error("straight connector flagged degraded")
	}
}

func TestRouteHonorsHeadingDirections(t *testing.T) {
	// The end lies due west while the start heading points east, so the
	// straight chain would leave the start anchor traveling exactly
	// opposite its heading. The route must detour out along the heading
	// and double back, not merely stay on the heading's axis.
	req := Request{
		Start: core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
		End:   core.Anchor{Point: core.Pt(-100, 0), Heading: core.West},
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	assertContract(t, res, req)
	if res.Degraded {
		t.Error("route flagged degraded")
	}

	first := core.DirectionBetween(res.Points[0], res.Points[1])
	if first != req.Start.Heading {
		t.Errorf("first segment travels %v, want %v", first, req.Start.Heading)
	}
	last := core.DirectionBetween(res.Points[len(res.Points)-2], res.Points[len(res.Points)-1])
	if last != req.End.Heading {
		t.Errorf("last segment travels %v, want %v", last, req.End.Heading)
	}
	if got := Bends(res.Points); got != 4 {
		t.Errorf("bends = %d, want 4; route %v", got, res.Points)
	}
}

func TestRouteAroundObstacle(t *testing.T) {
	// Vertically aligned anchors with an obstacle straddling the straight
	// line between them. The canvas is y-down, so "toward the end" is
	// North here.
	req := Request{
		Start:     core.Anchor{Point: core.Pt(0, 0), Heading: core.North},
		End:       core.Anchor{Point: core.Pt(0, -100), Heading: core.North},
		Obstacles: []core.Obstacle{{Box: core.NewRect(-20, -60, 20, -40), Padding: 10}},
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	assertContract(t, res, req)
	assertClear(t, res, req.Obstacles)
	if res.Degraded {
		t.Error("route flagged degraded")
	}
	if got := Bends(res.Points); got != 2 {
		t.Errorf("bends = %d, want exactly 2; route %v", got, res.Points)
	}
}

func TestAnchorsInsideObstacle(t *testing.T) {
	// Both anchors inside the same box: avoidance for it is disabled and
	// the direct route comes back.
	req := Request{
		Start:     core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
		End:       core.Anchor{Point: core.Pt(30, 20), Heading: core.East},
		Obstacles: []core.Obstacle{{Box: core.NewRect(-50, -50, 80, 60), Padding: 10}},
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	assertContract(t, res, req)
	if res.Degraded {
		t.Error("overridden route flagged degraded")
	}
	if res.Expanded != 0 {
		t.Errorf("expected a direct route without search, expanded = %d", res.Expanded)
	}
}

func TestShortArrowOverrideRoute(t *testing.T) {
	// Two nearly touching obstacles, anchors a few units apart: the
	// short-arrow guard bypasses the search entirely.
	req := Request{
		Start: core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
		End:   core.Anchor{Point: core.Pt(18, 6), Heading: core.East},
		Obstacles: []core.Obstacle{
			{Box: core.NewRect(-30, -20, -5, 20), Padding: 5},
			{Box: core.NewRect(-2, -20, 30, 20), Padding: 5},
		},
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	assertContract(t, res, req)
	if res.Degraded {
		t.Error("short-arrow route flagged degraded")
	}
	if res.Expanded != 0 {
		t.Errorf("short-arrow override should bypass the search, expanded = %d", res.Expanded)
	}
}

func TestBudgetFallback(t *testing.T) {
	// A one-expansion budget cannot reach the goal; the engine must return
	// the direct fallback with the degraded flag rather than failing.
	req := Request{
		Start:         core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
		End:           core.Anchor{Point: core.Pt(200, 150), Heading: core.West},
		Obstacles:     []core.Obstacle{{Box: core.NewRect(40, -200, 160, 350), Padding: 10}},
		MaxExpansions: 1,
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	assertContract(t, res, req)
	if !res.Degraded {
		t.Error("budget fallback not flagged degraded")
	}
}

func TestNoObstacleOptimality(t *testing.T) {
	// Headings here all point along the minimal route; conflicting headings
	// legitimately cost extra length for their stub detours.
	tests := []struct {
		name       string
		start, end core.Anchor
	}{
		{
			"horizontal headings",
			core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
			core.Anchor{Point: core.Pt(120, 80), Heading: core.East},
		},
		{
			"vertical headings",
			core.Anchor{Point: core.Pt(10, 10), Heading: core.South},
			core.Anchor{Point: core.Pt(-60, 90), Heading: core.South},
		},
		{
			"mixed headings",
			core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
			core.Anchor{Point: core.Pt(50, -40), Heading: core.North},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Start: tt.start, End: tt.end}
			res, err := Route(req)
			if err != nil {
				t.Fatal(err)
			}
			assertContract(t, res, req)

			if got := Bends(res.Points); got > 2 {
				t.Errorf("bends = %d, want <= 2", got)
			}
			total := 0.0
			for i := 0; i+1 < len(res.Points); i++ {
				total += core.ManhattanDistance(res.Points[i], res.Points[i+1])
			}
			want := core.ManhattanDistance(tt.start.Point, tt.end.Point)
			if math.Abs(total-want) > 1e-9 {
				t.Errorf("route length = %g, want Manhattan distance %g", total, want)
			}
		})
	}
}

func TestRouteDeterministic(t *testing.T) {
	req := Request{
		Start: core.Anchor{Point: core.Pt(0, 0), Heading: core.South},
		End:   core.Anchor{Point: core.Pt(150, 110), Heading: core.North},
		Obstacles: []core.Obstacle{
			{Box: core.NewRect(30, 20, 80, 60), Padding: 10},
			{Box: core.NewRect(90, 70, 130, 100), Padding: 10},
		},
	}
	first, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		again, err := Route(req)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d diverged (-first +again):\n%s", i, diff)
		}
	}
}

func TestRouteClearsTwoObstacles(t *testing.T) {
	req := Request{
		Start: core.Anchor{Point: core.Pt(0, 50), Heading: core.East},
		End:   core.Anchor{Point: core.Pt(250, 50), Heading: core.East},
		Obstacles: []core.Obstacle{
			{Box: core.NewRect(60, 0, 110, 100), Padding: 10},
			{Box: core.NewRect(140, 10, 200, 90), Padding: 10},
		},
	}
	res, err := Route(req)
	if err != nil {
		t.Fatal(err)
	}
	assertContract(t, res, req)
	assertClear(t, res, req.Obstacles)
	if res.Degraded {
		t.Error("route flagged degraded")
	}
}

func TestValidation(t *testing.T) {
	valid := Request{
		Start: core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
		End:   core.Anchor{Point: core.Pt(10, 10), Heading: core.West},
	}

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"NaN anchor", func(r *Request) { r.Start.Point.X = math.NaN() }},
		{"infinite anchor", func(r *Request) { r.End.Point.Y = math.Inf(1) }},
		{"missing heading", func(r *Request) { r.Start.Heading = core.DirNone }},
		{"zero-size obstacle", func(r *Request) {
			r.Obstacles = []core.Obstacle{{Box: core.Rect{X0: 5, Y0: 5, X1: 5, Y1: 9}}}
		}},
		{"negative padding", func(r *Request) {
			r.Obstacles = []core.Obstacle{{Box: core.NewRect(0, 0, 10, 10), Padding: -1}}
		}},
		{"too many obstacles", func(r *Request) {
			o := core.Obstacle{Box: core.NewRect(0, 0, 10, 10)}
			r.Obstacles = []core.Obstacle{o, o, o}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := Route(req)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("err = %v, want ErrInvalidGeometry", err)
			}
		})
	}

	if _, err := Route(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestRouteAll(t *testing.T) {
	reqs := make([]Request, 40)
	for i := range reqs {
		f := float64(i)
		reqs[i] = Request{
			Start:     core.Anchor{Point: core.Pt(0, f*3), Heading: core.East},
			End:       core.Anchor{Point: core.Pt(200, 100-f*2), Heading: core.West},
			Obstacles: []core.Obstacle{{Box: core.NewRect(80, 20, 130, 80), Padding: 10}},
		}
	}

	batch, err := RouteAll(context.Background(), reqs)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != len(reqs) {
		t.Fatalf("got %d results, want %d", len(batch), len(reqs))
	}

	// Parallel results must match their sequential counterparts: calls
	// share no state.
	for i, req := range reqs {
		single, err := Route(req)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(single, batch[i]); diff != "" {
			t.Errorf("request %d diverged from sequential run (-single +batch):\n%s", i, diff)
		}
	}
}

func TestRouteAllInvalidRequest(t *testing.T) {
	reqs := []Request{
		{
			Start: core.Anchor{Point: core.Pt(0, 0), Heading: core.East},
			End:   core.Anchor{Point: core.Pt(10, 0), Heading: core.West},
		},
		{
			Start: core.Anchor{Point: core.Pt(math.NaN(), 0), Heading: core.East},
			End:   core.Anchor{Point: core.Pt(10, 0), Heading: core.West},
		},
	}
	if _, err := RouteAll(context.Background(), reqs); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("err = %v, want ErrInvalidGeometry", err)
	}
}

func BenchmarkRoute(b *testing.B) {
	req := Request{
		Start: core.Anchor{Point: core.Pt(0, 50), Heading: core.East},
		End:   core.Anchor{Point: core.Pt(250, 50), Heading: core.East},
		Obstacles: []core.Obstacle{
			{Box: core.NewRect(60, 0, 110, 100), Padding: 10},
			{Box: core.NewRect(140, 10, 200, 90), Padding: 10},
		},
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Route(req); err != nil {
			b.Fatal(err)
		}
	}
}
