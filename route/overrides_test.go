package route

import (
	"testing"

	"elbow/core"
)

func TestShortArrowOverride(t *testing.T) {
	closeBoxes := []core.Obstacle{
		{Box: core.NewRect(-30, -20, -5, 20), Padding: 5},
		{Box: core.NewRect(3, -20, 30, 20), Padding: 5},
	}
	farBoxes := []core.Obstacle{
		{Box: core.NewRect(-100, -20, -60, 20), Padding: 5},
		{Box: core.NewRect(60, -20, 100, 20), Padding: 5},
	}
	overlapping := []core.Obstacle{
		{Box: core.NewRect(-30, -20, 10, 20), Padding: 5},
		{Box: core.NewRect(-10, -20, 30, 20), Padding: 5},
	}

	near := core.Anchor{Point: core.Pt(0, 0), Heading: core.East}
	nearEnd := core.Anchor{Point: core.Pt(20, 5), Heading: core.West}
	farEnd := core.Anchor{Point: core.Pt(200, 5), Heading: core.West}

	tests := []struct {
		name      string
		start     core.Anchor
		end       core.Anchor
		obstacles []core.Obstacle
		want      bool
	}{
		{"close anchors, close boxes", near, nearEnd, closeBoxes, true},
		{"close anchors, overlapping boxes", near, nearEnd, overlapping, true},
		{"close anchors, distant boxes", near, nearEnd, farBoxes, false},
		{"distant anchors, close boxes", near, farEnd, closeBoxes, false},
		{"close anchors, one box", near, nearEnd, closeBoxes[:1], false},
		{"close anchors, no boxes", near, nearEnd, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Start: tt.start, End: tt.end, Obstacles: tt.obstacles}
			if got := shortArrowOverride(req, DefaultTuning); got != tt.want {
				t.Errorf("shortArrowOverride = %v, want %v", got, tt.want)
			}
		})
	}
}
