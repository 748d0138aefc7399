// Command routeview is an interactive viewer for the routing engine. It
// draws a scene of up to two obstacles and a live connector route, and
// recomputes the route on every keystroke, which makes it a convenient way
// to exercise the cost model at interactive rates.
//
// Keys: arrows move the end anchor, h/H cycle the end/start heading,
// o toggles the second obstacle, p saves a PNG snapshot, q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"elbow/core"
	"elbow/export"
	"elbow/route"
)

type viewer struct {
	screen tcell.Screen
	router *route.Router

	start, end core.Anchor
	obstacles  []core.Obstacle
	twoBoxes   bool

	snapshot string
	status   string
}

func main() {
	snapshot := flag.String("snapshot", "route.png", "file the p key writes a PNG snapshot to")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{
		screen:   screen,
		router:   route.NewRouter(),
		start:    core.Anchor{Point: core.Pt(6, 12), Heading: core.East},
		end:      core.Anchor{Point: core.Pt(70, 12), Heading: core.West},
		twoBoxes: true,
		snapshot: *snapshot,
	}
	v.run()
}

func (v *viewer) run() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case key.Key() == tcell.KeyEscape || key.Rune() == 'q':
			return
		case key.Key() == tcell.KeyUp:
			v.end.Point.Y--
		case key.Key() == tcell.KeyDown:
			v.end.Point.Y++
		case key.Key() == tcell.KeyLeft:
			v.end.Point.X--
		case key.Key() == tcell.KeyRight:
			v.end.Point.X++
		case key.Rune() == 'h':
			v.end.Heading = cycle(v.end.Heading)
		case key.Rune() == 'H':
			v.start.Heading = cycle(v.start.Heading)
		case key.Rune() == 'o':
			v.twoBoxes = !v.twoBoxes
		case key.Rune() == 'p':
			v.savePNG()
		}
	}
}

func cycle(d core.Direction) core.Direction {
	switch d {
	case core.North:
		return core.East
	case core.East:
		return core.South
	case core.South:
		return core.West
	default:
		return core.North
	}
}

func (v *viewer) scene() []core.Obstacle {
	obstacles := []core.Obstacle{
		{Box: core.NewRect(25, 6, 40, 18), Padding: 2},
	}
	if v.twoBoxes {
		obstacles = append(obstacles, core.Obstacle{Box: core.NewRect(48, 10, 60, 22), Padding: 2})
	}
	return obstacles
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.obstacles = v.scene()

	res, err := v.router.Route(route.Request{Start: v.start, End: v.end, Obstacles: v.obstacles})
	if err != nil {
		v.status = err.Error()
	} else {
		flag := ""
		if res.Degraded {
			flag = " degraded"
		}
		v.status = fmt.Sprintf("waypoints=%d expanded=%d%s", len(res.Points), res.Expanded, flag)
	}

	padStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, o := range v.obstacles {
		drawBox(v.screen, o.PaddedBox(), '.', padStyle)
		fillBox(v.screen, o.Box, '#', boxStyle)
	}

	if err == nil {
		drawRoute(v.screen, res.Points, tcell.StyleDefault.Foreground(tcell.ColorBlue))
	}
	setCell(v.screen, v.start.Point, 'S', tcell.StyleDefault.Foreground(tcell.ColorGreen))
	setCell(v.screen, v.end.Point, 'E', tcell.StyleDefault.Foreground(tcell.ColorRed))

	_, h := v.screen.Size()
	line := fmt.Sprintf("start %v %v  end %v %v  %s  [arrows move, h/H headings, o obstacle, p png, q quit]",
		v.start.Point, v.start.Heading, v.end.Point, v.end.Heading, v.status)
	drawText(v.screen, 0, h-1, line, tcell.StyleDefault)

	v.screen.Show()
}

func (v *viewer) savePNG() {
	res, err := v.router.Route(route.Request{Start: v.start, End: v.end, Obstacles: v.obstacles})
	if err == nil {
		err = export.SnapshotPNG(v.snapshot, res.Points, v.obstacles)
	}
	if err != nil {
		v.status = err.Error()
		return
	}
	v.status = "wrote " + v.snapshot
}

func setCell(s tcell.Screen, p core.Point, ch rune, style tcell.Style) {
	s.SetContent(int(p.X), int(p.Y), ch, nil, style)
}

func fillBox(s tcell.Screen, r core.Rect, ch rune, style tcell.Style) {
	for y := int(r.Y0); y <= int(r.Y1); y++ {
		for x := int(r.X0); x <= int(r.X1); x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func drawBox(s tcell.Screen, r core.Rect, ch rune, style tcell.Style) {
	for x := int(r.X0); x <= int(r.X1); x++ {
		s.SetContent(x, int(r.Y0), ch, nil, style)
		s.SetContent(x, int(r.Y1), ch, nil, style)
	}
	for y := int(r.Y0); y <= int(r.Y1); y++ {
		s.SetContent(int(r.X0), y, ch, nil, style)
		s.SetContent(int(r.X1), y, ch, nil, style)
	}
}

func drawRoute(s tcell.Screen, points []core.Point, style tcell.Style) {
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		ch := '─'
		if a.X == b.X {
			ch = '│'
		}
		x0, y0 := int(a.X), int(a.Y)
		x1, y1 := int(b.X), int(b.Y)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.SetContent(x, y, ch, nil, style)
			}
		}
	}
	for i, p := range points {
		if i > 0 && i < len(points)-1 {
			setCell(s, p, '+', style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
