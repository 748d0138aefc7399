// Package export renders routed connectors to PNG images. It exists for
// debugging and documentation: tuning the cost model is much easier when a
// failing scenario can be dumped to disk and stared at.
package export

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"elbow/core"
)

// pixels per canvas unit
const snapshotScale = 2.0

// SnapshotPNG renders the waypoint chain and obstacles to filename. Obstacle
// boxes are filled, their padded outlines drawn dashed, and each waypoint is
// labelled with its coordinates.
func SnapshotPNG(filename string, points []core.Point, obstacles []core.Obstacle) error {
	if len(points) < 2 {
		return fmt.Errorf("nothing to export: need at least two waypoints, got %d", len(points))
	}

	bounds := core.NewRect(points[0].X, points[0].Y, points[0].X, points[0].Y)
	for _, p := range points[1:] {
		bounds = bounds.Union(core.NewRect(p.X, p.Y, p.X, p.Y))
	}
	for _, o := range obstacles {
		bounds = bounds.Union(o.PaddedBox())
	}
	bounds = bounds.Inflate(20)

	width := int(bounds.Width() * snapshotScale)
	height := int(bounds.Height() * snapshotScale)
	if width < 1 || height < 1 {
		return fmt.Errorf("degenerate snapshot bounds %v", bounds)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	px := func(p core.Point) (float64, float64) {
		return (p.X - bounds.X0) * snapshotScale, (p.Y - bounds.Y0) * snapshotScale
	}

	// Padded clearance outlines behind everything else.
	for _, o := range obstacles {
		padded := o.PaddedBox()
		x, y := px(core.Point{X: padded.X0, Y: padded.Y0})
		dc.SetDash(4, 4)
		dc.SetColor(color.RGBA{R: 180, G: 180, B: 180, A: 255})
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, padded.Width()*snapshotScale, padded.Height()*snapshotScale)
		dc.Stroke()
		dc.SetDash()
	}

	for _, o := range obstacles {
		x, y := px(core.Point{X: o.Box.X0, Y: o.Box.Y0})
		dc.SetColor(color.RGBA{R: 220, G: 220, B: 220, A: 255})
		dc.DrawRectangle(x, y, o.Box.Width()*snapshotScale, o.Box.Height()*snapshotScale)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1.5)
		dc.DrawRectangle(x, y, o.Box.Width()*snapshotScale, o.Box.Height()*snapshotScale)
		dc.Stroke()
	}

	// The route itself.
	dc.SetColor(color.RGBA{R: 30, G: 90, B: 200, A: 255})
	dc.SetLineWidth(2)
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := px(points[i])
		x1, y1 := px(points[i+1])
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	face, err := monoFace(10)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	for i, p := range points {
		x, y := px(p)
		switch i {
		case 0:
			dc.SetColor(color.RGBA{G: 150, A: 255})
		case len(points) - 1:
			dc.SetColor(color.RGBA{R: 200, A: 255})
		default:
			dc.SetColor(color.RGBA{R: 30, G: 90, B: 200, A: 255})
		}
		dc.DrawCircle(x, y, 3)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawString(p.String(), x+5, y-5)
	}

	return dc.SavePNG(filename)
}

func monoFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
