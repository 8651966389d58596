package rasterizer

import (
	"image/color"

	"github.com/canvaskit/canvas"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// AdderPather draws path operations onto a rasterx.Adder, such as a rasterx.Path, Filler, Stroker, or Dasher. Coordinates are translated by -origin and scaled by the resolution.
type AdderPather struct {
	a          rasterx.Adder
	origin     canvas.Point
	resolution float64
	start      canvas.Point
	open       bool
}

var _ canvas.Pather = &AdderPather{}

// NewAdderPather returns a Pather that draws onto a.
func NewAdderPather(a rasterx.Adder, origin canvas.Point, resolution float64) *AdderPather {
	return &AdderPather{
		a:          a,
		origin:     origin,
		resolution: resolution,
	}
}

func (r *AdderPather) point(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP((x-r.origin.X)*r.resolution, (y-r.origin.Y)*r.resolution)
}

func (r *AdderPather) MoveTo(x, y float64) {
	r.Flush()
	r.start = canvas.Point{X: x, Y: y}
	r.a.Start(r.point(x, y))
	r.open = true
}

// reopen starts a new subpath at the start of the closed subpath, as the adder needs a start for every subpath.
func (r *AdderPather) reopen() {
	if !r.open {
		r.a.Start(r.point(r.start.X, r.start.Y))
		r.open = true
	}
}

func (r *AdderPather) LineTo(x, y float64) {
	r.reopen()
	r.a.Line(r.point(x, y))
}

func (r *AdderPather) QuadTo(cpx, cpy, x, y float64) {
	r.reopen()
	r.a.QuadBezier(r.point(cpx, cpy), r.point(x, y))
}

func (r *AdderPather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.reopen()
	r.a.CubeBezier(r.point(cpx1, cpy1), r.point(cpx2, cpy2), r.point(x, y))
}

// Close closes the subpath. Drawing commands that follow without a move continue from the start of the closed subpath.
func (r *AdderPather) Close() {
	r.a.Stop(true)
	r.open = false
}

// Flush ends the current subpath without closing it.
func (r *AdderPather) Flush() {
	if r.open {
		r.a.Stop(false)
		r.open = false
	}
}

// Stroke strokes the path onto img with round caps and joins. The stroke width is in path units.
func Stroke(img draw.Image, p *canvas.Path, origin canvas.Point, resolution, width float64, col color.Color) {
	size := img.Bounds().Size()
	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	dasher := rasterx.NewDasher(size.X, size.Y, scanner)
	dasher.SetStroke(fixed.Int26_6(width*resolution*64.0), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(col)

	r := NewAdderPather(dasher, origin, resolution)
	p.Replay(r)
	r.Flush()
	dasher.Draw()
}
