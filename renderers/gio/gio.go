package gio

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/canvaskit/canvas"
)

// Pather draws path operations onto a Gio clip path, scaling coordinates by xScale and yScale.
type Pather struct {
	p              *clip.Path
	xScale, yScale float32
}

var _ canvas.Pather = &Pather{}

// New returns a Pather for a clip path on which Begin has been called.
func New(p *clip.Path, xScale, yScale float64) *Pather {
	return &Pather{
		p:      p,
		xScale: float32(xScale),
		yScale: float32(yScale),
	}
}

func (r *Pather) point(x, y float64) f32.Point {
	return f32.Pt(float32(x)*r.xScale, float32(y)*r.yScale)
}

func (r *Pather) MoveTo(x, y float64) {
	r.p.MoveTo(r.point(x, y))
}

func (r *Pather) LineTo(x, y float64) {
	r.p.LineTo(r.point(x, y))
}

func (r *Pather) QuadTo(cpx, cpy, x, y float64) {
	r.p.QuadTo(r.point(cpx, cpy), r.point(x, y))
}

func (r *Pather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.p.CubeTo(r.point(cpx1, cpy1), r.point(cpx2, cpy2), r.point(x, y))
}

func (r *Pather) Close() {
	r.p.Close()
}

// FillSVGPath fills the SVG path data with col.
func FillSVGPath(ops *op.Ops, d string, scale float64, col color.NRGBA) error {
	p := clip.Path{}
	p.Begin(ops)
	if err := canvas.DrawSVGPath(New(&p, scale, scale), d); err != nil {
		return err
	}
	shape := clip.Outline{Path: p.End()}
	paint.FillShape(ops, col, shape.Op())
	return nil
}
