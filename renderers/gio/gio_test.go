package gio

import (
	"errors"
	"image/color"
	"testing"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/canvaskit/canvas"
	"github.com/tdewolff/test"
)

func TestPather(t *testing.T) {
	ops := &op.Ops{}
	p := clip.Path{}
	p.Begin(ops)

	r := New(&p, 2.0, 3.0)
	r.MoveTo(1, 1)
	test.T(t, p.Pos(), f32.Pt(2, 3))
	r.LineTo(2, 2)
	test.T(t, p.Pos(), f32.Pt(4, 6))
	r.QuadTo(3, 3, 4, 4)
	test.T(t, p.Pos(), f32.Pt(8, 12))
	r.CubeTo(5, 5, 6, 6, 7, 7)
	test.T(t, p.Pos(), f32.Pt(14, 21))
	r.Close()
	test.T(t, p.Pos(), f32.Pt(2, 3))
	p.End()
}

func TestFillSVGPath(t *testing.T) {
	ops := &op.Ops{}
	test.Error(t, FillSVGPath(ops, "M0 0H10V10H0zM2 2A3 3 0 0 1 8 2", 2.0, color.NRGBA{A: 255}))

	err := FillSVGPath(&op.Ops{}, "M0 0H", 1.0, color.NRGBA{A: 255})
	test.That(t, errors.Is(err, canvas.ErrMalformedPath))
}
