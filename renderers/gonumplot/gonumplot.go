package gonumplot

import (
	"image/color"
	"io"

	"github.com/canvaskit/canvas"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Pather appends path operations to a gonum/plot vector path. Path units are taken as millimeters.
type Pather struct {
	p *vg.Path
}

var _ canvas.Pather = &Pather{}

// New returns a Pather that appends to p.
func New(p *vg.Path) *Pather {
	return &Pather{p}
}

func point(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x) * vg.Millimeter, Y: vg.Length(y) * vg.Millimeter}
}

func (r *Pather) MoveTo(x, y float64) {
	r.p.Move(point(x, y))
}

func (r *Pather) LineTo(x, y float64) {
	r.p.Line(point(x, y))
}

func (r *Pather) QuadTo(cpx, cpy, x, y float64) {
	r.p.QuadTo(point(cpx, cpy), point(x, y))
}

func (r *Pather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.p.CubeTo(point(cpx1, cpy1), point(cpx2, cpy2), point(x, y))
}

func (r *Pather) Close() {
	r.p.Close()
}

// SVGPath converts SVG path data to a gonum/plot vector path, eg. to stroke or fill it on a vg.Canvas.
func SVGPath(d string) (vg.Path, error) {
	p := vg.Path{}
	if err := canvas.DrawSVGPath(New(&p), d); err != nil {
		return nil, err
	}
	return p, nil
}

// Options are the options for writing a path as a vector document.
type Options struct {
	Margin      float64     // margin around the path bounds in millimeters
	Color       color.Color // fill color, or stroke color if StrokeWidth is set
	StrokeWidth float64     // stroke the path instead of filling it, in millimeters
}

// Writer writes a path as a vector document.
type Writer func(w io.Writer, p *canvas.Path) error

// PDFWriter writes the path as a PDF document.
func PDFWriter(opts Options) Writer {
	return writer(opts, func(w, h vg.Length) vg.CanvasWriterTo {
		return vgpdf.New(w, h)
	})
}

// SVGWriter writes the path as an SVG document.
func SVGWriter(opts Options) Writer {
	return writer(opts, func(w, h vg.Length) vg.CanvasWriterTo {
		return vgsvg.New(w, h)
	})
}

// EPSWriter writes the path as an EPS document.
func EPSWriter(opts Options) Writer {
	return writer(opts, func(w, h vg.Length) vg.CanvasWriterTo {
		return vgeps.New(w, h)
	})
}

func writer(opts Options, newCanvas func(w, h vg.Length) vg.CanvasWriterTo) Writer {
	return func(w io.Writer, p *canvas.Path) error {
		vp, width, height := documentPath(p, opts)
		c := newCanvas(width, height)
		col := opts.Color
		if col == nil {
			col = color.Black
		}
		c.SetColor(col)
		if 0.0 < opts.StrokeWidth {
			c.SetLineWidth(vg.Length(opts.StrokeWidth) * vg.Millimeter)
			c.Stroke(vp)
		} else {
			c.Fill(vp)
		}
		_, err := c.WriteTo(w)
		return err
	}
}

// documentPath returns the path placed on a page that fits its bounds plus margin. The y-axis is flipped, as vg has its origin in the bottom-left corner.
func documentPath(p *canvas.Path, opts Options) (vg.Path, vg.Length, vg.Length) {
	margin := opts.Margin
	if 0.0 < opts.StrokeWidth {
		margin += opts.StrokeWidth / 2.0
	}
	bounds := p.Bounds()
	width := bounds.W + 2.0*margin
	height := bounds.H + 2.0*margin

	q := p.Copy().Translate(-bounds.X+margin, -bounds.Y-bounds.H-margin).Scale(1.0, -1.0)
	vp := vg.Path{}
	q.Replay(New(&vp))
	return vp, vg.Length(width) * vg.Millimeter, vg.Length(height) * vg.Millimeter
}
