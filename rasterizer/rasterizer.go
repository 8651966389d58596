package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/canvaskit/canvas"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Options are the rasterization options.
type Options struct {
	Resolution  float64     // pixels per path unit
	Margin      float64     // margin around the path bounds in path units
	Fill        color.Color // fill color, or stroke color if StrokeWidth is set
	Background  color.Color // background color, nil for transparent
	StrokeWidth float64     // stroke the path instead of filling it, in path units
}

// DefaultOptions fills black at one pixel per path unit.
var DefaultOptions = Options{
	Resolution: 1.0,
	Fill:       color.Black,
}

// Pather draws path operations onto a vector.Rasterizer. Coordinates are translated by -origin and scaled by the resolution. Subpaths are closed implicitly before a new move and by Flush, as fills need closed outlines.
type Pather struct {
	ras        *vector.Rasterizer
	origin     canvas.Point
	resolution float64
	open       bool
}

var _ canvas.Pather = &Pather{}

// NewPather returns a Pather that draws onto ras.
func NewPather(ras *vector.Rasterizer, origin canvas.Point, resolution float64) *Pather {
	return &Pather{
		ras:        ras,
		origin:     origin,
		resolution: resolution,
	}
}

func (r *Pather) point(x, y float64) (float32, float32) {
	return float32((x - r.origin.X) * r.resolution), float32((y - r.origin.Y) * r.resolution)
}

func (r *Pather) MoveTo(x, y float64) {
	r.Flush()
	r.ras.MoveTo(r.point(x, y))
}

func (r *Pather) LineTo(x, y float64) {
	r.open = true
	r.ras.LineTo(r.point(x, y))
}

func (r *Pather) QuadTo(cpx, cpy, x, y float64) {
	r.open = true
	bx, by := r.point(cpx, cpy)
	cx, cy := r.point(x, y)
	r.ras.QuadTo(bx, by, cx, cy)
}

func (r *Pather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.open = true
	bx, by := r.point(cpx1, cpy1)
	cx, cy := r.point(cpx2, cpy2)
	dx, dy := r.point(x, y)
	r.ras.CubeTo(bx, by, cx, cy, dx, dy)
}

func (r *Pather) Close() {
	r.ras.ClosePath()
	r.open = false
}

// Flush closes the current subpath if it is open.
func (r *Pather) Flush() {
	if r.open {
		r.Close()
	}
}

// Draw rasterizes the path on a new image that fits the path bounds plus margin, and half the stroke width when stroking.
func Draw(p *canvas.Path, opts Options) *image.RGBA {
	margin := opts.Margin
	if 0.0 < opts.StrokeWidth {
		margin += opts.StrokeWidth / 2.0
	}
	bounds := p.Bounds()
	w := max(1, int(math.Ceil((bounds.W+2.0*margin)*opts.Resolution)))
	h := max(1, int(math.Ceil((bounds.H+2.0*margin)*opts.Resolution)))
	origin := canvas.Point{X: bounds.X - margin, Y: bounds.Y - margin}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	fill := opts.Fill
	if fill == nil {
		fill = color.Black
	}
	if 0.0 < opts.StrokeWidth {
		Stroke(img, p, origin, opts.Resolution, opts.StrokeWidth, fill)
		return img
	}

	ras := vector.NewRasterizer(w, h)
	r := NewPather(ras, origin, opts.Resolution)
	p.Replay(r)
	r.Flush()
	ras.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	return img
}

// DrawSVGPath rasterizes SVG path data directly onto an image of size w×h, without building an intermediate path.
func DrawSVGPath(d string, w, h int, opts Options) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	ras := vector.NewRasterizer(w, h)
	r := NewPather(ras, canvas.Point{}, opts.Resolution)
	if err := canvas.DrawSVGPath(r, d); err != nil {
		return nil, err
	}
	r.Flush()

	fill := opts.Fill
	if fill == nil {
		fill = color.Black
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	return img, nil
}
