package rasterizer

import (
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/canvaskit/canvas"
	"golang.org/x/image/tiff"
)

// Writer writes a rasterized path to w.
type Writer func(w io.Writer, p *canvas.Path) error

// PNGWriter writes the path as a PNG file.
func PNGWriter(opts Options) Writer {
	return func(w io.Writer, p *canvas.Path) error {
		return png.Encode(w, Draw(p, opts))
	}
}

// JPGWriter writes the path as a JPG file.
func JPGWriter(opts Options, jpgOpts *jpeg.Options) Writer {
	return func(w io.Writer, p *canvas.Path) error {
		return jpeg.Encode(w, Draw(p, opts), jpgOpts)
	}
}

// GIFWriter writes the path as a GIF file.
func GIFWriter(opts Options, gifOpts *gif.Options) Writer {
	return func(w io.Writer, p *canvas.Path) error {
		return gif.Encode(w, Draw(p, opts), gifOpts)
	}
}

// TIFFWriter writes the path as a TIFF file.
func TIFFWriter(opts Options, tiffOpts *tiff.Options) Writer {
	return func(w io.Writer, p *canvas.Path) error {
		return tiff.Encode(w, Draw(p, opts), tiffOpts)
	}
}
