package main

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/canvaskit/canvas"
	"github.com/canvaskit/canvas/rasterizer"
	"github.com/canvaskit/canvas/renderers/gonumplot"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tdewolff/argp"
	"golang.org/x/image/tiff"
)

type Ops struct {
	Config  string `desc:"TOML configuration file"`
	Verbose bool   `short:"v" desc:"Log every command to stderr"`
	File    string `short:"f" desc:"Read path data from file, - for stdin"`
	Data    string `index:"0" desc:"Path data"`
}

type Tokens struct {
	Config  string `desc:"TOML configuration file"`
	Verbose bool   `short:"v" desc:"Log to stderr"`
	File    string `short:"f" desc:"Read path data from file, - for stdin"`
	Data    string `index:"0" desc:"Path data"`
}

type SVG struct {
	Config    string `desc:"TOML configuration file"`
	Verbose   bool   `short:"v" desc:"Log every command to stderr"`
	File      string `short:"f" desc:"Read path data from file, - for stdin"`
	Precision int    `short:"p" desc:"Significant digits, overrides the configuration"`
	Data      string `index:"0" desc:"Path data"`
}

type Render struct {
	Config     string  `desc:"TOML configuration file"`
	Verbose    bool    `short:"v" desc:"Log every command to stderr"`
	File       string  `short:"f" desc:"Read path data from file, - for stdin"`
	Resolution float64 `short:"r" desc:"Pixels per path unit, overrides the configuration"`
	Margin     float64 `short:"m" desc:"Margin in path units, overrides the configuration"`
	Stroke     float64 `short:"s" desc:"Stroke width in path units instead of filling, overrides the configuration"`
	Output     string  `short:"o" desc:"Output filename (.png, .tif, .jpg, .gif, .pdf, .svg, .eps)"`
	Data       string  `index:"0" desc:"Path data"`
}

func main() {
	root := argp.NewCmd(&Ops{}, "Interpret SVG path data into drawing operations")
	root.AddCmd(&Tokens{}, "tokens", "List the expanded path tokens")
	root.AddCmd(&SVG{}, "svg", "Print normalized absolute path data")
	root.AddCmd(&Render{}, "render", "Render path data to an image or vector document")
	root.Parse()
	root.PrintHelp()
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func readInput(file, data string) (string, error) {
	if file == "" {
		if data == "" {
			return "", argp.ShowUsage
		}
		return data, nil
	} else if data != "" {
		return "", fmt.Errorf("pass either path data or a file, not both")
	}

	var b []byte
	var err error
	if file == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return "", errors.Wrap(err, "read path data")
	}
	return strings.TrimSpace(string(b)), nil
}

// setup loads the configuration and path data, and returns an interpreter that logs to stderr.
func setup(config string, verbose bool, file, data string) (Config, *canvas.Interpreter, string, error) {
	cfg, err := LoadConfig(config)
	if err != nil {
		return cfg, nil, "", err
	}
	d, err := readInput(file, data)
	if err != nil {
		return cfg, nil, "", err
	}

	interp := canvas.NewInterpreter(nil)
	interp.Logger = newLogger(verbose)
	interp.Logger.Debug().Str("Method", "setup").Int("Precision", cfg.Precision).Float64("Resolution", cfg.Resolution).Int("Length", len(d)).Msg("loaded")
	return cfg, interp, d, nil
}

// opPrinter is a Pather that prints every operation on its own line.
type opPrinter struct {
	w io.Writer
}

func (p opPrinter) MoveTo(x, y float64) {
	fmt.Fprintln(p.w, canvas.PathOp{Cmd: canvas.MoveToCmd, End: canvas.Point{X: x, Y: y}})
}

func (p opPrinter) LineTo(x, y float64) {
	fmt.Fprintln(p.w, canvas.PathOp{Cmd: canvas.LineToCmd, End: canvas.Point{X: x, Y: y}})
}

func (p opPrinter) QuadTo(cpx, cpy, x, y float64) {
	fmt.Fprintln(p.w, canvas.PathOp{Cmd: canvas.QuadToCmd, CP1: canvas.Point{X: cpx, Y: cpy}, End: canvas.Point{X: x, Y: y}})
}

func (p opPrinter) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	fmt.Fprintln(p.w, canvas.PathOp{Cmd: canvas.CubeToCmd, CP1: canvas.Point{X: cpx1, Y: cpy1}, CP2: canvas.Point{X: cpx2, Y: cpy2}, End: canvas.Point{X: x, Y: y}})
}

func (p opPrinter) Close() {
	fmt.Fprintln(p.w, canvas.PathOp{Cmd: canvas.CloseCmd})
}

func (cmd *Ops) Run() error {
	cfg, interp, d, err := setup(cmd.Config, cmd.Verbose, cmd.File, cmd.Data)
	if err != nil {
		return err
	}
	canvas.Precision = cfg.Precision

	tokens, err := canvas.TokenizeSVGPath(d)
	if err != nil {
		return err
	}
	return interp.Interpret(tokens, opPrinter{os.Stdout})
}

func (cmd *Tokens) Run() error {
	cfg, interp, d, err := setup(cmd.Config, cmd.Verbose, cmd.File, cmd.Data)
	if err != nil {
		return err
	}
	canvas.Precision = cfg.Precision

	tokens, err := canvas.TokenizeSVGPath(d)
	if err != nil {
		return err
	}
	interp.Logger.Debug().Str("Method", "Tokens").Int("Tokens", len(tokens)).Msg("tokenized")
	for _, tok := range tokens {
		fmt.Printf("%d\t%v\n", tok.Offset, tok)
	}
	return nil
}

func (cmd *SVG) Run() error {
	cfg, interp, d, err := setup(cmd.Config, cmd.Verbose, cmd.File, cmd.Data)
	if err != nil {
		return err
	}
	if cmd.Precision != 0 {
		cfg.Precision = cmd.Precision
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	canvas.Precision = cfg.Precision

	tokens, err := canvas.TokenizeSVGPath(d)
	if err != nil {
		return err
	}
	p := &canvas.Path{}
	if err := interp.Interpret(tokens, p); err != nil {
		return err
	}
	fmt.Println(p.ToSVG())
	return nil
}

func (cmd *Render) Run() error {
	if cmd.Output == "" {
		return argp.ShowUsage
	}
	cfg, interp, d, err := setup(cmd.Config, cmd.Verbose, cmd.File, cmd.Data)
	if err != nil {
		return err
	}

	opts := rasterizer.Options{
		Resolution:  cfg.Resolution,
		Margin:      cfg.Margin,
		StrokeWidth: cfg.StrokeWidth,
	}
	if cmd.Resolution != 0.0 {
		opts.Resolution = cmd.Resolution
	}
	if cmd.Margin != 0.0 {
		opts.Margin = cmd.Margin
	}
	if cmd.Stroke != 0.0 {
		opts.StrokeWidth = cmd.Stroke
	}
	if opts.Resolution <= 0.0 || opts.Margin < 0.0 || opts.StrokeWidth < 0.0 {
		return fmt.Errorf("resolution must be positive, margin and stroke width non-negative")
	}
	if opts.Fill, err = parseColor(cfg.Fill); err != nil {
		return err
	}
	if cfg.Background != "" {
		if opts.Background, err = parseColor(cfg.Background); err != nil {
			return err
		}
	}

	vecOpts := gonumplot.Options{
		Margin:      opts.Margin,
		Color:       opts.Fill,
		StrokeWidth: opts.StrokeWidth,
	}

	var writer func(io.Writer, *canvas.Path) error
	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".png":
		writer = rasterizer.PNGWriter(opts)
	case ".tif", ".tiff":
		writer = rasterizer.TIFFWriter(opts, &tiff.Options{Compression: tiff.Deflate})
	case ".jpg", ".jpeg":
		writer = rasterizer.JPGWriter(opts, &jpeg.Options{Quality: 90})
	case ".gif":
		writer = rasterizer.GIFWriter(opts, &gif.Options{NumColors: 256})
	case ".pdf":
		writer = gonumplot.PDFWriter(vecOpts)
	case ".svg":
		writer = gonumplot.SVGWriter(vecOpts)
	case ".eps":
		writer = gonumplot.EPSWriter(vecOpts)
	default:
		return fmt.Errorf("unknown image format %q", ext)
	}

	tokens, err := canvas.TokenizeSVGPath(d)
	if err != nil {
		return err
	}
	p := &canvas.Path{}
	if err := interp.Interpret(tokens, p); err != nil {
		return err
	}

	if err := writeFile(cmd.Output, writer, p); err != nil {
		return err
	}
	interp.Logger.Info().Str("Method", "Render").Str("Output", cmd.Output).Str("Bounds", p.Bounds().String()).Msg("written")
	return nil
}

// writeFile encodes p into filename and removes the file again if encoding fails.
func writeFile(filename string, writer func(io.Writer, *canvas.Path) error, p *canvas.Path) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := writer(f, p); err != nil {
		f.Close()
		os.Remove(filename)
		return errors.Wrap(err, "encode image")
	}
	return errors.Wrap(f.Close(), "close output")
}
