package canvas

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// instruction is the kind of the last interpreted instruction together with the control point needed to reflect it. ctrl is the second control point for CubeToCmd and the control point for QuadToCmd, and unused otherwise.
type instruction struct {
	cmd  PathCmd
	ctrl Point
}

type pathState struct {
	pos     Point
	start   Point // start of the open subpath, valid when open is set
	open    bool
	started bool // set after the first move
	last    instruction
}

// point returns (x,y) made absolute when rel is set. All pairs of one instruction are relative to the same position.
func (st pathState) point(x, y float64, rel bool) Point {
	if rel {
		return Point{st.pos.X + x, st.pos.Y + y}
	}
	return Point{x, y}
}

// openSubpath starts an implicit subpath at the current position if none is open.
func (st *pathState) openSubpath() {
	if !st.open {
		st.start = st.pos
		st.open = true
	}
}

// stepFunc handles one instruction. It returns the new state and appends the operations it emits to ops. The state passed in is not modified.
type stepFunc func(st pathState, args []float64, rel bool, ops []PathOp, arc ArcFunc) (pathState, []PathOp, error)

var pathSteps = map[byte]stepFunc{
	'm': stepMoveTo,
	'l': stepLineTo,
	'h': stepHLineTo,
	'v': stepVLineTo,
	'c': stepCubeTo,
	's': stepSmoothCubeTo,
	'q': stepQuadTo,
	't': stepSmoothQuadTo,
	'a': stepArcTo,
	'z': stepClose,
}

func stepMoveTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	end := st.point(args[0], args[1], rel)
	st.pos, st.start = end, end
	st.open, st.started = true, true
	st.last = instruction{cmd: MoveToCmd}
	return st, append(ops, PathOp{Cmd: MoveToCmd, End: end}), nil
}

func lineTo(st pathState, end Point, ops []PathOp) (pathState, []PathOp, error) {
	st.openSubpath()
	st.pos = end
	st.last = instruction{cmd: LineToCmd}
	return st, append(ops, PathOp{Cmd: LineToCmd, End: end}), nil
}

func stepLineTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	return lineTo(st, st.point(args[0], args[1], rel), ops)
}

func stepHLineTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	x := args[0]
	if rel {
		x += st.pos.X
	}
	return lineTo(st, Point{x, st.pos.Y}, ops)
}

func stepVLineTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	y := args[0]
	if rel {
		y += st.pos.Y
	}
	return lineTo(st, Point{st.pos.X, y}, ops)
}

func cubeTo(st pathState, cp1, cp2, end Point, ops []PathOp) (pathState, []PathOp, error) {
	st.openSubpath()
	st.pos = end
	st.last = instruction{cmd: CubeToCmd, ctrl: cp2}
	return st, append(ops, PathOp{Cmd: CubeToCmd, CP1: cp1, CP2: cp2, End: end}), nil
}

func stepCubeTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	cp1 := st.point(args[0], args[1], rel)
	cp2 := st.point(args[2], args[3], rel)
	end := st.point(args[4], args[5], rel)
	return cubeTo(st, cp1, cp2, end, ops)
}

func stepSmoothCubeTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	cp1 := st.pos
	if st.last.cmd == CubeToCmd {
		cp1 = st.pos.Reflect(st.last.ctrl)
	}
	cp2 := st.point(args[0], args[1], rel)
	end := st.point(args[2], args[3], rel)
	return cubeTo(st, cp1, cp2, end, ops)
}

func quadTo(st pathState, cp, end Point, ops []PathOp) (pathState, []PathOp, error) {
	st.openSubpath()
	st.pos = end
	st.last = instruction{cmd: QuadToCmd, ctrl: cp}
	return st, append(ops, PathOp{Cmd: QuadToCmd, CP1: cp, End: end}), nil
}

func stepQuadTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	cp := st.point(args[0], args[1], rel)
	end := st.point(args[2], args[3], rel)
	return quadTo(st, cp, end, ops)
}

func stepSmoothQuadTo(st pathState, args []float64, rel bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	cp := st.pos
	if st.last.cmd == QuadToCmd {
		cp = st.pos.Reflect(st.last.ctrl)
	}
	end := st.point(args[0], args[1], rel)
	return quadTo(st, cp, end, ops)
}

func arcFlag(f float64) (bool, error) {
	if f != 0.0 && f != 1.0 {
		return false, &MalformedPathError{Msg: fmt.Sprintf("bad arc flag %v", num(f))}
	}
	return f == 1.0, nil
}

func stepArcTo(st pathState, args []float64, rel bool, ops []PathOp, arc ArcFunc) (pathState, []PathOp, error) {
	large, err := arcFlag(args[3])
	if err != nil {
		return st, ops, err
	}
	sweep, err := arcFlag(args[4])
	if err != nil {
		return st, ops, err
	}
	end := st.point(args[5], args[6], rel)

	segs, err := arc(st.pos, end, args[0], args[1], args[2], large, sweep)
	if err != nil {
		return st, ops, &ArcConversionError{Err: err}
	}
	st.openSubpath()
	for _, seg := range segs {
		ops = append(ops, PathOp{Cmd: CubeToCmd, CP1: seg.CP1, CP2: seg.CP2, End: seg.End})
	}
	st.pos = end
	st.last = instruction{cmd: ArcToCmd}
	return st, ops, nil
}

func stepClose(st pathState, _ []float64, _ bool, ops []PathOp, _ ArcFunc) (pathState, []PathOp, error) {
	if st.open {
		st.pos = st.start
	}
	st.open = false
	st.last = instruction{cmd: CloseCmd}
	return st, append(ops, PathOp{Cmd: CloseCmd}), nil
}

////////////////////////////////////////////////////////////////

// Interpreter draws path tokens onto a Pather. It keeps no state between calls and may be used concurrently.
type Interpreter struct {
	Arc         ArcFunc
	Logger      zerolog.Logger
	LogOutput   io.Writer
	initLogOnce sync.Once
}

// NewInterpreter returns an interpreter that converts arcs using arc, or ArcToCubicBeziers if arc is nil.
func NewInterpreter(arc ArcFunc) *Interpreter {
	if arc == nil {
		arc = ArcToCubicBeziers
	}
	return &Interpreter{Arc: arc}
}

// Log returns the logger, initializing it lazily if LogOutput is set.
func (in *Interpreter) Log() *zerolog.Logger {
	if in.LogOutput != nil {
		in.initLogOnce.Do(func() {
			in.Logger = zerolog.New(in.LogOutput).With().Timestamp().Logger()
		})
	}
	return &in.Logger
}

// Interpret processes the tokens in order and draws the resulting operations onto p. It stops at the first error; operations of earlier tokens have been drawn already, but none of the failing token.
func (in *Interpreter) Interpret(tokens []PathToken, p Pather) error {
	arc := in.Arc
	if arc == nil {
		arc = ArcToCubicBeziers
	}

	st := pathState{}
	ops := make([]PathOp, 0, 4)
	for i, tok := range tokens {
		arity := cmdArity(tok.Cmd)
		if arity < 0 {
			err := &MalformedPathError{tok.Offset, fmt.Sprintf("unknown command %q", tok.Cmd)}
			in.Log().Error().Str("Method", "Interpret").Int("Index", i).Err(err).Msg("bad token")
			return err
		} else if len(tok.Args) != arity {
			err := &MalformedPathError{tok.Offset, fmt.Sprintf("%c takes %d operands, got %d", tok.Cmd, arity, len(tok.Args))}
			in.Log().Error().Str("Method", "Interpret").Int("Index", i).Err(err).Msg("bad token")
			return err
		}

		lower := tok.Cmd | 0x20
		if !st.started && lower != 'm' {
			err := &OutOfSequenceError{i, tok.Offset, tok.Cmd}
			in.Log().Error().Str("Method", "Interpret").Int("Index", i).Err(err).Msg("no current point")
			return err
		}

		var err error
		st, ops, err = pathSteps[lower](st, tok.Args, tok.Cmd == lower, ops[:0], arc)
		if err != nil {
			switch e := err.(type) {
			case *MalformedPathError:
				e.Offset = tok.Offset
			case *ArcConversionError:
				e.Index, e.Offset = i, tok.Offset
			}
			in.Log().Error().Str("Method", "Interpret").Int("Index", i).Err(err).Msg("command failed")
			return err
		}
		in.Log().Debug().Str("Method", "Interpret").Int("Index", i).Str("Cmd", string(tok.Cmd)).Int("Ops", len(ops)).Msg("command")

		for _, op := range ops {
			op.DrawTo(p)
		}
	}
	return nil
}
