package canvas

import (
	"math"
	"strings"
)

// PathCmd is the kind of a path command.
type PathCmd int

// Path command kinds. ArcToCmd is never stored in a Path, arcs are always converted to cubic Béziers; it only appears as the kind of the last interpreted instruction.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	ArcToCmd
	CloseCmd
)

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "M"
	case LineToCmd:
		return "L"
	case QuadToCmd:
		return "Q"
	case CubeToCmd:
		return "C"
	case ArcToCmd:
		return "A"
	case CloseCmd:
		return "z"
	}
	return "?"
}

// cmdLen returns the number of values stored for a command.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case CubeToCmd:
		return 6
	}
	return 0
}

// Pather is a drawing surface that receives primitive path operations in order. Path implements Pather, as do the rasterizer and renderer adapters.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cpx, cpy, x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Close()
}

// PathOp is a single primitive drawing operation. CP1 is set for QuadToCmd and CubeToCmd, CP2 only for CubeToCmd, End for all but CloseCmd.
type PathOp struct {
	Cmd      PathCmd
	CP1, CP2 Point
	End      Point
}

// DrawTo calls the corresponding method on p.
func (op PathOp) DrawTo(p Pather) {
	switch op.Cmd {
	case MoveToCmd:
		p.MoveTo(op.End.X, op.End.Y)
	case LineToCmd:
		p.LineTo(op.End.X, op.End.Y)
	case QuadToCmd:
		p.QuadTo(op.CP1.X, op.CP1.Y, op.End.X, op.End.Y)
	case CubeToCmd:
		p.CubeTo(op.CP1.X, op.CP1.Y, op.CP2.X, op.CP2.Y, op.End.X, op.End.Y)
	case CloseCmd:
		p.Close()
	}
}

func (op PathOp) String() string {
	sb := strings.Builder{}
	op.writeSVG(&sb)
	return sb.String()
}

func (op PathOp) writeSVG(sb *strings.Builder) {
	sb.WriteString(op.Cmd.String())
	var pts []Point
	switch op.Cmd {
	case MoveToCmd, LineToCmd:
		pts = []Point{op.End}
	case QuadToCmd:
		pts = []Point{op.CP1, op.End}
	case CubeToCmd:
		pts = []Point{op.CP1, op.CP2, op.End}
	}
	for i, pt := range pts {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(pt.X).String())
		sb.WriteByte(' ')
		sb.WriteString(num(pt.Y).String())
	}
}

////////////////////////////////////////////////////////////////

// Path records primitive path operations. It is the default Pather used by ParseSVGPath.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// Empty returns true if p has no drawing commands, ie. it is empty or only contains moves.
func (p *Path) Empty() bool {
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			return false
		}
	}
	return true
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Closed returns true if the last subpath of p ends with a close command.
func (p *Path) Closed() bool {
	return 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd
}

// Pos returns the current position of the path, which is the end point of the last command.
func (p *Path) Pos() (float64, float64) {
	if p.Closed() {
		return p.x0, p.y0
	}
	if 1 < len(p.d) {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// StartPos returns the start point of the current subpath, ie. the point of the last MoveTo.
func (p *Path) StartPos() (float64, float64) {
	return p.x0, p.y0
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) || len(p.d) != len(q.d) {
		return false
	}
	for i, cmd := range p.cmds {
		if cmd != q.cmds[i] {
			return false
		}
	}
	for i, f := range p.d {
		if !equal(f, q.d[i]) {
			return false
		}
	}
	return true
}

// Copy returns a copy of p.
func (p *Path) Copy() *Path {
	q := &Path{x0: p.x0, y0: p.y0}
	q.cmds = append(q.cmds, p.cmds...)
	q.d = append(q.d, p.d...)
	return q
}

// Append appends path q to p and returns a new path. A path q that does not start with a MoveTo starts at the origin.
func (p *Path) Append(q *Path) *Path {
	if q == nil || len(q.cmds) == 0 {
		return p
	}
	r := p.Copy()
	if q.cmds[0] != MoveToCmd {
		r.MoveTo(0.0, 0.0)
	}
	r.cmds = append(r.cmds, q.cmds...)
	r.d = append(r.d, q.d...)
	r.x0, r.y0 = q.x0, q.y0
	return r
}

// Translate translates the path by (x,y) in place and returns it.
func (p *Path) Translate(x, y float64) *Path {
	return p.transform(func(pt Point) Point {
		return Point{pt.X + x, pt.Y + y}
	})
}

// Scale scales the path by (x,y) relative to the origin in place and returns it.
func (p *Path) Scale(x, y float64) *Path {
	return p.transform(func(pt Point) Point {
		return Point{pt.X * x, pt.Y * y}
	})
}

func (p *Path) transform(f func(Point) Point) *Path {
	for i := 0; i+1 < len(p.d); i += 2 {
		pt := f(Point{p.d[i], p.d[i+1]})
		p.d[i], p.d[i+1] = pt.X, pt.Y
	}
	start := f(Point{p.x0, p.y0})
	p.x0, p.y0 = start.X, start.Y
	return p
}

// Bounds returns the bounding box of all points of the path, including control points.
func (p *Path) Bounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.d); i += 2 {
		xmin = math.Min(xmin, p.d[i])
		xmax = math.Max(xmax, p.d[i])
		ymin = math.Min(ymin, p.d[i+1])
		ymax = math.Max(ymax, p.d[i+1])
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a linear segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// QuadTo adds a quadratic Bézier with control point (cpx,cpy) and end point (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.cmds = append(p.cmds, QuadToCmd)
	p.d = append(p.d, cpx, cpy, x, y)
}

// CubeTo adds a cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, cpx1, cpy1, cpx2, cpy2, x, y)
}

// Close closes the current subpath, moving the position back to its start.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

////////////////////////////////////////////////////////////////

// Ops returns the recorded operations of the path.
func (p *Path) Ops() []PathOp {
	ops := make([]PathOp, 0, len(p.cmds))
	for s := p.Scanner(); s.Scan(); {
		op := PathOp{Cmd: s.Cmd()}
		switch op.Cmd {
		case QuadToCmd:
			op.CP1 = s.CP1()
		case CubeToCmd:
			op.CP1, op.CP2 = s.CP1(), s.CP2()
		}
		if op.Cmd != CloseCmd {
			op.End = s.End()
		}
		ops = append(ops, op)
	}
	return ops
}

// Replay draws the recorded operations onto another Pather.
func (p *Path) Replay(q Pather) {
	for _, op := range p.Ops() {
		op.DrawTo(q)
	}
}

// ToSVG returns the path as absolute SVG path data.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	for _, op := range p.Ops() {
		op.writeSVG(&sb)
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}
