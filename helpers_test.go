package canvas

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// opRecorder is a Pather that records the operations it receives.
type opRecorder struct {
	ops []PathOp
}

func (r *opRecorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, PathOp{Cmd: MoveToCmd, End: Point{x, y}})
}

func (r *opRecorder) LineTo(x, y float64) {
	r.ops = append(r.ops, PathOp{Cmd: LineToCmd, End: Point{x, y}})
}

func (r *opRecorder) QuadTo(cpx, cpy, x, y float64) {
	r.ops = append(r.ops, PathOp{Cmd: QuadToCmd, CP1: Point{cpx, cpy}, End: Point{x, y}})
}

func (r *opRecorder) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.ops = append(r.ops, PathOp{Cmd: CubeToCmd, CP1: Point{cpx1, cpy1}, CP2: Point{cpx2, cpy2}, End: Point{x, y}})
}

func (r *opRecorder) Close() {
	r.ops = append(r.ops, PathOp{Cmd: CloseCmd})
}

func (r *opRecorder) count(cmd PathCmd) int {
	n := 0
	for _, op := range r.ops {
		if op.Cmd == cmd {
			n++
		}
	}
	return n
}

func opM(x, y float64) PathOp {
	return PathOp{Cmd: MoveToCmd, End: Point{x, y}}
}

func opL(x, y float64) PathOp {
	return PathOp{Cmd: LineToCmd, End: Point{x, y}}
}

func opQ(cpx, cpy, x, y float64) PathOp {
	return PathOp{Cmd: QuadToCmd, CP1: Point{cpx, cpy}, End: Point{x, y}}
}

func opC(cpx1, cpy1, cpx2, cpy2, x, y float64) PathOp {
	return PathOp{Cmd: CubeToCmd, CP1: Point{cpx1, cpy1}, CP2: Point{cpx2, cpy2}, End: Point{x, y}}
}

func opZ() PathOp {
	return PathOp{Cmd: CloseCmd}
}

// testOps compares operations with a tolerance on the coordinates.
func testOps(t *testing.T, got, want []PathOp) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0.0, 1e-9), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

// drawOps tokenizes and interprets d, and returns the recorded operations.
func drawOps(t *testing.T, d string) []PathOp {
	t.Helper()
	r := &opRecorder{}
	if err := DrawSVGPath(r, d); err != nil {
		t.Fatalf("%s: %v", d, err)
	}
	return r.ops
}

func RandomPath(n int, closed bool) *Path {
	p := &Path{}
	if 0 < n {
		p.MoveTo(rand.NormFloat64(), rand.NormFloat64())
		for i := 1; i < n; i++ {
			switch rand.IntN(3) {
			case 0:
				p.LineTo(rand.NormFloat64(), rand.NormFloat64())
			case 1:
				p.QuadTo(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			case 2:
				p.CubeTo(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
			}
		}
		if closed {
			p.Close()
		}
	}
	return p
}
