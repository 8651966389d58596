package canvas

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestNum(t *testing.T) {
	test.String(t, num(0.0).String(), "0")
	test.String(t, num(10.0).String(), "10")
	test.String(t, num(-2.0).String(), "-2")
	test.String(t, num(0.5).String(), ".5")
	test.String(t, num(1.0/3.0).String(), ".33333333")
	test.String(t, num(math.Inf(1)).String(), "+Inf")
	test.String(t, num(math.NaN()).String(), "NaN")
}

func TestIsFinite(t *testing.T) {
	test.That(t, isFinite(0.0))
	test.That(t, isFinite(-1e300))
	test.That(t, !isFinite(math.NaN()))
	test.That(t, !isFinite(math.Inf(1)))
	test.That(t, !isFinite(math.Inf(-1)))
}

func TestPoint(t *testing.T) {
	Epsilon = 0.01
	defer func() { Epsilon = 1e-10 }()

	p := Point{3, 4}
	test.That(t, p.Equals(Point{3.001, 3.999}))
	test.That(t, !p.Equals(Point{3.1, 4}))
	test.T(t, p.Add(Point{1, 2}), Point{4, 6})
	test.T(t, p.Sub(Point{1, 2}), Point{2, 2})
	test.T(t, p.Mul(2), Point{6, 8})
	test.T(t, p.Reflect(Point{1, 1}), Point{5, 7})
	test.T(t, p.Reflect(p), p)
	test.T(t, p.Interpolate(Point{5, 8}, 0.5), Point{4, 6})
	test.T(t, p.Interpolate(Point{5, 8}, 0.0), p)
	test.String(t, p.String(), "(3,4)")
}

func TestRect(t *testing.T) {
	r := Rect{0, 0, 5, 5}
	test.String(t, r.String(), "(0,0)-(5,5)")
}
