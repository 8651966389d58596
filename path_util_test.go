package canvas

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestArcToCenter(t *testing.T) {
	var tts = []struct {
		x1, y1       float64
		rx, ry, phi  float64
		large, sweep bool
		x2, y2       float64

		cx, cy, rx2, ry2, theta, delta float64
	}{
		{0, 0, 1, 1, 0, false, true, 2, 0, 1, 0, 1, 1, math.Pi, math.Pi},
		{0, 0, 1, 1, 0, false, false, 2, 0, 1, 0, 1, 1, math.Pi, -math.Pi},
		{0, 0, 0.5, 0.5, 0, false, true, 2, 0, 1, 0, 1, 1, math.Pi, math.Pi},
		{0, 0, 10, 10, 0, false, false, 10, 10, 10, 0, 10, 10, math.Pi, -0.5 * math.Pi},
		{0, 0, 10, 10, 0, true, false, 10, 10, 0, 10, 10, 10, -0.5 * math.Pi, -1.5 * math.Pi},
		{0, 0, 2, 1, 0.5 * math.Pi, false, true, 0, 4, 0, 2, 2, 1, math.Pi, math.Pi},
	}
	for _, tt := range tts {
		cx, cy, rx, ry, theta, delta := arcToCenter(tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2)
		test.FloatDiff(t, cx, tt.cx, 1e-9, "cx")
		test.FloatDiff(t, cy, tt.cy, 1e-9, "cy")
		test.FloatDiff(t, rx, tt.rx2, 1e-9, "rx")
		test.FloatDiff(t, ry, tt.ry2, 1e-9, "ry")
		test.FloatDiff(t, math.Cos(theta), math.Cos(tt.theta), 1e-9, "theta")
		test.FloatDiff(t, math.Sin(theta), math.Sin(tt.theta), 1e-9, "theta")
		test.FloatDiff(t, delta, tt.delta, 1e-9, "delta")
	}
}

func TestArcToCubicBeziers(t *testing.T) {
	Epsilon = 1e-9
	defer func() { Epsilon = 1e-10 }()

	k := 4.0 / 3.0 * math.Tan(math.Pi/8.0)
	test.Float(t, k, 0.5522847498307936)

	segs, err := ArcToCubicBeziers(Point{0, 0}, Point{2, 0}, 1, 1, 0, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, segs[0].CP1, Point{0, -k})
	test.T(t, segs[0].CP2, Point{1 - k, -1})
	test.T(t, segs[0].End, Point{1, -1})
	test.T(t, segs[1].CP1, Point{1 + k, -1})
	test.T(t, segs[1].CP2, Point{2, -k})
	test.That(t, segs[1].End == Point{2, 0}, "last end point must be exact")

	// opposite sweep goes through the other side
	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{2, 0}, 1, 1, 0, false, false)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, segs[0].End, Point{1, 1})

	// radii too small are scaled up
	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{2, 0}, 0.5, 0.5, 0, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, segs[0].End, Point{1, -1})

	// quarter circle is a single segment
	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{10, 10}, 10, 10, 0, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 1)
	test.T(t, segs[0].CP1, Point{10 * k, 0})
	test.T(t, segs[0].CP2, Point{10, 10 - 10*k})

	// large arc takes three quarters
	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{10, 10}, 10, 10, 0, true, false)
	test.Error(t, err)
	test.T(t, len(segs), 3)
	test.That(t, segs[2].End == Point{10, 10})

	// rotation in degrees
	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{0, 4}, 2, 1, 90, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, segs[0].End, Point{1, 2})

	// negative radii are taken as absolute
	segs2, err := ArcToCubicBeziers(Point{0, 0}, Point{0, 4}, -2, -1, 90, false, true)
	test.Error(t, err)
	test.T(t, segs2, segs)
}

func TestArcToCubicBeziersDegenerate(t *testing.T) {
	segs, err := ArcToCubicBeziers(Point{1, 1}, Point{1, 1}, 5, 5, 0, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 0)

	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{3, 6}, 0, 5, 0, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 1)
	test.T(t, segs[0].CP1, Point{1, 2})
	test.T(t, segs[0].CP2, Point{2, 4})
	test.T(t, segs[0].End, Point{3, 6})

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = ArcToCubicBeziers(Point{0, 0}, Point{3, 6}, f, 5, 0, false, true)
		test.That(t, err != nil)
		_, err = ArcToCubicBeziers(Point{0, f}, Point{3, 6}, 1, 5, 0, false, true)
		test.That(t, err != nil)
	}
}

func TestArcOnEllipse(t *testing.T) {
	// cubic approximations of an arc lie on the ellipse at their end points and close to it halfway
	start, end := Point{3, 0}, Point{-3, 0}
	segs, err := ArcToCubicBeziers(start, end, 3, 2, 0, true, true)
	test.Error(t, err)
	test.T(t, len(segs), 2)

	p0 := start
	for _, seg := range segs {
		x, y := seg.End.X, seg.End.Y
		test.FloatDiff(t, x*x/9+y*y/4, 1.0, 1e-9)

		// de Casteljau at t=0.5
		mid := p0.Mul(0.125).Add(seg.CP1.Mul(0.375)).Add(seg.CP2.Mul(0.375)).Add(seg.End.Mul(0.125))
		test.FloatDiff(t, mid.X*mid.X/9+mid.Y*mid.Y/4, 1.0, 1e-3)
		p0 = seg.End
	}
}

func TestArcToCubicBeziersExtremeRadii(t *testing.T) {
	Epsilon = 1e-9
	defer func() { Epsilon = 1e-10 }()

	// huge radii give a flat arc
	var tts = []struct {
		rx, ry float64
	}{
		{1e80, 1e80},
		{1e100, 1e100},
		{1e160, 1},
		{1e300, 1e300},
	}
	for _, tt := range tts {
		segs, err := ArcToCubicBeziers(Point{0, 0}, Point{10, 0}, tt.rx, tt.ry, 0, false, true)
		test.Error(t, err)
		test.T(t, len(segs), 1)
		test.T(t, segs[0].CP1, Point{10.0 / 3.0, 0}, num(tt.rx), num(tt.ry))
		test.T(t, segs[0].CP2, Point{20.0 / 3.0, 0}, num(tt.rx), num(tt.ry))
		test.That(t, segs[0].End == Point{10, 0})
	}

	// tiny radii are scaled up to a half circle
	segs, err := ArcToCubicBeziers(Point{0, 0}, Point{10, 0}, 1e-320, 1e-320, 0, false, true)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, segs[0].End, Point{5, -5})
	test.That(t, segs[1].End == Point{10, 0})

	segs, err = ArcToCubicBeziers(Point{0, 0}, Point{10, 0}, 1e-200, 1e-200, 0, true, false)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, segs[0].End, Point{5, 5})

	// ellipses that cannot be represented return an error
	_, err = ArcToCubicBeziers(Point{0, 0}, Point{10, 0}, 1e-320, 1, 0, false, true)
	test.That(t, err != nil)
	_, err = ArcToCubicBeziers(Point{-1e308, 0}, Point{1e308, 0}, 1, 1, 0, false, true)
	test.That(t, err != nil)
	_, err = ArcToCubicBeziers(Point{0, 0}, Point{5e-324, 0}, 1e300, 1e300, 0, false, true)
	test.That(t, err != nil)
}
