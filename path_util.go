package canvas

import (
	"fmt"
	"math"
)

// CubicSegment is a cubic Bézier that starts at the end of the previous segment.
type CubicSegment struct {
	CP1, CP2, End Point
}

// ArcFunc converts an elliptical arc in endpoint parameterization to a sequence of cubic Béziers, the last ending at end. The rotation rot is in degrees.
type ArcFunc func(start, end Point, rx, ry, rot float64, large, sweep bool) ([]CubicSegment, error)

var _ ArcFunc = ArcToCubicBeziers

// ArcToCubicBeziers converts an elliptical arc to cubic Béziers, using one Bézier per quarter turn or less. Radii that are too small to span start and end are scaled up. An arc with a zero radius is a straight line, and an arc between coincident points is omitted.
func ArcToCubicBeziers(start, end Point, rx, ry, rot float64, large, sweep bool) ([]CubicSegment, error) {
	for _, f := range []float64{start.X, start.Y, end.X, end.Y, rx, ry, rot} {
		if !isFinite(f) {
			return nil, fmt.Errorf("non-finite arc parameter %v", f)
		}
	}
	if start == end {
		return nil, nil
	}

	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0.0 || ry == 0.0 {
		return []CubicSegment{{start.Interpolate(end, 1.0/3.0), start.Interpolate(end, 2.0/3.0), end}}, nil
	}

	phi := rot * math.Pi / 180.0
	_, _, rx, ry, theta, delta := arcToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
	if !isFinite(rx) || !isFinite(ry) || !isFinite(theta) || !isFinite(delta) {
		return nil, fmt.Errorf("arc radii %v,%v out of range for end points %v and %v", num(rx), num(ry), start, end)
	}

	// a ratio of 1.0000001 would otherwise add a superfluous segment
	n := math.Ceil(math.Abs(delta)/(math.Pi/2.0) - 1e-7)
	if n < 1.0 {
		n = 1.0
	}
	dtheta := delta / n
	k := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	sinphi, cosphi := math.Sincos(phi)
	rotate := func(x, y float64) Point {
		return Point{cosphi*x - sinphi*y, sinphi*x + cosphi*y}
	}
	deriv := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		return rotate(-rx*sintheta, ry*costheta)
	}
	// chord between two angles on the ellipse
	chord := func(theta0, theta1 float64) Point {
		sinm, cosm := math.Sincos((theta0 + theta1) / 2.0)
		d := 2.0 * math.Sin((theta1-theta0)/2.0)
		return rotate(-rx*sinm*d, ry*cosm*d)
	}

	segs := make([]CubicSegment, 0, int(n))
	p0 := start
	for i := 0; i < int(n); i++ {
		theta1 := theta + dtheta
		p3 := p0.Add(chord(theta, theta1))
		cp1 := p0.Add(deriv(theta).Mul(k))
		cp2 := p3.Sub(deriv(theta1).Mul(k))
		if i == int(n)-1 {
			p3 = end
		}
		for _, f := range []float64{cp1.X, cp1.Y, cp2.X, cp2.Y, p3.X, p3.Y} {
			if !isFinite(f) {
				return nil, fmt.Errorf("arc radii %v,%v out of range for end points %v and %v", num(rx), num(ry), start, end)
			}
		}
		segs = append(segs, CubicSegment{cp1, cp2, p3})
		p0, theta = p3, theta1
	}
	return segs, nil
}

// arcToCenter converts an arc from endpoint to center parameterization. It returns the center, the radii scaled up if they were too small, the start angle and the signed sweep angle, all angles in radians. Results are not finite if the radii are too far apart to represent the ellipse.
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// (a,b) is the start point on the unit circle, with radii first divided by the largest one
	t := math.Max(rx, ry)
	a, b := x1p/(rx/t), y1p/(ry/t)
	h := math.Hypot(a, b)
	coef := 0.0
	if t < h {
		// radii too small, the center is the midpoint
		rx, ry = rx/t*h, ry/t*h
		a, b = a/h, b/h
	} else {
		a, b, h = a/t, b/t, h/t
		coef = math.Sqrt(math.Max(0.0, (1.0-h)*(1.0+h))) / h
		if large == sweep {
			coef = -coef
		}
	}
	cxp := coef * rx * b
	cyp := -coef * ry * a
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	ux, uy := a-coef*b, b+coef*a
	vx, vy := -a-coef*b, -b+coef*a

	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta, delta
}
