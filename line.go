package rings

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, and that point's parameter t ∈ [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.DistanceSquared(l.P0), 0.0
	} else if dotp >= dSquared {
		return pt.DistanceSquared(l.P1), 1.0
	} else {
		t := dotp / dSquared
		return pt.DistanceSquared(l.Eval(t)), t
	}
}

// Clip trims the segment to the closed rectangle r using the Liang–Barsky
// algorithm. It reports false if no part of the segment lies inside r.
//
// Endpoints already inside r are returned unchanged, so clipping an
// already-clipped segment is exact.
func (l Line) Clip(r Rect) (Line, bool) {
	r = r.Abs()
	d := l.P1.Sub(l.P0)
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	if !clip(-d.X, l.P0.X-r.X0) ||
		!clip(d.X, r.X1-l.P0.X) ||
		!clip(-d.Y, l.P0.Y-r.Y0) ||
		!clip(d.Y, r.Y1-l.P0.Y) {
		return Line{}, false
	}
	out := l
	if t0 > 0 {
		out.P0 = clampTo(r, l.Eval(t0))
	}
	if t1 < 1 {
		out.P1 = clampTo(r, l.Eval(t1))
	}
	return out, true
}

// clampTo snaps rounding error from the parametric evaluation back onto r.
func clampTo(r Rect, pt Point) Point {
	return Point{
		X: min(max(pt.X, r.X0), r.X1),
		Y: min(max(pt.Y, r.Y0), r.Y1),
	}
}
