package rings

// Polyline is an ordered run of points in drawing order. A polyline is
// closed when its last point repeats its first.
type Polyline []Point

// Closed reports whether the polyline ends where it starts.
func (pl Polyline) Closed() bool {
	return len(pl) > 2 && pl[0] == pl[len(pl)-1]
}

// Close returns pl with its first point appended, unless it is already
// closed or too short to enclose anything.
func (pl Polyline) Close() Polyline {
	if len(pl) < 2 || pl.Closed() {
		return pl
	}
	return append(pl, pl[0])
}

// Length returns the summed length of the polyline's segments.
func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl); i++ {
		l += pl[i].Distance(pl[i-1])
	}
	return l
}

// BoundingBox returns the smallest rectangle enclosing all points. The
// result is the zero Rect for an empty polyline.
func (pl Polyline) BoundingBox() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(pl[0], pl[0])
	for _, pt := range pl[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Transform returns a new polyline with aff applied to every point.
func (pl Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(pl))
	for i, pt := range pl {
		out[i] = pt.Transform(aff)
	}
	return out
}

func (pl Polyline) Clone() Polyline {
	return append(Polyline(nil), pl...)
}

// CountPoints returns the total number of points across lines.
func CountPoints(lines []Polyline) int {
	n := 0
	for _, pl := range lines {
		n += len(pl)
	}
	return n
}

// Bounds returns the bounding box of all lines.
func Bounds(lines []Polyline) Rect {
	var (
		bbox  Rect
		first = true
	)
	for _, pl := range lines {
		if len(pl) == 0 {
			continue
		}
		b := pl.BoundingBox()
		if first {
			bbox = b
			first = false
			continue
		}
		bbox = bbox.UnionPoint(Pt(b.X0, b.Y0)).UnionPoint(Pt(b.X1, b.Y1))
	}
	return bbox
}
