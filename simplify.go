package rings

// SimplifyPolyline removes points that lie within tolerance of the line
// through their neighbours, using the Ramer–Douglas–Peucker algorithm. The
// first and last points are always kept, so closed polylines stay closed.
func SimplifyPolyline(pl Polyline, tolerance float64) Polyline {
	if len(pl) < 3 || !(tolerance > 0) {
		return pl
	}
	keep := make([]bool, len(pl))
	keep[0] = true
	keep[len(pl)-1] = true

	tol2 := tolerance * tolerance
	type span struct{ lo, hi int }
	stack := []span{{0, len(pl) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.hi-s.lo < 2 {
			continue
		}
		l := Line{pl[s.lo], pl[s.hi]}
		worst, worstDist := -1, tol2
		for i := s.lo + 1; i < s.hi; i++ {
			if d, _ := l.Nearest(pl[i]); d > worstDist {
				worst, worstDist = i, d
			}
		}
		if worst < 0 {
			continue
		}
		keep[worst] = true
		stack = append(stack, span{s.lo, worst}, span{worst, s.hi})
	}

	out := make(Polyline, 0, len(pl))
	for i, pt := range pl {
		if keep[i] {
			out = append(out, pt)
		}
	}
	return out
}
