package rings

// ClipPolylines trims every polyline to the closed rectangle box. A polyline
// that leaves and re-enters the box is split into several. Pieces with
// fewer than two points or no length are dropped.
//
// Clipping is idempotent: clipping the result again with the same box
// returns an identical list.
func ClipPolylines(lines []Polyline, box Rect) []Polyline {
	box = box.Abs()
	var out []Polyline
	for _, pl := range lines {
		out = appendClipped(out, pl, box)
	}
	return out
}

func appendClipped(out []Polyline, pl Polyline, box Rect) []Polyline {
	var cur Polyline
	flush := func() {
		if len(cur) >= 2 && cur.Length() > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 1; i < len(pl); i++ {
		seg, ok := Line{pl[i-1], pl[i]}.Clip(box)
		if !ok {
			flush()
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] != seg.P0 {
			flush()
		}
		if len(cur) == 0 {
			cur = append(cur, seg.P0)
		}
		cur = append(cur, seg.P1)
	}
	flush()
	return out
}
