package rings

import "testing"

func TestSimplifyCollinear(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 0.0001), Pt(3, 0), Pt(4, 0)}
	diff(t, Polyline{Pt(0, 0), Pt(4, 0)}, SimplifyPolyline(pl, 0.01))
}

func TestSimplifyKeepsCorners(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(2, 1), Pt(2, 2)}
	diff(t, Polyline{Pt(0, 0), Pt(2, 0), Pt(2, 2)}, SimplifyPolyline(pl, 0.01))
}

func TestSimplifyClosed(t *testing.T) {
	var pl Polyline
	c := Circle{Center: Pt(5, 5), Radius: 2}
	n := c.SampleCount(50)
	for i := 0; i < n; i++ {
		pl = append(pl, c.Eval(2*3.141592653589793*float64(i)/float64(n)))
	}
	pl = pl.Close()
	got := SimplifyPolyline(pl, 0.01)
	if !got.Closed() {
		t.Error("simplified ring is not closed")
	}
	if len(got) >= len(pl) {
		t.Errorf("no points removed: %d of %d", len(got), len(pl))
	}
	for _, pt := range pl {
		best := -1.0
		for i := 1; i < len(got); i++ {
			d, _ := Line{got[i-1], got[i]}.Nearest(pt)
			if best < 0 || d < best {
				best = d
			}
		}
		if best > 0.01*0.01+1e-12 {
			t.Fatalf("point %v is %v from the simplified ring", pt, best)
		}
	}
}

func TestSimplifyNoop(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(1, 1)}
	diff(t, pl, SimplifyPolyline(pl, 1))
	pl = Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 0)}
	diff(t, pl, SimplifyPolyline(pl, 0))
}
