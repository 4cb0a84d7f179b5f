package rings

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClipPolylinesSplits(t *testing.T) {
	box := Rect{0, 0, 10, 10}
	// Leaves through the right edge and comes back.
	pl := Polyline{Pt(5, 2), Pt(15, 2), Pt(15, 8), Pt(5, 8)}
	got := ClipPolylines([]Polyline{pl}, box)
	want := []Polyline{
		{Pt(5, 2), Pt(10, 2)},
		{Pt(10, 8), Pt(5, 8)},
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestClipPolylinesDrops(t *testing.T) {
	box := Rect{0, 0, 10, 10}
	lines := []Polyline{
		{Pt(20, 20), Pt(30, 30)},          // outside
		{Pt(5, 5)},                        // single point
		{Pt(-5, 0), Pt(0, -5)},            // touches nothing
		{Pt(-1, -1), Pt(0, 0), Pt(-1, 1)}, // touches a corner only
	}
	if got := ClipPolylines(lines, box); len(got) != 0 {
		t.Errorf("got %v, want nothing", got)
	}
}

func TestClipPolylinesKeepsInside(t *testing.T) {
	box := Rect{0, 0, 10, 10}
	pl := Polyline{Pt(1, 1), Pt(2, 3), Pt(4, 4), Pt(1, 1)}
	got := ClipPolylines([]Polyline{pl}, box)
	diff(t, []Polyline{pl}, got)
	if !got[0].Closed() {
		t.Error("closed polyline lost its closure")
	}
}

func TestClipPolylinesIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RingCount = 80
	cfg.Continuation = Continuation{GapProbability: 0.05, ContinueProbability: 0.2}
	cfg.JitterDistance = 0.1
	c, err := NewComposer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	once := c.Compose(3).Polylines
	if len(once) == 0 {
		t.Fatal("composition is empty")
	}
	box := cfg.ClipBox()
	for _, pl := range once {
		for _, pt := range pl {
			if !box.Contains(pt) {
				t.Fatalf("point %v outside clip box %v", pt, box)
			}
		}
	}
	twice := ClipPolylines(once, box)
	diff(t, once, twice)
}
