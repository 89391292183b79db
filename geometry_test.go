package vellum

import "testing"

func TestRegion_Contains(t *testing.T) {
	r := Region{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 10}, true},  // top-left corner inclusive
		{Point{X: 29, Y: 19}, true},  // bottom-right interior
		{Point{X: 30, Y: 10}, false}, // right edge exclusive
		{Point{X: 10, Y: 20}, false}, // bottom edge exclusive
		{Point{X: 9, Y: 10}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRegion_Intersects(t *testing.T) {
	a := Region{X: 0, Y: 0, W: 10, H: 10}

	if !a.Intersects(Region{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects must intersect")
	}
	if a.Intersects(Region{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("edge-adjacent rects must not intersect")
	}
	if a.Intersects(Region{X: 20, Y: 20, W: 5, H: 5}) {
		t.Error("disjoint rects must not intersect")
	}
}

func TestRegion_In(t *testing.T) {
	outer := Region{X: 0, Y: 0, W: 100, H: 100}

	if !(Region{X: 10, Y: 10, W: 20, H: 20}).In(outer) {
		t.Error("contained rect must be In")
	}
	if !outer.In(outer) {
		t.Error("a rect is In itself")
	}
	if (Region{X: 90, Y: 90, W: 20, H: 20}).In(outer) {
		t.Error("overhanging rect must not be In")
	}
}

func TestRegion_Offset(t *testing.T) {
	r := Region{X: 1, Y: 2, W: 3, H: 4}
	got := r.Offset(10, 20)
	want := Region{X: 11, Y: 22, W: 3, H: 4}
	if got != want {
		t.Errorf("Offset = %v, want %v", got, want)
	}
}

func TestSize_IsEmpty(t *testing.T) {
	if (Size{W: 10, H: 10}).IsEmpty() {
		t.Error("10x10 is not empty")
	}
	if !(Size{W: 0, H: 10}).IsEmpty() {
		t.Error("zero width is empty")
	}
	if !(Size{W: 10, H: 0}).IsEmpty() {
		t.Error("zero height is empty")
	}
}
