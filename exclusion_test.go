package vellum

import "testing"

func TestExclusionSet_AddAppends(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 10, H: 10})
	s.Add(Region{X: 20, Y: 0, W: 10, H: 10})

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestExclusionSet_AddContainedIsNoOp(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 100, H: 100})
	s.Add(Region{X: 10, Y: 10, W: 20, H: 20})

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (contained rect must be discarded)", s.Len())
	}
	if got := s.Regions()[0]; got != (Region{X: 0, Y: 0, W: 100, H: 100}) {
		t.Errorf("stored rect = %v, want the original encompassing rect", got)
	}
}

func TestExclusionSet_AddContainingReplacesInPlace(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 10, Y: 10, W: 20, H: 20})
	s.Add(Region{X: 50, Y: 50, W: 5, H: 5})
	s.Add(Region{X: 0, Y: 0, W: 100, H: 100}) // swallows the first

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (containing rect must replace, not append)", s.Len())
	}
	if got := s.Regions()[0]; got != (Region{X: 0, Y: 0, W: 100, H: 100}) {
		t.Errorf("slot 0 = %v, want replacement rect in place", got)
	}
}

func TestExclusionSet_PartialOverlapAppends(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 20, H: 20})
	s.Add(Region{X: 10, Y: 10, W: 20, H: 20})

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (partial overlap appends)", s.Len())
	}
}

func TestExclusionSet_FindIntersectingFirstHit(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 30, H: 30})
	s.Add(Region{X: 20, Y: 20, W: 30, H: 30})

	// Query overlaps both; insertion order decides the winner.
	hit, ok := s.FindIntersecting(Region{X: 25, Y: 25, W: 2, H: 2})
	if !ok {
		t.Fatal("expected an intersection")
	}
	if hit != (Region{X: 0, Y: 0, W: 30, H: 30}) {
		t.Errorf("hit = %v, want first stored rect", hit)
	}
}

func TestExclusionSet_FindIntersectingMiss(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 10, H: 10})

	if _, ok := s.FindIntersecting(Region{X: 50, Y: 50, W: 5, H: 5}); ok {
		t.Error("expected no intersection")
	}
}

func TestExclusionSet_TouchingEdgesDoNotIntersect(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 10, H: 10})

	// Shares the x=10 edge only; half-open extents must not count as overlap.
	if _, ok := s.FindIntersecting(Region{X: 10, Y: 0, W: 10, H: 10}); ok {
		t.Error("edge-adjacent rects must not intersect")
	}
}

func TestExclusionSet_AddEmptyPanics(t *testing.T) {
	var s ExclusionSet

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty rect")
		}
	}()
	s.Add(Region{X: 5, Y: 5, W: 0, H: 10})
}

func TestExclusionSet_Clear(t *testing.T) {
	var s ExclusionSet

	s.Add(Region{X: 0, Y: 0, W: 10, H: 10})
	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("Len = %d after Clear, want 0", s.Len())
	}
	if _, ok := s.FindIntersecting(Region{X: 0, Y: 0, W: 100, H: 100}); ok {
		t.Error("cleared set must not report intersections")
	}
}
