package vellum

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeTransition_ReachesTarget(t *testing.T) {
	video := &recordingVideo{}
	f := NewFadeTransition(video, 0, 100, 1.0, ease.Linear)

	f.Update(0.5)
	if f.Done {
		t.Fatal("should not be Done at halfway")
	}
	mid := video.lastFade()
	if mid < 45 || mid > 55 {
		t.Errorf("fade at halfway = %d, want ~50", mid)
	}

	f.Update(0.5)
	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if video.lastFade() != 100 {
		t.Errorf("final fade = %d, want 100", video.lastFade())
	}
}

func TestFadeTransition_UpdateAfterDoneIsNoOp(t *testing.T) {
	video := &recordingVideo{}
	f := NewFadeTransition(video, 0, 100, 0.5, ease.Linear)

	f.Update(0.5)
	calls := len(video.fades)
	f.Update(0.1)

	if len(video.fades) != calls {
		t.Error("Update after Done must not touch the video")
	}
}

func TestFadeTransition_FadeOut(t *testing.T) {
	video := &recordingVideo{}
	f := NewFadeTransition(video, 100, 0, 1.0, ease.Linear)

	f.Update(1.0)

	if !f.Done {
		t.Fatal("expected Done")
	}
	if video.lastFade() != 0 {
		t.Errorf("final fade = %d, want 0", video.lastFade())
	}
}

func TestViewportScroll_ReachesTarget(t *testing.T) {
	video := &recordingVideo{}
	s := NewViewportScroll(video, Point{X: 0, Y: 0}, Point{X: 200, Y: 100}, 1.0, ease.Linear)

	s.Update(0.5)
	s.Update(0.5)

	if !s.Done {
		t.Fatal("expected Done after full duration")
	}
	last := video.moves[len(video.moves)-1]
	if last.x != 200 || last.y != 100 {
		t.Errorf("final viewport = (%d,%d), want (200,100)", last.x, last.y)
	}
	if last.redraw {
		t.Error("scroll moves must not force a redraw")
	}
}

func TestViewportScroll_EasingChangesMidpoint(t *testing.T) {
	linear := &recordingVideo{}
	cubic := &recordingVideo{}
	sl := NewViewportScroll(linear, Point{}, Point{X: 100}, 1.0, ease.Linear)
	sc := NewViewportScroll(cubic, Point{}, Point{X: 100}, 1.0, ease.OutCubic)

	sl.Update(0.5)
	sc.Update(0.5)

	lx := linear.moves[0].x
	cx := cubic.moves[0].x
	if lx == cx {
		t.Errorf("easing curves should differ at midpoint: linear=%d cubic=%d", lx, cx)
	}
}
