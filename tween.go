package vellum

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeTransition drives Video.SetFadePercent along an eased curve over a real
// duration, the smooth counterpart of GlobalTimer's tick-counter fades. Call
// Update(dt) each frame with the frame delta in seconds until Done.
type FadeTransition struct {
	tween *gween.Tween
	video Video
	Done  bool
}

// NewFadeTransition creates a transition from the current fade percentage to
// the target over duration seconds.
func NewFadeTransition(video Video, from, to int, duration float32, fn ease.TweenFunc) *FadeTransition {
	return &FadeTransition{
		tween: gween.New(float32(from), float32(to), duration, fn),
		video: video,
	}
}

// Update advances the transition by dt seconds and applies the eased fade
// percentage. No-op once Done.
func (f *FadeTransition) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.video.SetFadePercent(int(val + 0.5))
	f.Done = finished
}

// ViewportScroll glides the viewport to a target position along an eased
// curve, the smooth counterpart of a hard MoveViewport. Call Update(dt) each
// frame until Done.
type ViewportScroll struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	video  Video
	Done   bool
}

// NewViewportScroll creates a scroll from the given origin to the target
// position over duration seconds.
func NewViewportScroll(video Video, from, to Point, duration float32, fn ease.TweenFunc) *ViewportScroll {
	return &ViewportScroll{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, fn),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, fn),
		video:  video,
	}
}

// Update advances the scroll by dt seconds and moves the viewport without
// forcing a redraw. No-op once Done.
func (v *ViewportScroll) Update(dt float32) {
	if v.Done {
		return
	}
	x, doneX := v.tweenX.Update(dt)
	y, doneY := v.tweenY.Update(dt)
	v.video.MoveViewport(int(x+0.5), int(y+0.5), false)
	v.Done = doneX && doneY
}
