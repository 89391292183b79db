package vellum

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Video is the rendering collaborator. The layout engine and the timer only
// talk to the display through this interface, so tests substitute a recorder
// and games plug in Screen (or their own renderer).
type Video interface {
	// DrawRect strokes a rectangle outline, used for layout debugging.
	DrawRect(region Region, c color.RGBA)
	// BlitImage draws an image at x, y clipped to the given region. A nil
	// clip draws the whole image; a nil image is a no-op.
	BlitImage(img *ebiten.Image, x, y int, clip *Region)
	// MoveViewport repositions the viewport origin. When redraw is false the
	// move takes effect on the next frame without forcing a present.
	MoveViewport(x, y int, redraw bool)
	// SetFadePercent sets the full-screen darken amount, 0 (clear) to 100
	// (black).
	SetFadePercent(percent int)
}

// Screen is the Ebitengine-backed Video implementation. Bind it to the frame's
// destination image at the top of Draw, issue layout/timer output through it,
// and call Present at the end of the frame to apply the fade overlay.
type Screen struct {
	target      *ebiten.Image
	viewport    Point
	fadePercent int
}

// NewScreen creates a Screen with no bound target.
func NewScreen() *Screen {
	return &Screen{}
}

// Bind sets the destination image for subsequent draw calls. Call once per
// frame from the game's Draw.
func (s *Screen) Bind(target *ebiten.Image) {
	s.target = target
}

// Viewport returns the current viewport origin.
func (s *Screen) Viewport() Point {
	return s.viewport
}

// DrawRect strokes a 1px rectangle outline in the given color.
func (s *Screen) DrawRect(region Region, c color.RGBA) {
	if s.target == nil {
		return
	}
	x := float32(region.X - s.viewport.X)
	y := float32(region.Y - s.viewport.Y)
	vector.StrokeRect(s.target, x, y, float32(region.W), float32(region.H), 1, c, false)
}

// BlitImage draws img at x, y clipped to clip, offset by the viewport origin.
func (s *Screen) BlitImage(img *ebiten.Image, x, y int, clip *Region) {
	if s.target == nil || img == nil {
		return
	}
	dst := s.target
	if clip != nil {
		visible := clip.Offset(-s.viewport.X, -s.viewport.Y)
		dst = s.target.SubImage(visible.ImageRect()).(*ebiten.Image)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-s.viewport.X), float64(y-s.viewport.Y))
	dst.DrawImage(img, op)
}

// MoveViewport repositions the viewport origin. The redraw flag is accepted
// for interface compatibility; Ebitengine presents every frame regardless.
func (s *Screen) MoveViewport(x, y int, redraw bool) {
	s.viewport = Point{X: x, Y: y}
}

// SetFadePercent stores the darken amount applied by Present.
func (s *Screen) SetFadePercent(percent int) {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	s.fadePercent = percent
}

// FadePercent returns the current darken amount.
func (s *Screen) FadePercent() int {
	return s.fadePercent
}

// Present applies the fade overlay to the bound target. Call at the end of
// the frame, after all other drawing.
func (s *Screen) Present() {
	if s.target == nil || s.fadePercent <= 0 {
		return
	}
	alpha := uint8(s.fadePercent * 255 / 100)
	b := s.target.Bounds()
	vector.DrawFilledRect(
		s.target,
		float32(b.Min.X), float32(b.Min.Y),
		float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: alpha}, false,
	)
}
