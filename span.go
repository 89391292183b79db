package vellum

import "github.com/hajimehoshi/ebiten/v2"

// TextSpan is a contiguous run of styled text treated as a single layout and
// rendering unit. Measurement and rendering are lazy: the frame and the glyph
// image are computed on first use and cached.
//
// A span with a zero frame dimension sizes to fit its content; once first
// rendered, the frame is fixed to the rendered image's natural dimensions and
// does not change on later re-renders.
//
// The font and palette are shared with the owning container and other spans.
// The rendered image is exclusively owned by the span and deallocated when
// replaced.
type TextSpan struct {
	text    string
	font    Font
	palette *Palette
	align   Align
	frame   Size

	rendered      *ebiten.Image
	renderedValid bool
}

// NewTextSpan creates a size-to-fit span. The frame is computed from the
// font's natural layout of the text the first time it is needed.
func NewTextSpan(text string, font Font, pal *Palette) *TextSpan {
	return &TextSpan{text: text, font: font, palette: pal}
}

// NewTextSpanSized creates a span with an explicit frame. Zero dimensions
// still mean size-to-fit on that axis.
func NewTextSpanSized(text string, font Font, pal *Palette, frame Size) *TextSpan {
	return &TextSpan{text: text, font: font, palette: pal, frame: frame}
}

// Text returns the span's content.
func (sp *TextSpan) Text() string {
	return sp.text
}

// Font returns the span's shared font handle.
func (sp *TextSpan) Font() Font {
	return sp.font
}

// Palette returns the span's shared palette.
func (sp *TextSpan) Palette() *Palette {
	return sp.palette
}

// SetAlign sets the horizontal alignment used when the span renders into a
// fixed frame wider than its content.
func (sp *TextSpan) SetAlign(a Align) {
	sp.align = a
}

// Frame returns the span's frame size, measuring first if it is unset.
// Measuring a not-yet-rendered span renders it: the true frame is determined
// by the rendering.
func (sp *TextSpan) Frame() Size {
	if sp.frame.IsEmpty() {
		sp.render()
	}
	return sp.frame
}

// RenderedImage returns the span's glyph image, rendering on first call. The
// image may be nil for text with no visible extent.
func (sp *TextSpan) RenderedImage() *ebiten.Image {
	if !sp.renderedValid {
		sp.render()
	}
	return sp.rendered
}

// Invalidate drops the cached glyph image so the next draw re-renders. The
// frame, once fixed, is kept.
func (sp *TextSpan) Invalidate() {
	if sp.rendered != nil {
		sp.rendered.Deallocate()
		sp.rendered = nil
	}
	sp.renderedValid = false
}

// Dispose releases the span's exclusively owned rendered image. The font and
// palette are shared and left untouched.
func (sp *TextSpan) Dispose() {
	sp.Invalidate()
}

// render (re)builds the glyph image and, on first render with an unset frame,
// fixes the frame to the image's natural dimensions.
func (sp *TextSpan) render() {
	if sp.rendered != nil {
		sp.rendered.Deallocate()
		sp.rendered = nil
	}
	img := sp.font.Render(sp.text, sp.frame, sp.align, sp.palette)
	sp.rendered = img
	sp.renderedValid = true

	// Frame dimensions of 0 just mean size to fit.
	if sp.frame.W == 0 || sp.frame.H == 0 {
		natural := sp.font.Measure(sp.text)
		if img != nil {
			b := img.Bounds()
			natural = Size{W: b.Dx(), H: b.Dy()}
		}
		if sp.frame.W == 0 {
			sp.frame.W = natural.W
		}
		if sp.frame.H == 0 {
			sp.frame.H = natural.H
		}
	}
}
