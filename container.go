package vellum

import "image/color"

// TextContainer arranges an ordered sequence of TextSpans inside a bounded
// frame. Spans flow left to right with a 1px gap, wrap to a new line on
// overflow, and deflect around exclusion rectangles. Each layout pass assigns
// every affected span a placement rectangle; placements never overlap an
// exclusion rectangle they were placed to avoid.
//
// Layout is incremental: append re-lays-out only the new span, insert and
// remove re-lay-out from the affected index onward. Indices into the span
// slice are the restart points, so there is no iterator bookkeeping.
//
// Only left-aligned flow is produced. Justification, centering, and
// multi-column block flow are out of scope.
//
// All methods must be called from a single goroutine; the container does no
// internal locking.
type TextContainer struct {
	frame   Size
	font    Font
	palette *Palette

	spans  []*TextSpan
	layout map[*TextSpan]Region

	// obstacles holds caller-added exclusion rectangles (reserved screen
	// areas such as inline images). active is the per-pass working set:
	// obstacles plus the placements of every span before the restart index.
	obstacles ExclusionSet
	active    ExclusionSet

	debugDraw bool
}

// debugRectColor outlines span placements when debug drawing is on.
var debugRectColor = color.RGBA{R: 0xff, A: 0xff}

// NewTextContainer creates a container with the given frame, default font,
// and default palette. Font and palette are shared handles; the container
// takes no exclusive ownership of them.
func NewTextContainer(frame Size, font Font, pal *Palette) *TextContainer {
	return &TextContainer{
		frame:   frame,
		font:    font,
		palette: pal,
		layout:  make(map[*TextSpan]Region),
	}
}

// Frame returns the container's bounding size.
func (c *TextContainer) Frame() Size {
	return c.frame
}

// SpanCount returns the number of spans in the container.
func (c *TextContainer) SpanCount() int {
	return len(c.spans)
}

// SetDebugDraw toggles drawing of placement rectangles in DrawContents.
func (c *TextContainer) SetDebugDraw(enabled bool) {
	c.debugDraw = enabled
}

// AppendText creates a size-to-fit span from text using the container's font
// and palette, and appends it.
func (c *TextContainer) AppendText(text string) {
	c.AppendSpan(NewTextSpan(text, c.font, c.palette))
}

// AppendSpan adds a span to the end of the sequence and lays out the new span
// only. Prior placements are unaffected: flow is strictly left-to-right,
// top-to-bottom, and append never precedes existing content. The container
// takes ownership of the span.
func (c *TextContainer) AppendSpan(span *TextSpan) {
	c.spans = append(c.spans, span)
	c.layoutFrom(len(c.spans) - 1)
}

// InsertSpanAfter inserts newSpan immediately after existing, or at the head
// when existing is nil, then re-lays-out from the insertion point to the end:
// every subsequent span's position may shift. A span not present in the
// container is ignored (no insertion, no side effect).
func (c *TextContainer) InsertSpanAfter(newSpan, existing *TextSpan) {
	at := 0
	if existing != nil {
		idx := c.indexOf(existing)
		if idx < 0 {
			return
		}
		at = idx + 1
	}
	c.spans = append(c.spans, nil)
	copy(c.spans[at+1:], c.spans[at:])
	c.spans[at] = newSpan
	c.layoutFrom(at)
}

// RemoveSpan removes the span from the container, re-lays-out from the
// predecessor of the erased position (or the new head), and returns the span:
// ownership transfers back to the caller, which is responsible for disposal.
// Returns nil with no side effect when the span is not present.
func (c *TextContainer) RemoveSpan(span *TextSpan) *TextSpan {
	idx := c.indexOf(span)
	if idx < 0 {
		return nil
	}
	c.spans = append(c.spans[:idx], c.spans[idx+1:]...)
	delete(c.layout, span)

	if len(c.spans) > 0 {
		start := idx - 1
		if start < 0 {
			start = 0
		}
		c.layoutFrom(start)
	}
	return span
}

// AddExclusionRect reserves a rectangle that text flow must route around,
// e.g. for an inline image. Existing spans are re-laid-out against the new
// obstacle. Panics on an empty rectangle.
func (c *TextContainer) AddExclusionRect(rect Region) {
	c.obstacles.Add(rect)
	if len(c.spans) > 0 {
		c.layoutFrom(0)
	}
}

// SpanAtPoint returns the span whose placement contains p, in container-local
// coordinates, or nil. Points outside the container's own bounds fail fast.
// Placement rectangles do not overlap under correct layout, so the scan order
// over the layout map is immaterial.
func (c *TextContainer) SpanAtPoint(p Point) *TextSpan {
	bounds := Region{W: c.frame.W, H: c.frame.H}
	if !bounds.Contains(p) {
		return nil
	}
	for span, rgn := range c.layout {
		if rgn.Contains(p) {
			return span
		}
	}
	return nil
}

// SpanRegion returns the placement rectangle assigned to the span by the last
// layout pass.
func (c *TextContainer) SpanRegion(span *TextSpan) (Region, bool) {
	rgn, ok := c.layout[span]
	return rgn, ok
}

// DrawContents blits every span's rendered image at its placement, translated
// by the given origin and clipped to the placement rectangle.
func (c *TextContainer) DrawContents(video Video, x, y int) {
	for span, rgn := range c.layout {
		translated := rgn.Offset(x, y)
		if c.debugDraw {
			video.DrawRect(translated, debugRectColor)
		}
		video.BlitImage(span.RenderedImage(), translated.X, translated.Y, &translated)
	}
}

// Dispose disposes every span and clears the container.
func (c *TextContainer) Dispose() {
	for _, span := range c.spans {
		span.Dispose()
	}
	c.spans = nil
	c.layout = make(map[*TextSpan]Region)
	c.obstacles.Clear()
	c.active.Clear()
}

// indexOf locates a span by identity, or -1.
func (c *TextContainer) indexOf(span *TextSpan) int {
	for i, sp := range c.spans {
		if sp == span {
			return i
		}
	}
	return -1
}

// layoutFrom re-runs flow layout for spans[start:]. Placements before start
// are kept and re-registered as exclusions so later spans avoid
// already-placed text; the obstacles set is re-applied on every pass.
//
// The draw cursor seeds from the placement of the span preceding start,
// advanced right by its width plus the 1px gap. When laying out from the very
// first span the cursor seeds at (0, firstSpan.height): the flow model
// advances past an implicit empty previous span of that height, so the first
// line sits one span-height down from the top.
func (c *TextContainer) layoutFrom(start int) {
	if start < 0 || start >= len(c.spans) {
		panic("vellum: layout start out of range")
	}

	c.active.Clear()
	for _, rgn := range c.obstacles.Regions() {
		c.active.Add(rgn)
	}
	for i := 0; i < start; i++ {
		c.active.Add(c.layout[c.spans[i]])
	}

	var cursor Point
	if start == 0 {
		cursor.Y = c.spans[0].Frame().H
	} else {
		prev := c.layout[c.spans[start-1]]
		cursor.X = prev.X + prev.W + 1
		cursor.Y = prev.Y
	}

	for i := start; i < len(c.spans); i++ {
		span := c.spans[i]
		size := span.Frame()

		var placed Region
		for {
			placed = NewRegion(cursor, size)
			if excluded, ok := c.active.FindIntersecting(placed); ok {
				// We know we have to move at least to the right of the
				// obstacle.
				cursor.X = excluded.X + excluded.W + 1
				if cursor.X > 0 && cursor.X+size.W > c.frame.W {
					// Move down and back.
					cursor.X = 0
					cursor.Y += size.H
				}
				continue
			}
			if cursor.X > 0 && cursor.X+size.W > c.frame.W {
				cursor.X = 0
				cursor.Y += size.H
				continue
			}
			break
		}

		c.layout[span] = placed
		c.active.Add(placed)
		cursor.X = placed.X + placed.W + 1
		cursor.Y = placed.Y
	}
}
