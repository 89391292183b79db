// Package vellum provides rich-text flow layout and a fixed-interval
// game-clock/animation scheduler for [Ebitengine] game UIs.
//
// # Text flow
//
// A [TextContainer] arranges [TextSpan] values inside a bounded frame. Spans
// flow left to right with a 1px gap, wrap on overflow, and deflect around
// exclusion rectangles reserved for things like inline images:
//
//	font, _ := vellum.NewTTFFont(goregular.TTF, 16, pal)
//	tc := vellum.NewTextContainer(vellum.Size{W: 320, H: 240}, font, pal)
//	tc.AddExclusionRect(vellum.Region{X: 0, Y: 0, W: 64, H: 64}) // portrait
//	tc.AppendText("You have been waylaid by enemies")
//	tc.AppendText("and must defend yourself.")
//
// Spans are measured and rendered lazily; a span's frame is fixed the first
// time it renders. Append, [TextContainer.InsertSpanAfter], and
// [TextContainer.RemoveSpan] re-lay-out only the affected tail of the
// sequence. [TextContainer.SpanAtPoint] hit-tests placements, and
// [TextContainer.DrawContents] blits rendered spans through a [Video].
//
// # Game clock
//
// A [GlobalTimer] is driven once per frame with the current time in
// milliseconds. It fires due [Animator] callbacks in due-time order, then
// advances shake, fade, and world/real time at a fixed tick interval:
//
//	timer := vellum.NewGlobalTimer(screen, state)
//	timer.SetFadeFromColor(30)
//	// each frame:
//	timer.Update(now)
//
// Fade-to-black and fade-from-black freeze world time while active, exactly
// as Infinity Engine style games expect. [FadeTransition] and
// [ViewportScroll] provide eased real-time variants via [gween].
//
// # Collaborators
//
// Glyph rasterization, blitting, and game state live behind the [Font],
// [Video], [GameState], and [Animator] interfaces. [Screen] is the bundled
// Ebitengine Video implementation; tests substitute recorders.
//
// Everything here is single-threaded and driven from the game loop; nothing
// blocks, and nothing locks.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package vellum
