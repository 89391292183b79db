package vellum

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- shared test doubles ---

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// fakeFont measures text as rune-count * charW without touching any glyph
// source. Render returns no image, so span frames resolve from Measure.
type fakeFont struct {
	charW, lineH int
	measures     int
	renders      int
}

func (f *fakeFont) Measure(s string) Size {
	f.measures++
	return Size{W: len([]rune(s)) * f.charW, H: f.lineH}
}

func (f *fakeFont) Render(s string, frame Size, align Align, pal *Palette) *ebiten.Image {
	f.renders++
	return nil
}

func (f *fakeFont) LineHeight() int {
	return f.lineH
}

// recordingVideo captures every Video call for assertions.
type moveCall struct {
	x, y   int
	redraw bool
}

type blitCall struct {
	x, y int
	clip *Region
}

type recordingVideo struct {
	rects []Region
	blits []blitCall
	moves []moveCall
	fades []int
}

func (v *recordingVideo) DrawRect(region Region, _ color.RGBA) {
	v.rects = append(v.rects, region)
}

func (v *recordingVideo) BlitImage(img *ebiten.Image, x, y int, clip *Region) {
	v.blits = append(v.blits, blitCall{x: x, y: y, clip: clip})
}

func (v *recordingVideo) MoveViewport(x, y int, redraw bool) {
	v.moves = append(v.moves, moveCall{x: x, y: y, redraw: redraw})
}

func (v *recordingVideo) SetFadePercent(percent int) {
	v.fades = append(v.fades, percent)
}

func (v *recordingVideo) lastFade() int {
	if len(v.fades) == 0 {
		return -1
	}
	return v.fades[len(v.fades)-1]
}

// fakeArea counts world-area updates.
type fakeArea struct {
	fogUpdates    int
	effectUpdates int
}

func (a *fakeArea) UpdateFog()     { a.fogUpdates++ }
func (a *fakeArea) UpdateEffects() { a.effectUpdates++ }

// fakeGameState records world/real time advancement.
type fakeGameState struct {
	dialogue   bool
	worldTicks int64
	realMS     int64
	area       *fakeArea
}

func (g *fakeGameState) InDialogue() bool             { return g.dialogue }
func (g *fakeGameState) AdvanceWorldTime(ticks int64) { g.worldTicks += ticks }
func (g *fakeGameState) AddRealTime(ms int64)         { g.realMS += ms }

func (g *fakeGameState) CurrentArea() Area {
	if g.area == nil {
		return nil
	}
	return g.area
}

// fakeAnimator appends its name to a shared log on each fire, optionally
// running a hook (to mutate the queue mid-scan).
type fakeAnimator struct {
	name   string
	log    *[]string
	fired  int
	onFire func()
}

func (a *fakeAnimator) UpdateAnimation() {
	a.fired++
	if a.log != nil {
		*a.log = append(*a.log, a.name)
	}
	if a.onFire != nil {
		a.onFire()
	}
}
