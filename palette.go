package vellum

import (
	"fmt"
	"image/color"
)

// Palette is a shared color table used when rendering spans. Fonts read the
// front color for glyph fill and the back color for outlines/shadows; the
// remaining entries are available for game-specific color cycling.
//
// Palettes are shared by plain pointer. There is no acquire/release: any
// number of spans and containers may hold the same *Palette, and the GC
// reclaims it when the last holder drops it.
type Palette struct {
	Colors []color.RGBA
}

// NewPalette creates a palette with the given front and back colors as its
// first two entries.
func NewPalette(front, back color.RGBA) *Palette {
	return &Palette{Colors: []color.RGBA{front, back}}
}

// Front returns the primary (glyph fill) color. A palette with no entries
// yields opaque white.
func (p *Palette) Front() color.RGBA {
	if p == nil || len(p.Colors) == 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return p.Colors[0]
}

// Back returns the secondary (outline/shadow) color. A palette with fewer
// than two entries yields transparent black.
func (p *Palette) Back() color.RGBA {
	if p == nil || len(p.Colors) < 2 {
		return color.RGBA{}
	}
	return p.Colors[1]
}

// PaletteRegistry is a named palette store owned by the surrounding
// application. UI code registers palettes once at load time and looks them up
// by name when building containers and spans.
type PaletteRegistry struct {
	palettes map[string]*Palette
}

// NewPaletteRegistry creates an empty registry.
func NewPaletteRegistry() *PaletteRegistry {
	return &PaletteRegistry{palettes: make(map[string]*Palette)}
}

// Register stores a palette under the given name, replacing any existing
// entry with that name.
func (r *PaletteRegistry) Register(name string, pal *Palette) {
	r.palettes[name] = pal
}

// Get returns the palette registered under name.
func (r *PaletteRegistry) Get(name string) (*Palette, error) {
	pal, ok := r.palettes[name]
	if !ok {
		return nil, fmt.Errorf("vellum: no palette registered as %q", name)
	}
	return pal, nil
}
