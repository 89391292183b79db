package vellum

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Align selects horizontal text alignment inside a fixed span frame.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font measures and renders span text. Implementations own their glyph
// sources (TTF face or bitmap atlas) and a default palette.
//
// Render draws text into a fresh image. A zero frame dimension means
// size-to-fit on that axis. A nil pal uses the font's default palette. Render
// returns nil when the text has no visible extent.
type Font interface {
	Measure(text string) Size
	Render(text string, frame Size, align Align, pal *Palette) *ebiten.Image
	LineHeight() int
}

// --- TTFFont ---

// TTFFont renders TrueType/OpenType text through Ebitengine's text/v2.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64
	pal    *Palette
}

// NewTTFFont parses raw TTF/OTF data and returns a font at the given size.
func NewTTFFont(ttfData []byte, size float64, pal *Palette) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("vellum: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
		pal:    pal,
	}, nil
}

// Measure returns the natural pixel size of the rendered text.
func (f *TTFFont) Measure(s string) Size {
	w, h := text.Measure(s, f.face, f.lh)
	return Size{W: int(w + 0.5), H: int(h + 0.5)}
}

// LineHeight returns the vertical distance between baselines in pixels.
func (f *TTFFont) LineHeight() int {
	return int(f.lh + 0.5)
}

// SetPalette replaces the font's default palette.
func (f *TTFFont) SetPalette(pal *Palette) {
	f.pal = pal
}

// Face returns the underlying GoTextFace for direct text/v2 use.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Render draws the text into a new image sized to frame (size-to-fit on zero
// dimensions).
func (f *TTFFont) Render(s string, frame Size, align Align, pal *Palette) *ebiten.Image {
	natural := f.Measure(s)
	w, h := frame.W, frame.H
	if w == 0 {
		w = natural.W
	}
	if h == 0 {
		h = natural.H
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	if pal == nil {
		pal = f.pal
	}

	img := ebiten.NewImage(w, h)
	op := &text.DrawOptions{}
	front := pal.Front()
	op.ColorScale.Scale(
		float32(front.R)/255,
		float32(front.G)/255,
		float32(front.B)/255,
		float32(front.A)/255,
	)
	op.LineSpacing = f.lh
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(w)/2, 0)
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(float64(w), 0)
	}
	text.Draw(img, s, f.face, op)
	return img
}

// --- BitmapFont ---

const asciiGlyphCount = 128

// bmGlyph is one glyph's atlas location and metrics from a BMFont definition.
type bmGlyph struct {
	id       rune
	x, y     int
	width    int
	height   int
	xOffset  int
	yOffset  int
	xAdvance int
}

// BitmapFont renders text from a pre-rasterized glyph atlas described by a
// BMFont .fnt text-format definition. Glyph pixels are expected to be white
// on transparent so the palette front color can tint them.
type BitmapFont struct {
	lineHeight int
	base       int
	atlas      *ebiten.Image
	pal        *Palette

	asciiGlyphs [asciiGlyphCount]bmGlyph
	asciiSet    [asciiGlyphCount]bool
	extGlyphs   map[rune]*bmGlyph

	kernings map[[2]rune]int
}

// LoadBitmapFont parses BMFont .fnt text-format data. The atlas image holds
// the glyph pixels at the coordinates named in the definition.
func LoadBitmapFont(fntData []byte, atlas *ebiten.Image, pal *Palette) (*BitmapFont, error) {
	f := &BitmapFont{atlas: atlas, pal: pal}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			f.lineHeight = fieldInt(fields, "lineHeight")
			f.base = fieldInt(fields, "base")

		case "char":
			charCount++
			g := bmGlyph{
				id:       rune(fieldInt(fields, "id")),
				x:        fieldInt(fields, "x"),
				y:        fieldInt(fields, "y"),
				width:    fieldInt(fields, "width"),
				height:   fieldInt(fields, "height"),
				xOffset:  fieldInt(fields, "xoffset"),
				yOffset:  fieldInt(fields, "yoffset"),
				xAdvance: fieldInt(fields, "xadvance"),
			}
			if g.id >= 0 && g.id < asciiGlyphCount {
				f.asciiGlyphs[g.id] = g
				f.asciiSet[g.id] = true
			} else {
				if f.extGlyphs == nil {
					f.extGlyphs = make(map[rune]*bmGlyph)
				}
				g := g
				f.extGlyphs[g.id] = &g
			}

		case "kerning":
			first := rune(fieldInt(fields, "first"))
			second := rune(fieldInt(fields, "second"))
			amount := fieldInt(fields, "amount")
			if f.kernings == nil {
				f.kernings = make(map[[2]rune]int)
			}
			f.kernings[[2]rune{first, second}] = amount
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vellum: error reading .fnt data: %w", err)
	}
	if f.lineHeight == 0 {
		return nil, fmt.Errorf("vellum: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("vellum: .fnt data has no char definitions")
	}

	return f, nil
}

// Measure returns the natural pixel size of the text: widest line by advance
// width, line count times line height.
func (f *BitmapFont) Measure(s string) Size {
	var maxW, cursorX int
	var prevRune rune
	var hasPrev bool
	lines := 1

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if r == '\n' {
			if cursorX > maxW {
				maxW = cursorX
			}
			cursorX = 0
			lines++
			hasPrev = false
			continue
		}

		g := f.glyph(r)
		if g == nil {
			hasPrev = false
			continue
		}

		if hasPrev {
			cursorX += f.kern(prevRune, r)
		}
		cursorX += g.xAdvance
		prevRune = r
		hasPrev = true
	}

	if cursorX > maxW {
		maxW = cursorX
	}
	return Size{W: maxW, H: lines * f.lineHeight}
}

// LineHeight returns the vertical distance between baselines in pixels.
func (f *BitmapFont) LineHeight() int {
	return f.lineHeight
}

// SetPalette replaces the font's default palette.
func (f *BitmapFont) SetPalette(pal *Palette) {
	f.pal = pal
}

// Render blits glyphs from the atlas into a new image sized to frame
// (size-to-fit on zero dimensions), tinted with the palette front color.
func (f *BitmapFont) Render(s string, frame Size, align Align, pal *Palette) *ebiten.Image {
	natural := f.Measure(s)
	w, h := frame.W, frame.H
	if w == 0 {
		w = natural.W
	}
	if h == 0 {
		h = natural.H
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	if pal == nil {
		pal = f.pal
	}
	front := pal.Front()

	img := ebiten.NewImage(w, h)
	lineY := 0
	for _, line := range strings.Split(s, "\n") {
		offsetX := 0
		if align != AlignLeft {
			lineW := f.Measure(line).W
			switch align {
			case AlignCenter:
				offsetX = (w - lineW) / 2
			case AlignRight:
				offsetX = w - lineW
			}
		}

		cursorX := offsetX
		var prevRune rune
		var hasPrev bool
		for _, r := range line {
			g := f.glyph(r)
			if g == nil {
				hasPrev = false
				continue
			}
			if hasPrev {
				cursorX += f.kern(prevRune, r)
			}

			if g.width > 0 && g.height > 0 && f.atlas != nil {
				src := f.atlas.SubImage(imageRect(g.x, g.y, g.width, g.height)).(*ebiten.Image)
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(cursorX+g.xOffset), float64(lineY+g.yOffset))
				op.ColorScale.Scale(
					float32(front.R)/255,
					float32(front.G)/255,
					float32(front.B)/255,
					float32(front.A)/255,
				)
				img.DrawImage(src, op)
			}

			cursorX += g.xAdvance
			prevRune = r
			hasPrev = true
		}
		lineY += f.lineHeight
	}
	return img
}

// glyph returns the glyph for the given rune, or nil if not defined.
func (f *BitmapFont) glyph(r rune) *bmGlyph {
	if r >= 0 && r < asciiGlyphCount {
		if f.asciiSet[r] {
			return &f.asciiGlyphs[r]
		}
		return nil
	}
	return f.extGlyphs[r]
}

// kern returns the kerning adjustment for the given rune pair.
func (f *BitmapFont) kern(first, second rune) int {
	if f.kernings == nil {
		return 0
	}
	return f.kernings[[2]rune{first, second}]
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}

// fieldInt reads an integer BMFont field, defaulting to 0 when absent.
func fieldInt(fields map[string]string, key string) int {
	v, ok := fields[key]
	if !ok {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}
