package vellum

import (
	"fmt"
	"image"
)

// Point is a position in integer pixel coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels. A zero dimension means "unset" for
// span frames (size-to-fit).
type Size struct {
	W, H int
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Region is an axis-aligned rectangle: origin plus size. The covered pixel
// columns are [X, X+W) and rows [Y, Y+H).
type Region struct {
	X, Y, W, H int
}

// NewRegion creates a Region from an origin point and a size.
func NewRegion(origin Point, size Size) Region {
	return Region{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// Origin returns the region's top-left corner.
func (r Region) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Dimensions returns the region's size.
func (r Region) Dimensions() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether the point lies inside the region.
func (r Region) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the two regions share any area.
func (r Region) Intersects(o Region) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// In reports whether r lies entirely within o.
func (r Region) In(o Region) bool {
	return r.X >= o.X && r.Y >= o.Y && r.X+r.W <= o.X+o.W && r.Y+r.H <= o.Y+o.H
}

// Offset returns the region translated by dx, dy.
func (r Region) Offset(dx, dy int) Region {
	return Region{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// String implements fmt.Stringer for debug output.
func (r Region) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// ImageRect converts the region to a stdlib image.Rectangle.
func (r Region) ImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// imageRect builds an image.Rectangle from an origin and size.
func imageRect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
