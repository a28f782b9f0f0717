package shape

import (
	"fmt"
	"image"
	"image/color"
)

const MinSize = 1

// Rect is a filled square on the canvas. Location is the top-left cell and
// Size is both the width and the height in cells.
type Rect struct {
	loc     image.Point
	size    int
	color   color.RGBA
	visible bool
	ID      int
}

func NewRect(loc image.Point, size int, c color.RGBA) *Rect {
	r := &Rect{
		loc:     loc,
		color:   c,
		visible: true,
	}
	r.SetSize(size)
	return r
}

func (r *Rect) Location() image.Point {
	return r.loc
}

func (r *Rect) MoveTo(p image.Point) {
	r.loc = p
}

// Move shifts the square by a delta, as a mouse drag does between events.
func (r *Rect) Move(dx, dy int) {
	r.loc = r.loc.Add(image.Pt(dx, dy))
}

func (r *Rect) Size() int {
	return r.size
}

func (r *Rect) SetSize(size int) {
	if size < MinSize {
		size = MinSize
	}
	r.size = size
}

func (r *Rect) Color() color.RGBA {
	return r.color
}

func (r *Rect) SetColor(c color.RGBA) {
	r.color = c
}

func (r *Rect) Show() {
	r.visible = true
}

func (r *Rect) Hide() {
	r.visible = false
}

func (r *Rect) Visible() bool {
	return r.visible
}

// Bounds returns the covered cells in canvas coordinates.
func (r *Rect) Bounds() image.Rectangle {
	return image.Rectangle{Min: r.loc, Max: r.loc.Add(image.Pt(r.size, r.size))}
}

// Contains reports whether p falls inside a visible square.
func (r *Rect) Contains(p image.Point) bool {
	if !r.visible {
		return false
	}
	return p.In(r.Bounds())
}

func (r *Rect) String() string {
	return fmt.Sprintf("square #%d at (%d,%d) size %d color %s",
		r.ID, r.loc.X, r.loc.Y, r.size, ColorName(r.color))
}
