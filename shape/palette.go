package shape

import (
	"fmt"
	"image/color"
)

var (
	Black  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Blue   = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Red    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Green  = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Yellow = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// NamedColor pairs a palette entry with its menu text.
type NamedColor struct {
	Name  string
	Color color.RGBA
}

// Palette lists the colors offered by the color menu, in menu order.
var Palette = []NamedColor{
	{"Black", Black},
	{"Blue", Blue},
	{"Red", Red},
	{"Green", Green},
	{"Yellow", Yellow},
}

// ColorName returns the palette name for c, or its hex form when c is not
// in the palette.
func ColorName(c color.RGBA) string {
	for _, nc := range Palette {
		if nc.Color == c {
			return nc.Name
		}
	}
	return Hex(c)
}

// Hex formats c as #rrggbb, the form lipgloss accepts.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
