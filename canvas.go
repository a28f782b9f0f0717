package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/samber/lo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"squared/shape"
)

const paperColor = "#dddddd"

type Canvas struct {
	shapes []*shape.Rect
}

func NewCanvas() *Canvas {
	return &Canvas{
		shapes: make([]*shape.Rect, 0),
	}
}

// AddSquare appends a new square on top of the others.
func (c *Canvas) AddSquare(loc image.Point, size int, col color.RGBA) *shape.Rect {
	sq := shape.NewRect(loc, size, col)
	sq.ID = len(c.shapes)
	c.shapes = append(c.shapes, sq)
	return sq
}

// ShapeAt returns the topmost visible square containing p.
func (c *Canvas) ShapeAt(p image.Point) *shape.Rect {
	sq, _, ok := lo.FindLastIndexOf(c.shapes, func(s *shape.Rect) bool {
		return s.Contains(p)
	})
	if !ok {
		return nil
	}
	return sq
}

func (c *Canvas) Visible() []*shape.Rect {
	return lo.Filter(c.shapes, func(s *shape.Rect, _ int) bool {
		return s.Visible()
	})
}

// rasterize paints visible squares, later ones on top, into a grid of
// width x height canvas units.
func (c *Canvas) rasterize(width, height int) [][]*shape.Rect {
	grid := make([][]*shape.Rect, height)
	for y := range grid {
		grid[y] = make([]*shape.Rect, width)
	}
	view := image.Rect(0, 0, width, height)
	for _, sq := range c.Visible() {
		r := sq.Bounds().Intersect(view)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				grid[y][x] = sq
			}
		}
	}
	return grid
}

func isEdge(sq *shape.Rect, x, y int) bool {
	b := sq.Bounds()
	return x == b.Min.X || y == b.Min.Y || x == b.Max.X-1 || y == b.Max.Y-1
}

// cellText is the two-column text for one canvas unit.
func cellText(sq, selected *shape.Rect, x, y int, plain bool) string {
	switch {
	case sq == nil:
		if plain {
			return strings.Repeat(".", cellAspect)
		}
		return strings.Repeat(" ", cellAspect)
	case sq == selected && isEdge(sq, x, y):
		return strings.Repeat("#", cellAspect)
	case plain:
		return strings.Repeat(shape.ColorName(sq.Color())[:1], cellAspect)
	default:
		return strings.Repeat(" ", cellAspect)
	}
}

// RenderPlain draws the canvas without styling. Each square is filled with
// the initial of its color; the selected square gets a # border.
func (c *Canvas) RenderPlain(width, height int, selected *shape.Rect) []string {
	grid := c.rasterize(width, height)
	lines := make([]string, height)
	for y, row := range grid {
		var line strings.Builder
		for x, sq := range row {
			line.WriteString(cellText(sq, selected, x, y, true))
		}
		lines[y] = line.String()
	}
	return lines
}

// Render draws the canvas with lipgloss colors. Runs of identical cells
// share one style.
func (c *Canvas) Render(width, height int, selected *shape.Rect) []string {
	grid := c.rasterize(width, height)
	paper := lipgloss.NewStyle().Background(lipgloss.Color(paperColor))
	lines := make([]string, height)

	for y, row := range grid {
		var line strings.Builder
		var run strings.Builder
		var runStyle lipgloss.Style
		runKey := ""

		flush := func() {
			if run.Len() > 0 {
				line.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}

		for x, sq := range row {
			text := cellText(sq, selected, x, y, false)
			style := paper
			key := "paper"
			if sq != nil {
				bg := shape.Hex(sq.Color())
				style = lipgloss.NewStyle().
					Background(lipgloss.Color(bg)).
					Foreground(lipgloss.Color(contrastHex(sq.Color())))
				key = bg + text
			}
			if key != runKey {
				flush()
				runStyle = style
				runKey = key
			}
			run.WriteString(text)
		}
		flush()
		lines[y] = line.String()
	}
	return lines
}

// contrastHex picks black or white text for legibility on bg.
func contrastHex(bg color.RGBA) string {
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return "#000000"
	}
	return "#ffffff"
}

// ExportToPNG draws the visible squares to a PNG file, cropped to their
// bounds plus padding.
func (c *Canvas) ExportToPNG(filename string) error {
	visible := c.Visible()
	if len(visible) == 0 {
		return fmt.Errorf("nothing to export")
	}

	// Pixels per canvas unit
	unit := 16.0
	padding := 2

	bounds := visible[0].Bounds()
	for _, sq := range visible[1:] {
		bounds = bounds.Union(sq.Bounds())
	}
	bounds = bounds.Inset(-padding)

	dc := gg.NewContext(int(float64(bounds.Dx())*unit), int(float64(bounds.Dy())*unit))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, sq := range visible {
		c.drawSquarePNG(dc, sq, bounds.Min, unit)
	}

	return dc.SavePNG(filename)
}

func (c *Canvas) drawSquarePNG(dc *gg.Context, sq *shape.Rect, origin image.Point, unit float64) {
	x := float64(sq.Location().X-origin.X) * unit
	y := float64(sq.Location().Y-origin.Y) * unit
	side := float64(sq.Size()) * unit

	dc.SetColor(sq.Color())
	dc.DrawRectangle(x, y, side, side)
	dc.Fill()

	dc.SetLineWidth(1.0)
	dc.SetColor(color.Black)
	dc.DrawRectangle(x, y, side, side)
	dc.Stroke()

	dc.SetHexColor(contrastHex(sq.Color()))
	dc.DrawStringAnchored(fmt.Sprintf("#%d", sq.ID), x+side/2, y+side/2, 0.5, 0.5)
}
