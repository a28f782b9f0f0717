package main

import (
	"image"
	"log"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/samber/lo"

	"squared/shape"
)

// newSquare drops a Big black square at a random spot and selects it, so
// the first undo takes the new square away again.
func (m *model) newSquare() {
	width, height := m.canvasSize()
	x := m.rng.Intn(max(1, width-bigSize))
	y := m.rng.Intn(max(1, height-bigSize))
	sq := m.canvas.AddSquare(image.Pt(x, y), bigSize, shape.Black)
	m.successMessage = ""
	m.errorMessage = ""
	m.selectSquare(sq)
}

// selectNext moves the selection to the next visible square in creation
// order, wrapping around.
func (m *model) selectNext() {
	visible := m.canvas.Visible()
	if len(visible) == 0 {
		return
	}
	next := visible[0]
	if m.selected != nil {
		if i := lo.IndexOf(visible, m.selected); i >= 0 {
			next = visible[(i+1)%len(visible)]
		}
	}
	m.selectSquare(next)
}

func (m *model) copySelected() {
	if m.selected == nil {
		m.errorMessage = "No square selected"
		return
	}
	if err := clipboard.WriteAll(m.selected.String()); err != nil {
		log.Printf("clipboard: %v", err)
		m.errorMessage = "Clipboard unavailable: " + err.Error()
		return
	}
	m.errorMessage = ""
	m.successMessage = "Copied #" + strconv.Itoa(m.selected.ID)
}
