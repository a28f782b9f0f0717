package main

import (
	"image"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// canvasPoint converts a terminal cell to canvas units.
func (m *model) canvasPoint(x, y int) image.Point {
	return image.Pt(x/cellAspect, y-menuBarHeight)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.mode != ModeNormal {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y < menuBarHeight {
			m.clickMenu(msg.X)
			return
		}
		m.onMousePress(m.canvasPoint(msg.X, msg.Y))
	case tea.MouseActionMotion:
		m.onMouseDrag(m.canvasPoint(msg.X, msg.Y))
	case tea.MouseActionRelease:
		m.onMouseRelease(m.canvasPoint(msg.X, msg.Y))
	}
}

// onMousePress starts a drag when the press lands on the selected square.
// The drag command captures the start location here, before any movement.
func (m *model) onMousePress(p image.Point) {
	m.mouseDown = true
	m.dragShape = nil
	m.dragMoved = false
	m.pressPoint = p
	m.lastMouse = p

	if m.selected != nil && m.selected.Contains(p) {
		m.dragShape = m.selected
		m.dragCmd.CaptureState(m.dragShape)
	}
}

// onMouseDrag moves the pressed square live; the command is not involved.
func (m *model) onMouseDrag(p image.Point) {
	if !m.mouseDown {
		return
	}
	d := p.Sub(m.lastMouse)
	if d == (image.Point{}) {
		return
	}
	m.dragMoved = true
	if m.dragShape != nil {
		m.dragShape.Move(d.X, d.Y)
	}
	m.lastMouse = p
}

// onMouseRelease ends a drag, recording it if the square moved, and treats
// a press and release without motion as a click.
func (m *model) onMouseRelease(p image.Point) {
	if !m.mouseDown {
		return
	}
	m.mouseDown = false

	if sq := m.dragShape; sq != nil {
		m.dragShape = nil
		if m.dragCmd.Execute(sq, m.history) {
			log.Printf("drag #%d to %v (undo=%d)", sq.ID, sq.Location(), m.history.UndoCount())
		}
	}

	if !m.dragMoved && p == m.pressPoint {
		m.onMouseClick(p)
	}
}

// cancelDrag abandons a gesture in progress. A square that was already
// dragged goes back to where the press found it and nothing is recorded.
func (m *model) cancelDrag() {
	if m.dragShape != nil && m.dragMoved {
		if err := m.dragCmd.Undo(); err != nil {
			log.Printf("cancel drag: %v", err)
		}
	}
	m.mouseDown = false
	m.dragShape = nil
	m.dragMoved = false
}

// onMouseClick selects the square under p. History is per selected
// square, so any click drops it first.
func (m *model) onMouseClick(p image.Point) {
	m.errorMessage = ""
	m.selectSquare(m.canvas.ShapeAt(p))
}

func (m *model) clickMenu(x int) {
	for _, item := range m.menuItems() {
		if x >= item.X0 && x < item.X1 {
			m.runMenu(item)
			return
		}
	}
}

func (m *model) runMenu(item menuItem) {
	switch item.Action {
	case MenuSize:
		m.execute(m.sizeMenu[item.Index])
	case MenuColor:
		m.execute(m.colorMenu[item.Index])
	case MenuUndo:
		m.undo()
	case MenuRedo:
		m.redo()
	case MenuNew:
		m.newSquare()
	}
}
