package main

import (
	"errors"
	"log"

	"squared/command"
	"squared/shape"
)

// execute runs one of the long-lived commands on the selected square.
func (m *model) execute(cmd *command.Command) {
	if m.selected == nil {
		m.errorMessage = "No square selected"
		return
	}
	m.errorMessage = ""
	m.successMessage = ""

	if cmd.Execute(m.selected, m.history) {
		log.Printf("execute %s %q on #%d (undo=%d)", cmd.Kind(), cmd.Label(), m.selected.ID, m.history.UndoCount())
	}
}

func (m *model) undo() {
	m.successMessage = ""
	cmd, _ := m.history.PeekUndo()
	if err := m.history.Undo(); err != nil {
		m.reportHistoryError("undo", err)
		return
	}
	m.errorMessage = ""
	log.Printf("undo %s %q (undo=%d redo=%d)", cmd.Kind(), cmd.Label(), m.history.UndoCount(), m.history.RedoCount())
}

func (m *model) redo() {
	m.successMessage = ""
	cmd, _ := m.history.PeekRedo()
	if err := m.history.Redo(); err != nil {
		m.reportHistoryError("redo", err)
		return
	}
	m.errorMessage = ""
	log.Printf("redo %s %q (undo=%d redo=%d)", cmd.Kind(), cmd.Label(), m.history.UndoCount(), m.history.RedoCount())
}

func (m *model) reportHistoryError(op string, err error) {
	if errors.Is(err, command.ErrEmptyHistory) {
		m.errorMessage = "Nothing to " + op
		return
	}
	log.Printf("%s failed: %v", op, err)
	m.errorMessage = err.Error()
}

// selectSquare scopes history to sq: both stacks are dropped, then a Remove
// is recorded so the first undo hides the newly selected square.
func (m *model) selectSquare(sq *shape.Rect) {
	m.cancelDrag()
	m.history.Clear()
	if sq == nil {
		return
	}
	m.selected = sq
	m.removeCmd.Execute(sq, m.history)
	log.Printf("select #%d", sq.ID)
}
