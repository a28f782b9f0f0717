package command

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyHistory  = errors.New("history is empty")
	ErrNothingToUndo = fmt.Errorf("nothing to undo: %w", ErrEmptyHistory)
	ErrNothingToRedo = fmt.Errorf("nothing to redo: %w", ErrEmptyHistory)
)

// History sequences executed commands into an undo stack and a redo stack.
// The zero value is ready to use.
type History struct {
	undoStack []*Command
	redoStack []*Command
}

func NewHistory() *History {
	return &History{}
}

// Record pushes a copy of cmd onto the undo stack and clears the redo
// stack. The copy keeps the entry valid after cmd is reused.
func (h *History) Record(cmd *Command) {
	h.undoStack = append(h.undoStack, cmd.Copy())
	h.ClearRedo()
}

// Undo undoes the most recent command and moves it to the redo stack.
func (h *History) Undo() error {
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	lastIndex := len(h.undoStack) - 1
	cmd := h.undoStack[lastIndex]
	h.undoStack = h.undoStack[:lastIndex]

	if err := cmd.Undo(); err != nil {
		h.undoStack = append(h.undoStack, cmd)
		return err
	}

	h.redoStack = append(h.redoStack, cmd)
	return nil
}

// Redo reapplies the most recently undone command and moves it back to the
// undo stack.
func (h *History) Redo() error {
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	lastIndex := len(h.redoStack) - 1
	cmd := h.redoStack[lastIndex]
	h.redoStack = h.redoStack[:lastIndex]

	if err := cmd.Redo(); err != nil {
		h.redoStack = append(h.redoStack, cmd)
		return err
	}

	h.undoStack = append(h.undoStack, cmd)
	return nil
}

// CanUndo reports whether there is a command to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether there is a command to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

func (h *History) UndoCount() int {
	return len(h.undoStack)
}

func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns the command Undo would act on.
func (h *History) PeekUndo() (*Command, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// PeekRedo returns the command Redo would act on.
func (h *History) PeekRedo() (*Command, bool) {
	if len(h.redoStack) == 0 {
		return nil, false
	}
	return h.redoStack[len(h.redoStack)-1], true
}

func (h *History) ClearUndo() {
	h.undoStack = nil
}

func (h *History) ClearRedo() {
	h.redoStack = nil
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.ClearUndo()
	h.ClearRedo()
}
