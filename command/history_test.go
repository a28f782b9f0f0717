package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squared/shape"
)

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 0, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())

	err := h.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.ErrorIs(t, err, ErrEmptyHistory)

	err = h.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)
	assert.ErrorIs(t, err, ErrEmptyHistory)

	_, ok := h.PeekUndo()
	assert.False(t, ok)
	_, ok = h.PeekRedo()
	assert.False(t, ok)
}

func TestHistoryZeroValue(t *testing.T) {
	var h History
	sq := newTestSquare()

	require.True(t, NewResize(10, "Small").Execute(sq, &h))
	require.NoError(t, h.Undo())
	assert.Equal(t, 100, sq.Size())
}

func TestHistoryRecordStoresCopy(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()
	cmd := NewResize(50, "Medium")
	cmd.CaptureState(sq)

	h.Record(cmd)
	top, ok := h.PeekUndo()
	require.True(t, ok)
	assert.NotSame(t, cmd, top)
	assert.Equal(t, cmd, top)
}

func TestHistoryConcreteScenario(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewResize(50, "Medium").Execute(sq, h))
	assert.Equal(t, 50, sq.Size())
	assert.Equal(t, 1, h.UndoCount())

	require.True(t, NewRecolor(shape.Red, "Red").Execute(sq, h))
	assert.Equal(t, shape.Red, sq.Color())
	assert.Equal(t, 2, h.UndoCount())

	require.NoError(t, h.Undo())
	assert.Equal(t, shape.Black, sq.Color())
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())

	require.NoError(t, h.Undo())
	assert.Equal(t, 100, sq.Size())
	assert.Equal(t, 0, h.UndoCount())
	assert.Equal(t, 2, h.RedoCount())

	require.NoError(t, h.Redo())
	assert.Equal(t, 50, sq.Size())
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())
}

func TestHistoryLIFO(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewResize(10, "Small").Execute(sq, h))
	require.True(t, NewResize(50, "Medium").Execute(sq, h))
	require.True(t, NewResize(100, "Big").Execute(sq, h))
	require.Equal(t, 3, h.UndoCount())

	require.NoError(t, h.Undo())
	assert.Equal(t, 50, sq.Size())
	require.NoError(t, h.Undo())
	assert.Equal(t, 10, sq.Size())
	require.NoError(t, h.Undo())
	assert.Equal(t, 100, sq.Size())

	assert.ErrorIs(t, h.Undo(), ErrNothingToUndo)
}

func TestHistoryRedoAppliesLastUndone(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewResize(10, "Small").Execute(sq, h))
	require.True(t, NewResize(50, "Medium").Execute(sq, h))
	require.True(t, NewResize(100, "Big").Execute(sq, h))

	require.NoError(t, h.Undo())
	require.Equal(t, 50, sq.Size())

	top, ok := h.PeekRedo()
	require.True(t, ok)
	assert.Equal(t, "Big", top.Label())

	require.NoError(t, h.Redo())
	assert.Equal(t, 100, sq.Size())
	assert.False(t, h.CanRedo())
}

func TestHistoryDivergenceClearsRedo(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewResize(50, "Medium").Execute(sq, h))
	require.True(t, NewRecolor(shape.Red, "Red").Execute(sq, h))
	require.NoError(t, h.Undo())
	require.Equal(t, 1, h.UndoCount())
	require.Equal(t, 1, h.RedoCount())

	require.True(t, NewRecolor(shape.Green, "Green").Execute(sq, h))
	assert.Equal(t, 0, h.RedoCount())
	assert.False(t, h.CanRedo())
	assert.ErrorIs(t, h.Redo(), ErrNothingToRedo)
	assert.Equal(t, 2, h.UndoCount())
}

func TestHistoryEntryInOneStack(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewResize(50, "Medium").Execute(sq, h))
	entry, _ := h.PeekUndo()

	require.NoError(t, h.Undo())
	assert.Equal(t, 0, h.UndoCount())
	redoTop, _ := h.PeekRedo()
	assert.Same(t, entry, redoTop)

	require.NoError(t, h.Redo())
	assert.Equal(t, 0, h.RedoCount())
	undoTop, _ := h.PeekUndo()
	assert.Same(t, entry, undoTop)
}

func TestHistoryCanUndoCanRedo(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewRemove().Execute(sq, h))
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	require.NoError(t, h.Undo())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())
}

func TestHistoryClear(t *testing.T) {
	sq := newTestSquare()
	h := NewHistory()

	require.True(t, NewResize(50, "Medium").Execute(sq, h))
	require.True(t, NewResize(10, "Small").Execute(sq, h))
	require.NoError(t, h.Undo())

	h.ClearRedo()
	assert.Equal(t, 0, h.RedoCount())
	assert.Equal(t, 1, h.UndoCount())

	h.ClearUndo()
	assert.Equal(t, 0, h.UndoCount())

	require.True(t, NewResize(20, "Tiny").Execute(sq, h))
	require.NoError(t, h.Undo())
	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryFailedUndoKeepsEntry(t *testing.T) {
	h := NewHistory()
	h.Record(NewResize(10, "Small"))

	err := h.Undo()
	assert.ErrorIs(t, err, ErrNotCaptured)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())
}
