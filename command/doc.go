// Package command provides undo/redo for edits made to shapes on a canvas.
//
// Every mutating action is a Command: a small value tagged with one of a
// closed set of kinds. A command binds to its target shape when it captures
// state, not when it is constructed, so a single command can back a menu
// entry and be executed against many shapes over its lifetime.
//
// # Kinds
//
//   - Resize: sets a square's size; previous size is captured first
//   - Recolor: sets a shape's color; previous color is captured first
//   - Reposition: records a drag that already moved the shape live
//   - Remove: records a visible/hidden transition (undo hides, redo shows)
//
// # History
//
// History keeps two stacks. Execute records a copy of the command on the
// undo stack and clears the redo stack:
//
//	h := command.NewHistory()
//	red := command.NewRecolor(shape.Red, "Red")
//
//	if red.Execute(sq, h) {
//		// changed and recorded
//	}
//
//	h.Undo()
//	h.Redo()
//
// A command whose forward effect would not change the shape returns false
// from Execute and is not recorded.
//
// # Dragging
//
// A drag mutates the shape between mouse press and release, outside the
// command. Reposition is therefore armed with CaptureState at press time
// and decides at release, in Execute, whether anything moved:
//
//	move := command.NewReposition()
//	move.CaptureState(sq) // press
//	sq.Move(dx, dy)       // drag events
//	move.Execute(sq, h)   // release
//
// History is not safe for concurrent use; it is meant to be driven from a
// single event loop.
package command
