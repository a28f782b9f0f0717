package command

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrNotCaptured is returned by Undo and Redo on a command that never
// captured a target shape.
var ErrNotCaptured = errors.New("command has no captured state")

// Shape is the accessor contract a command needs from the shape it edits.
// Implementations are expected to be pointer types; commands compare
// targets by identity.
type Shape interface {
	Location() image.Point
	MoveTo(p image.Point)
	Size() int
	SetSize(size int)
	Color() color.RGBA
	SetColor(c color.RGBA)
	Show()
	Hide()
	Visible() bool
	Contains(p image.Point) bool
}

type Kind int

const (
	KindResize Kind = iota
	KindRecolor
	KindReposition
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindResize:
		return "resize"
	case KindRecolor:
		return "recolor"
	case KindReposition:
		return "reposition"
	case KindRemove:
		return "remove"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type ResizeData struct {
	Prev int
	Size int
}

type RecolorData struct {
	Prev  color.RGBA
	Color color.RGBA
}

type RepositionData struct {
	Prev image.Point
	Loc  image.Point
}

// Command is a reversible edit of a single shape. Only the data block that
// matches Kind is meaningful.
type Command struct {
	kind   Kind
	label  string
	target Shape

	resize  ResizeData
	recolor RecolorData
	move    RepositionData
}

// NewResize creates a command that sets a square's size.
func NewResize(size int, label string) *Command {
	return &Command{kind: KindResize, label: label, resize: ResizeData{Size: size}}
}

// NewRecolor creates a command that sets a shape's color.
func NewRecolor(c color.RGBA, label string) *Command {
	return &Command{kind: KindRecolor, label: label, recolor: RecolorData{Color: c}}
}

// NewReposition creates a drag command. Arm it with CaptureState when the
// drag starts.
func NewReposition() *Command {
	return &Command{kind: KindReposition, label: "Move"}
}

// NewRemove creates a command whose undo hides the shape and whose redo
// shows it again.
func NewRemove() *Command {
	return &Command{kind: KindRemove, label: "Remove"}
}

func (c *Command) Kind() Kind {
	return c.kind
}

func (c *Command) Label() string {
	return c.label
}

func (c *Command) String() string {
	return c.label
}

// Target returns the shape bound by the last CaptureState, or nil.
func (c *Command) Target() Shape {
	return c.target
}

// ResizeState returns the captured and new size of a Resize command.
func (c *Command) ResizeState() ResizeData {
	return c.resize
}

// RecolorState returns the captured and new color of a Recolor command.
func (c *Command) RecolorState() RecolorData {
	return c.recolor
}

// RepositionState returns the start and end location of a drag.
func (c *Command) RepositionState() RepositionData {
	return c.move
}

// CaptureState binds s and records the field this command governs as the
// previous value. Calling it again replaces the earlier capture.
func (c *Command) CaptureState(s Shape) {
	c.target = s
	switch c.kind {
	case KindResize:
		c.resize.Prev = s.Size()
	case KindRecolor:
		c.recolor.Prev = s.Color()
	case KindReposition:
		c.move.Prev = s.Location()
		c.move.Loc = c.move.Prev
	}
}

// Execute applies the command to s and records a copy in h when the shape
// actually changed. It reports whether anything was recorded; false is the
// normal outcome for a change that would be a no-op. A nil h applies the
// change without recording it.
//
// Remove always records. Reposition neither captures nor applies: it must
// have been armed on s with CaptureState, and it records only when s has
// moved since then.
func (c *Command) Execute(s Shape, h *History) bool {
	switch c.kind {
	case KindReposition:
		if c.target == nil || c.target != s {
			return false
		}
		loc := s.Location()
		if loc == c.move.Prev {
			return false
		}
		c.move.Loc = loc
	case KindRemove:
		c.CaptureState(s)
	default:
		c.CaptureState(s)
		if !c.apply() {
			return false
		}
	}

	if h != nil {
		h.Record(c)
	}
	return true
}

// apply sets the new value on the bound shape. It returns false when the
// shape already holds that value. Resize compares the size the shape ended
// up with, since a shape may clamp the requested one.
func (c *Command) apply() bool {
	switch c.kind {
	case KindResize:
		if c.target.Size() == c.resize.Size {
			return false
		}
		c.target.SetSize(c.resize.Size)
		if c.target.Size() == c.resize.Prev {
			return false
		}
	case KindRecolor:
		if c.target.Color() == c.recolor.Color {
			return false
		}
		c.target.SetColor(c.recolor.Color)
	}
	return true
}

// Undo restores the captured previous value.
func (c *Command) Undo() error {
	if c.target == nil {
		return fmt.Errorf("undo %s: %w", c.kind, ErrNotCaptured)
	}

	switch c.kind {
	case KindResize:
		c.target.SetSize(c.resize.Prev)
	case KindRecolor:
		c.target.SetColor(c.recolor.Prev)
	case KindReposition:
		c.target.MoveTo(c.move.Prev)
	case KindRemove:
		c.target.Hide()
	}
	return nil
}

// Redo runs the forward transformation again. Resize and Recolor recompute
// from their new value rather than restoring a snapshot.
func (c *Command) Redo() error {
	if c.target == nil {
		return fmt.Errorf("redo %s: %w", c.kind, ErrNotCaptured)
	}

	switch c.kind {
	case KindResize, KindRecolor:
		c.apply()
	case KindReposition:
		c.target.MoveTo(c.move.Loc)
	case KindRemove:
		c.target.Show()
	}
	return nil
}

// Copy returns an independent duplicate. Captured values are copied; the
// target shape is shared.
func (c *Command) Copy() *Command {
	dup := *c
	return &dup
}
