package main

import (
	"image"
	"math/rand"

	"squared/command"
	"squared/shape"
)

type model struct {
	width  int
	height int
	ready  bool
	mode   Mode
	help   bool

	canvas   *Canvas
	history  *command.History
	selected *shape.Rect

	// Long-lived commands, created once and reused for every invocation.
	sizeMenu  []*command.Command
	colorMenu []*command.Command
	dragCmd   *command.Command
	removeCmd *command.Command

	mouseDown  bool
	dragShape  *shape.Rect
	dragMoved  bool
	pressPoint image.Point
	lastMouse  image.Point

	rng            *rand.Rand
	config         *Config
	errorMessage   string
	successMessage string
}

// menuItem is one clickable entry of the menu bar. Columns are half-open.
type menuItem struct {
	Label  string
	Action MenuAction
	Index  int
	X0, X1 int
}
