package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeMove
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveVisualTXT
)

type MenuAction int

const (
	MenuSize MenuAction = iota
	MenuColor
	MenuUndo
	MenuRedo
	MenuNew
)

// Square sizes in canvas units. One unit is two terminal columns wide and
// one row tall, which keeps squares looking square.
const (
	smallSize  = 2
	mediumSize = 5
	bigSize    = 10
)

const (
	menuBarHeight = 1
	statusHeight  = 1
	cellAspect    = 2

	defaultWidth  = 80
	defaultHeight = 24
)
