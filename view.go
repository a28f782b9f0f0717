package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"squared/command"
)

var (
	menuStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#444444"))
	activeStyle   = menuStyle.Copy().Bold(true).Background(lipgloss.Color("#0066cc"))
	disabledStyle = menuStyle.Copy().Foreground(lipgloss.Color("#888888"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#55cc55"))
)

const menuSeparator = "│"

// menuItems lays out the menu bar. View and clickMenu share it so the
// clickable ranges always match what is drawn.
func (m *model) menuItems() []menuItem {
	var items []menuItem
	x := 0
	add := func(label string, action MenuAction, index int) {
		w := lipgloss.Width(label) + 2
		items = append(items, menuItem{Label: label, Action: action, Index: index, X0: x, X1: x + w})
		x += w
	}

	for i, cmd := range m.sizeMenu {
		add(cmd.Label(), MenuSize, i)
	}
	x += lipgloss.Width(menuSeparator)
	for i, cmd := range m.colorMenu {
		add(cmd.Label(), MenuColor, i)
	}
	x += lipgloss.Width(menuSeparator)
	add("Undo", MenuUndo, 0)
	add("Redo", MenuRedo, 0)
	add("New", MenuNew, 0)
	return items
}

// isActive reports whether a menu entry matches the selected square, the
// way a combo box shows its current value.
func (m *model) isActive(item menuItem) bool {
	if m.selected == nil {
		return false
	}
	switch item.Action {
	case MenuSize:
		return m.sizeMenu[item.Index].ResizeState().Size == m.selected.Size()
	case MenuColor:
		return m.colorMenu[item.Index].RecolorState().Color == m.selected.Color()
	}
	return false
}

func (m *model) isEnabled(item menuItem) bool {
	switch item.Action {
	case MenuUndo:
		return m.history.CanUndo()
	case MenuRedo:
		return m.history.CanRedo()
	}
	return true
}

func (m *model) renderMenuBar(width int) string {
	var bar strings.Builder
	prev := MenuSize
	for _, item := range m.menuItems() {
		if item.Action != prev && (item.Action == MenuColor || item.Action == MenuUndo) {
			bar.WriteString(menuStyle.Render(menuSeparator))
		}
		prev = item.Action

		style := menuStyle
		switch {
		case !m.isEnabled(item):
			style = disabledStyle
		case m.isActive(item):
			style = activeStyle
		}
		bar.WriteString(style.Render(" " + item.Label + " "))
	}

	line := bar.String()
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += menuStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}

func (m *model) statusLine() string {
	status := fmt.Sprintf("%s | undo:%d redo:%d", m.modeString(), m.history.UndoCount(), m.history.RedoCount())
	if cmd, ok := m.history.PeekUndo(); ok {
		status += fmt.Sprintf(" | u: undo %s", describe(cmd))
	}
	if cmd, ok := m.history.PeekRedo(); ok {
		status += fmt.Sprintf(" | U: redo %s", describe(cmd))
	}
	if m.selected != nil {
		status += fmt.Sprintf(" | #%d", m.selected.ID)
	}

	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	}
	return status
}

func describe(cmd *command.Command) string {
	switch cmd.Kind() {
	case command.KindResize, command.KindRecolor:
		return fmt.Sprintf("%s %s", cmd.Kind(), cmd.Label())
	default:
		return cmd.Kind().String()
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeMove:
		return "MOVE (hjkl, Enter to finish, Esc to cancel)"
	default:
		return "NORMAL (? for help)"
	}
}

func (m *model) canvasSize() (int, int) {
	width := m.width / cellAspect
	if width < 1 {
		width = 1
	}
	height := m.height - menuBarHeight - statusHeight
	if height < 1 {
		height = 1
	}
	return width, height
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width, height := m.canvasSize()
	lines := []string{m.renderMenuBar(m.width)}
	lines = append(lines, m.canvas.Render(width, height, m.selected)...)
	lines = append(lines, m.statusLine())
	return strings.Join(lines, "\n")
}

var helpLines = []string{
	"squared help",
	"============",
	"",
	"Mouse:",
	"  click square        Select it (clears undo/redo history)",
	"  drag selected       Move it",
	"  click menu entry    Run it",
	"",
	"Size:",
	"  1 / 2 / 3           Big / Medium / Small",
	"",
	"Color:",
	"  K b r g y           Black / Blue / Red / Green / Yellow",
	"",
	"Editing:",
	"  m                   Move selected square with h/j/k/l (Shift for 2x)",
	"  n                   New square at a random position",
	"  tab                 Select next square",
	"  u                   Undo",
	"  U / ctrl+r          Redo",
	"",
	"Files:",
	"  P                   Export PNG",
	"  T                   Export text",
	"  c                   Copy selected square to clipboard",
	"",
	"  ?                   Toggle help",
	"  q / ctrl+c          Quit",
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 || visible > len(helpLines) {
		visible = len(helpLines)
	}
	keys := lo.Map(m.sizeMenu, func(cmd *command.Command, _ int) string { return cmd.Label() })
	return strings.Join(helpLines[:visible], "\n") + "\nSizes: " + strings.Join(keys, ", ")
}
