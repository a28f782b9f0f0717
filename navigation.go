package main

import "log"

// startMove arms the drag command for a keyboard move of the selected
// square.
func (m *model) startMove() {
	if m.selected == nil || !m.selected.Visible() {
		m.errorMessage = "No square selected"
		return
	}
	m.cancelDrag()
	m.dragCmd.CaptureState(m.selected)
	m.mode = ModeMove
}

func (m *model) handleMoveKey(key string) {
	switch key {
	case "enter":
		m.dragCmd.Execute(m.selected, m.history)
		m.mode = ModeNormal
	case "esc":
		// Put the square back where the move started; nothing is recorded.
		if err := m.dragCmd.Undo(); err != nil {
			log.Printf("cancel move: %v", err)
		}
		m.mode = ModeNormal
	default:
		m.handleNudge(key, m.getMoveSpeed(key))
	}
}

func (m *model) handleNudge(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.selected.Move(-speed, 0)
	case "l", "right", "L", "shift+right":
		m.selected.Move(speed, 0)
	case "k", "up", "K", "shift+up":
		m.selected.Move(0, -speed)
	case "j", "down", "J", "shift+down":
		m.selected.Move(0, speed)
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
