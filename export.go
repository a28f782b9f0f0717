package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

func (m *model) exportVisualTXT(filename string) error {
	if m.canvas == nil {
		return fmt.Errorf("no canvas available")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	// Render the canvas as it appears, without the menu and status lines
	width, height := m.canvasSize()
	for _, line := range m.canvas.RenderPlain(width, height, m.selected) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}

// export writes the canvas to a timestamped file under the save directory
// and reports the outcome in the status line.
func (m *model) export(op FileOperation, now time.Time) {
	stamp := now.Format("20060102-150405")

	ext := ".png"
	if op == FileOpSaveVisualTXT {
		ext = ".txt"
	}

	filename, err := m.config.GetSavePath("squared-" + stamp + ext)
	if err == nil {
		switch op {
		case FileOpSavePNG:
			err = m.canvas.ExportToPNG(filename)
		case FileOpSaveVisualTXT:
			err = m.exportVisualTXT(filename)
		}
	}

	if err != nil {
		log.Printf("export %s: %v", filename, err)
		m.errorMessage = fmt.Sprintf("Error exporting: %s", err.Error())
		m.successMessage = ""
		return
	}

	absPath, _ := filepath.Abs(filename)
	log.Printf("exported %s", absPath)
	m.successMessage = fmt.Sprintf("Saved to %s", absPath)
	m.errorMessage = ""
}
