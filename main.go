package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"squared/command"
	"squared/shape"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var logFile string
	var saveDir string
	var seed int64

	rootCmd := &cobra.Command{
		Use:   "squared",
		Short: "Draw, move, resize and recolor squares in the terminal with full undo/redo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				config.LogFile = logFile
			}
			if cmd.Flags().Changed("save-dir") {
				config.SaveDirectory = expandPath(saveDir, "")
			}
			if cmd.Flags().Changed("seed") {
				config.Seed = seed
			}
			return run(config)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "rc file to read (default ~/.squaredrc)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug log to this file")
	rootCmd.Flags().StringVar(&saveDir, "save-dir", "", "directory for exported files")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed for new square positions (0 picks one)")
	return rootCmd
}

func run(config *Config) error {
	// The terminal belongs to the UI, so logs go to a file or nowhere.
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "squared")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func initialModel(config *Config) model {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := model{
		width:   defaultWidth,
		height:  defaultHeight,
		mode:    ModeNormal,
		canvas:  NewCanvas(),
		history: command.NewHistory(),
		sizeMenu: []*command.Command{
			command.NewResize(bigSize, "Big"),
			command.NewResize(mediumSize, "Medium"),
			command.NewResize(smallSize, "Small"),
		},
		colorMenu: lo.Map(shape.Palette, func(nc shape.NamedColor, _ int) *command.Command {
			return command.NewRecolor(nc.Color, nc.Name)
		}),
		dragCmd:   command.NewReposition(),
		removeCmd: command.NewRemove(),
		rng:       rand.New(rand.NewSource(seed)),
		config:    config,
	}

	sq := m.canvas.AddSquare(image.Point{}, bigSize, shape.Black)
	m.centerSquare(sq)
	m.selectSquare(sq)
	return m
}

// centerSquare places sq in the middle of the canvas. It is layout, not an
// edit, so nothing is recorded.
func (m *model) centerSquare(sq *shape.Rect) {
	width, height := m.canvasSize()
	sq.MoveTo(image.Pt(max(0, (width-sq.Size())/2), max(0, (height-sq.Size())/2)))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.ready = true
			if len(m.canvas.shapes) == 1 {
				m.centerSquare(m.canvas.shapes[0])
			}
		}
		return m, nil

	case tea.MouseMsg:
		if !m.help {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if m.help {
			m.help = false
			return m, nil
		}
		if m.mode == ModeMove {
			m.handleMoveKey(key)
			return m, nil
		}

		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.cancelDrag()
			m.help = true
		case "1", "2", "3":
			m.execute(m.sizeMenu[key[0]-'1'])
		case "K", "b", "r", "g", "y":
			m.execute(m.colorMenu[colorKeyIndex(key)])
		case "u":
			m.undo()
		case "U", "ctrl+r":
			m.redo()
		case "m":
			m.startMove()
		case "n":
			m.newSquare()
		case "tab":
			m.selectNext()
		case "c":
			m.copySelected()
		case "P":
			m.export(FileOpSavePNG, time.Now())
		case "T":
			m.export(FileOpSaveVisualTXT, time.Now())
		case "esc":
			m.errorMessage = ""
			m.successMessage = ""
		}
		return m, nil
	}
	return m, nil
}

// colorKeyIndex maps a color key to its color menu entry.
func colorKeyIndex(key string) int {
	switch key {
	case "b":
		return 1
	case "r":
		return 2
	case "g":
		return 3
	case "y":
		return 4
	default:
		return 0
	}
}
