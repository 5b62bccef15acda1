package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilescore/internal/core"
)

const maxStepRate = 64

// Model is the Bubble Tea model for replaying a recorded game.
type Model struct {
	title    string
	frames   []core.Frame
	cursor   int
	playing  bool
	screen   *core.Screen
	keys     *KeyMapper
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a viewer over frames. Playback starts immediately.
func NewModel(title string, frames []core.Frame, cfg core.RuntimeConfig) Model {
	if cfg.StepRate <= 0 {
		cfg.StepRate = core.DefaultConfig().StepRate
	}

	return Model{
		title:   title,
		frames:  frames,
		playing: len(frames) > 1,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		config:  cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.StepRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if !m.playing && m.atEnd() {
			m.cursor = 0
		}
		m.playing = !m.playing
	case core.ActionForward:
		m.playing = false
		m.seek(m.cursor + 1)
	case core.ActionBackward:
		m.playing = false
		m.seek(m.cursor - 1)
	case core.ActionFirst:
		m.playing = false
		m.seek(0)
	case core.ActionLast:
		m.playing = false
		m.seek(len(m.frames) - 1)
	case core.ActionFaster:
		m.config.StepRate = core.Min(m.config.StepRate*2, maxStepRate)
	case core.ActionSlower:
		m.config.StepRate = core.Max(m.config.StepRate/2, 1)
	case core.ActionRestart:
		m.seek(0)
		m.playing = len(m.frames) > 1
	}

	return m, nil
}

// handleTick advances playback and stops at the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.playing {
		m.seek(m.cursor + 1)
		if m.atEnd() {
			m.playing = false
		}
	}
	return m, tickCmd(m.config.StepRate)
}

func (m *Model) seek(i int) {
	if len(m.frames) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = core.Clamp(i, 0, len(m.frames)-1)
}

func (m Model) atEnd() bool {
	return m.cursor >= len(m.frames)-1
}

// Cursor returns the index of the frame on display.
func (m Model) Cursor() int { return m.cursor }

// Playing reports whether playback is running.
func (m Model) Playing() bool { return m.playing }

// StepRate returns the current playback rate in steps per second.
func (m Model) StepRate() int { return m.config.StepRate }

func (m Model) current() core.Frame {
	if len(m.frames) == 0 {
		return core.Frame{}
	}
	return m.frames[m.cursor]
}

func (m Model) render() {
	RenderBoard(m.screen, BoardView{
		Title:  m.title,
		Frame:  m.current(),
		Total:  len(m.frames),
		Paused: !m.playing,
		Rate:   m.config.StepRate,
		Hint:   Controls(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".tilescore", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("replay_step%d_%s.txt", m.current().Step, timestamp)

	//nolint:errcheck // Best-effort save, playback continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given frames.
func Run(title string, frames []core.Frame, cfg core.RuntimeConfig) error {
	model := NewModel(title, frames, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
