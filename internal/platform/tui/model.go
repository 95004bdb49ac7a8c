package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blind-surfers/internal/core"
	"github.com/vovakirdan/blind-surfers/internal/game"
	"github.com/vovakirdan/blind-surfers/internal/speech"
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	session    *game.Session
	transcript *speech.Transcript
	config     core.RuntimeConfig
	mapper     *KeyMapper
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	width      int
	quitting   bool
}

// NewModel creates a model for a session that has not been started yet.
// transcript may be nil.
func NewModel(session *game.Session, transcript *speech.Transcript, cfg core.RuntimeConfig) Model {
	keys := DefaultKeyMap()
	return Model{
		session:    session,
		transcript: transcript,
		config:     cfg,
		mapper:     NewKeyMapper(keys),
		keys:       keys,
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues input for the next frame. Events are applied in arrival
// order when the frame runs.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}
	m.inputFrame.Push(ev)
	return m, nil
}

// handleTick runs one frame with the measured delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = core.FrameDelta(now.Sub(m.lastTick).Seconds())
	}
	m.lastTick = now

	m.session.Frame(m.inputFrame, dt)
	m.inputFrame.Clear()

	if m.session.Quit() {
		return m.quit()
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Shutdown()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var lines []string
	if m.transcript != nil {
		lines = m.transcript.Lines()
	}
	return renderView(m.session.Snapshot(), lines, m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(session *game.Session, transcript *speech.Transcript, cfg core.RuntimeConfig) error {
	model := NewModel(session, transcript, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
