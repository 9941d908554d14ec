package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/registry"
	"github.com/vovakirdan/tui-gridiron/internal/storage"
)

// Model is the Bubble Tea model for running a play mode.
type Model struct {
	mode         registry.Mode
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	inputFrame   core.InputFrame
	modeState    core.ModeState
	seasonsSaved int // Season records already persisted
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		mode:       mode,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the mode.
func (m Model) Init() tea.Cmd {
	m.mode.Reset(m.config)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

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

	// Quit is delivered as an action too: the mode sees it on the next
	// tick and reports Done, which is when the program exits.
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)

	return m, nil
}

// handleResize processes window resize events. League state survives a
// resize; modes simply draw into the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.mode.Step(m.inputFrame)
	m.modeState = result.State

	// Persist newly finished seasons (best effort)
	for m.seasonsSaved < len(m.modeState.Seasons) {
		rec := m.modeState.Seasons[m.seasonsSaved]
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.store.SaveSeason(m.mode.ID(), rec)
		}
		m.seasonsSaved++
	}

	m.inputFrame.Clear()

	if m.modeState.Done {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.mode.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".gridiron", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.mode.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.mode.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(mode, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
