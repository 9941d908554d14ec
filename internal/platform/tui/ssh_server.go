package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/registry"
	"github.com/vovakirdan/tui-gridiron/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.gridiron/host_key.
	HostKeyPath string

	// DBPath is the path to the league database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.gridiron/league.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the league platform.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridiron-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open league database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".gridiron", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen tracks which top-level screen an SSH session is on.
type sessionScreen int

const (
	sessionMenu sessionScreen = iota
	sessionHistory
	sessionMode
)

// SessionModel manages the full session flow: menu -> mode -> menu,
// with the season history reachable from the menu. This is the
// top-level model used for SSH sessions.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	scr       sessionScreen
	menu      MenuModel
	history   HistoryModel
	modeModel *ModeModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.scr {
	case sessionMode:
		if m.modeModel != nil {
			return m.updateMode(msg)
		}
		return m.updateMenu(msg)
	case sessionHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when on the mode picker.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.config = m.menu.Config()
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scr = sessionHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		mode, err := registry.Create(selected.ModeID)
		if err != nil {
			// Shouldn't happen since menu only shows registered modes
			return m, nil
		}

		m.config = m.menu.Config() // Get possibly updated config from resize

		modeModel := NewModeModel(mode, m.store, m.config)
		m.modeModel = &modeModel
		m.scr = sessionMode

		return m, m.modeModel.Init()
	}

	return m, cmd
}

// updateHistory handles updates when on the season history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newHistory, cmd := m.history.Update(msg)
	if historyModel, ok := newHistory.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.menu = NewMenuModel(m.store, m.config)
		m.scr = sessionMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateMode handles updates when inside a play mode.
func (m SessionModel) updateMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.modeModel.Update(msg)
	if modeModel, ok := newModel.(ModeModel); ok {
		m.modeModel = &modeModel
	}

	// A finished mode drops the session back on the picker
	if m.modeModel.BackToMenu() {
		m.modeModel = nil
		m.menu = NewMenuModel(m.store, m.config)
		m.scr = sessionMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.scr {
	case sessionMode:
		if m.modeModel != nil {
			return m.modeModel.View()
		}
	case sessionHistory:
		return m.history.View()
	}

	return m.menu.View()
}

// ModeModel wraps a play mode for use inside an SSH session: instead of
// quitting the program when the mode ends, it signals back-to-menu.
type ModeModel struct {
	mode         registry.Mode
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	inputFrame   core.InputFrame
	modeState    core.ModeState
	seasonsSaved int
	backToMenu   bool
}

// NewModeModel creates a new mode model for an SSH session.
func NewModeModel(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig) ModeModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return ModeModel{
		mode:       mode,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the mode.
func (m ModeModel) Init() tea.Cmd {
	m.mode.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
		return m, nil
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

// handleTick processes simulation ticks.
func (m ModeModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.mode.Step(m.inputFrame)
	m.modeState = result.State

	// Persist newly finished seasons (best effort)
	for m.seasonsSaved < len(m.modeState.Seasons) {
		rec := m.modeState.Seasons[m.seasonsSaved]
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.SaveSeason(m.mode.ID(), rec)
		}
		m.seasonsSaved++
	}

	m.inputFrame.Clear()

	if m.modeState.Done {
		m.backToMenu = true
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the mode.
func (m ModeModel) View() string {
	if m.backToMenu {
		return ""
	}

	m.mode.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu returns true if the mode ended and the session should
// return to the picker.
func (m ModeModel) BackToMenu() bool {
	return m.backToMenu
}
