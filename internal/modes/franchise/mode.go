// Package franchise implements the league franchise mode: browse the
// league, simulate full seasons, and follow the championship history.
package franchise

import (
	"math/rand"

	"github.com/vovakirdan/tui-gridiron/internal/config"
	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/registry"
	"github.com/vovakirdan/tui-gridiron/internal/sim"
)

// Simulation animation length in ticks (1.5s at 60 FPS).
const simAnimTicks = 90

type screen int

const (
	screenMenu screen = iota
	screenTeams
	screenStandings
	screenSimulating
	screenResult
	screenHistory
)

// Package-level variables set by the CLI before the mode starts.
var configPath string

// SetConfigPath sets the league config file path. Empty means the
// default search order.
func SetConfigPath(path string) {
	configPath = path
}

// Mode implements the franchise mode logic.
type Mode struct {
	config core.RuntimeConfig
	rng    *rand.Rand

	league *sim.League
	scr    screen
	cursor int // Team cursor on the teams screen

	lastResult sim.SeasonResult
	haveResult bool
	animTicks  int

	seasons []core.SeasonRecord
	done    bool
	paused  bool
}

// New creates a new franchise mode instance.
func New() *Mode {
	return &Mode{}
}

func init() {
	registry.Register("franchise", func() registry.Mode {
		return New()
	})
}

// ID returns the mode identifier.
func (m *Mode) ID() string {
	return "franchise"
}

// Title returns the display name.
func (m *Mode) Title() string {
	return "Franchise"
}

// Reset initializes or restarts the mode with a fresh league.
func (m *Mode) Reset(cfg core.RuntimeConfig) {
	m.config = cfg
	m.rng = rand.New(rand.NewSource(cfg.Seed))

	lc, err := config.LoadLeague(configPath)
	if err != nil {
		lc = config.DefaultLeagueConfig()
	}

	m.league = sim.NewLeague(lc, m.rng)
	m.league.GenerateRosters()

	m.scr = screenMenu
	m.cursor = 0
	m.haveResult = false
	m.animTicks = 0
	m.seasons = nil
	m.done = false
	m.paused = false
}

// Step advances the mode by one tick.
func (m *Mode) Step(in core.InputFrame) core.StepResult {
	if m.done {
		return core.StepResult{State: m.State()}
	}

	if in.Has(core.ActionQuit) {
		m.done = true
		return core.StepResult{State: m.State()}
	}

	switch m.scr {
	case screenMenu:
		m.stepMenu(in)
	case screenTeams:
		m.stepTeams(in)
	case screenStandings, screenHistory:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			m.scr = screenMenu
		}
	case screenSimulating:
		m.stepSimulating(in)
	case screenResult:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			m.scr = screenMenu
		}
	}

	return core.StepResult{State: m.State()}
}

func (m *Mode) stepMenu(in core.InputFrame) {
	switch in.Digit {
	case 1:
		m.cursor = 0
		m.scr = screenTeams
	case 2:
		m.scr = screenStandings
	case 3:
		m.startSeason()
	case 4:
		m.scr = screenHistory
	case 0:
		m.done = true
	}
	if in.Has(core.ActionBack) {
		m.done = true
	}
}

func (m *Mode) stepTeams(in core.InputFrame) {
	if in.Has(core.ActionUp) && m.cursor > 0 {
		m.cursor--
	}
	if in.Has(core.ActionDown) && m.cursor < len(m.league.Teams)-1 {
		m.cursor++
	}
	if in.Has(core.ActionBack) {
		m.scr = screenMenu
	}
}

// startSeason runs the whole season immediately; the simulating screen
// only animates while the result waits.
func (m *Mode) startSeason() {
	result := m.league.RunFullSeason()
	m.lastResult = result
	m.haveResult = true

	m.seasons = append(m.seasons, m.seasonRecord(result))

	m.animTicks = 0
	m.paused = false
	m.scr = screenSimulating
}

func (m *Mode) stepSimulating(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.paused {
		return
	}

	m.animTicks++
	if m.animTicks >= simAnimTicks || in.Has(core.ActionConfirm) {
		m.scr = screenResult
	}
}

func (m *Mode) seasonRecord(result sim.SeasonResult) core.SeasonRecord {
	rec := core.SeasonRecord{Year: result.Year}
	if t := m.league.TeamByID(result.ChampionTeamID); t != nil {
		rec.Champion = t.FullName()
	}
	if pid, ok := result.Awards["MVP"]; ok {
		if p := m.league.PlayerByID(pid); p != nil {
			rec.MVP = p.Name
		}
	}
	return rec
}

// State returns the current mode state.
func (m *Mode) State() core.ModeState {
	return core.ModeState{
		Done:    m.done,
		Paused:  m.paused,
		Seasons: m.seasons,
	}
}
