// Package career implements the MyCareer mode: create a player, join a
// random team, and play season after season until retirement.
package career

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
	screenSimulating
	screenResult
	screenSummary
	screenStandings
	screenMessages
	screenRetired
)

// Package-level variables set by the CLI before the mode starts.
var (
	configPath string
	playerName = "Rookie"
	position   = sim.QB
)

// SetConfigPath sets the league config file path. Empty means the
// default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetPlayerName sets the created player's name.
func SetPlayerName(name string) {
	if name != "" {
		playerName = name
	}
}

// SetPosition sets the created player's position. Invalid positions are
// ignored and the default kept.
func SetPosition(pos string) {
	p := sim.Position(pos)
	if p.Valid() {
		position = p
	}
}

// Mode implements the MyCareer mode logic.
type Mode struct {
	config core.RuntimeConfig
	rng    *rand.Rand

	career *sim.Career

	scr       screen
	animTicks int

	lastResult sim.SeasonResult
	haveResult bool

	seasons []core.SeasonRecord
	done    bool
	paused  bool
}

// New creates a new career mode instance.
func New() *Mode {
	return &Mode{}
}

func init() {
	registry.Register("career", func() registry.Mode {
		return New()
	})
}

// ID returns the mode identifier.
func (m *Mode) ID() string {
	return "career"
}

// Title returns the display name.
func (m *Mode) Title() string {
	return "MyCareer"
}

// Reset initializes or restarts the mode: fresh league, fresh custom
// player placed on a random team.
func (m *Mode) Reset(cfg core.RuntimeConfig) {
	m.config = cfg
	m.rng = rand.New(rand.NewSource(cfg.Seed))

	lc, err := config.LoadLeague(configPath)
	if err != nil {
		lc = config.DefaultLeagueConfig()
	}

	league := sim.NewLeague(lc, m.rng)
	league.GenerateRosters()

	player := sim.NewCustomPlayer(playerName, position)
	league.RandomTeam().AddPlayer(player)

	m.career = sim.NewCareer(league, player)

	m.scr = screenMenu
	m.animTicks = 0
	m.haveResult = false
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
	case screenSimulating:
		m.stepSimulating(in)
	case screenResult:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			if m.career.Player.Retired {
				m.scr = screenRetired
			} else {
				m.scr = screenMenu
			}
		}
	case screenSummary, screenStandings, screenMessages:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			m.scr = screenMenu
		}
	case screenRetired:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			m.done = true
		}
	}

	return core.StepResult{State: m.State()}
}

func (m *Mode) stepMenu(in core.InputFrame) {
	switch in.Digit {
	case 1:
		m.startSeason()
	case 2:
		m.career.RequestTrade()
	case 3:
		m.scr = screenSummary
	case 4:
		m.scr = screenStandings
	case 5:
		m.scr = screenMessages
	case 0:
		m.done = true
	}
	if in.Has(core.ActionBack) {
		m.done = true
	}
}

func (m *Mode) startSeason() {
	result := m.career.PlayFullSeason()
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
	if t := m.career.League.TeamByID(result.ChampionTeamID); t != nil {
		rec.Champion = t.FullName()
	}
	if pid, ok := result.Awards["MVP"]; ok {
		if p := m.career.League.PlayerByID(pid); p != nil {
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
