// Package sim implements the gridiron league engine: players, teams,
// season simulation, awards, off-season progression and the single-player
// career layer. It is pure logic with no rendering or I/O; all randomness
// flows through an injected *rand.Rand so seeded runs are reproducible.
package sim

import (
	"math/rand"
	"strings"
	"sync/atomic"

	"github.com/vovakirdan/tui-gridiron/internal/config"
	"github.com/vovakirdan/tui-gridiron/internal/core"
)

// Position is a player's position on the field.
type Position string

// The five positions the engine simulates.
const (
	QB Position = "QB"
	WR Position = "WR"
	RB Position = "RB"
	TE Position = "TE"
	LB Position = "LB"
)

// Positions lists all valid positions in draw order.
var Positions = []Position{QB, WR, RB, TE, LB}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case QB, WR, RB, TE, LB:
		return true
	}
	return false
}

// Overall rating bounds. Every rating mutation clamps into this range.
const (
	MinOverall = 40
	MaxOverall = 99
)

// Career thresholds for Hall of Fame induction.
const (
	hofPassYards = 60000
	hofRushYards = 15000
	hofTackles   = 2000
)

// Award names the league knows about. Only the MVP is currently computed
// each season; the rest are reserved for accolade matching.
var AwardNames = []string{
	"MVP",
	"Offensive Player of the Year",
	"Defensive Player of the Year",
	"Rookie of the Year",
	"Super Bowl MVP",
}

// PlayerID is a process-lifetime unique player key, used for stat and
// award bookkeeping. Two players may share name, position and age, so
// identity is never value-based.
type PlayerID int64

var playerIDCounter int64

func nextPlayerID() PlayerID {
	return PlayerID(atomic.AddInt64(&playerIDCounter, 1))
}

// Injury is a temporary condition keeping a player out of games. It is
// owned by exactly one player and removed once WeeksOut reaches zero.
type Injury struct {
	Description string
	WeeksOut    int
	Severe      bool
}

// Contract binds a player to a salary for a number of remaining years.
type Contract struct {
	Years         int // Years remaining; the contract is expired at 0
	SalaryPerYear float64
	CurrentYear   int
}

// NewContract creates a contract in its first year.
func NewContract(years int, salaryPerYear float64) *Contract {
	return &Contract{Years: years, SalaryPerYear: salaryPerYear, CurrentYear: 1}
}

// AdvanceYear moves the contract forward one year. Advancing an already
// expired contract is a no-op.
func (c *Contract) AdvanceYear() {
	if c.Years > 0 {
		c.CurrentYear++
		c.Years--
	}
}

// Expired reports whether the contract has no years remaining.
func (c *Contract) Expired() bool {
	return c.Years <= 0
}

// NoTeam is the TeamID of a player not currently on any roster.
const NoTeam = -1

// Player is a league player. The owning Team is the container of record;
// TeamID is a weak back-reference resolved through the League.
type Player struct {
	ID       PlayerID
	Name     string
	Position Position
	Age      int

	TeamID   int
	Overall  int
	Captain  bool
	Custom   bool
	Retired  bool

	Contract *Contract
	Injury   *Injury

	CareerYears int
	Accolades   []string
	HallOfFame  bool

	LastSeasonStats StatLine
	CareerStats     StatLine
}

// NewPlayer creates a player with a fresh unique ID and no team.
func NewPlayer(name string, pos Position, age, overall int) *Player {
	return &Player{
		ID:          nextPlayerID(),
		Name:        name,
		Position:    pos,
		Age:         age,
		TeamID:      NoTeam,
		Overall:     core.Clamp(overall, MinOverall, MaxOverall),
		CareerStats: make(StatLine),
	}
}

// Healthy reports whether the player can play this game.
func (p *Player) Healthy() bool {
	return p.Injury == nil || p.Injury.WeeksOut <= 0
}

// TickInjury counts one game off an active injury, clearing it once no
// weeks remain. Called once per simulated game in lieu of playing.
func (p *Player) TickInjury() {
	if p.Injury != nil {
		p.Injury.WeeksOut--
		if p.Injury.WeeksOut <= 0 {
			p.Injury = nil
		}
	}
}

// RollInjury rolls the per-game injury chance for a player who just
// played. Severe injuries keep a player out 5-20 weeks, sprains 1-4.
func (p *Player) RollInjury(rng *rand.Rand, odds config.InjuryConfig) {
	if rng.Float64() < odds.ChancePerGame {
		severe := rng.Float64() < odds.SevereChance
		var weeks int
		desc := "sprain"
		if severe {
			weeks = randBetween(rng, 5, 20)
			desc = "torn ligament"
		} else {
			weeks = randBetween(rng, 1, 4)
		}
		p.Injury = &Injury{Description: desc, WeeksOut: weeks, Severe: severe}
	}
}

// UpdateOverallFromStats adjusts the overall rating from the just-finished
// season. No stats recorded means no change. Receiving stats deliberately
// carry no weight, so WR/TE ratings only ever drift through rushing or
// passing crossover stats.
func (p *Player) UpdateOverallFromStats() {
	stats := p.LastSeasonStats
	if len(stats) == 0 {
		return
	}

	score := float64(stats.Get(StatPassYards))/100 +
		float64(stats.Get(StatPassTDs))*2 +
		float64(stats.Get(StatRushYards))/50 +
		float64(stats.Get(StatRushTDs))*2 +
		float64(stats.Get(StatTackles))/5

	delta := core.Clamp(int(score/20), -5, 10)
	p.Overall = core.Clamp(p.Overall+delta, MinOverall, MaxOverall)
}

// MaybeRetire counts the finished season into the player's career, then
// rolls retirement. The propensity grows with age past 34, a sub-60
// rating, and careers beyond 15 years. A player who stays active ages one
// year; a retiring player's age freezes at retirement.
func (p *Player) MaybeRetire(rng *rand.Rand) {
	p.CareerYears++

	propensity := 0
	if p.Age >= 35 {
		propensity += (p.Age - 34) * 5
	}
	if p.Overall < 60 {
		propensity += 10
	}
	if p.CareerYears > 15 {
		propensity += (p.CareerYears - 15) * 3
	}

	roll := randBetween(rng, 1, 100)
	if roll <= propensity {
		p.Retired = true
	} else {
		p.Age++
	}
}

// EvaluateHallOfFame decides induction for a retired player: two MVP-class
// accolades, or landmark career totals. The "MVP" substring match counts
// Super Bowl MVPs toward the regular MVP tally as well.
func (p *Player) EvaluateHallOfFame() {
	sbMVPs := 0
	mvps := 0
	for _, a := range p.Accolades {
		if strings.Contains(a, "Super Bowl MVP") {
			sbMVPs++
		}
		if strings.Contains(a, "MVP") {
			mvps++
		}
	}

	if mvps >= 2 || sbMVPs >= 2 {
		p.HallOfFame = true
	} else if p.CareerStats.Get(StatPassYards) > hofPassYards ||
		p.CareerStats.Get(StatRushYards) > hofRushYards ||
		p.CareerStats.Get(StatTackles) > hofTackles {
		p.HallOfFame = true
	}
}
