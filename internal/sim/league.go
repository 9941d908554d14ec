package sim

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-gridiron/internal/config"
)

// SeasonResult is the immutable record of one simulated season, appended
// to the league history.
type SeasonResult struct {
	Year           int
	ChampionTeamID int
	StatsByPlayer  map[PlayerID]StatLine
	Awards         map[string]PlayerID
}

// League owns the teams and drives one season at a time through the
// sequence regular season -> playoffs -> awards -> off-season.
type League struct {
	Teams   []*Team
	Year    int
	History []SeasonResult

	cfg config.LeagueConfig
	rng *rand.Rand
}

// NewLeague builds a league from the configured franchise table. Rosters
// start empty; call GenerateRosters to fill them.
func NewLeague(cfg config.LeagueConfig, rng *rand.Rand) *League {
	teams := make([]*Team, 0, len(cfg.Franchises))
	for i, fr := range cfg.Franchises {
		teams = append(teams, &Team{
			ID:         i,
			Name:       fr.Name,
			City:       fr.City,
			GM:         GM{Name: fr.City + " GM", TeamID: i},
			Conference: fr.Conference,
			Division:   fr.Division,
		})
	}
	return &League{
		Teams: teams,
		Year:  cfg.Season.StartYear,
		cfg:   cfg,
		rng:   rng,
	}
}

// AllPlayers returns every rostered player, team by team in roster order.
func (l *League) AllPlayers() []*Player {
	var players []*Player
	for _, t := range l.Teams {
		players = append(players, t.Players...)
	}
	return players
}

// TeamByID resolves a team id, nil if unknown (including NoTeam).
func (l *League) TeamByID(id int) *Team {
	for _, t := range l.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// PlayerByID resolves a player id across all rosters, nil if unknown.
func (l *League) PlayerByID(id PlayerID) *Player {
	for _, t := range l.Teams {
		for _, p := range t.Players {
			if p.ID == id {
				return p
			}
		}
	}
	return nil
}

// RandomTeam returns a uniformly random team.
func (l *League) RandomTeam() *Team {
	return l.Teams[l.rng.Intn(len(l.Teams))]
}

// Standings returns the teams sorted by wins descending. The sort is
// stable, so ties keep the original league order; playoff seeding and
// display both rely on that.
func (l *League) Standings() []*Team {
	sorted := make([]*Team, len(l.Teams))
	copy(sorted, l.Teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Wins > sorted[j].Wins
	})
	return sorted
}

func addStats(stats map[PlayerID]StatLine, p *Player, line StatLine) {
	if stats[p.ID] == nil {
		stats[p.ID] = make(StatLine)
	}
	stats[p.ID].Add(line)
}

// SimulateRegularSeason plays the configured number of rounds. Each round
// pairs teams by consecutive index (0v1, 2v3, ...); an unpaired trailing
// team sits the round out. Scores are independent uniform draws with the
// home team winning ties. Per game, every active healthy player generates
// position stats and then rolls injury; injured players tick their injury
// down instead of playing.
//
// Returns season stats keyed by player id, and copies them onto each
// player's LastSeasonStats / CareerStats.
func (l *League) SimulateRegularSeason() map[PlayerID]StatLine {
	for _, t := range l.Teams {
		t.ResetRecord()
	}

	stats := make(map[PlayerID]StatLine)

	for game := 0; game < l.cfg.Season.Games; game++ {
		for i := 0; i+1 < len(l.Teams); i += 2 {
			home := l.Teams[i]
			away := l.Teams[i+1]

			homeScore := randBetween(l.rng, l.cfg.Season.MinScore, l.cfg.Season.MaxScore)
			awayScore := randBetween(l.rng, l.cfg.Season.MinScore, l.cfg.Season.MaxScore)

			if homeScore >= awayScore {
				home.RecordWin()
				away.RecordLoss()
			} else {
				away.RecordWin()
				home.RecordLoss()
			}

			for _, team := range []*Team{home, away} {
				for _, p := range team.Players {
					if p.Retired {
						continue
					}
					if !p.Healthy() {
						p.TickInjury()
						continue
					}

					switch p.Position {
					case QB:
						addStats(stats, p, StatLine{
							StatPassYards: randBetween(l.rng, 0, 400),
							StatPassTDs:   randBetween(l.rng, 0, 4),
						})
					case RB:
						addStats(stats, p, StatLine{
							StatRushYards: randBetween(l.rng, 0, 200),
							StatRushTDs:   randBetween(l.rng, 0, 3),
						})
					case WR, TE:
						addStats(stats, p, StatLine{
							StatRecYards: randBetween(l.rng, 0, 200),
							StatRecTDs:   randBetween(l.rng, 0, 3),
						})
					case LB:
						addStats(stats, p, StatLine{
							StatTackles: randBetween(l.rng, 0, 15),
						})
					}

					p.RollInjury(l.rng, l.cfg.Injuries)
				}
			}
		}
	}

	for _, p := range l.AllPlayers() {
		line := stats[p.ID]
		if line == nil {
			line = make(StatLine)
		}
		p.LastSeasonStats = line
		p.CareerStats.Add(line)
	}

	return stats
}

// SimulatePlayoffs runs the single-elimination bracket over the top teams
// by win count (stable seeding, ties keep league order). Survivors pair by
// consecutive index; an odd team out gets a bye; every matchup is a coin
// flip. Returns the champion's team id.
func (l *League) SimulatePlayoffs() int {
	field := l.Standings()
	if len(field) > l.cfg.Season.PlayoffTeams {
		field = field[:l.cfg.Season.PlayoffTeams]
	}

	for len(field) > 1 {
		var next []*Team
		for i := 0; i < len(field); i += 2 {
			if i+1 >= len(field) {
				next = append(next, field[i]) // bye
				continue
			}
			if l.rng.Intn(2) == 0 {
				next = append(next, field[i])
			} else {
				next = append(next, field[i+1])
			}
		}
		field = next
	}

	return field[0].ID
}

// AssignAwards computes the season awards from the season stats. Only the
// MVP is awarded: a weighted stat score with a strict-maximum comparison,
// so the first player seen keeps a tie.
func (l *League) AssignAwards(stats map[PlayerID]StatLine) map[string]PlayerID {
	awards := make(map[string]PlayerID)

	var bestID PlayerID
	found := false
	bestScore := -1.0
	for _, p := range l.AllPlayers() {
		s := stats[p.ID]
		score := float64(s.Get(StatPassYards))/50 +
			float64(s.Get(StatPassTDs))*4 +
			float64(s.Get(StatRushYards))/25 +
			float64(s.Get(StatRushTDs))*4 +
			float64(s.Get(StatTackles))
		if score > bestScore {
			bestScore = score
			bestID = p.ID
			found = true
		}
	}

	if found {
		awards["MVP"] = bestID
	}

	return awards
}

// OffSeasonUpdates ages every active player through the off-season:
// rating change from the season's stats, the retirement roll, Hall of
// Fame evaluation on retirement, and contract advancement with free
// agency on expiry. Retirement is decided before the contract check, so a
// player retiring this cycle keeps their team; an expiring contract sends
// anyone else to a uniformly random team (same team draw means staying
// put, with no new contract issued).
func (l *League) OffSeasonUpdates() {
	for _, p := range l.AllPlayers() {
		if p.Retired {
			continue
		}

		p.UpdateOverallFromStats()
		p.MaybeRetire(l.rng)

		if p.Retired {
			p.EvaluateHallOfFame()
		}

		if p.Contract != nil {
			p.Contract.AdvanceYear()
			if p.Contract.Expired() && !p.Retired {
				newTeam := l.RandomTeam()
				if p.TeamID != newTeam.ID {
					if oldTeam := l.TeamByID(p.TeamID); oldTeam != nil {
						oldTeam.RemovePlayer(p)
					}
					newTeam.AddPlayer(p)
					p.Contract = NewContract(
						randBetween(l.rng, l.cfg.FreeAgency.MinYears, l.cfg.FreeAgency.MaxYears),
						l.cfg.FreeAgency.SalaryPerYear,
					)
				}
			}
		}
	}
}

// RunFullSeason drives one complete season: regular season, playoffs,
// awards, accolade bookkeeping, history append, off-season updates, and
// the year rollover. Returns the season's result.
func (l *League) RunFullSeason() SeasonResult {
	stats := l.SimulateRegularSeason()
	championID := l.SimulatePlayoffs()
	awards := l.AssignAwards(stats)

	season := SeasonResult{
		Year:           l.Year,
		ChampionTeamID: championID,
		StatsByPlayer:  stats,
		Awards:         awards,
	}

	for name, pid := range awards {
		if p := l.PlayerByID(pid); p != nil {
			p.Accolades = append(p.Accolades, fmt.Sprintf("%s %d", name, l.Year))
		}
	}

	l.History = append(l.History, season)
	l.OffSeasonUpdates()
	l.Year++

	return season
}
