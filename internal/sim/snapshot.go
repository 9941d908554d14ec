package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-gridiron/internal/config"
)

// Snapshot types flatten league state into plain nested values for
// serialization. Per-season stat maps and award maps are keyed by
// process-lifetime player ids and active injuries are week-scale
// transients, so neither survives the dump; everything durable does.

// ContractSnapshot mirrors Contract.
type ContractSnapshot struct {
	Years         int     `json:"years"`
	SalaryPerYear float64 `json:"salary_per_year"`
	CurrentYear   int     `json:"current_year"`
}

// PlayerSnapshot mirrors a player's durable state.
type PlayerSnapshot struct {
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Age         int               `json:"age"`
	TeamID      int               `json:"team_id"`
	Overall     int               `json:"overall"`
	Captain     bool              `json:"is_captain"`
	Custom      bool              `json:"is_custom"`
	Retired     bool              `json:"retired"`
	Contract    *ContractSnapshot `json:"contract"`
	CareerYears int               `json:"career_years"`
	Accolades   []string          `json:"accolades"`
	HallOfFame  bool              `json:"hall_of_fame"`
	CareerStats map[string]int    `json:"career_stats"`
}

// GMSnapshot mirrors GM.
type GMSnapshot struct {
	Name   string `json:"name"`
	TeamID int    `json:"team_id"`
}

// TeamSnapshot mirrors a team and its roster.
type TeamSnapshot struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	City       string           `json:"city"`
	Conference string           `json:"conference"`
	Division   string           `json:"division"`
	GM         GMSnapshot       `json:"gm"`
	Wins       int              `json:"wins"`
	Losses     int              `json:"losses"`
	Players    []PlayerSnapshot `json:"players"`
}

// SeasonSnapshot keeps the durable part of a historical season.
type SeasonSnapshot struct {
	Year           int `json:"year"`
	ChampionTeamID int `json:"champion_team_id"`
}

// LeagueSnapshot is the root of a league save.
type LeagueSnapshot struct {
	Year    int              `json:"year"`
	Teams   []TeamSnapshot   `json:"teams"`
	Seasons []SeasonSnapshot `json:"season_history"`
}

func snapshotPlayer(p *Player) PlayerSnapshot {
	snap := PlayerSnapshot{
		Name:        p.Name,
		Position:    string(p.Position),
		Age:         p.Age,
		TeamID:      p.TeamID,
		Overall:     p.Overall,
		Captain:     p.Captain,
		Custom:      p.Custom,
		Retired:     p.Retired,
		CareerYears: p.CareerYears,
		Accolades:   append([]string(nil), p.Accolades...),
		HallOfFame:  p.HallOfFame,
		CareerStats: p.CareerStats.Clone(),
	}
	if p.Contract != nil {
		snap.Contract = &ContractSnapshot{
			Years:         p.Contract.Years,
			SalaryPerYear: p.Contract.SalaryPerYear,
			CurrentYear:   p.Contract.CurrentYear,
		}
	}
	return snap
}

// Snapshot flattens the league field-for-field into plain values.
func (l *League) Snapshot() LeagueSnapshot {
	snap := LeagueSnapshot{Year: l.Year}

	for _, t := range l.Teams {
		ts := TeamSnapshot{
			ID:         t.ID,
			Name:       t.Name,
			City:       t.City,
			Conference: t.Conference,
			Division:   t.Division,
			GM:         GMSnapshot{Name: t.GM.Name, TeamID: t.GM.TeamID},
			Wins:       t.Wins,
			Losses:     t.Losses,
		}
		for _, p := range t.Players {
			ts.Players = append(ts.Players, snapshotPlayer(p))
		}
		snap.Teams = append(snap.Teams, ts)
	}

	for _, s := range l.History {
		snap.Seasons = append(snap.Seasons, SeasonSnapshot{
			Year:           s.Year,
			ChampionTeamID: s.ChampionTeamID,
		})
	}

	return snap
}

// RestoreLeague rebuilds a league from a snapshot, the field-for-field
// inverse of Snapshot. Restored players get fresh process-lifetime ids;
// cfg and rng govern all future simulation.
func RestoreLeague(snap LeagueSnapshot, cfg config.LeagueConfig, rng *rand.Rand) *League {
	l := &League{
		Year: snap.Year,
		cfg:  cfg,
		rng:  rng,
	}

	for _, ts := range snap.Teams {
		team := &Team{
			ID:         ts.ID,
			Name:       ts.Name,
			City:       ts.City,
			Conference: ts.Conference,
			Division:   ts.Division,
			GM:         GM{Name: ts.GM.Name, TeamID: ts.GM.TeamID},
			Wins:       ts.Wins,
			Losses:     ts.Losses,
		}
		for _, ps := range ts.Players {
			p := NewPlayer(ps.Name, Position(ps.Position), ps.Age, ps.Overall)
			p.Captain = ps.Captain
			p.Custom = ps.Custom
			p.Retired = ps.Retired
			p.CareerYears = ps.CareerYears
			p.Accolades = append([]string(nil), ps.Accolades...)
			p.HallOfFame = ps.HallOfFame
			if ps.CareerStats != nil {
				p.CareerStats = StatLine(ps.CareerStats).Clone()
			}
			if ps.Contract != nil {
				p.Contract = &Contract{
					Years:         ps.Contract.Years,
					SalaryPerYear: ps.Contract.SalaryPerYear,
					CurrentYear:   ps.Contract.CurrentYear,
				}
			}
			team.AddPlayer(p)
		}
		l.Teams = append(l.Teams, team)
	}

	for _, ss := range snap.Seasons {
		l.History = append(l.History, SeasonResult{
			Year:           ss.Year,
			ChampionTeamID: ss.ChampionTeamID,
		})
	}

	return l
}
