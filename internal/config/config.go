// Package config provides YAML-based league configuration loading for the
// gridiron platform.
package config

// LeagueConfig contains all tuning for league creation and simulation.
type LeagueConfig struct {
	Season     SeasonConfig     `yaml:"season"`
	Injuries   InjuryConfig     `yaml:"injuries"`
	FreeAgency FreeAgencyConfig `yaml:"free_agency"`
	Roster     []RosterSlot     `yaml:"roster"`
	Franchises []Franchise      `yaml:"franchises"`
}

// SeasonConfig defines the shape of a regular season.
type SeasonConfig struct {
	Games        int `yaml:"games"`         // Rounds per regular season
	PlayoffTeams int `yaml:"playoff_teams"` // Teams entering the bracket
	StartYear    int `yaml:"start_year"`
	MinScore     int `yaml:"min_score"` // Per-game score draw, inclusive
	MaxScore     int `yaml:"max_score"`
}

// InjuryConfig defines per-game injury odds.
type InjuryConfig struct {
	ChancePerGame float64 `yaml:"chance_per_game"`
	SevereChance  float64 `yaml:"severe_chance"` // Of injuries, fraction that are severe
}

// FreeAgencyConfig defines the contract issued on free-agent reassignment.
type FreeAgencyConfig struct {
	MinYears      int     `yaml:"min_years"`
	MaxYears      int     `yaml:"max_years"`
	SalaryPerYear float64 `yaml:"salary_per_year"`
}

// RosterSlot describes how many players of a position a bootstrap roster
// gets, and the ranges their attributes are drawn from.
type RosterSlot struct {
	Position         string  `yaml:"position"`
	Count            int     `yaml:"count"`
	MinAge           int     `yaml:"min_age"`
	MaxAge           int     `yaml:"max_age"`
	MinOverall       int     `yaml:"min_overall"`
	MaxOverall       int     `yaml:"max_overall"`
	MinContractYears int     `yaml:"min_contract_years"`
	MaxContractYears int     `yaml:"max_contract_years"`
	SalaryPerYear    float64 `yaml:"salary_per_year"`
}

// Franchise is one entry of the fixed team table that seeds the league.
type Franchise struct {
	City       string `yaml:"city"`
	Name       string `yaml:"name"`
	Conference string `yaml:"conference"`
	Division   string `yaml:"division"`
}
