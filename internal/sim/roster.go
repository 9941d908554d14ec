package sim

import "fmt"

// GenerateRosters fills every team with placeholder players drawn from the
// configured roster template: per position, a count of players with
// age, overall and contract length drawn uniformly from the slot's
// ranges. Player names follow the "{City} {POS}{n}" convention.
func (l *League) GenerateRosters() {
	for _, team := range l.Teams {
		for _, slot := range l.cfg.Roster {
			pos := Position(slot.Position)
			if !pos.Valid() {
				continue
			}
			for i := 0; i < slot.Count; i++ {
				p := NewPlayer(
					fmt.Sprintf("%s %s%d", team.City, pos, i+1),
					pos,
					randBetween(l.rng, slot.MinAge, slot.MaxAge),
					randBetween(l.rng, slot.MinOverall, slot.MaxOverall),
				)
				p.Contract = NewContract(
					randBetween(l.rng, slot.MinContractYears, slot.MaxContractYears),
					slot.SalaryPerYear,
				)
				team.AddPlayer(p)
			}
		}
	}
}

// Custom player creation defaults.
const (
	customPlayerAge     = 21
	customPlayerOverall = 75
	customContractYears = 4
	customSalary        = 5_000_000
)

// NewCustomPlayer creates a user-made rookie on a fresh four-year deal.
// The player is not rostered anywhere yet.
func NewCustomPlayer(name string, pos Position) *Player {
	p := NewPlayer(name, pos, customPlayerAge, customPlayerOverall)
	p.Custom = true
	p.Contract = NewContract(customContractYears, customSalary)
	return p
}
