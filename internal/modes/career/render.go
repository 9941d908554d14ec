package career

import (
	"fmt"

	"github.com/vovakirdan/tui-gridiron/internal/core"
	"github.com/vovakirdan/tui-gridiron/internal/sim"
)

// Render draws the current screen into the buffer.
func (m *Mode) Render(dst *core.Screen) {
	dst.Clear()

	switch m.scr {
	case screenMenu:
		m.renderMenu(dst)
	case screenSimulating:
		m.renderSimulating(dst)
	case screenResult:
		m.renderResult(dst)
	case screenSummary:
		m.renderSummary(dst)
	case screenStandings:
		m.renderStandings(dst)
	case screenMessages:
		m.renderMessages(dst)
	case screenRetired:
		m.renderRetired(dst)
	}
}

func (m *Mode) renderMenu(dst *core.Screen) {
	p := m.career.Player
	team := m.career.League.TeamByID(p.TeamID)
	teamName := "Free agent"
	if team != nil {
		teamName = team.FullName()
	}

	dst.DrawTextCentered(1, "MYCAREER")
	dst.DrawTextCentered(2, fmt.Sprintf("%s  %s  %d OVR  Age %d  %s",
		p.Name, p.Position, p.Overall, p.Age, teamName))
	if p.Captain {
		dst.DrawTextCentered(3, "Team captain")
	}

	items := []string{
		"1. Play next season",
		"2. Request a trade",
		"3. Career summary",
		"4. Standings",
		"5. GM messages",
		"0. Leave career mode",
	}
	y := 5
	for _, item := range items {
		dst.DrawText(6, y, item)
		y++
	}

	if m.career.TradeRequested {
		dst.DrawTextColored(6, y+1, "Trade request pending", core.ColorBrightYellow)
	}

	dst.DrawText(2, dst.Height()-1, "Press a number key to choose")
}

// renderSimulating draws the field animation shown while a season
// result waits.
func (m *Mode) renderSimulating(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	fieldTop := 4
	fieldH := h - 8
	if fieldH < 5 {
		fieldH = 5
	}

	dst.DrawTextCentered(1, fmt.Sprintf("Playing season %d...", m.career.League.Year-1))

	field := core.NewRect(2, fieldTop, w-4, fieldH)
	dst.DrawRect(field, ' ', core.ColorGreen)
	dst.DrawBox(field)

	for i := 1; i < 10; i++ {
		x := field.X + i*field.W/10
		dst.DrawVLine(x, field.Y+1, field.H-2, '|', core.ColorGray)
	}

	progress := m.animTicks % simAnimTicks
	ballX := field.X + 1 + (field.W-3)*progress/simAnimTicks
	ballY := field.Y + field.H/2
	dst.SetColored(ballX, ballY, '◉', core.ColorBrightYellow)

	if m.paused {
		dst.DrawTextCentered(h-2, "PAUSED - press P to resume")
	} else {
		dst.DrawTextCentered(h-2, "Enter: skip")
	}
}

func (m *Mode) renderResult(dst *core.Screen) {
	if !m.haveResult {
		m.renderMenu(dst)
		return
	}

	rec := m.seasonRecord(m.lastResult)
	p := m.career.Player

	dst.DrawTextCentered(2, fmt.Sprintf("SEASON %d COMPLETE", rec.Year))
	dst.DrawTextColored(10, 4, fmt.Sprintf("Champion: %s", rec.Champion), core.ColorBrightGreen)
	dst.DrawText(10, 5, fmt.Sprintf("MVP:      %s", rec.MVP))

	dst.DrawText(10, 7, fmt.Sprintf("Your season (%s):", p.Name))
	y := 8
	for _, key := range statKeysFor(p.Position) {
		dst.DrawText(12, y, fmt.Sprintf("%-12s %d", statLabel(key), p.LastSeasonStats.Get(key)))
		y++
	}
	dst.DrawText(10, y+1, fmt.Sprintf("Overall: %d  Age: %d", p.Overall, p.Age))

	if p.Retired {
		dst.DrawTextColored(10, y+3, "You have retired from the NFL.", core.ColorBrightYellow)
	}

	dst.DrawText(2, dst.Height()-1, "Enter: continue")
}

func (m *Mode) renderSummary(dst *core.Screen) {
	s := m.career.Summary()
	team := m.career.League.TeamByID(s.TeamID)
	teamName := "Free agent"
	if team != nil {
		teamName = team.FullName()
	}

	dst.DrawTextCentered(1, "CAREER SUMMARY")
	dst.DrawText(6, 3, fmt.Sprintf("%s  %s  %s", s.Name, s.Position, teamName))
	dst.DrawText(6, 4, fmt.Sprintf("Age %d  Overall %d  Seasons played %d", s.Age, s.Overall, s.CareerYears))

	y := 6
	dst.DrawText(6, y, "Career stats:")
	y++
	for _, key := range statKeysFor(s.Position) {
		dst.DrawText(8, y, fmt.Sprintf("%-12s %d", statLabel(key), s.CareerStats.Get(key)))
		y++
	}

	y++
	if len(s.Accolades) > 0 {
		dst.DrawText(6, y, "Accolades:")
		y++
		for _, a := range s.Accolades {
			if y >= dst.Height()-2 {
				break
			}
			dst.DrawTextColored(8, y, a, core.ColorBrightYellow)
			y++
		}
	} else {
		dst.DrawText(6, y, "No accolades yet")
	}

	if s.HallOfFame {
		dst.DrawTextColored(6, dst.Height()-3, "HALL OF FAME", core.ColorBrightYellow)
	}

	dst.DrawText(2, dst.Height()-1, "B: back")
}

func (m *Mode) renderStandings(dst *core.Screen) {
	dst.DrawTextCentered(0, fmt.Sprintf("STANDINGS - %d", m.career.League.Year))

	playerTeamID := m.career.Player.TeamID
	for i, t := range m.career.League.Standings() {
		line := fmt.Sprintf("%2d. %-28s %s", i+1, t.FullName(), t.Record())
		color := core.ColorDefault
		if t.ID == playerTeamID {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(4, 2+i, line, color)
	}

	dst.DrawText(2, dst.Height()-1, "B: back")
}

func (m *Mode) renderMessages(dst *core.Screen) {
	dst.DrawTextCentered(0, "GM MESSAGES")

	msgs := m.career.Summary().Messages
	if len(msgs) == 0 {
		dst.DrawTextCentered(3, "No messages yet")
	}
	for i, msg := range msgs {
		if 2+i >= dst.Height()-1 {
			break
		}
		dst.DrawText(4, 2+i, msg)
	}

	dst.DrawText(2, dst.Height()-1, "B: back")
}

func (m *Mode) renderRetired(dst *core.Screen) {
	dst.DrawTextCentered(2, "CAREER OVER")
	m.renderRetiredBody(dst)
	dst.DrawText(2, dst.Height()-1, "Enter: back to main menu")
}

func (m *Mode) renderRetiredBody(dst *core.Screen) {
	s := m.career.Summary()

	dst.DrawTextCentered(4, fmt.Sprintf("%s retires after %d seasons", s.Name, s.CareerYears))

	y := 6
	for _, key := range statKeysFor(s.Position) {
		dst.DrawTextCentered(y, fmt.Sprintf("%s: %d", statLabel(key), s.CareerStats.Get(key)))
		y++
	}
	y++
	dst.DrawTextCentered(y, fmt.Sprintf("Accolades: %d", len(s.Accolades)))
	if s.HallOfFame {
		dst.DrawTextCentered(y+2, "Inducted into the HALL OF FAME")
	}
}

// statKeysFor returns the stat keys relevant for a position, in display
// order.
func statKeysFor(pos sim.Position) []string {
	switch pos {
	case sim.QB:
		return []string{sim.StatPassYards, sim.StatPassTDs}
	case sim.RB:
		return []string{sim.StatRushYards, sim.StatRushTDs}
	case sim.WR, sim.TE:
		return []string{sim.StatRecYards, sim.StatRecTDs}
	case sim.LB:
		return []string{sim.StatTackles}
	default:
		return nil
	}
}

func statLabel(key string) string {
	switch key {
	case sim.StatPassYards:
		return "Pass yards"
	case sim.StatPassTDs:
		return "Pass TDs"
	case sim.StatRushYards:
		return "Rush yards"
	case sim.StatRushTDs:
		return "Rush TDs"
	case sim.StatRecYards:
		return "Rec yards"
	case sim.StatRecTDs:
		return "Rec TDs"
	case sim.StatTackles:
		return "Tackles"
	default:
		return key
	}
}
