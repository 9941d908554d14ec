package franchise

import (
	"fmt"

	"github.com/vovakirdan/tui-gridiron/internal/core"
)

// Render draws the current screen into the buffer.
func (m *Mode) Render(dst *core.Screen) {
	dst.Clear()

	switch m.scr {
	case screenMenu:
		m.renderMenu(dst)
	case screenTeams:
		m.renderTeams(dst)
	case screenStandings:
		m.renderStandings(dst)
	case screenSimulating:
		m.renderSimulating(dst)
	case screenResult:
		m.renderResult(dst)
	case screenHistory:
		m.renderHistory(dst)
	}
}

func (m *Mode) renderMenu(dst *core.Screen) {
	dst.DrawTextCentered(1, "FRANCHISE MODE")
	dst.DrawTextCentered(2, fmt.Sprintf("Season %d", m.league.Year))

	items := []string{
		"1. View teams",
		"2. Standings",
		"3. Simulate season",
		"4. Season history",
		"0. Back to main menu",
	}
	y := 5
	for _, item := range items {
		dst.DrawText(6, y, item)
		y++
	}

	dst.DrawText(2, dst.Height()-1, "Press a number key to choose")
}

func (m *Mode) renderTeams(dst *core.Screen) {
	dst.DrawTextCentered(0, "TEAMS")

	// Team list on the left, selected roster on the right.
	for i, t := range m.league.Teams {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-28s %s", prefix, t.FullName(), t.Record())
		if i == m.cursor {
			dst.DrawTextColored(2, 2+i, line, core.ColorBrightYellow)
		} else {
			dst.DrawText(2, 2+i, line)
		}
	}

	rosterX := 42
	if m.cursor < len(m.league.Teams) {
		t := m.league.Teams[m.cursor]
		dst.DrawText(rosterX, 2, fmt.Sprintf("%s roster:", t.FullName()))
		for i, p := range t.Players {
			if 3+i >= dst.Height()-1 {
				break
			}
			marker := ' '
			if p.Captain {
				marker = 'C'
			}
			status := ""
			if p.Retired {
				status = " (retired)"
			} else if !p.Healthy() {
				status = " (injured)"
			}
			dst.DrawText(rosterX, 3+i,
				fmt.Sprintf("%c %-3s %-22s %2d OVR%s", marker, p.Position, p.Name, p.Overall, status))
		}
	}

	dst.DrawText(2, dst.Height()-1, "Up/Down: select  B: back")
}

func (m *Mode) renderStandings(dst *core.Screen) {
	dst.DrawTextCentered(0, fmt.Sprintf("STANDINGS - %d", m.league.Year))

	for i, t := range m.league.Standings() {
		line := fmt.Sprintf("%2d. %-28s %s", i+1, t.FullName(), t.Record())
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(4, 2+i, line, color)
	}

	dst.DrawText(2, dst.Height()-1, "B: back")
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

	dst.DrawTextCentered(1, fmt.Sprintf("Simulating season %d...", m.league.Year-1))

	field := core.NewRect(2, fieldTop, w-4, fieldH)
	dst.DrawRect(field, ' ', core.ColorGreen)
	dst.DrawBox(field)

	// Yard lines every tenth of the field
	for i := 1; i < 10; i++ {
		x := field.X + i*field.W/10
		dst.DrawVLine(x, field.Y+1, field.H-2, '|', core.ColorGray)
	}

	// Ball sweeps the field over the animation
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

	dst.DrawTextCentered(2, fmt.Sprintf("SEASON %d COMPLETE", rec.Year))
	dst.DrawTextColored(10, 5, fmt.Sprintf("Champion: %s", rec.Champion), core.ColorBrightGreen)
	dst.DrawText(10, 6, fmt.Sprintf("MVP:      %s", rec.MVP))

	y := 8
	dst.DrawText(10, y, "Final standings:")
	y++
	for i, t := range m.league.Standings() {
		if y >= dst.Height()-2 {
			break
		}
		dst.DrawText(10, y, fmt.Sprintf("%2d. %-28s %s", i+1, t.FullName(), t.Record()))
		y++
	}

	dst.DrawText(2, dst.Height()-1, "Enter: continue")
}

func (m *Mode) renderHistory(dst *core.Screen) {
	dst.DrawTextCentered(0, "SEASON HISTORY")

	if len(m.league.History) == 0 {
		dst.DrawTextCentered(3, "No seasons played yet")
	}
	for i, s := range m.league.History {
		if 2+i >= dst.Height()-1 {
			break
		}
		champion := ""
		if t := m.league.TeamByID(s.ChampionTeamID); t != nil {
			champion = t.FullName()
		}
		dst.DrawText(4, 2+i, fmt.Sprintf("%d: %s", s.Year, champion))
	}

	dst.DrawText(2, dst.Height()-1, "B: back")
}
