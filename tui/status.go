package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/agecore/types"
)

// pointAbbrev is the status bar label for each point kind.
var pointAbbrev = [types.NumPoints]string{"F", "R", "S", "C"}

// renderStatusBar produces a full-width inverted status line showing the
// acting player, round, age, civil actions, points and queued actions.
func (m Model) renderStatusBar() string {
	b := m.engine.Board
	tab := m.engine.Preview()

	age := styleStatusAge.Render(fmt.Sprintf(" Age %s ", b.Age()))
	left := fmt.Sprintf(" %s | Round %d ", b.ActingPlayer(), b.Round())

	pts := tab.Points()
	parts := make([]string, 0, types.NumPoints)
	for _, k := range types.AllPoints {
		parts = append(parts, fmt.Sprintf("%s:%d", pointAbbrev[k], pts.Get(k)))
	}
	right := fmt.Sprintf("%s | CA %d/%d ",
		strings.Join(parts, " "), tab.Actions(), tab.Government().CivilActions)
	if n := len(m.engine.Pending()); n > 0 {
		candidate := fmt.Sprintf("Queued %d | %s", n, right)
		if lipgloss.Width(age)+lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}

	gap := m.width - lipgloss.Width(age) - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := styleStatusBar.Render(left + strings.Repeat(" ", gap) + right)
	return age + bar
}
