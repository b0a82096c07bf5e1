package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, exits, inventory, and turn count from the last prompt's
// snapshot.
func (m Model) renderStatusBar() string {
	s := m.status

	left := fmt.Sprintf(" %s | Exits: %s", s.Room, strings.Join(s.Exits, ","))
	right := fmt.Sprintf("T:%d ", s.Turns)

	// Show inventory items if they fit, otherwise just the count.
	if len(s.Inventory) > 0 {
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(s.Inventory, ", "), s.Turns)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(s.Inventory), s.Turns)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
