// Package tui provides a Bubble Tea terminal UI for the game engine.
package tui

// History keeps the most recent input lines for up/down recall. Old
// entries fall off the front once the limit is reached. A cursor of -1
// means the player is typing fresh input, not browsing.
type History struct {
	lines []string
	limit int
	pos   int
}

// NewHistory creates a history holding at most limit lines.
func NewHistory(limit int) *History {
	return &History{lines: make([]string, 0, limit), limit: limit, pos: -1}
}

// Push records a submitted line, dropping the oldest line when full.
// A line equal to the most recent one is not recorded again.
func (h *History) Push(line string) {
	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > h.limit {
		copy(h.lines, h.lines[1:])
		h.lines = h.lines[:h.limit]
	}
}

// Prev moves the cursor one line back and returns it. The first call
// starts at the most recent line; at the oldest line it stays put.
// Returns ("", false) only when nothing has been recorded.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	switch {
	case h.pos < 0:
		h.pos = len(h.lines) - 1
	case h.pos > 0:
		h.pos--
	}
	return h.lines[h.pos], true
}

// Next moves the cursor one line forward. Stepping past the most recent
// line returns ("", false) and puts the player back on fresh input.
func (h *History) Next() (string, bool) {
	if h.pos < 0 {
		return "", false
	}
	if h.pos++; h.pos >= len(h.lines) {
		h.pos = -1
		return "", false
	}
	return h.lines[h.pos], true
}

// ResetCursor abandons browsing, as when the player edits the line.
func (h *History) ResetCursor() {
	h.pos = -1
}
