// Package tui provides a Bubble Tea terminal UI for the agecore engine.
package tui

// History remembers submitted commands for Up/Down recall. pos equals
// len(entries) while the player is not browsing.
type History struct {
	entries []string
	limit   int
	pos     int
}

// NewHistory creates a history buffer holding at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Len returns the number of stored commands.
func (h *History) Len() int { return len(h.entries) }

func (h *History) browsing() bool { return h.pos < len(h.entries) }

// Push records a command. Repeating the newest entry is a no-op, so
// ending several turns in a row leaves one "end".
func (h *History) Push(cmd string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != cmd {
		h.entries = append(h.entries, cmd)
		if over := len(h.entries) - h.limit; over > 0 {
			h.entries = append([]string(nil), h.entries[over:]...)
		}
	}
	h.pos = len(h.entries)
}

// Prev steps back to an older command, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// Next steps forward to a newer command. Stepping past the newest ends
// browsing and returns ("", false).
func (h *History) Next() (string, bool) {
	if !h.browsing() {
		return "", false
	}
	h.pos++
	if !h.browsing() {
		return "", false
	}
	return h.entries[h.pos], true
}

// ResetCursor ends browsing.
func (h *History) ResetCursor() {
	h.pos = len(h.entries)
}
