package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/agecore/engine"
	"github.com/nathoo/agecore/engine/catalog"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"[Trace output enabled.]", kindSystem},
		{"[trace] Events: 2", kindTrace},
		{"You can't build Philosophy: not enough resources.", kindError},
		{`You don't know "irrigation".`, kindError},
		{`I don't know how to "dance".`, kindError},
		{"Which a? (Agriculture, Alchemy).", kindError},
		{"Nothing to undo.", kindError},
		{"Age II begins.", kindAge},
		{"Drew Iron, Coal from the civil deck.", kindDraw},
		{"Income: food=2 resources=2 science=1.", kindIncome},
		{"Queued build Agriculture (2 resources, 1 action). 3 actions left.", kindQueued},
		{"Removed build Bronze.", kindQueued},
		{"   4. [1] -", kindEmptySlot},
		{"   1. [1] Iron", kindNarration},
		{"Legal actions:", kindHeading},
		{"Points: food=2.", kindLabeled},
		{"Government: Despotism (4/4 civil actions).", kindLabeled},
		{"Player 2 to act (round 1).", kindNarration},
		{"", kindNarration},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"Drew Iron, Coal, Printing Press from the civil deck.", 30,
			"Drew Iron, Coal, Printing\nPress from the civil deck."},
		{"", 80, ""},
		{"one", 80, "one"},
		{"a b c d e", 3, "a b\nc d\ne"},
		{"  12. [3] Mechanized Agriculture", 20, "  12. [3] Mechanized\nAgriculture"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("build agriculture")
	h.Push("undo")
	h.Push("end")

	for _, want := range []string{"end", "undo", "build agriculture", "build agriculture"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("row")
	h.Push("end")

	h.Prev() // "end"
	h.Prev() // "row"

	next, ok := h.Next()
	if !ok || next != "end" {
		t.Errorf("expected 'end', got %q (ok=%v)", next, ok)
	}

	if _, ok = h.Next(); ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	if h.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", h.Len())
	}
	for _, want := range []string{"c", "b", "b"} {
		if prev, _ := h.Prev(); prev != want {
			t.Errorf("expected %q, got %q", want, prev)
		}
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("end")
	h.Push("end")
	h.Push("end")

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("row")
	h.Push("end")

	h.Prev()
	h.ResetCursor()

	if prev, ok := h.Prev(); !ok || prev != "end" {
		t.Errorf("expected 'end' after reset, got %q", prev)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	eng, err := engine.New(catalog.Fixture(), 2, 3, nil)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return New(eng, false)
}

// sized delivers a window size so the viewport is ready.
func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

// submit types input and presses enter.
func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.input.SetValue(input)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func rawText(m Model) string {
	var lines []string
	for _, rl := range m.log {
		lines = append(lines, rl.text)
	}
	return strings.Join(lines, "\n")
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel(t)
	output, quit := m.handleMeta("/quit")
	if !quit {
		t.Error("expected quit=true")
	}
	if len(output) == 0 || output[0] != "Goodbye." {
		t.Errorf("expected Goodbye., got %v", output)
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel(t)
	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("expected quit=false")
	}
	joined := strings.Join(output, "\n")
	for _, want := range []string{"/quit", "/state", "build <technology>", "pgup scroll up"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in help output", want)
		}
	}
}

func TestHandleMeta_Trace(t *testing.T) {
	m := newTestModel(t)

	output, _ := m.handleMeta("/trace")
	if !m.trace || output[0] != "Trace output enabled." {
		t.Errorf("expected trace enabled, got %v (trace=%v)", output, m.trace)
	}
	output, _ = m.handleMeta("/trace")
	if m.trace || output[0] != "Trace output disabled." {
		t.Errorf("expected trace disabled, got %v (trace=%v)", output, m.trace)
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel(t)
	output, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("expected quit=false")
	}
	if !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command, got %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := newTestModel(t)
	output, _ := m.handleMeta("/state")
	joined := strings.Join(output, "\n")
	for _, want := range []string{"Round: 1", "Acting: Player 1", "Player 2:", "Hash:"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in state output, got:\n%s", want, joined)
		}
	}
}

func TestInitialOutput(t *testing.T) {
	m := newTestModel(t)
	msg, ok := m.opening()().(outputMsg)
	if !ok {
		t.Fatal("expected outputMsg")
	}
	if msg.lines[0] != "Fixture v0.0.0, 2 players" {
		t.Errorf("title line = %q", msg.lines[0])
	}
}

func TestEnter_EndsTurn(t *testing.T) {
	m := sized(t, newTestModel(t))
	m = submit(t, m, "end")

	if got := m.engine.Board.ActingPlayer().String(); got != "Player 2" {
		t.Errorf("expected Player 2 to act, got %s", got)
	}
	text := rawText(m)
	if !strings.Contains(text, "Player 1 ends the turn") {
		t.Errorf("expected end of turn output, got:\n%s", text)
	}
	if m.history.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", m.history.Len())
	}
}

func TestEnter_AgainRepeats(t *testing.T) {
	m := sized(t, newTestModel(t))
	m = submit(t, m, "end")
	m = submit(t, m, "g")

	if m.engine.Board.Round() != 2 {
		t.Errorf("expected round 2, got %d", m.engine.Board.Round())
	}
}

func TestEnter_TraceAppendsEvents(t *testing.T) {
	m := sized(t, newTestModel(t))
	m.trace = true
	m = submit(t, m, "end")

	if !strings.Contains(rawText(m), "[trace]   turn_ended") {
		t.Errorf("expected trace lines, got:\n%s", rawText(m))
	}
}

func TestEnter_Quit(t *testing.T) {
	m := sized(t, newTestModel(t))
	m = submit(t, m, "/quit")
	if !m.quitting {
		t.Error("expected quitting after /quit")
	}
	if m.View() != "" {
		t.Error("expected empty view when quitting")
	}
}

func TestStatusBar(t *testing.T) {
	m := sized(t, newTestModel(t))
	bar := m.renderStatusBar()
	for _, want := range []string{"Player 1", "Round 1", "F:0", "CA 4/4"} {
		if !strings.Contains(bar, want) {
			t.Errorf("expected %q in status bar %q", want, bar)
		}
	}
}
