package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/agecore/engine"
	"github.com/nathoo/agecore/types"
)

// rawLine is one unstyled log line. Lines are re-wrapped and re-styled on
// every resize.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // echoed command
	isSystem bool // meta-command output
}

// Model is the Bubble Tea model for the agecore TUI.
type Model struct {
	engine *engine.Engine
	keys   keyMap

	viewport viewport.Model
	input    textinput.Model
	history  *History
	log      []rawLine

	width, height int
	ready         bool
	trace         bool
	quitting      bool
	lastCmd       string
}

// outputMsg carries engine or meta-command output into Update.
type outputMsg struct {
	input    string // echoed command, empty for the opening status
	lines    []string
	isSystem bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, trace bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		engine:  eng,
		keys:    defaultKeyMap(),
		input:   ti,
		history: NewHistory(100),
		trace:   trace,
	}
}

// Run starts the Bubble Tea program and blocks until the players quit.
func Run(eng *engine.Engine, trace bool) error {
	p := tea.NewProgram(New(eng, trace), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.opening())
}

// opening prints the title line and the first player's status.
func (m Model) opening() tea.Cmd {
	return func() tea.Msg {
		game := m.engine.Catalog.Game
		lines := []string{
			fmt.Sprintf("%s v%s, %d players", game.Title, game.Version, len(m.engine.Board.TurnOrder())),
			"",
		}
		return outputMsg{lines: append(lines, m.engine.Step("status").Output...)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case outputMsg:
		m = m.appendOutput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize fits the viewport above the status bar and input line.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-2, 1)

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
}

// handleKey reacts to the bound keys. Unhandled keys reach the input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Submit):
		next, cmd := m.submit()
		return next, cmd, true

	case key.Matches(msg, m.keys.Prev):
		if prev, ok := m.history.Prev(); ok {
			m.input.SetValue(prev)
			m.input.CursorEnd()
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Next):
		next, ok := m.history.Next()
		if !ok {
			m.history.ResetCursor()
		}
		m.input.SetValue(next)
		m.input.CursorEnd()
		return m, nil, true

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

// submit runs the command in the input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)
	m.history.ResetCursor()

	if lower := strings.ToLower(input); lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			return m.appendOutput(outputMsg{input: input, lines: []string{"Nothing to repeat."}, isSystem: true}), nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		m = m.appendOutput(outputMsg{input: input, lines: lines, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	lines := result.Output
	if m.trace {
		lines = append(lines, formatTrace(result)...)
	}
	return m.appendOutput(outputMsg{input: input, lines: lines}), nil
}

// appendOutput adds one command's output to the log, followed by a blank
// separator line.
func (m Model) appendOutput(msg outputMsg) Model {
	if msg.input != "" {
		m.log = append(m.log, rawLine{text: msg.input, isInput: true})
	}
	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.log = append(m.log, rl)
	}
	m.log = append(m.log, rawLine{})

	m.refreshViewport()
	return m
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := max(m.width, 10)

	styled := make([]string, len(m.log))
	for i, rl := range m.log {
		styled[i] = rl.render(width)
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

func (rl rawLine) render(width int) string {
	if rl.text == "" {
		return ""
	}
	wrapped := wordWrap(rl.text, width)
	switch {
	case rl.isInput:
		return styledPlayerInput(wrapped)
	case rl.isSystem:
		return styledSystemMsg(wrapped)
	}
	return renderLineKind(wrapped, rl.kind)
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindLabeled:
		return styledLabeled(line)
	case kindQueued:
		return styleQueued.Render(line)
	case kindIncome:
		return styleIncome.Render(line)
	case kindDraw:
		return styleDraw.Render(line)
	case kindAge:
		return styleAge.Render(line)
	case kindEmptySlot:
		return styleEmptySlot.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarration.Render(line)
	}
}

// wordWrap breaks text at word boundaries to fit width. Leading indentation
// (card row slots) is kept on the first line only.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]
	var b strings.Builder
	b.WriteString(indent)
	col := len(indent)

	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
			col += len(word)
		case col+1+len(word) > width:
			b.WriteByte('\n')
			col = len(word)
		default:
			b.WriteByte(' ')
			col += 1 + len(word)
		}
		b.WriteString(word)
	}
	return b.String()
}

// View lays out the log, the status bar and the input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta runs a slash command and reports whether to quit.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch cmd := strings.Fields(input)[0]; cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true
	case "/help":
		return m.cmdHelp(), false
	case "/state":
		return m.cmdState(), false
	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false
	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdHelp() []string {
	lines := []string{
		"System:",
		"  /quit         Exit game",
		"  /help         Show this help",
		"  /state        Debug: dump the board",
		"  /trace        Toggle debug trace output",
		"",
	}
	lines = append(lines, m.engine.Step("help").Output...)
	return append(lines,
		"  again (g)           repeat your last command",
		"",
		m.keys.helpLine(),
	)
}

func (m *Model) cmdState() []string {
	e := m.engine
	b := e.Board
	lines := []string{
		fmt.Sprintf("Game: %s", e.ID),
		fmt.Sprintf("Round: %d  Acting: %s  Age: %s", b.Round(), b.ActingPlayer(), b.Age()),
		fmt.Sprintf("Civil deck: %d cards  RNG: seed %d, position %d",
			b.Decks().Remaining(), e.RNG.Seed(), e.RNG.Position()),
	}
	for _, p := range b.TurnOrder() {
		tab, _ := b.Tableau(p)
		lines = append(lines, fmt.Sprintf("%s: %s, %d actions", p, tab.Points(), tab.Actions()))
	}
	return append(lines, fmt.Sprintf("Hash: %016x", b.Hash()))
}

func formatTrace(result types.Result) []string {
	if len(result.Events) == 0 {
		return nil
	}
	lines := []string{fmt.Sprintf("[trace] Events: %d", len(result.Events))}
	for _, e := range result.Events {
		lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
	return lines
}
