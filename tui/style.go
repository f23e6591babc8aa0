package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusAge = lipgloss.NewStyle().
			Background(lipgloss.Color("94")).
			Foreground(lipgloss.Color("230")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	styleLabel = lipgloss.NewStyle().
			Bold(true)

	styleQueued = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	styleIncome = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleDraw = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))

	styleAge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	styleEmptySlot = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindHeading
	kindLabeled
	kindQueued
	kindIncome
	kindDraw
	kindAge
	kindEmptySlot
	kindSystem
	kindError
	kindTrace
)

// labels are the status fields rendered with a bold label.
var labels = []string{
	"Government:", "Points:", "Buildings:", "Technologies:", "Queued:",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You don't know"),
		strings.HasPrefix(line, "I don't know"),
		strings.HasPrefix(line, "Which "),
		strings.HasPrefix(line, "No legal actions"),
		strings.HasPrefix(line, "Nothing to"):
		return kindError
	case strings.HasPrefix(line, "Age ") && strings.HasSuffix(line, "begins."):
		return kindAge
	case strings.HasPrefix(line, "Drew "):
		return kindDraw
	case strings.HasPrefix(line, "Income:"):
		return kindIncome
	case strings.HasPrefix(line, "Queued "), strings.HasPrefix(line, "Removed "):
		return kindQueued
	case strings.HasSuffix(trimmed, "] -"):
		return kindEmptySlot
	case strings.HasSuffix(line, ":"):
		return kindHeading
	case hasLabel(line):
		return kindLabeled
	default:
		return kindNarration
	}
}

func hasLabel(line string) bool {
	for _, l := range labels {
		if strings.HasPrefix(line, l) {
			return true
		}
	}
	return false
}

// styledLabeled renders "Label: value" with the label bold.
func styledLabeled(line string) string {
	i := strings.Index(line, ":")
	if i < 0 {
		return styleNarration.Render(line)
	}
	return styleLabel.Render(line[:i+1]) + styleNarration.Render(line[i+1:])
}

// styledPlayerInput renders the echoed player input in green with "> " prefix.
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render("> " + input)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
