// Package cli runs the agecore engine over a plain line-oriented terminal,
// for hot-seat play and for replaying command scripts.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/agecore/engine"
	"github.com/nathoo/agecore/types"
)

// CLI reads commands from In and writes the engine's replies to Out.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // repeat each line after the prompt, for script playback

	lastCmd string
}

// New creates a CLI on stdin and stdout.
func New(eng *engine.Engine) *CLI {
	return &CLI{Engine: eng, In: os.Stdin, Out: os.Stdout}
}

// metaCommand is a slash command handled by the driver, not the engine.
// run reports whether the session should end.
type metaCommand struct {
	usage string
	run   func(c *CLI) bool
}

var metaCommands map[string]metaCommand

func init() {
	metaCommands = map[string]metaCommand{
		"/quit":  {"Exit game", (*CLI).quit},
		"/exit":  {"", (*CLI).quit},
		"/help":  {"Show this help", (*CLI).help},
		"/state": {"Debug: dump the board", (*CLI).state},
		"/trace": {"Toggle debug trace output", (*CLI).toggleTrace},
	}
}

// Run shows the banner and reads commands until /quit or end of input.
func (c *CLI) Run() {
	c.banner()

	lines := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, c.prompt())
		if !lines.Scan() {
			return
		}
		if c.exec(strings.TrimSpace(lines.Text())) {
			return
		}
	}
}

func (c *CLI) banner() {
	game := c.Engine.Catalog.Game
	if game.Version != "" {
		c.println(game.Title + " v" + game.Version)
	} else {
		c.println(game.Title)
	}
	c.println("")
	c.show(c.Engine.Step("status"))
}

func (c *CLI) prompt() string {
	b := c.Engine.Board
	return fmt.Sprintf("[%s R%d] > ", b.ActingPlayer(), b.Round())
}

// exec handles one input line. Blank lines and # comments are ignored.
func (c *CLI) exec(line string) (quit bool) {
	if line == "" || line[0] == '#' {
		return false
	}
	if c.EchoInput {
		c.println(line)
	}

	if line[0] == '/' {
		name := strings.Fields(line)[0]
		cmd, ok := metaCommands[name]
		if !ok {
			c.system(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", name))
			return false
		}
		return cmd.run(c)
	}

	switch strings.ToLower(line) {
	case "again", "g":
		if c.lastCmd == "" {
			c.println("Nothing to repeat.")
			return false
		}
		line = c.lastCmd
	default:
		c.lastCmd = line
	}

	result := c.Engine.Step(line)
	c.show(result)
	if c.Trace {
		c.trace(result)
	}
	return false
}

func (c *CLI) quit() bool {
	c.system("Goodbye.")
	return true
}

func (c *CLI) help() bool {
	names := make([]string, 0, len(metaCommands))
	for name, cmd := range metaCommands {
		if cmd.usage != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	c.println("System:")
	for _, name := range names {
		c.println(fmt.Sprintf("  %-13s %s", name, metaCommands[name].usage))
	}
	c.println("")
	c.show(c.Engine.Step("help"))
	c.println("  again (g)           repeat your last command")
	return false
}

func (c *CLI) state() bool {
	e := c.Engine
	b := e.Board
	c.system(fmt.Sprintf("Game: %s", e.ID))
	c.system(fmt.Sprintf("Round: %d  Acting: %s  Age: %s", b.Round(), b.ActingPlayer(), b.Age()))
	c.system(fmt.Sprintf("Civil deck: %d cards  RNG: seed %d, position %d",
		b.Decks().Remaining(), e.RNG.Seed(), e.RNG.Position()))
	for _, p := range b.TurnOrder() {
		tab, _ := b.Tableau(p)
		c.system(fmt.Sprintf("%s: %s, %d actions, buildings %s",
			p, tab.Points(), tab.Actions(), formatCounts(tab.Buildings())))
	}
	if pending := e.Pending(); len(pending) > 0 {
		c.system(fmt.Sprintf("Queued: %v", pending))
	}
	c.system(fmt.Sprintf("Hash: %016x", b.Hash()))
	return false
}

func (c *CLI) toggleTrace() bool {
	c.Trace = !c.Trace
	if c.Trace {
		c.system("Trace output enabled.")
	} else {
		c.system("Trace output disabled.")
	}
	return false
}

// formatCounts renders building counts in name order, e.g. {Agriculture=2 Bronze=2}.
func formatCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", name, counts[name])
	}
	b.WriteByte('}')
	return b.String()
}

func (c *CLI) trace(result types.Result) {
	if len(result.Events) == 0 {
		return
	}
	c.system(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		c.system(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
	}
}

func (c *CLI) show(result types.Result) {
	for _, line := range result.Output {
		c.println(line)
	}
}

func (c *CLI) println(text string) { fmt.Fprintln(c.Out, text) }

func (c *CLI) system(text string) { fmt.Fprintf(c.Out, "[%s]\n", text) }
