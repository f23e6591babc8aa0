package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/agecore/engine/action"
	"github.com/nathoo/agecore/engine/parser"
	"github.com/nathoo/agecore/engine/resolve"
	"github.com/nathoo/agecore/engine/tableau"
	"github.com/nathoo/agecore/types"
)

var helpText = []string{
	"Commands:",
	"  build <technology>  queue a building (b, construct)",
	"  undo                drop the last queued action",
	"  end                 play the queued actions and end the turn",
	"  row                 show the card row",
	"  legal               list the legal actions",
	"  status              show your tableau (look, s)",
}

// Step processes one driver command for the acting player and returns the
// result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	intent := parser.Parse(input)

	switch intent.Verb {
	case "":
		result.Output = append(result.Output, "What do you want to do?")
	case "build":
		e.stepBuild(intent.Object, &result)
	case "undo":
		if a, ok := e.Undo(); ok {
			result.Output = append(result.Output, fmt.Sprintf("Removed %s.", a))
			result.Events = append(result.Events, types.Event{
				Type: "action_undone",
				Data: map[string]any{"action": a.String()},
			})
		} else {
			result.Output = append(result.Output, "Nothing to undo.")
		}
	case "end":
		e.stepEnd(&result)
	case "row":
		result.Output = append(result.Output, e.DescribeRow()...)
	case "legal":
		result.Output = append(result.Output, e.describeLegal()...)
	case "status":
		result.Output = append(result.Output, e.DescribeStatus()...)
	case "help":
		result.Output = append(result.Output, helpText...)
	default:
		result.Output = append(result.Output, fmt.Sprintf("I don't know how to %q.", intent.Verb))
	}

	return result
}

func (e *Engine) stepBuild(name string, result *types.Result) {
	if name == "" {
		result.Output = append(result.Output, "Build what?")
		return
	}

	tab := e.Preview()
	building, err := resolve.Name(e.knownBuildings(tab), name)
	if err != nil {
		result.Output = append(result.Output, capitalize(err.Error())+".")
		return
	}

	b, _ := e.Catalog.Building(building)
	a := action.NewBuild(b)
	if err := e.Queue(a); err != nil {
		var illegal *tableau.IllegalActionError
		if errors.As(err, &illegal) {
			result.Output = append(result.Output, fmt.Sprintf("You can't build %s: %s.", building, illegal.Reason))
		} else {
			result.Output = append(result.Output, err.Error())
		}
		result.Events = append(result.Events, types.Event{
			Type: "action_rejected",
			Data: map[string]any{"action": a.String()},
		})
		return
	}

	result.Output = append(result.Output, fmt.Sprintf("Queued %s (%d resources, %d action). %d actions left.",
		a, a.Price().Get(types.Resources), a.Cost(), e.Preview().Actions()))
	result.Events = append(result.Events, types.Event{
		Type: "action_queued",
		Data: map[string]any{"action": a.String()},
	})
}

func (e *Engine) stepEnd(result *types.Result) {
	report, err := e.EndTurn()
	if err != nil {
		result.Output = append(result.Output, err.Error())
		return
	}

	result.Output = append(result.Output,
		fmt.Sprintf("%s ends the turn (round %d).", report.Player, report.Round),
		fmt.Sprintf("Income: %s.", report.Gained))
	result.Events = append(result.Events, types.Event{
		Type: "turn_ended",
		Data: map[string]any{"player": int(report.Player), "round": report.Round},
	})

	if len(report.Drawn) > 0 {
		result.Output = append(result.Output,
			fmt.Sprintf("Drew %s from the civil deck.", strings.Join(report.Drawn, ", ")))
		result.Events = append(result.Events, types.Event{
			Type: "cards_drawn",
			Data: map[string]any{"cards": report.Drawn},
		})
	}
	if report.AgeChanged {
		result.Output = append(result.Output, fmt.Sprintf("Age %s begins.", report.NewAge))
		result.Events = append(result.Events, types.Event{
			Type: "age_changed",
			Data: map[string]any{"age": report.NewAge.String()},
		})
	}

	result.Output = append(result.Output,
		fmt.Sprintf("%s to act (round %d).", e.Board.ActingPlayer(), e.Board.Round()))
}

// DescribeRow lists the card row with each slot's price in civil actions.
func (e *Engine) DescribeRow() []string {
	row := e.Board.Row()
	lines := []string{fmt.Sprintf("Card row (age %s, %d cards left in the civil deck):",
		e.Board.Age(), e.Board.Decks().Remaining())}
	for i, s := range row.Slots() {
		price, _ := row.Price(i)
		lines = append(lines, fmt.Sprintf("  %2d. [%d] %s", i+1, price, s))
	}
	return lines
}

// DescribeStatus describes the acting player's tableau, queued actions
// included.
func (e *Engine) DescribeStatus() []string {
	tab := e.Preview()
	gov := tab.Government()

	lines := []string{
		fmt.Sprintf("%s, round %d, age %s.", e.Board.ActingPlayer(), e.Board.Round(), e.Board.Age()),
		fmt.Sprintf("Government: %s (%d/%d civil actions).", gov.Name, tab.Actions(), gov.CivilActions),
		fmt.Sprintf("Points: %s.", tab.Points()),
		fmt.Sprintf("Income: food %d, resources %d, science %d, culture %d.",
			tab.Revenue(types.Food), tab.Revenue(types.Resources),
			tab.Revenue(types.Science), tab.Revenue(types.Culture)),
		"Buildings: " + describeBuildings(tab.Buildings()) + ".",
		"Technologies: " + strings.Join(tab.Technologies(), ", ") + ".",
	}
	if len(e.pending) > 0 {
		var names []string
		for _, a := range e.pending {
			names = append(names, a.String())
		}
		lines = append(lines, "Queued: "+strings.Join(names, ", ")+".")
	}
	return lines
}

func (e *Engine) describeLegal() []string {
	legal := e.Preview().LegalActions()
	if len(legal) == 0 {
		return []string{"No legal actions. Type \"end\" to end your turn."}
	}
	lines := []string{"Legal actions:"}
	for _, a := range legal {
		lines = append(lines, "  "+a.String())
	}
	return lines
}

// knownBuildings returns the buildings granted by the tableau's known
// technologies.
func (e *Engine) knownBuildings(tab tableau.Tableau) []string {
	var names []string
	for _, t := range tab.Technologies() {
		if b, ok := e.Catalog.BuildingFor(t); ok {
			names = append(names, b.Name)
		}
	}
	return names
}

func describeBuildings(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s x%d", name, counts[name])
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
