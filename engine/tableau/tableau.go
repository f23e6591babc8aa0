// Package tableau implements a single player's private state: resources,
// built structures, known technologies and the remaining action budget.
//
// A Tableau is a value. Every operation that changes it returns a new
// Tableau and leaves the receiver valid for any other holder.
package tableau

import (
	"fmt"
	"sort"

	"github.com/nathoo/agecore/engine/action"
	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/engine/points"
	"github.com/nathoo/agecore/types"
)

// Tableau is one player's state. The zero value is not usable; build one
// with New or FromSetup.
type Tableau struct {
	cat       *catalog.Catalog
	gov       *types.Government
	buildings map[string]int      // building name -> count, counts > 0
	known     map[string]struct{} // technology names
	points    points.Points
	actions   int
}

// New returns a tableau with a full action budget and zero points.
func New(cat *catalog.Catalog, gov *types.Government, buildings map[string]int, technologies []string) Tableau {
	t := Tableau{
		cat:       cat,
		gov:       gov,
		buildings: make(map[string]int, len(buildings)),
		known:     make(map[string]struct{}, len(technologies)),
		actions:   gov.CivilActions,
	}
	for name, n := range buildings {
		if n > 0 {
			t.buildings[name] = n
		}
	}
	for _, name := range technologies {
		t.known[name] = struct{}{}
	}
	return t
}

// FromSetup returns the starting tableau described by the catalog.
func FromSetup(cat *catalog.Catalog) (Tableau, error) {
	gov, ok := cat.Government(cat.Setup.Government)
	if !ok {
		return Tableau{}, fmt.Errorf("setup government %q not in catalog", cat.Setup.Government)
	}
	return New(cat, gov, cat.Setup.Buildings, cat.Setup.Technologies), nil
}

// Government returns the current government.
func (t Tableau) Government() *types.Government { return t.gov }

// Points returns the current resource vector.
func (t Tableau) Points() points.Points { return t.points }

// Actions returns the civil actions left this turn.
func (t Tableau) Actions() int { return t.actions }

// Built returns how many copies of a building the tableau holds.
func (t Tableau) Built(building string) int { return t.buildings[building] }

// Buildings returns a copy of the built-structure counts.
func (t Tableau) Buildings() map[string]int {
	out := make(map[string]int, len(t.buildings))
	for k, v := range t.buildings {
		out[k] = v
	}
	return out
}

// Knows reports whether a technology is known.
func (t Tableau) Knows(technology string) bool {
	_, ok := t.known[technology]
	return ok
}

// Technologies returns the known technologies, sorted.
func (t Tableau) Technologies() []string {
	return sortedKeys(t.known)
}

// Revenue is the per-turn income of kind over all built structures.
func (t Tableau) Revenue(kind types.Point) int {
	total := 0
	for name, n := range t.buildings {
		total += n * t.cat.Income(name, kind)
	}
	return total
}

// Happiness sums the happiness of all built structures.
func (t Tableau) Happiness() int {
	total := 0
	for name, n := range t.buildings {
		total += n * t.cat.Buildings[name].Happiness
	}
	return total
}

// Strength sums the military strength of all built structures.
func (t Tableau) Strength() int {
	total := 0
	for name, n := range t.buildings {
		total += n * t.cat.Buildings[name].Strength
	}
	return total
}

// Grant returns a copy of t with p added to its points.
func (t Tableau) Grant(p points.Points) Tableau {
	t.points = t.points.Add(p)
	return t
}

// IsActionLegal reports whether a can be played now. It panics on an action
// variant without a legality rule.
func (t Tableau) IsActionLegal(a action.Action) bool {
	return t.check(a) == ""
}

// PlayAction applies a and returns the new tableau. Illegal actions return
// an *IllegalActionError and the zero Tableau; the receiver is unchanged.
func (t Tableau) PlayAction(a action.Action) (Tableau, error) {
	if reason := t.check(a); reason != "" {
		return Tableau{}, &IllegalActionError{Action: a, Reason: reason}
	}

	t.points = t.points.Sub(a.Price())
	t.actions -= a.Cost()

	switch a := a.(type) {
	case action.Build:
		t.buildings = cloneCounts(t.buildings)
		t.buildings[a.Building]++
	default:
		panic(fmt.Sprintf("tableau: no application rule for action %T", a))
	}
	return t, nil
}

// LegalActions returns every legal action, deduplicated and sorted by
// description. Today that is the legal Builds over known technologies.
func (t Tableau) LegalActions() []action.Action {
	set := map[action.Action]struct{}{}
	for name := range t.known {
		b, ok := t.cat.BuildingFor(name)
		if !ok {
			continue
		}
		a := action.NewBuild(b)
		if t.IsActionLegal(a) {
			set[a] = struct{}{}
		}
	}
	out := make([]action.Action, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// check returns why a is illegal, or "" if it is legal.
func (t Tableau) check(a action.Action) string {
	switch a := a.(type) {
	case action.Build:
		if t.actions < a.Cost() {
			return "no civil actions left"
		}
		if !t.points.Covers(a.Price()) {
			return "not enough " + shortfall(t.points, a.Price())
		}
		b, ok := t.cat.Building(a.Building)
		if !ok || !t.knowsBuilding(a.Building) {
			return "technology not known"
		}
		if b.Urban && t.categoryCount(b.Category) >= t.gov.UrbanLimit {
			return fmt.Sprintf("urban limit of %d %s buildings reached", t.gov.UrbanLimit, b.Category)
		}
		return ""
	default:
		panic(fmt.Sprintf("tableau: no legality rule for action %T", a))
	}
}

func (t Tableau) knowsBuilding(building string) bool {
	for name := range t.known {
		if b, ok := t.cat.BuildingFor(name); ok && b.Name == building {
			return true
		}
	}
	return false
}

func (t Tableau) categoryCount(category string) int {
	n := 0
	for name, c := range t.buildings {
		if t.cat.Buildings[name].Category == category {
			n += c
		}
	}
	return n
}

func shortfall(have, price points.Points) string {
	for _, k := range types.AllPoints {
		if have.Get(k) < price.Get(k) {
			return k.String()
		}
	}
	return "points"
}

func cloneCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
