// Package types defines the shared data structures for the agecore engine.
// Content definitions here are plain data; the rules that consume them live
// under engine/.
package types

import "fmt"

// Point is a kind of resource gained or lost through per-turn income.
// Military strength is not a Point: nothing produces it each turn.
type Point int

const (
	Food Point = iota
	Resources
	Science
	Culture

	// NumPoints is the number of Point kinds. Not a kind itself.
	NumPoints
)

// AllPoints lists every Point kind in canonical order.
var AllPoints = [NumPoints]Point{Food, Resources, Science, Culture}

var pointNames = [NumPoints]string{"food", "resources", "science", "culture"}

func (p Point) String() string {
	if p < 0 || p >= NumPoints {
		return fmt.Sprintf("Point(%d)", int(p))
	}
	return pointNames[p]
}

// ParsePoint maps a lowercase point name to its Point.
func ParsePoint(name string) (Point, bool) {
	for i, n := range pointNames {
		if n == name {
			return Point(i), true
		}
	}
	return 0, false
}

// Age is one of the ordered game eras.
type Age int

const (
	AgeA Age = iota
	AgeI
	AgeII
	AgeIII
	AgeIV
)

var ageNames = []string{"A", "I", "II", "III", "IV"}

func (a Age) String() string {
	if a < 0 || int(a) >= len(ageNames) {
		return fmt.Sprintf("Age(%d)", int(a))
	}
	return ageNames[a]
}

// ParseAge maps a roman numeral ("A", "I" .. "IV") to its Age.
func ParseAge(name string) (Age, bool) {
	for i, n := range ageNames {
		if n == name {
			return Age(i), true
		}
	}
	return 0, false
}

// Player identifies a seat at the table, starting at 1.
type Player int

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p))
}

// Building is a kind of structure a tableau can contain.
// Category groups buildings that upgrade into each other (Agriculture and
// Irrigation are both "Farm").
type Building struct {
	Name      string
	Category  string
	Price     int // resources
	Income    map[Point]int
	Age       Age
	Happiness int
	Strength  int
	Urban     bool
}

// Technology is a civil card granting knowledge of a building.
type Technology struct {
	Name         string
	Building     string // building name
	SciencePrice int
	Age          Age
	Distribution CardDistribution
}

// CardDistribution is the number of copies of a card in the civil deck,
// by player count.
type CardDistribution struct {
	TwoPlayers   int
	ThreePlayers int
	FourPlayers  int
}

// Government is a static ruleset. Equal governments have equal names.
type Government struct {
	Name         string
	CivilActions int
	UrbanLimit   int
}

// SetupDef describes the starting tableau every player receives.
type SetupDef struct {
	Government   string
	Buildings    map[string]int // building name -> count
	Technologies []string       // technology names
}

// GameDef holds catalog metadata.
type GameDef struct {
	Title   string
	Version string
}

// Intent is the parsed representation of a driver command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Event is emitted by the engine after a state transition.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single driver step.
type Result struct {
	Events []Event
	Output []string
}
