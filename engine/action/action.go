// Package action defines the moves a player can submit during an action
// phase. The set of variants is closed: only this package can add one.
package action

import (
	"fmt"

	"github.com/nathoo/agecore/engine/points"
	"github.com/nathoo/agecore/types"
)

// Action is one player-submitted move. Implementations are comparable
// values, so equal actions can be used as map keys.
type Action interface {
	// Cost is the number of civil actions spent.
	Cost() int
	// Price is the points spent.
	Price() points.Points
	fmt.Stringer

	action()
}

// Build constructs one copy of a building the player knows.
type Build struct {
	Building      string
	ActionCost    int
	ResourcePrice points.Points
}

// NewBuild returns the Build action for b: one civil action plus the
// building's price in resources.
func NewBuild(b types.Building) Build {
	return Build{
		Building:      b.Name,
		ActionCost:    1,
		ResourcePrice: points.Of(types.Resources, b.Price),
	}
}

func (b Build) Cost() int            { return b.ActionCost }
func (b Build) Price() points.Points { return b.ResourcePrice }
func (b Build) String() string       { return "build " + b.Building }
func (Build) action()                {}
