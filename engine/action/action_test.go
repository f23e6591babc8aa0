package action

import (
	"testing"

	"github.com/nathoo/agecore/types"
)

func TestNewBuild(t *testing.T) {
	b := NewBuild(types.Building{Name: "Iron", Category: "Mine", Price: 5})

	if b.Cost() != 1 {
		t.Errorf("Cost() = %d, want 1", b.Cost())
	}
	if got := b.Price().Get(types.Resources); got != 5 {
		t.Errorf("Price()[resources] = %d, want 5", got)
	}
	if got := b.Price().Get(types.Food); got != 0 {
		t.Errorf("Price()[food] = %d, want 0", got)
	}
	if b.String() != "build Iron" {
		t.Errorf("String() = %q", b.String())
	}
}

func TestBuild_StructuralIdentity(t *testing.T) {
	iron := types.Building{Name: "Iron", Price: 5}
	var a, b Action = NewBuild(iron), NewBuild(iron)
	if a != b {
		t.Error("two Builds of the same building should be equal")
	}

	set := map[Action]struct{}{a: {}, b: {}}
	if len(set) != 1 {
		t.Errorf("set has %d entries, want 1", len(set))
	}

	if NewBuild(types.Building{Name: "Coal", Price: 8}) == NewBuild(iron) {
		t.Error("Builds of different buildings should differ")
	}
}
