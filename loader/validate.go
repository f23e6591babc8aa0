package loader

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Lint returns the warnings for a catalog that loads but has content no
// game can reach.
func Lint(cat *catalog.Catalog) []string {
	return check(cat).Warnings
}

// validate checks the compiled catalog for referential integrity and
// consistency.
func validate(cat *catalog.Catalog) error {
	ve := check(cat)
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func check(cat *catalog.Catalog) *ValidationError {
	ve := &ValidationError{}

	if cat.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	validateBuildings(cat, ve)
	validateTechnologies(cat, ve)
	validateGovernments(cat, ve)
	validateSetup(cat, ve)

	// Each list is built from map iteration.
	sort.Strings(ve.Errors)
	sort.Strings(ve.Warnings)
	return ve
}

func validateBuildings(cat *catalog.Catalog, ve *ValidationError) {
	type slot struct {
		age      types.Age
		category string
	}
	seen := map[slot]string{}
	granted := map[string]bool{}
	for _, t := range cat.Technologies {
		granted[t.Building] = true
	}

	for name, b := range cat.Buildings {
		if b.Category == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("building %q has no category", name))
		}
		if b.Price < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("building %q has negative price %d", name, b.Price))
		}
		for kind, n := range b.Income {
			if n < 0 {
				ve.Errors = append(ve.Errors, fmt.Sprintf("building %q has negative %s income", name, kind))
			}
		}

		key := slot{b.Age, b.Category}
		if other, dup := seen[key]; dup {
			first, second := other, name
			if second < first {
				first, second = second, first
			}
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"buildings %q and %q are both age %s %s", first, second, b.Age, b.Category))
		} else {
			seen[key] = name
		}

		if !granted[name] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("building %q is not granted by any technology", name))
		}
	}
}

func validateTechnologies(cat *catalog.Catalog, ve *ValidationError) {
	known := map[string]bool{}
	for _, name := range cat.Setup.Technologies {
		known[name] = true
	}

	for name, t := range cat.Technologies {
		b, ok := cat.Buildings[t.Building]
		if !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"technology %q grants undefined building %q", name, t.Building))
		} else if b.Age != t.Age {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"technology %q is age %s but building %q is age %s", name, t.Age, t.Building, b.Age))
		}
		if t.SciencePrice < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("technology %q has negative science price", name))
		}

		d := t.Distribution
		if d.TwoPlayers < 0 || d.ThreePlayers < 0 || d.FourPlayers < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("technology %q has a negative distribution", name))
		}
		if d == (types.CardDistribution{}) && !known[name] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"technology %q is never dealt and not known at setup", name))
		}
	}
}

func validateGovernments(cat *catalog.Catalog, ve *ValidationError) {
	for name, g := range cat.Governments {
		if g.CivilActions <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("government %q needs at least one civil action", name))
		}
		if g.UrbanLimit < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("government %q has negative urban limit", name))
		}
	}
}

func validateSetup(cat *catalog.Catalog, ve *ValidationError) {
	s := cat.Setup
	if s.Government == "" {
		ve.Errors = append(ve.Errors, "Setup.government is required")
	} else if _, ok := cat.Governments[s.Government]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf("setup government %q not found", s.Government))
	}

	for name, n := range s.Buildings {
		if _, ok := cat.Buildings[name]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("setup building %q not found", name))
		}
		if n < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("setup building %q has negative count %d", name, n))
		}
	}

	known := map[string]bool{}
	for _, name := range s.Technologies {
		t, ok := cat.Technologies[name]
		if !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("setup technology %q not found", name))
			continue
		}
		known[t.Building] = true
	}
	for name := range s.Buildings {
		if _, ok := cat.Buildings[name]; ok && !known[name] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"setup building %q is not granted by a setup technology", name))
		}
	}
}
