package tableau

import "github.com/nathoo/agecore/types"

// The end-of-turn helpers are applied in a fixed order by the board:
// ScoreScienceAndCulture, GainFood, GainResources, ResetActions. Later steps
// may read points written by earlier ones.

// ScoreScienceAndCulture adds science and culture income.
func (t Tableau) ScoreScienceAndCulture() Tableau {
	t.points = t.points.
		With(types.Science, t.points.Get(types.Science)+t.Revenue(types.Science)).
		With(types.Culture, t.points.Get(types.Culture)+t.Revenue(types.Culture))
	return t
}

// GainFood adds food income, then lets the population eat.
func (t Tableau) GainFood() Tableau {
	t.points = t.points.With(types.Food, t.points.Get(types.Food)+t.Revenue(types.Food))
	return t.consumeFood()
}

// GainResources adds resource income, then applies corruption.
func (t Tableau) GainResources() Tableau {
	t.points = t.points.With(types.Resources, t.points.Get(types.Resources)+t.Revenue(types.Resources))
	return t.corruption()
}

// ResetActions restores the full civil action budget of the government.
func (t Tableau) ResetActions() Tableau {
	t.actions = t.gov.CivilActions
	return t
}

// AgeTransition lets the tableau react to the start of a new age.
// Antiquation of old cards is not implemented; the tableau is unchanged.
func (t Tableau) AgeTransition(types.Age) Tableau {
	return t
}

// consumeFood is the food consumption step. Not implemented.
func (t Tableau) consumeFood() Tableau {
	return t
}

// corruption is the resource corruption step. Not implemented.
func (t Tableau) corruption() Tableau {
	return t
}
