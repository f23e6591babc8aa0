package catalog

import "github.com/nathoo/agecore/types"

// Fixture returns a small catalog mirroring the classic starting content:
// Despotism, the four ancient buildings and a handful of Age I-III cards.
// Intended for tests in this and dependent packages.
func Fixture() *Catalog {
	despotism := &types.Government{Name: "Despotism", CivilActions: 4, UrbanLimit: 2}

	buildings := []types.Building{
		{Name: "Agriculture", Category: "Farm", Price: 2, Income: map[types.Point]int{types.Food: 1}, Age: types.AgeA},
		{Name: "Bronze", Category: "Mine", Price: 2, Income: map[types.Point]int{types.Resources: 1}, Age: types.AgeA},
		{Name: "Philosophy", Category: "Lab", Price: 3, Income: map[types.Point]int{types.Science: 1}, Age: types.AgeA, Urban: true},
		{Name: "Religion", Category: "Temple", Price: 3, Income: map[types.Point]int{types.Culture: 1}, Age: types.AgeA, Happiness: 1, Urban: true},
		{Name: "Irrigation", Category: "Farm", Price: 4, Income: map[types.Point]int{types.Food: 2}, Age: types.AgeI},
		{Name: "Iron", Category: "Mine", Price: 5, Income: map[types.Point]int{types.Resources: 2}, Age: types.AgeI},
		{Name: "Coal", Category: "Mine", Price: 8, Income: map[types.Point]int{types.Resources: 3}, Age: types.AgeII},
		{Name: "Oil", Category: "Mine", Price: 11, Income: map[types.Point]int{types.Resources: 5}, Age: types.AgeIII},
	}
	technologies := []types.Technology{
		{Name: "Agriculture", Building: "Agriculture", Age: types.AgeA},
		{Name: "Bronze", Building: "Bronze", Age: types.AgeA},
		{Name: "Philosophy", Building: "Philosophy", Age: types.AgeA},
		{Name: "Religion", Building: "Religion", Age: types.AgeA},
		{Name: "Irrigation", Building: "Irrigation", SciencePrice: 3, Age: types.AgeI, Distribution: types.CardDistribution{TwoPlayers: 2, ThreePlayers: 2, FourPlayers: 2}},
		{Name: "Iron", Building: "Iron", SciencePrice: 5, Age: types.AgeI, Distribution: types.CardDistribution{TwoPlayers: 2, ThreePlayers: 2, FourPlayers: 3}},
		{Name: "Coal", Building: "Coal", SciencePrice: 7, Age: types.AgeII, Distribution: types.CardDistribution{TwoPlayers: 1, ThreePlayers: 2, FourPlayers: 2}},
		{Name: "Oil", Building: "Oil", SciencePrice: 9, Age: types.AgeIII, Distribution: types.CardDistribution{TwoPlayers: 1, ThreePlayers: 2, FourPlayers: 2}},
	}

	c := &Catalog{
		Game:         types.GameDef{Title: "Fixture", Version: "0.0.0"},
		Buildings:    map[string]types.Building{},
		Technologies: map[string]types.Technology{},
		Governments:  map[string]*types.Government{despotism.Name: despotism},
		Setup: types.SetupDef{
			Government:   "Despotism",
			Buildings:    map[string]int{"Agriculture": 2, "Bronze": 2, "Philosophy": 1},
			Technologies: []string{"Agriculture", "Bronze", "Philosophy", "Religion"},
		},
	}
	for _, b := range buildings {
		c.Buildings[b.Name] = b
	}
	for _, t := range technologies {
		c.Technologies[t.Name] = t
	}
	return c
}
