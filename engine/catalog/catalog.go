// Package catalog holds the immutable content definitions loaded from Lua
// and the lookups the rules engine needs from them.
package catalog

import (
	"sort"

	"github.com/nathoo/agecore/types"
)

// Catalog is the read-only content catalog. The engine never mutates it.
type Catalog struct {
	Game         types.GameDef
	Buildings    map[string]types.Building
	Technologies map[string]types.Technology
	Governments  map[string]*types.Government
	Setup        types.SetupDef
}

// Building returns the named building.
func (c *Catalog) Building(name string) (types.Building, bool) {
	b, ok := c.Buildings[name]
	return b, ok
}

// Technology returns the named technology.
func (c *Catalog) Technology(name string) (types.Technology, bool) {
	t, ok := c.Technologies[name]
	return t, ok
}

// Government returns the named government. Governments are shared by
// pointer between every tableau that uses them.
func (c *Catalog) Government(name string) (*types.Government, bool) {
	g, ok := c.Governments[name]
	return g, ok
}

// Income returns the per-turn income of one building for kind. Unknown
// buildings and kinds the building does not produce yield zero.
func (c *Catalog) Income(building string, kind types.Point) int {
	return c.Buildings[building].Income[kind]
}

// BuildingFor returns the building granted by a technology.
func (c *Catalog) BuildingFor(technology string) (types.Building, bool) {
	t, ok := c.Technologies[technology]
	if !ok {
		return types.Building{}, false
	}
	return c.Building(t.Building)
}

// TechnologyNames returns all technology names, sorted.
func (c *Catalog) TechnologyNames() []string {
	names := make([]string, 0, len(c.Technologies))
	for name := range c.Technologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ages returns every age that has at least one technology, ascending.
func (c *Catalog) Ages() []types.Age {
	seen := map[types.Age]bool{}
	for _, t := range c.Technologies {
		seen[t.Age] = true
	}
	ages := make([]types.Age, 0, len(seen))
	for a := range seen {
		ages = append(ages, a)
	}
	sort.Slice(ages, func(i, j int) bool { return ages[i] < ages[j] })
	return ages
}
