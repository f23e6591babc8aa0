// Package loader loads Lua content into a catalog at startup.
// The Lua VM is discarded after loading; nothing runs Lua during play.
package loader

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/types"
)

// rawDef holds a named definition table before compilation.
type rawDef struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStrings converts a Lua array of strings to a slice.
func tableToStrings(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// tableToIntMap converts a Lua table of name = number pairs.
func tableToIntMap(tbl *lua.LTable) map[string]int {
	if tbl == nil {
		return nil
	}
	m := map[string]int{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if n, ok := v.(lua.LNumber); ok {
				m[string(ks)] = int(n)
			}
		}
	})
	return m
}

// compile converts all collected Lua data into a Catalog.
func compile(coll *collector) (*catalog.Catalog, error) {
	cat := &catalog.Catalog{
		Buildings:    map[string]types.Building{},
		Technologies: map[string]types.Technology{},
		Governments:  map[string]*types.Government{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	cat.Game = compileGame(coll.game)

	for _, raw := range coll.buildings {
		if _, dup := cat.Buildings[raw.name]; dup {
			return nil, fmt.Errorf("building %s defined twice", raw.name)
		}
		b, err := compileBuilding(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling building %s: %w", raw.name, err)
		}
		cat.Buildings[b.Name] = b
	}

	for _, raw := range coll.technologies {
		if _, dup := cat.Technologies[raw.name]; dup {
			return nil, fmt.Errorf("technology %s defined twice", raw.name)
		}
		t, err := compileTechnology(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling technology %s: %w", raw.name, err)
		}
		cat.Technologies[t.Name] = t
	}

	for _, raw := range coll.governments {
		if _, dup := cat.Governments[raw.name]; dup {
			return nil, fmt.Errorf("government %s defined twice", raw.name)
		}
		cat.Governments[raw.name] = &types.Government{
			Name:         raw.name,
			CivilActions: getInt(raw.table, "actions"),
			UrbanLimit:   getInt(raw.table, "urban_limit"),
		}
	}

	if coll.setup == nil {
		return nil, fmt.Errorf("no Setup{} definition found")
	}
	cat.Setup = compileSetup(coll.setup)

	return cat, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:   getString(tbl, "title"),
		Version: getString(tbl, "version"),
	}
}

func compileBuilding(raw rawDef) (types.Building, error) {
	tbl := raw.table
	age, err := compileAge(tbl)
	if err != nil {
		return types.Building{}, err
	}
	income, err := compileIncome(getTable(tbl, "income"))
	if err != nil {
		return types.Building{}, err
	}
	return types.Building{
		Name:      raw.name,
		Category:  getString(tbl, "category"),
		Price:     getInt(tbl, "price"),
		Income:    income,
		Age:       age,
		Happiness: getInt(tbl, "happiness"),
		Strength:  getInt(tbl, "strength"),
		Urban:     getBool(tbl, "urban", false),
	}, nil
}

// compileIncome maps { food = 1, science = 2 } onto point kinds.
func compileIncome(tbl *lua.LTable) (map[types.Point]int, error) {
	income := map[types.Point]int{}
	for name, n := range tableToIntMap(tbl) {
		kind, ok := types.ParsePoint(name)
		if !ok {
			return nil, fmt.Errorf("unknown income kind %q", name)
		}
		income[kind] = n
	}
	return income, nil
}

func compileTechnology(raw rawDef) (types.Technology, error) {
	tbl := raw.table
	age, err := compileAge(tbl)
	if err != nil {
		return types.Technology{}, err
	}
	dist, err := compileDistribution(getTable(tbl, "distribution"))
	if err != nil {
		return types.Technology{}, err
	}
	building := getString(tbl, "building")
	if building == "" {
		building = raw.name
	}
	return types.Technology{
		Name:         raw.name,
		Building:     building,
		SciencePrice: getInt(tbl, "science"),
		Age:          age,
		Distribution: dist,
	}, nil
}

// compileDistribution reads { two, three, four } copies by player count.
// A missing table means the card is never shuffled into a deck.
func compileDistribution(tbl *lua.LTable) (types.CardDistribution, error) {
	if tbl == nil {
		return types.CardDistribution{}, nil
	}
	if tbl.MaxN() != 3 {
		return types.CardDistribution{}, fmt.Errorf("distribution needs 3 counts (2, 3 and 4 players), got %d", tbl.MaxN())
	}
	var n [3]int
	for i := range n {
		v, ok := tbl.RawGetInt(i + 1).(lua.LNumber)
		if !ok {
			return types.CardDistribution{}, fmt.Errorf("distribution entry %d is not a number", i+1)
		}
		n[i] = int(v)
	}
	return types.CardDistribution{TwoPlayers: n[0], ThreePlayers: n[1], FourPlayers: n[2]}, nil
}

func compileAge(tbl *lua.LTable) (types.Age, error) {
	name := getString(tbl, "age")
	if name == "" {
		return types.AgeA, nil
	}
	age, ok := types.ParseAge(name)
	if !ok {
		return 0, fmt.Errorf("unknown age %q", name)
	}
	return age, nil
}

func compileSetup(tbl *lua.LTable) types.SetupDef {
	return types.SetupDef{
		Government:   getString(tbl, "government"),
		Buildings:    tableToIntMap(getTable(tbl, "buildings")),
		Technologies: tableToStrings(getTable(tbl, "technologies")),
	}
}

// sortedLuaFiles returns .lua files with game.lua first and the rest sorted
// alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
