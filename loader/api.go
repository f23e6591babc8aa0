package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the content constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", version = "..." }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Building "name" { category = ..., price = ..., income = {...}, ... }
	L.SetGlobal("Building", named(L, func(d rawDef) {
		coll.buildings = append(coll.buildings, d)
	}))

	// Technology "name" { building = ..., science = ..., distribution = {2, 2, 3} }
	L.SetGlobal("Technology", named(L, func(d rawDef) {
		coll.technologies = append(coll.technologies, d)
	}))

	// Card "name" { ... } defines a building and the technology granting
	// it, both under the same name.
	L.SetGlobal("Card", named(L, func(d rawDef) {
		coll.buildings = append(coll.buildings, d)
		coll.technologies = append(coll.technologies, d)
	}))

	// Government "name" { actions = 4, urban_limit = 2 }
	L.SetGlobal("Government", named(L, func(d rawDef) {
		coll.governments = append(coll.governments, d)
	}))

	// Setup { government = ..., buildings = {...}, technologies = {...} }
	L.SetGlobal("Setup", L.NewFunction(func(L *lua.LState) int {
		coll.setup = L.CheckTable(1)
		return 0
	}))
}

// named builds a curried constructor: Name("id") returns a function that
// takes the definition table.
func named(L *lua.LState, add func(rawDef)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			add(rawDef{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	})
}
