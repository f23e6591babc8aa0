package loader

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/agecore/types"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	coll := &collector{}
	return newVM(coll), coll
}

func TestCompileGame(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	if err := L.DoString(`return { title = "Test Game", version = "1.0" }`); err != nil {
		t.Fatal(err)
	}

	game := compileGame(L.CheckTable(-1))
	if game.Title != "Test Game" {
		t.Errorf("Title = %q, want %q", game.Title, "Test Game")
	}
	if game.Version != "1.0" {
		t.Errorf("Version = %q, want %q", game.Version, "1.0")
	}
}

func TestCompileBuilding(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Building "Printing Press" {
			category = "Library", age = "I", price = 3, urban = true,
			income = { culture = 1, science = 1 },
			happiness = 1, strength = 2,
		}
	`); err != nil {
		t.Fatal(err)
	}
	if len(coll.buildings) != 1 {
		t.Fatalf("expected 1 building, got %d", len(coll.buildings))
	}

	b, err := compileBuilding(coll.buildings[0])
	if err != nil {
		t.Fatal(err)
	}
	if b.Name != "Printing Press" || b.Category != "Library" {
		t.Errorf("Name/Category = %q/%q", b.Name, b.Category)
	}
	if b.Age != types.AgeI {
		t.Errorf("Age = %s, want I", b.Age)
	}
	if b.Price != 3 {
		t.Errorf("Price = %d, want 3", b.Price)
	}
	if !b.Urban {
		t.Error("expected urban building")
	}
	if b.Income[types.Culture] != 1 || b.Income[types.Science] != 1 {
		t.Errorf("Income = %v", b.Income)
	}
	if b.Happiness != 1 || b.Strength != 2 {
		t.Errorf("Happiness/Strength = %d/%d, want 1/2", b.Happiness, b.Strength)
	}
}

func TestCompileBuilding_Defaults(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Building "Hut" { category = "Farm" }`); err != nil {
		t.Fatal(err)
	}
	b, err := compileBuilding(coll.buildings[0])
	if err != nil {
		t.Fatal(err)
	}
	if b.Age != types.AgeA {
		t.Errorf("Age = %s, want A", b.Age)
	}
	if b.Urban {
		t.Error("expected non-urban by default")
	}
	if len(b.Income) != 0 {
		t.Errorf("expected no income, got %v", b.Income)
	}
}

func TestCompileBuilding_Errors(t *testing.T) {
	tests := []struct {
		name string
		lua  string
		want string
	}{
		{"unknown age", `Building "X" { category = "Farm", age = "V" }`, "unknown age"},
		{"unknown income", `Building "X" { category = "Farm", income = { gold = 1 } }`, "unknown income kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L, coll := newTestVM()
			defer L.Close()
			if err := L.DoString(tt.lua); err != nil {
				t.Fatal(err)
			}
			_, err := compileBuilding(coll.buildings[0])
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("compileBuilding error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestCompileTechnology(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Technology "Iron Working" {
			building = "Iron", age = "I", science = 5,
			distribution = { 2, 2, 3 },
		}
	`); err != nil {
		t.Fatal(err)
	}

	tech, err := compileTechnology(coll.technologies[0])
	if err != nil {
		t.Fatal(err)
	}
	if tech.Name != "Iron Working" || tech.Building != "Iron" {
		t.Errorf("Name/Building = %q/%q", tech.Name, tech.Building)
	}
	if tech.SciencePrice != 5 {
		t.Errorf("SciencePrice = %d, want 5", tech.SciencePrice)
	}
	want := types.CardDistribution{TwoPlayers: 2, ThreePlayers: 2, FourPlayers: 3}
	if tech.Distribution != want {
		t.Errorf("Distribution = %+v, want %+v", tech.Distribution, want)
	}
}

func TestCompileDistribution_WrongLength(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Technology "X" { distribution = { 1, 2 } }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compileTechnology(coll.technologies[0]); err == nil {
		t.Error("expected error for a two-entry distribution")
	}
}

func TestCard_DefinesBuildingAndTechnology(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Card "Drama" {
			category = "Theater", age = "I", price = 4, science = 3,
			income = { culture = 2 }, distribution = { 1, 2, 2 },
		}
	`); err != nil {
		t.Fatal(err)
	}
	if len(coll.buildings) != 1 || len(coll.technologies) != 1 {
		t.Fatalf("expected 1 building and 1 technology, got %d and %d",
			len(coll.buildings), len(coll.technologies))
	}
	tech, err := compileTechnology(coll.technologies[0])
	if err != nil {
		t.Fatal(err)
	}
	if tech.Building != "Drama" {
		t.Errorf("Building = %q, want %q", tech.Building, "Drama")
	}
}

func TestCompile_RejectsDuplicates(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { title = "Dup" }
		Building "Farm" { category = "Farm" }
		Building "Farm" { category = "Farm" }
		Setup { government = "Despotism" }
	`); err != nil {
		t.Fatal(err)
	}
	_, err := compile(coll)
	if err == nil || !strings.Contains(err.Error(), "defined twice") {
		t.Errorf("compile error = %v, want duplicate error", err)
	}
}

func TestCompile_RequiresGameAndSetup(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if _, err := compile(coll); err == nil {
		t.Error("expected error without Game{}")
	}
	if err := L.DoString(`Game { title = "No setup" }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compile(coll); err == nil {
		t.Error("expected error without Setup{}")
	}
}

func TestCompileSetup(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		return {
			government = "Despotism",
			buildings = { Agriculture = 2, Bronze = 1 },
			technologies = { "Agriculture", "Bronze" },
		}
	`); err != nil {
		t.Fatal(err)
	}
	s := compileSetup(L.CheckTable(-1))
	if s.Government != "Despotism" {
		t.Errorf("Government = %q", s.Government)
	}
	if s.Buildings["Agriculture"] != 2 || s.Buildings["Bronze"] != 1 {
		t.Errorf("Buildings = %v", s.Buildings)
	}
	if len(s.Technologies) != 2 || s.Technologies[0] != "Agriculture" {
		t.Errorf("Technologies = %v", s.Technologies)
	}
}

func TestSandbox_RemovesDangerousGlobals(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "rawset"} {
		if L.GetGlobal(name) != lua.LNil {
			t.Errorf("expected %s to be removed", name)
		}
	}
	if err := L.DoString(`math.randomseed(1)`); err == nil {
		t.Error("expected math.randomseed to be unavailable")
	}
	if L.GetGlobal("os") != lua.LNil || L.GetGlobal("io") != lua.LNil {
		t.Error("expected os and io libraries to be closed")
	}
}

func TestSortedLuaFiles(t *testing.T) {
	got := sortedLuaFiles([]string{"mines.lua", "game.lua", "farms.lua"})
	want := []string{"game.lua", "farms.lua", "mines.lua"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sortedLuaFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
