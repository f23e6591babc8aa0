package loader

import (
	"strings"
	"testing"

	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/types"
)

// validCatalog returns a small catalog that passes validation. Fixture
// deals no copies of its ancient cards, which are all known at setup.
func validCatalog() *catalog.Catalog {
	return catalog.Fixture()
}

func TestValidate_ValidCatalog(t *testing.T) {
	if err := validate(validCatalog()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *catalog.Catalog)
		want   string
	}{
		{
			name:   "empty title",
			mutate: func(c *catalog.Catalog) { c.Game.Title = "" },
			want:   "title",
		},
		{
			name: "technology grants undefined building",
			mutate: func(c *catalog.Catalog) {
				tech := c.Technologies["Iron"]
				tech.Building = "Steel"
				c.Technologies["Iron"] = tech
			},
			want: `undefined building "Steel"`,
		},
		{
			name: "technology and building ages differ",
			mutate: func(c *catalog.Catalog) {
				tech := c.Technologies["Coal"]
				tech.Age = types.AgeI
				c.Technologies["Coal"] = tech
			},
			want: "is age I but building",
		},
		{
			name: "two buildings share age and category",
			mutate: func(c *catalog.Catalog) {
				c.Buildings["Copper"] = types.Building{Name: "Copper", Category: "Mine", Price: 2, Age: types.AgeA}
			},
			want: `"Bronze" and "Copper" are both age A Mine`,
		},
		{
			name: "negative distribution",
			mutate: func(c *catalog.Catalog) {
				tech := c.Technologies["Oil"]
				tech.Distribution.FourPlayers = -1
				c.Technologies["Oil"] = tech
			},
			want: "negative distribution",
		},
		{
			name:   "unknown setup government",
			mutate: func(c *catalog.Catalog) { c.Setup.Government = "Monarchy" },
			want:   `setup government "Monarchy"`,
		},
		{
			name:   "unknown setup building",
			mutate: func(c *catalog.Catalog) { c.Setup.Buildings["Castle"] = 1 },
			want:   `setup building "Castle"`,
		},
		{
			name: "unknown setup technology",
			mutate: func(c *catalog.Catalog) {
				c.Setup.Technologies = append(c.Setup.Technologies, "Warfare")
			},
			want: `setup technology "Warfare"`,
		},
		{
			name: "government without actions",
			mutate: func(c *catalog.Catalog) {
				c.Governments["Anarchy"] = &types.Government{Name: "Anarchy"}
			},
			want: "at least one civil action",
		},
		{
			name: "negative price",
			mutate: func(c *catalog.Catalog) {
				b := c.Buildings["Oil"]
				b.Price = -1
				c.Buildings["Oil"] = b
			},
			want: "negative price",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCatalog()
			tt.mutate(c)

			err := validate(c)
			if err == nil {
				t.Fatal("expected validation error")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			assertContains(t, ve.Errors, tt.want)
		})
	}
}

func TestValidate_CollectsEveryError(t *testing.T) {
	c := validCatalog()
	c.Game.Title = ""
	c.Setup.Government = "Monarchy"

	ve, ok := validate(c).(*ValidationError)
	if !ok {
		t.Fatal("expected *ValidationError")
	}
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", ve.Errors)
	}
	if !strings.Contains(ve.Error(), "2 error(s)") {
		t.Errorf("Error() = %q", ve.Error())
	}
}

func TestLint(t *testing.T) {
	c := validCatalog()
	if w := Lint(c); len(w) != 0 {
		t.Errorf("expected no warnings, got %v", w)
	}

	c.Buildings["Quarry"] = types.Building{Name: "Quarry", Category: "Pit", Age: types.AgeI}
	c.Technologies["Masonry"] = types.Technology{Name: "Masonry", Building: "Quarry", Age: types.AgeI}
	c.Buildings["Ruins"] = types.Building{Name: "Ruins", Category: "Wonder", Age: types.AgeA}

	warnings := Lint(c)
	assertContains(t, warnings, `"Masonry" is never dealt`)
	assertContains(t, warnings, `"Ruins" is not granted`)
	if err := validate(c); err != nil {
		t.Errorf("warnings must not fail validation, got %v", err)
	}
}

func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected one of %v to contain %q", strs, substr)
}
