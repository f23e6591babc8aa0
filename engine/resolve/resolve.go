// Package resolve maps names typed by a player to catalog names.
package resolve

import (
	"fmt"
	"sort"
	"strings"
)

// AmbiguityError indicates multiple candidates matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("which %s? (%s)", e.Name, names)
}

// NotFoundError indicates no candidate matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("you don't know %q", e.Name)
}

// Name resolves a typed name against candidates. Matching is
// case-insensitive, treats "_" like a space and tries, in order: an exact
// name, a whole word of a name, then a name prefix. The first step with any
// match decides.
func Name(candidates []string, name string) (string, error) {
	query := normalize(name)
	if query == "" {
		return "", &NotFoundError{Name: name}
	}

	steps := []func(string) bool{
		func(c string) bool { return c == query },
		func(c string) bool { return containsWord(c, query) },
		func(c string) bool { return strings.HasPrefix(c, query) },
	}
	for _, match := range steps {
		var matches []string
		for _, c := range candidates {
			if match(normalize(c)) && !containsStr(matches, c) {
				matches = append(matches, c)
			}
		}
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			sort.Strings(matches)
			return "", &AmbiguityError{Name: name, Candidates: matches}
		}
	}
	return "", &NotFoundError{Name: name}
}

func normalize(s string) string {
	s = strings.ReplaceAll(strings.ToLower(s), "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(name, word string) bool {
	for _, w := range strings.Fields(name) {
		if w == word {
			return true
		}
	}
	return false
}

func containsStr(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
