// Package parser converts driver command strings into Intent structs.
// Intentionally dumb: no NLP, just aliases and a verb/object split.
package parser

import (
	"strings"

	"github.com/nathoo/agecore/types"
)

var verbAliases = map[string]string{
	// Build
	"b":         "build",
	"construct": "build",
	"erect":     "build",

	// End turn
	"e":      "end",
	"done":   "end",
	"pass":   "end",
	"finish": "end",

	// Undo
	"u":      "undo",
	"cancel": "undo",

	// Card row
	"market": "row",
	"cards":  "row",
	"r":      "row",

	// Legal actions
	"options": "legal",
	"moves":   "legal",

	// Status
	"l":       "status",
	"look":    "status",
	"tableau": "status",
	"s":       "status",
	"st":      "status",
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent. The object keeps the
// remaining words joined by single spaces, lowercased.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))
	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	return types.Intent{
		Verb:   words[0],
		Object: strings.Join(stripArticles(words[1:]), " "),
	}
}

// expandMultiWordVerbs handles "end turn", "show row" and the like.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "end", "pass", "finish":
		if words[1] == "turn" {
			return append([]string{"end"}, words[2:]...)
		}
	case "show", "list":
		return words[1:]
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
