// Package points implements the resource vector held by every tableau.
package points

import (
	"fmt"
	"strings"

	"github.com/nathoo/agecore/types"
)

// Points maps every resource kind to a count. It is an array, so every kind
// is always present and assignment copies.
type Points [types.NumPoints]int

// New builds a Points from a possibly sparse map. Absent kinds are zero.
func New(m map[types.Point]int) Points {
	var p Points
	for k, v := range m {
		if k < 0 || k >= types.NumPoints {
			panic(fmt.Sprintf("points: unknown kind %d", int(k)))
		}
		p[k] = v
	}
	return p
}

// Of returns a Points with a single nonzero kind.
func Of(kind types.Point, n int) Points {
	var p Points
	p[kind] = n
	return p
}

// Get returns the count for kind.
func (p Points) Get(kind types.Point) int {
	return p[kind]
}

// With returns a copy of p with kind set to n.
func (p Points) With(kind types.Point, n int) Points {
	p[kind] = n
	return p
}

// Add returns the kind-wise sum.
func (p Points) Add(o Points) Points {
	for i := range p {
		p[i] += o[i]
	}
	return p
}

// Sub returns the kind-wise difference.
func (p Points) Sub(o Points) Points {
	for i := range p {
		p[i] -= o[i]
	}
	return p
}

// Covers reports whether p holds at least price of every kind.
func (p Points) Covers(price Points) bool {
	for i := range p {
		if p[i] < price[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every kind is zero.
func (p Points) IsZero() bool {
	return p == Points{}
}

// Map returns a fully populated map, one entry per kind.
func (p Points) Map() map[types.Point]int {
	m := make(map[types.Point]int, types.NumPoints)
	for _, k := range types.AllPoints {
		m[k] = p[k]
	}
	return m
}

// String renders nonzero kinds, e.g. "food=2 science=1".
func (p Points) String() string {
	var parts []string
	for _, k := range types.AllPoints {
		if p[k] != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, p[k]))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
