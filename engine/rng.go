package engine

import (
	"math/rand"

	"github.com/nathoo/agecore/engine/deck"
)

// countedSource counts every value drawn from the underlying source, so a
// generator can be rebuilt at the same point from its seed.
type countedSource struct {
	rand.Source
	drawn int64
}

func (s *countedSource) Int63() int64 {
	s.drawn++
	return s.Source.Int63()
}

// RNG is the game's only source of randomness. It is reproducible from
// (seed, position) and not safe for concurrent use.
type RNG struct {
	seed int64
	src  *countedSource
	r    *rand.Rand
}

// NewRNG creates a generator at position 0.
func NewRNG(seed int64) *RNG {
	src := &countedSource{Source: rand.NewSource(seed)}
	return &RNG{seed: seed, src: src, r: rand.New(src)}
}

// RestoreRNG recreates the generator with the given seed after position
// draws.
func RestoreRNG(seed, position int64) *RNG {
	g := NewRNG(seed)
	for g.src.drawn < position {
		g.src.Int63()
	}
	return g
}

// Seed returns the seed the generator was created with.
func (g *RNG) Seed() int64 { return g.seed }

// Position returns how many values have been drawn from the seed.
func (g *RNG) Position() int64 { return g.src.drawn }

// Weighted picks an index with probability proportional to its weight.
// Weights must be positive and non-empty.
func (g *RNG) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := g.r.Intn(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// PickCards draws up to count cards from bag without replacement, each
// card weighted by its remaining copies. The bag lists cards in sorted
// order, so a seed always produces the same draw.
func (g *RNG) PickCards(count int, bag deck.Bag) ([]string, deck.Bag) {
	var picked []string
	for len(picked) < count && !bag.Empty() {
		names := bag.Cards()
		copies := make([]int, len(names))
		for i, name := range names {
			copies[i] = bag.Count(name)
		}
		card := names[g.Weighted(copies)]
		picked = append(picked, card)
		bag = bag.Remove(card)
	}
	return picked, bag
}
