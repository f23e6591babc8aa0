// Package deck implements the age-segmented civil decks and the draw
// algorithm that spills into the next age when one runs out.
package deck

import (
	"maps"
	"sort"
)

// Bag is an immutable multiset of card names. Only positive counts are kept.
type Bag struct {
	counts map[string]int
}

// NewBag builds a Bag from counts, dropping entries <= 0.
func NewBag(counts map[string]int) Bag {
	b := Bag{counts: make(map[string]int, len(counts))}
	for k, n := range counts {
		if n > 0 {
			b.counts[k] = n
		}
	}
	return b
}

// Count returns the copies of card in the bag.
func (b Bag) Count(card string) int { return b.counts[card] }

// Len returns the number of distinct cards.
func (b Bag) Len() int { return len(b.counts) }

// Size returns the total number of cards.
func (b Bag) Size() int {
	n := 0
	for _, c := range b.counts {
		n += c
	}
	return n
}

// Empty reports whether the bag holds no cards.
func (b Bag) Empty() bool { return len(b.counts) == 0 }

// Cards returns the distinct card names, sorted.
func (b Bag) Cards() []string {
	names := make([]string, 0, len(b.counts))
	for k := range b.counts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Counts returns a copy of the underlying counts.
func (b Bag) Counts() map[string]int { return maps.Clone(b.counts) }

// Remove returns a copy with one copy of card removed. Removing a card the
// bag does not hold returns the bag unchanged.
func (b Bag) Remove(card string) Bag {
	if b.counts[card] == 0 {
		return b
	}
	counts := maps.Clone(b.counts)
	counts[card]--
	if counts[card] == 0 {
		delete(counts, card)
	}
	return Bag{counts: counts}
}

// Equal reports multiset equality.
func (b Bag) Equal(o Bag) bool { return maps.Equal(b.counts, o.counts) }
