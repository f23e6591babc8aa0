// Package cardrow implements the shared market row of civil cards.
package cardrow

import (
	"fmt"

	"github.com/nathoo/agecore/engine/deck"
	"github.com/nathoo/agecore/types"
)

// Tiers are the slot counts of each price tier, cheapest first. The row
// length is their sum.
var Tiers = []int{5, 4, 4}

// Size is the fixed number of slots in a row.
func Size() int {
	n := 0
	for _, t := range Tiers {
		n += t
	}
	return n
}

// Slot holds either a card or nothing.
type Slot struct {
	card   string
	filled bool
}

// Card returns a slot holding name.
func Card(name string) Slot { return Slot{card: name, filled: true} }

// EmptySlot returns an empty slot.
func EmptySlot() Slot { return Slot{} }

// Card returns the card in the slot and whether there is one.
func (s Slot) Card() (string, bool) { return s.card, s.filled }

// Empty reports whether the slot holds no card.
func (s Slot) Empty() bool { return !s.filled }

func (s Slot) String() string {
	if !s.filled {
		return "-"
	}
	return s.card
}

// Logger is notified of the cards drawn on every replenish. It must not
// affect engine state.
type Logger interface {
	ReplenishCivilCards(cards []string)
}

// NopLogger discards every notification.
type NopLogger struct{}

func (NopLogger) ReplenishCivilCards([]string) {}

// RangeError reports a slot index outside the row.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("card row index %d out of range [0,%d)", e.Index, e.Len)
}

// Row is the card row. Rows are values: shift and replenish return new rows.
type Row struct {
	slots []Slot
}

// New returns a row of Size() empty slots.
func New() Row {
	return Row{slots: make([]Slot, Size())}
}

// Len returns the number of slots.
func (r Row) Len() int { return len(r.slots) }

// Slot returns the slot at i.
func (r Row) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(r.slots) {
		return Slot{}, &RangeError{Index: i, Len: len(r.slots)}
	}
	return r.slots[i], nil
}

// Slots returns a copy of all slots.
func (r Row) Slots() []Slot { return append([]Slot(nil), r.slots...) }

// Cards returns the cards in the row in slot order, skipping empty slots.
func (r Row) Cards() []string {
	var cards []string
	for _, s := range r.slots {
		if c, ok := s.Card(); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// EmptySlots returns the number of empty slots.
func (r Row) EmptySlots() int {
	n := 0
	for _, s := range r.slots {
		if s.Empty() {
			n++
		}
	}
	return n
}

// Price returns the civil action cost of taking the card at index i: one
// plus the number of full tiers before the one i falls in.
func (r Row) Price(i int) (int, error) {
	if i < 0 || i >= len(r.slots) {
		return 0, &RangeError{Index: i, Len: len(r.slots)}
	}
	bound := 0
	for tier, n := range Tiers {
		bound += n
		if i < bound {
			return tier + 1, nil
		}
	}
	return 0, &RangeError{Index: i, Len: len(r.slots)}
}

// ClearCount is the number of leading slots cleared per shift. Fewer
// players clear more, so the row turns over at a similar pace.
func ClearCount(players int) (int, error) {
	switch players {
	case 2:
		return 3, nil
	case 3:
		return 2, nil
	case 4:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", deck.ErrPlayerCount, players)
	}
}

// ShiftLeft clears the leading slots for the player count, moves the
// remaining cards toward index 0 in order and pads the tail with empty
// slots.
func (r Row) ShiftLeft(players int) (Row, error) {
	cleared, err := ClearCount(players)
	if err != nil {
		return Row{}, err
	}
	slots := make([]Slot, len(r.slots))
	i := 0
	for j := cleared; j < len(r.slots); j++ {
		if !r.slots[j].Empty() {
			slots[i] = r.slots[j]
			i++
		}
	}
	return Row{slots: slots}, nil
}

// Replenishment is the result of Row.Replenish.
type Replenishment struct {
	Row        Row
	Decks      deck.CivilDecks
	Drawn      []string
	NewAge     types.Age
	AgeChanged bool
}

// Replenish fills empty slots in index order with cards drawn from decks.
// If the decks run out, the remaining slots stay empty. A full row is
// returned unchanged.
func (r Row) Replenish(decks deck.CivilDecks, p deck.Picker, log Logger) Replenishment {
	empty := r.EmptySlots()
	if empty == 0 {
		return Replenishment{Row: r, Decks: decks}
	}

	draw := decks.Draw(empty, p)
	if log != nil {
		log.ReplenishCivilCards(draw.Cards)
	}

	slots := r.Slots()
	next := 0
	for i := range slots {
		if next == len(draw.Cards) {
			break
		}
		if slots[i].Empty() {
			slots[i] = Card(draw.Cards[next])
			next++
		}
	}
	return Replenishment{
		Row:        Row{slots: slots},
		Decks:      draw.Decks,
		Drawn:      draw.Cards,
		NewAge:     draw.NewAge,
		AgeChanged: draw.AgeChanged,
	}
}

// Equal reports slot-wise equality.
func (r Row) Equal(o Row) bool {
	if len(r.slots) != len(o.slots) {
		return false
	}
	for i := range r.slots {
		if r.slots[i] != o.slots[i] {
			return false
		}
	}
	return true
}
