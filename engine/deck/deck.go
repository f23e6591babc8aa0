package deck

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"sort"

	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/types"
)

// ErrPlayerCount is returned for a player count without a card distribution.
var ErrPlayerCount = errors.New("unsupported player count")

// Picker picks up to count cards from bag, weighted by copies and without
// replacement. It returns the picked cards and the residual bag. When count
// exceeds the bag size every card is returned. Picker is the engine's only
// source of nondeterminism.
type Picker interface {
	PickCards(count int, bag Bag) ([]string, Bag)
}

// CivilDecks maps each age to its undrawn cards. It also records the
// current age: the latest age a card has been drawn from.
type CivilDecks struct {
	decks map[types.Age]Bag
	ages  []types.Age // ascending, every age with a deck
	age   types.Age
}

// Draw is the result of CivilDecks.Draw.
type Draw struct {
	Cards []string // earlier ages first
	Decks CivilDecks
	// NewAge is the latest age entered by this draw, valid when AgeChanged.
	NewAge     types.Age
	AgeChanged bool
}

// NewCivilDecks builds decks from per-age bags. The current age starts at
// the earliest age present.
func NewCivilDecks(decks map[types.Age]Bag) CivilDecks {
	d := CivilDecks{decks: make(map[types.Age]Bag, len(decks))}
	for a, b := range decks {
		d.decks[a] = b
		d.ages = append(d.ages, a)
	}
	sort.Slice(d.ages, func(i, j int) bool { return d.ages[i] < d.ages[j] })
	if len(d.ages) > 0 {
		d.age = d.ages[0]
	}
	return d
}

// New builds the civil decks for a player count from the catalog's card
// distributions. Cards with zero copies for that count are left out.
func New(cat *catalog.Catalog, players int) (CivilDecks, error) {
	perAge := map[types.Age]map[string]int{}
	for _, name := range cat.TechnologyNames() {
		t := cat.Technologies[name]
		n, err := Copies(t.Distribution, players)
		if err != nil {
			return CivilDecks{}, err
		}
		if n == 0 {
			continue
		}
		if perAge[t.Age] == nil {
			perAge[t.Age] = map[string]int{}
		}
		perAge[t.Age][name] = n
	}
	decks := make(map[types.Age]Bag, len(perAge))
	for a, counts := range perAge {
		decks[a] = NewBag(counts)
	}
	return NewCivilDecks(decks), nil
}

// Copies returns the number of copies in a distribution for a player count.
func Copies(d types.CardDistribution, players int) (int, error) {
	switch players {
	case 2:
		return d.TwoPlayers, nil
	case 3:
		return d.ThreePlayers, nil
	case 4:
		return d.FourPlayers, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrPlayerCount, players)
	}
}

// Age returns the current age.
func (d CivilDecks) Age() types.Age { return d.age }

// Deck returns the undrawn cards of one age.
func (d CivilDecks) Deck(a types.Age) Bag { return d.decks[a] }

// Ages returns every age with a deck, ascending.
func (d CivilDecks) Ages() []types.Age { return append([]types.Age(nil), d.ages...) }

// Remaining returns the total number of undrawn cards.
func (d CivilDecks) Remaining() int {
	n := 0
	for _, b := range d.decks {
		n += b.Size()
	}
	return n
}

// Draw draws count cards from the earliest non-empty age, taking any
// shortfall from the following ages. Running out of cards is not an error:
// fewer cards are returned. The receiver is unchanged.
func (d CivilDecks) Draw(count int, p Picker) Draw {
	age, ok := d.earliest()
	if !ok || count <= 0 {
		return Draw{Decks: d}
	}

	cards, rest := p.PickCards(count, d.decks[age])
	next := d.with(age, rest)

	res := Draw{Cards: cards, Decks: next}
	if age > d.age {
		res.Decks.age = age
		res.NewAge, res.AgeChanged = age, true
	}

	if short := count - len(cards); short > 0 && rest.Empty() {
		more := res.Decks.Draw(short, p)
		res.Cards = append(res.Cards, more.Cards...)
		res.Decks = more.Decks
		if more.AgeChanged {
			res.NewAge, res.AgeChanged = more.NewAge, true
		}
	}
	return res
}

// Equal reports structural equality.
func (d CivilDecks) Equal(o CivilDecks) bool {
	if d.age != o.age || len(d.decks) != len(o.decks) {
		return false
	}
	for a, b := range d.decks {
		ob, ok := o.decks[a]
		if !ok || !b.Equal(ob) {
			return false
		}
	}
	return true
}

func (d CivilDecks) earliest() (types.Age, bool) {
	for _, a := range d.ages {
		if !d.decks[a].Empty() {
			return a, true
		}
	}
	return 0, false
}

func (d CivilDecks) with(a types.Age, b Bag) CivilDecks {
	decks := make(map[types.Age]Bag, len(d.decks))
	for k, v := range d.decks {
		decks[k] = v
	}
	decks[a] = b
	d.decks = decks
	return d
}

// WriteHash writes the canonical encoding of d to h.
func (d CivilDecks) WriteHash(h hash.Hash64) {
	var buf [8]byte
	writeInt := func(n int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		h.Write(buf[:])
	}
	writeInt(int(d.age))
	for _, a := range d.ages {
		b := d.decks[a]
		writeInt(int(a))
		for _, card := range b.Cards() {
			writeInt(len(card))
			h.Write([]byte(card))
			writeInt(b.Count(card))
		}
	}
}
