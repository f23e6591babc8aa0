package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/types"
)

// firstPicker always picks the alphabetically first remaining card.
type firstPicker struct{}

func (firstPicker) PickCards(count int, bag Bag) ([]string, Bag) {
	var cards []string
	for len(cards) < count && !bag.Empty() {
		c := bag.Cards()[0]
		cards = append(cards, c)
		bag = bag.Remove(c)
	}
	return cards, bag
}

func testDecks() CivilDecks {
	return NewCivilDecks(map[types.Age]Bag{
		types.AgeI:   NewBag(map[string]int{"Iron": 1, "Irrigation": 1}),
		types.AgeII:  NewBag(map[string]int{"Coal": 2}),
		types.AgeIII: NewBag(map[string]int{"Oil": 1}),
	})
}

func TestBag(t *testing.T) {
	b := NewBag(map[string]int{"Iron": 2, "Coal": 0, "Oil": -1})
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, 0, b.Count("Coal"))

	r := b.Remove("Iron")
	assert.Equal(t, 1, r.Count("Iron"))
	assert.Equal(t, 2, b.Count("Iron"), "original bag must not change")
	assert.True(t, r.Remove("Iron").Empty())
	assert.True(t, b.Equal(b.Remove("Oil")))
}

func TestDraw_WithinAge(t *testing.T) {
	d := testDecks()
	res := d.Draw(1, firstPicker{})

	assert.Equal(t, []string{"Iron"}, res.Cards)
	assert.False(t, res.AgeChanged)
	assert.Equal(t, types.AgeI, res.Decks.Age())
	assert.Equal(t, 1, res.Decks.Deck(types.AgeI).Size())
	assert.Equal(t, 2, d.Deck(types.AgeI).Size(), "receiver must not change")
}

func TestDraw_SpillsIntoNextAge(t *testing.T) {
	res := testDecks().Draw(3, firstPicker{})

	assert.Equal(t, []string{"Iron", "Irrigation", "Coal"}, res.Cards)
	assert.True(t, res.AgeChanged)
	assert.Equal(t, types.AgeII, res.NewAge)
	assert.Equal(t, types.AgeII, res.Decks.Age())
	assert.True(t, res.Decks.Deck(types.AgeI).Empty())
	assert.Equal(t, 1, res.Decks.Deck(types.AgeII).Count("Coal"))
	assert.Equal(t, 1, res.Decks.Deck(types.AgeIII).Size(), "later ages untouched")
}

func TestDraw_SpillsAcrossSeveralAges(t *testing.T) {
	res := testDecks().Draw(5, firstPicker{})

	assert.Equal(t, []string{"Iron", "Irrigation", "Coal", "Coal", "Oil"}, res.Cards)
	assert.True(t, res.AgeChanged)
	assert.Equal(t, types.AgeIII, res.NewAge)
}

func TestDraw_Exhaustion(t *testing.T) {
	res := testDecks().Draw(10, firstPicker{})

	assert.Len(t, res.Cards, 5)
	assert.Equal(t, 0, res.Decks.Remaining())

	again := res.Decks.Draw(2, firstPicker{})
	assert.Empty(t, again.Cards)
	assert.False(t, again.AgeChanged)
	assert.True(t, again.Decks.Equal(res.Decks))
}

func TestDraw_ExactExhaustionMarksNextDraw(t *testing.T) {
	first := testDecks().Draw(2, firstPicker{})
	require.False(t, first.AgeChanged)

	second := first.Decks.Draw(1, firstPicker{})
	assert.Equal(t, []string{"Coal"}, second.Cards)
	assert.True(t, second.AgeChanged)
	assert.Equal(t, types.AgeII, second.NewAge)
}

func TestDraw_ZeroCount(t *testing.T) {
	d := testDecks()
	res := d.Draw(0, firstPicker{})
	assert.Empty(t, res.Cards)
	assert.True(t, res.Decks.Equal(d))
}

func TestNew_FromCatalog(t *testing.T) {
	cat := catalog.Fixture()

	d, err := New(cat, 2)
	require.NoError(t, err)
	assert.Equal(t, []types.Age{types.AgeI, types.AgeII, types.AgeIII}, d.Ages())
	assert.Equal(t, types.AgeI, d.Age())
	assert.Equal(t, 2, d.Deck(types.AgeI).Count("Iron"))

	d4, err := New(cat, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, d4.Deck(types.AgeI).Count("Iron"))

	_, err = New(cat, 5)
	assert.ErrorIs(t, err, ErrPlayerCount)
}
