// Package board implements the top-level game snapshot and the turn state
// machine: action phase, end-of-turn resolution, start of the next turn.
//
// A Board is an immutable value. Every transition returns a new Board; the
// previous one stays valid, so callers may explore several futures from the
// same position without copying or locking.
package board

import (
	"fmt"
	"hash/fnv"
	"slices"

	"github.com/nathoo/agecore/engine/action"
	"github.com/nathoo/agecore/engine/cardrow"
	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/engine/deck"
	"github.com/nathoo/agecore/engine/tableau"
	"github.com/nathoo/agecore/types"
)

// Options carries the collaborators used when cards are drawn.
type Options struct {
	Picker deck.Picker
	Logger cardrow.Logger // optional
}

// Board is the full game state.
type Board struct {
	round    int
	order    []types.Player
	acting   int // index into order
	row      cardrow.Row
	decks    deck.CivilDecks
	tableaux map[types.Player]tableau.Tableau
}

// New sets up a game for the given number of players: turn order 1..n, one
// starting tableau each, civil decks sized for n and a freshly filled row.
func New(cat *catalog.Catalog, players int, opts Options) (Board, error) {
	decks, err := deck.New(cat, players)
	if err != nil {
		return Board{}, err
	}
	start, err := tableau.FromSetup(cat)
	if err != nil {
		return Board{}, err
	}

	b := Board{
		round:    1,
		order:    make([]types.Player, players),
		tableaux: make(map[types.Player]tableau.Tableau, players),
	}
	for i := range b.order {
		p := types.Player(i + 1)
		b.order[i] = p
		b.tableaux[p] = start
	}

	res := cardrow.New().Replenish(decks, opts.Picker, opts.Logger)
	b.row, b.decks = res.Row, res.Decks
	return b, nil
}

// Round returns the current round, starting at 1.
func (b Board) Round() int { return b.round }

// TurnOrder returns the fixed turn order.
func (b Board) TurnOrder() []types.Player { return slices.Clone(b.order) }

// ActingPlayer returns the player whose turn it is.
func (b Board) ActingPlayer() types.Player { return b.order[b.acting] }

// Row returns the card row.
func (b Board) Row() cardrow.Row { return b.row }

// Decks returns the civil decks.
func (b Board) Decks() deck.CivilDecks { return b.decks }

// Age returns the current age of the civil decks.
func (b Board) Age() types.Age { return b.decks.Age() }

// Tableau returns a player's tableau.
func (b Board) Tableau(p types.Player) (tableau.Tableau, bool) {
	t, ok := b.tableaux[p]
	return t, ok
}

// ActingTableau returns the acting player's tableau.
func (b Board) ActingTableau() tableau.Tableau { return b.tableaux[b.ActingPlayer()] }

// WithTableau returns a copy of b with p's tableau replaced. It is the hook
// for setup variants and scenarios; p must already be seated.
func (b Board) WithTableau(p types.Player, t tableau.Tableau) (Board, error) {
	if _, ok := b.tableaux[p]; !ok {
		return Board{}, fmt.Errorf("%s is not seated", p)
	}
	return b.withTableau(p, t), nil
}

// PlayAction applies a to the acting player's tableau.
func (b Board) PlayAction(a action.Action) (Board, error) {
	p := b.ActingPlayer()
	t, err := b.tableaux[p].PlayAction(a)
	if err != nil {
		return Board{}, err
	}
	return b.withTableau(p, t), nil
}

// PlayActionPhase applies actions in order for the acting player, then
// resolves the end of the turn. The first illegal action aborts the phase
// and no new board is produced.
func (b Board) PlayActionPhase(actions []action.Action) (Board, error) {
	next := b
	for _, a := range actions {
		var err error
		if next, err = next.PlayAction(a); err != nil {
			return Board{}, err
		}
	}
	return next.ResolveEndOfTurnSequence(), nil
}

// ResolveEndOfTurnSequence runs the income pipeline on the acting tableau
// and passes the turn. After the last player in turn order the round
// advances and play wraps to the first player.
func (b Board) ResolveEndOfTurnSequence() Board {
	b = b.resolveWar()

	p := b.ActingPlayer()
	t := b.tableaux[p].
		ScoreScienceAndCulture().
		GainFood().
		GainResources().
		ResetActions()
	b = b.withTableau(p, t)

	b.acting++
	if b.acting == len(b.order) {
		b.acting = 0
		b.round++
	}
	return b
}

// ResolveStartOfTurn shifts and replenishes the card row. When the draw
// enters a new age every tableau reacts to the transition.
func (b Board) ResolveStartOfTurn(opts Options) (Board, error) {
	shifted, err := b.row.ShiftLeft(len(b.order))
	if err != nil {
		return Board{}, err
	}
	res := shifted.Replenish(b.decks, opts.Picker, opts.Logger)
	b.row, b.decks = res.Row, res.Decks

	if res.AgeChanged {
		tableaux := make(map[types.Player]tableau.Tableau, len(b.tableaux))
		for p, t := range b.tableaux {
			tableaux[p] = t.AgeTransition(res.NewAge)
		}
		b.tableaux = tableaux
	}
	return b, nil
}

// resolveWar is the military conflict step. Not implemented.
func (b Board) resolveWar() Board {
	return b
}

// Equal reports structural equality over every field.
func (b Board) Equal(o Board) bool {
	if b.round != o.round || b.acting != o.acting || !slices.Equal(b.order, o.order) {
		return false
	}
	if !b.row.Equal(o.row) || !b.decks.Equal(o.decks) || len(b.tableaux) != len(o.tableaux) {
		return false
	}
	for p, t := range b.tableaux {
		ot, ok := o.tableaux[p]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal. Tableaux are
// hashed in turn order, so map iteration order never leaks in.
func (b Board) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%v|", b.round, b.acting, b.order)
	for _, s := range b.row.Slots() {
		fmt.Fprintf(h, "%s|", s)
	}
	b.decks.WriteHash(h)
	for _, p := range b.order {
		b.tableaux[p].WriteHash(h)
	}
	return h.Sum64()
}

func (b Board) withTableau(p types.Player, t tableau.Tableau) Board {
	tableaux := make(map[types.Player]tableau.Tableau, len(b.tableaux))
	for k, v := range b.tableaux {
		tableaux[k] = v
	}
	tableaux[p] = t
	b.tableaux = tableaux
	return b
}
