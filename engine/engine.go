// Package engine provides the Engine facade a driver talks to. It holds the
// current Board, the seeded RNG used for deck draws and the logger, queues
// the acting player's actions and runs the turn cycle.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nathoo/agecore/engine/action"
	"github.com/nathoo/agecore/engine/board"
	"github.com/nathoo/agecore/engine/catalog"
	"github.com/nathoo/agecore/engine/points"
	"github.com/nathoo/agecore/engine/tableau"
	"github.com/nathoo/agecore/types"
)

// Engine holds the game definitions and the current board.
type Engine struct {
	ID      string
	Catalog *catalog.Catalog
	Board   board.Board
	RNG     *RNG
	Log     *zap.Logger

	pending []action.Action
	preview board.Board // Board with pending applied
	draws   *drawRecorder
}

// TurnReport summarises one completed turn.
type TurnReport struct {
	Player     types.Player
	Round      int
	Actions    []action.Action
	Gained     points.Points
	Drawn      []string
	NewAge     types.Age
	AgeChanged bool
}

// New sets up a game for players seats. A nil log discards all logging.
func New(cat *catalog.Catalog, players int, seed int64, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		ID:      uuid.NewString(),
		Catalog: cat,
		RNG:     NewRNG(seed),
	}
	e.Log = log.With(zap.String("game_id", e.ID))
	e.draws = &drawRecorder{next: NewCardLogger(e.Log)}

	b, err := board.New(cat, players, e.options())
	if err != nil {
		return nil, fmt.Errorf("setting up %d-player game: %w", players, err)
	}
	e.draws.take()
	e.Board, e.preview = b, b

	e.Log.Info("game started",
		zap.Int("players", players),
		zap.Int64("seed", seed),
		zap.Stringer("age", b.Age()))
	return e, nil
}

func (e *Engine) options() board.Options {
	return board.Options{Picker: e.RNG, Logger: e.draws}
}

// Reset replaces the board and drops the queued actions. Scenarios use it
// to start from a prepared position.
func (e *Engine) Reset(b board.Board) {
	e.Board, e.preview, e.pending = b, b, nil
	e.draws.take()
}

// Pending returns the actions queued for the acting player.
func (e *Engine) Pending() []action.Action {
	return append([]action.Action(nil), e.pending...)
}

// Preview returns the acting player's tableau with the queued actions
// applied.
func (e *Engine) Preview() tableau.Tableau {
	return e.preview.ActingTableau()
}

// Queue validates a against the preview and queues it. Nothing is queued
// if it is illegal.
func (e *Engine) Queue(a action.Action) error {
	next, err := e.preview.PlayAction(a)
	if err != nil {
		e.Log.Debug("action rejected",
			zap.Stringer("player", e.Board.ActingPlayer()),
			zap.Stringer("action", a),
			zap.Error(err))
		return err
	}
	e.pending = append(e.pending, a)
	e.preview = next
	e.Log.Debug("action queued",
		zap.Stringer("player", e.Board.ActingPlayer()),
		zap.Stringer("action", a))
	return nil
}

// Undo drops the last queued action. It reports whether there was one.
func (e *Engine) Undo() (action.Action, bool) {
	if len(e.pending) == 0 {
		return nil, false
	}
	last := e.pending[len(e.pending)-1]
	e.pending = e.pending[:len(e.pending)-1]

	e.preview = e.Board
	for _, a := range e.pending {
		// Each prefix of a legal sequence is legal.
		e.preview, _ = e.preview.PlayAction(a)
	}
	return last, true
}

// EndTurn plays the queued action phase, resolves the end of the turn and
// starts the next player's turn.
func (e *Engine) EndTurn() (TurnReport, error) {
	before := e.Board
	player := before.ActingPlayer()

	afterPhase, err := before.PlayActionPhase(e.pending)
	if err != nil {
		return TurnReport{}, err
	}
	next, err := afterPhase.ResolveStartOfTurn(e.options())
	if err != nil {
		return TurnReport{}, err
	}

	prevTab := e.preview.ActingTableau()
	newTab, _ := next.Tableau(player)
	report := TurnReport{
		Player:     player,
		Round:      before.Round(),
		Actions:    e.pending,
		Gained:     newTab.Points().Sub(prevTab.Points()),
		Drawn:      e.draws.take(),
		NewAge:     next.Age(),
		AgeChanged: next.Age() != before.Age(),
	}

	e.Board, e.preview, e.pending = next, next, nil

	e.Log.Info("turn ended",
		zap.Stringer("player", player),
		zap.Int("round", report.Round),
		zap.Int("actions", len(report.Actions)),
		zap.Stringer("gained", report.Gained))
	if report.AgeChanged {
		e.Log.Info("age changed", zap.Stringer("age", report.NewAge))
	}
	return report, nil
}
