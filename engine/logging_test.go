package engine

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nathoo/agecore/engine/catalog"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("info", &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown", zap.Int("round", 2))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"round": 2`) {
		t.Errorf("expected info entry with field, got %q", out)
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger("chatty", &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestCardLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	NewCardLogger(zap.New(core)).ReplenishCivilCards([]string{"Iron", "Coal"})

	entries := logs.FilterMessage("drew civil cards").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	cards, ok := entries[0].ContextMap()["cards"].([]interface{})
	if !ok || len(cards) != 2 || cards[0] != "Iron" {
		t.Errorf("cards field = %v", entries[0].ContextMap()["cards"])
	}
}

func TestDrawRecorder(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := &drawRecorder{next: NewCardLogger(zap.New(core))}

	r.ReplenishCivilCards([]string{"Iron"})
	r.ReplenishCivilCards([]string{"Coal", "Oil"})

	got := r.take()
	if strings.Join(got, ",") != "Iron,Coal,Oil" {
		t.Errorf("take() = %v", got)
	}
	if len(r.take()) != 0 {
		t.Error("expected take to reset the recorder")
	}
	if logs.Len() != 2 {
		t.Errorf("expected every notification forwarded, got %d", logs.Len())
	}
}

func TestEngineLogsTurns(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e, err := New(catalog.Fixture(), 2, 5, zap.New(core))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := e.EndTurn(); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}

	started := logs.FilterMessage("game started").All()
	if len(started) != 1 || started[0].ContextMap()["game_id"] != e.ID {
		t.Errorf("expected game started entry with game_id, got %v", started)
	}
	if logs.FilterMessage("turn ended").Len() != 1 {
		t.Error("expected a turn ended entry")
	}
}
