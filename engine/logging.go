package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console-encoded zap logger writing to w at the given
// level ("debug", "info", "warn", "error").
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// CardLogger reports replenished civil cards to a zap logger.
type CardLogger struct {
	log *zap.Logger
}

// NewCardLogger returns a card logger backed by log.
func NewCardLogger(log *zap.Logger) CardLogger {
	return CardLogger{log: log}
}

// ReplenishCivilCards logs the cards drawn into the card row.
func (l CardLogger) ReplenishCivilCards(cards []string) {
	l.log.Info("drew civil cards", zap.Strings("cards", cards))
}

// drawRecorder keeps the cards drawn since the last reset so the driver can
// show them, and forwards every notification.
type drawRecorder struct {
	next  CardLogger
	cards []string
}

func (r *drawRecorder) ReplenishCivilCards(cards []string) {
	r.cards = append(r.cards, cards...)
	r.next.ReplenishCivilCards(cards)
}

func (r *drawRecorder) take() []string {
	cards := r.cards
	r.cards = nil
	return cards
}
