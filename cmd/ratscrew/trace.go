package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/stjordanis/ratscrew/internal/arbiter"
	"github.com/stjordanis/ratscrew/internal/deck"
	"github.com/stjordanis/ratscrew/internal/game"
	"github.com/stjordanis/ratscrew/internal/randutil"
)

// TraceCmd runs a single game and logs every engine event, for studying
// how a particular seed's challenge and slap sequences unfold.
type TraceCmd struct {
	Players  int    `short:"p" help:"Number of players" default:"2"`
	Seed     int64  `help:"RNG seed" default:"1"`
	Arbiter  string `help:"Slap arbiter strategy: uniform, weighted" default:"uniform"`
	MaxTurns int    `help:"Abort after this many turns (0 = no cap)" default:"1000000"`
}

// Run executes the trace command
func (cmd *TraceCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "trace",
	})

	rng := randutil.New(cmd.Seed)
	arb, err := arbiter.FromName(cmd.Arbiter, rng)
	if err != nil {
		return err
	}

	hands, err := game.Deal(deck.New(), cmd.Players, rng)
	if err != nil {
		return err
	}

	g, err := game.NewGame(hands, arb,
		game.WithMaxTurns(cmd.MaxTurns),
		game.WithSubscriber(eventLogger{logger}),
	)
	if err != nil {
		return err
	}

	result, err := g.Run()
	if err != nil {
		return err
	}

	logger.Info("game complete", "turns", result.Turns, "winner", result.Winner, "seed", cmd.Seed)
	return nil
}

// eventLogger logs engine events with structured fields.
type eventLogger struct {
	logger *log.Logger
}

func (l eventLogger) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.CardPlayedEvent:
		l.logger.Info("card played",
			"turn", e.Turn(), "player", e.Player, "card", e.Card.String(),
			"pile", e.PileSize, "chances", e.ChancesRemaining)
	case game.TurnSkippedEvent:
		l.logger.Debug("turn skipped", "turn", e.Turn(), "player", e.Player)
	case game.ChallengeStartedEvent:
		l.logger.Info("challenge started",
			"turn", e.Turn(), "challenger", e.Challenger, "card", e.Card.String(), "chances", e.Chances)
	case game.SlapEvent:
		l.logger.Info("slap", "turn", e.Turn(), "winner", e.Winner, "pile", e.PileSize)
	case game.PileAwardedEvent:
		l.logger.Info("pile awarded",
			"turn", e.Turn(), "player", e.Player, "cards", e.Cards, "reason", string(e.Reason))
	case game.GameOverEvent:
		l.logger.Info("game over", "turn", e.Turn(), "winner", e.Winner)
	}
}
