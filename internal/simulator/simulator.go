// Package simulator runs batches of independent games and aggregates their
// outcomes. Each game owns its own state and derives its own RNG from the
// batch seed, so batches are reproducible and parallelise cleanly.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/stjordanis/ratscrew/internal/arbiter"
	"github.com/stjordanis/ratscrew/internal/deck"
	"github.com/stjordanis/ratscrew/internal/game"
	"github.com/stjordanis/ratscrew/internal/randutil"
	"github.com/stjordanis/ratscrew/internal/statistics"
)

// defaultMaxTurns caps a single game's turn slots. Real games with a random
// shuffle finish in the low thousands of turns; hitting this cap means an
// engine bug, not a long game.
const defaultMaxTurns = 10_000_000

// progressInterval is how often the progress callback fires during a run.
const progressInterval = 250 * time.Millisecond

// Config holds configuration for running a batch of simulations
type Config struct {
	Games    int    // Number of independent games to run
	Players  int    // Players per game
	Arbiter  string // Arbiter strategy name: uniform, weighted
	Seed     int64  // Base seed; per-game seeds are derived from it
	Workers  int    // Parallel workers; 0 means one per CPU
	MaxTurns int    // Per-game turn cap; 0 applies the default

	Logger   *log.Logger
	Clock    quartz.Clock          // Elapsed-time source; nil means the real clock
	Progress func(done, total int) // Optional periodic progress callback
}

// Summary is a completed batch: the aggregated statistics plus the wall
// time the run took, measured on the injected clock.
type Summary struct {
	Stats   *statistics.Statistics
	Elapsed time.Duration
}

// Simulator runs game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Games < 1 {
		return nil, fmt.Errorf("%w: games %d, need at least 1", game.ErrConfiguration, config.Games)
	}
	if config.Players < 1 {
		return nil, fmt.Errorf("%w: players %d, need at least 1", game.ErrConfiguration, config.Players)
	}
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.MaxTurns == 0 {
		config.MaxTurns = defaultMaxTurns
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}

	// Fail fast on a bad arbiter name rather than inside a worker.
	if _, err := arbiter.FromName(config.Arbiter, randutil.New(0)); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrConfiguration, err)
	}

	return &Simulator{config: config}, nil
}

// Run executes the batch and returns aggregated results. Workers split the
// game indices between them; game n always runs with the same derived seed
// no matter how many workers there are, so results are independent of the
// worker count.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	cfg := s.config
	start := cfg.Clock.Now()

	var done atomic.Int64
	progressCtx, stopProgress := context.WithCancel(ctx)
	if cfg.Progress != nil {
		waiter := cfg.Clock.TickerFunc(progressCtx, progressInterval, func() error {
			cfg.Progress(int(done.Load()), cfg.Games)
			return nil
		}, "progress")
		defer waiter.Wait()
	}
	defer stopProgress()

	workers := cfg.Workers
	if workers > cfg.Games {
		workers = cfg.Games
	}
	gamesPerWorker := cfg.Games / workers
	remainder := cfg.Games % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	next := 0
	for w := 0; w < workers; w++ {
		count := gamesPerWorker
		if w < remainder {
			count++
		}
		first := next
		next += count

		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := first; i < first+count; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				result, err := s.playGame(i)
				if err != nil {
					return err
				}
				stats.Add(result)
				done.Add(1)
			}
			results <- stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)
	stopProgress()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	if cfg.Progress != nil {
		cfg.Progress(cfg.Games, cfg.Games)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return &Summary{Stats: total, Elapsed: cfg.Clock.Since(start)}, nil
}

// playGame runs the nth game of the batch to completion.
func (s *Simulator) playGame(n int) (statistics.GameResult, error) {
	seed := randutil.Derive(s.config.Seed, n)
	rng := randutil.New(seed)

	arb, err := arbiter.FromName(s.config.Arbiter, rng)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("%w: %v", game.ErrConfiguration, err)
	}

	hands, err := game.Deal(deck.New(), s.config.Players, rng)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, seed, err)
	}

	var slaps, challenges int
	counter := game.SubscriberFunc(func(event game.GameEvent) {
		switch event.EventType() {
		case game.EventTypeSlap:
			slaps++
		case game.EventTypeChallengeStarted:
			challenges++
		}
	})

	gm, err := game.NewGame(hands, arb,
		game.WithMaxTurns(s.config.MaxTurns),
		game.WithSubscriber(counter),
	)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, seed, err)
	}

	result, err := gm.Run()
	if err != nil {
		s.config.Logger.Error("game aborted", "game", n, "seed", seed, "error", err)
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", n, seed, err)
	}

	return statistics.GameResult{
		Turns:      result.Turns,
		Winner:     result.Winner,
		Seed:       seed,
		Players:    s.config.Players,
		Slaps:      slaps,
		Challenges: challenges,
	}, nil
}
