package simulator

import (
	"context"
	"errors"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stjordanis/ratscrew/internal/game"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{Games: 0, Players: 2})
	assert.True(t, errors.Is(err, game.ErrConfiguration))

	_, err = New(Config{Games: 10, Players: 0})
	assert.True(t, errors.Is(err, game.ErrConfiguration))

	_, err = New(Config{Games: 10, Players: 2, Arbiter: "psychic"})
	assert.True(t, errors.Is(err, game.ErrConfiguration))
}

func TestRunSmallBatch(t *testing.T) {
	sim, err := New(Config{Games: 25, Players: 2, Seed: 42})
	require.NoError(t, err)

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)

	stats := summary.Stats
	assert.Equal(t, 25, stats.Games)
	assert.Greater(t, stats.Mean(), 0.0)
	assert.Greater(t, stats.TotalChallenges, 0, "royals appear in every real deal")
	require.NoError(t, stats.Validate())
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) *Summary {
		sim, err := New(Config{Games: 16, Players: 3, Seed: 7, Workers: workers})
		require.NoError(t, err)
		summary, err := sim.Run(context.Background())
		require.NoError(t, err)
		return summary
	}

	serial := run(1)
	parallel := run(4)

	// Game n always gets the same derived seed, so aggregate moments match
	// regardless of how games were distributed over workers.
	assert.Equal(t, serial.Stats.Games, parallel.Stats.Games)
	assert.InDelta(t, serial.Stats.Mean(), parallel.Stats.Mean(), 1e-9)
	assert.InDelta(t, serial.Stats.SumTurns2, parallel.Stats.SumTurns2, 1e-6)
	assert.Equal(t, serial.Stats.TotalSlaps, parallel.Stats.TotalSlaps)
	assert.Equal(t, serial.Stats.TotalChallenges, parallel.Stats.TotalChallenges)
	assert.Equal(t, serial.Stats.MaxTurns, parallel.Stats.MaxTurns)
}

func TestRunSameSeedSameResults(t *testing.T) {
	run := func() *Summary {
		sim, err := New(Config{Games: 10, Players: 4, Seed: 1234, Workers: 2})
		require.NoError(t, err)
		summary, err := sim.Run(context.Background())
		require.NoError(t, err)
		return summary
	}

	first := run()
	second := run()
	assert.InDelta(t, first.Stats.Mean(), second.Stats.Mean(), 1e-9)
	assert.Equal(t, first.Stats.WinCounts, second.Stats.WinCounts)
}

func TestRunMorePlayersThanCards(t *testing.T) {
	// Legal per the deal rules: surplus players just start empty.
	sim, err := New(Config{Games: 3, Players: 60, Seed: 5, Workers: 1})
	require.NoError(t, err)

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Stats.Games)
}

func TestRunUsesInjectedClock(t *testing.T) {
	mock := quartz.NewMock(t)
	sim, err := New(Config{Games: 4, Players: 2, Seed: 9, Workers: 1, Clock: mock})
	require.NoError(t, err)

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)

	// Mock time does not advance on its own, so the measured duration
	// proves the injected clock was used.
	assert.Equal(t, int64(0), int64(summary.Elapsed))
}

func TestRunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim, err := New(Config{Games: 100000, Players: 2, Seed: 1})
	require.NoError(t, err)

	_, err = sim.Run(ctx)
	assert.Error(t, err)
}

func TestRunReportsProgress(t *testing.T) {
	var final struct {
		done, total int
	}
	sim, err := New(Config{
		Games:   8,
		Players: 2,
		Seed:    3,
		Workers: 1,
		Progress: func(done, total int) {
			final.done, final.total = done, total
		},
	})
	require.NoError(t, err)

	_, err = sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, final.done, "final progress callback reports completion")
	assert.Equal(t, 8, final.total)
}
