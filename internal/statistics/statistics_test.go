package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(turns, winner int) GameResult {
	return GameResult{Turns: turns, Winner: winner, Players: 2}
}

func TestAddAndMoments(t *testing.T) {
	s := &Statistics{}
	for _, r := range []GameResult{result(100, 0), result(200, 1), result(300, 0)} {
		s.Add(r)
	}

	assert.Equal(t, 3, s.Games)
	assert.InDelta(t, 200.0, s.Mean(), 1e-9)
	assert.InDelta(t, 200.0, s.Median(), 1e-9)
	assert.InDelta(t, 100.0, s.StdDev(), 1e-9)
	assert.Equal(t, 100, s.MinTurns)
	assert.Equal(t, 300, s.MaxTurns)
	assert.Equal(t, []int{2, 1}, s.WinCounts)
	assert.InDelta(t, 2.0/3.0, s.WinRate(0), 1e-9)
	assert.Equal(t, 0, s.Winner())
}

func TestEmptyStatistics(t *testing.T) {
	s := &Statistics{}
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, -1, s.Winner())
	assert.Equal(t, 0.0, s.WinRate(0))
	assert.Nil(t, s.Histogram(10))
	require.NoError(t, s.Validate())
}

func TestMedianEvenCount(t *testing.T) {
	s := &Statistics{}
	for _, turns := range []int{10, 20, 30, 40} {
		s.Add(result(turns, 0))
	}
	assert.InDelta(t, 25.0, s.Median(), 1e-9)
}

func TestPercentile(t *testing.T) {
	s := &Statistics{}
	for turns := 1; turns <= 100; turns++ {
		s.Add(result(turns, turns%2))
	}

	assert.InDelta(t, 1.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 100.0, s.Percentile(1.0), 1e-9)
	assert.InDelta(t, 50.5, s.Percentile(0.5), 1e-9)
}

func TestConfidenceInterval(t *testing.T) {
	s := &Statistics{}
	for i := 0; i < 100; i++ {
		s.Add(result(50, 0))
	}
	low, high := s.ConfidenceInterval95()
	assert.InDelta(t, 50.0, low, 1e-9, "zero variance collapses the interval")
	assert.InDelta(t, 50.0, high, 1e-9)
}

func TestMaxTurnsSeedTracked(t *testing.T) {
	s := &Statistics{}
	s.Add(GameResult{Turns: 10, Winner: 0, Seed: 111})
	s.Add(GameResult{Turns: 500, Winner: 1, Seed: 222})
	s.Add(GameResult{Turns: 50, Winner: 0, Seed: 333})

	assert.Equal(t, 500, s.MaxTurns)
	assert.Equal(t, int64(222), s.MaxTurnsSeed)
	assert.Equal(t, 10, s.MinTurns)
}

func TestMerge(t *testing.T) {
	a := &Statistics{}
	a.Add(result(100, 0))
	a.Add(result(200, 1))

	b := &Statistics{}
	b.Add(result(300, 2))
	b.Add(GameResult{Turns: 400, Winner: 0, Seed: 99})

	a.Merge(b)
	assert.Equal(t, 4, a.Games)
	assert.InDelta(t, 250.0, a.Mean(), 1e-9)
	assert.Equal(t, []int{2, 1, 1}, a.WinCounts)
	assert.Equal(t, 100, a.MinTurns)
	assert.Equal(t, 400, a.MaxTurns)
	assert.Equal(t, int64(99), a.MaxTurnsSeed)
	require.NoError(t, a.Validate())
}

func TestMergeIntoEmpty(t *testing.T) {
	a := &Statistics{}
	b := &Statistics{}
	b.Add(result(120, 1))

	a.Merge(b)
	assert.Equal(t, 1, a.Games)
	assert.Equal(t, 120, a.MinTurns)
	assert.Equal(t, 120, a.MaxTurns)
}

func TestHistogram(t *testing.T) {
	s := &Statistics{}
	for _, turns := range []int{10, 12, 19, 25, 31} {
		s.Add(result(turns, 0))
	}

	hist := s.Histogram(10)
	// Bins start at MinTurns=10: [10,19] [20,29] [30,39]
	assert.Equal(t, []int{3, 1, 1}, hist)
}

func TestValidateCatchesMismatch(t *testing.T) {
	s := &Statistics{}
	s.Add(result(10, 0))
	s.Values = append(s.Values, 99)
	assert.Error(t, s.Validate())

	s2 := &Statistics{}
	s2.Add(result(10, 0))
	s2.WinCounts[0] = 5
	assert.Error(t, s2.Validate())
}

func TestSlapAndChallengeTotals(t *testing.T) {
	s := &Statistics{}
	s.Add(GameResult{Turns: 10, Winner: 0, Slaps: 3, Challenges: 7})
	s.Add(GameResult{Turns: 20, Winner: 1, Slaps: 1, Challenges: 4})

	assert.Equal(t, 4, s.TotalSlaps)
	assert.Equal(t, 11, s.TotalChallenges)
}
