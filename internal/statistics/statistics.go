// Package statistics aggregates outcomes of repeated game simulations into
// distribution summaries of game length and slap/challenge dynamics.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Turns      int   // Turn slots elapsed until one player held all cards
	Winner     int   // Winning player index
	Seed       int64 // RNG seed for this game (for replay)
	Players    int   // Number of players in the game
	Slaps      int   // Successful slaps observed
	Challenges int   // Challenges started (counter-challenges included)
}

// Statistics tracks aggregate results across a batch of simulated games
type Statistics struct {
	Games     int
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // All turn counts, for median/percentile calculation

	WinCounts []int // Wins per player index, grown on demand

	TotalSlaps      int
	TotalChallenges int

	MaxTurns     int   // Longest game observed
	MaxTurnsSeed int64 // Its seed, for replay
	MinTurns     int   // Shortest game observed
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	turns := float64(result.Turns)
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)

	for result.Winner >= len(s.WinCounts) {
		s.WinCounts = append(s.WinCounts, 0)
	}
	s.WinCounts[result.Winner]++

	s.TotalSlaps += result.Slaps
	s.TotalChallenges += result.Challenges

	if result.Turns > s.MaxTurns {
		s.MaxTurns = result.Turns
		s.MaxTurnsSeed = result.Seed
	}
	if s.Games == 1 || result.Turns < s.MinTurns {
		s.MinTurns = result.Turns
	}
}

// Merge folds another statistics value into this one. Used to combine
// per-worker aggregates from a parallel run.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.SumTurns += other.SumTurns
	s.SumTurns2 += other.SumTurns2
	s.Values = append(s.Values, other.Values...)

	for i, n := range other.WinCounts {
		for i >= len(s.WinCounts) {
			s.WinCounts = append(s.WinCounts, 0)
		}
		s.WinCounts[i] += n
	}

	s.TotalSlaps += other.TotalSlaps
	s.TotalChallenges += other.TotalChallenges

	if other.MaxTurns > s.MaxTurns {
		s.MaxTurns = other.MaxTurns
		s.MaxTurnsSeed = other.MaxTurnsSeed
	}
	if other.Games > 0 && (s.Games == other.Games || other.MinTurns < s.MinTurns) {
		s.MinTurns = other.MinTurns
	}
}

// Winner returns the player index with the most wins so far, or -1 when no
// games have been recorded.
func (s *Statistics) Winner() int {
	best := -1
	bestWins := 0
	for i, n := range s.WinCounts {
		if n > bestWins {
			best = i
			bestWins = n
		}
	}
	return best
}

// WinRate returns the fraction of games won by the given player.
func (s *Statistics) WinRate(player int) float64 {
	if s.Games == 0 || player < 0 || player >= len(s.WinCounts) {
		return 0
	}
	return float64(s.WinCounts[player]) / float64(s.Games)
}

// Mean returns the arithmetic mean game length in turns
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Histogram buckets game lengths into bins of the given width and returns
// the counts, from the shortest observed game to the longest.
func (s *Statistics) Histogram(binWidth int) []int {
	if binWidth < 1 || len(s.Values) == 0 {
		return nil
	}
	bins := make([]int, (s.MaxTurns-s.MinTurns)/binWidth+1)
	for _, v := range s.Values {
		bins[(int(v)-s.MinTurns)/binWidth]++
	}
	return bins
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if len(s.Values) != s.Games {
		return fmt.Errorf("recorded %d values for %d games", len(s.Values), s.Games)
	}

	wins := 0
	for _, n := range s.WinCounts {
		wins += n
	}
	if wins != s.Games {
		return fmt.Errorf("win ledger mismatch: %d wins across %d games", wins, s.Games)
	}

	if s.Games > 0 && s.MinTurns > s.MaxTurns {
		return fmt.Errorf("min turns %d exceeds max turns %d", s.MinTurns, s.MaxTurns)
	}
	return nil
}
