package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stjordanis/ratscrew/internal/statistics"
)

func sampleStats() *statistics.Statistics {
	s := &statistics.Statistics{}
	s.Add(statistics.GameResult{Turns: 120, Winner: 0, Seed: 1, Slaps: 4, Challenges: 12})
	s.Add(statistics.GameResult{Turns: 340, Winner: 1, Seed: 2, Slaps: 9, Challenges: 30})
	s.Add(statistics.GameResult{Turns: 200, Winner: 0, Seed: 3, Slaps: 5, Challenges: 18})
	return s
}

func TestSummaryRender(t *testing.T) {
	var buf bytes.Buffer
	s := NewSummary(&buf)
	s.styled = false
	s.Render(sampleStats(), 2*time.Second)

	out := buf.String()
	assert.Contains(t, out, "Results: 3 games")
	assert.Contains(t, out, "Mean game length: 220.0 turns")
	assert.Contains(t, out, "Median: 200.0 turns")
	assert.Contains(t, out, "Player 0: 2 wins (66.7%)")
	assert.Contains(t, out, "Player 1: 1 wins (33.3%)")
	assert.Contains(t, out, "longest seed 2")
	assert.Contains(t, out, "Completed 3 games in 2.0s")
}

func TestSummaryRenderHistogram(t *testing.T) {
	s := &statistics.Statistics{}
	for turns := 50; turns <= 450; turns += 10 {
		s.Add(statistics.GameResult{Turns: turns, Winner: 0})
	}

	var buf bytes.Buffer
	sum := NewSummary(&buf)
	sum.styled = false
	sum.Render(s, time.Second)

	require.Contains(t, buf.String(), "Game length distribution")
	assert.True(t, strings.Contains(buf.String(), "█"), "histogram bars rendered")
}
