// Package display renders batch simulation results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/stjordanis/ratscrew/internal/statistics"
)

// Static styles for summary elements
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))
)

// Summary writes a formatted results summary to w. Styling is dropped when
// the terminal reports no color support.
type Summary struct {
	w       io.Writer
	styled  bool
	histBin int
}

// NewSummary creates a summary renderer for the given writer.
func NewSummary(w io.Writer) *Summary {
	return &Summary{
		w:       w,
		styled:  termenv.DefaultOutput().Profile != termenv.Ascii,
		histBin: 50,
	}
}

// Render writes the full summary of a completed batch.
func (s *Summary) Render(stats *statistics.Statistics, elapsed time.Duration) {
	s.header(fmt.Sprintf(" Results: %d games ", stats.Games))

	s.line("Mean game length", "%.1f turns", stats.Mean())
	s.line("Median", "%.1f turns", stats.Median())
	s.line("Std dev", "%.1f turns", stats.StdDev())
	s.line("Std error", "%.2f turns", stats.StdError())
	low, high := stats.ConfidenceInterval95()
	s.line("95% CI", "[%.1f, %.1f] turns", low, high)
	s.line("Percentiles", "P5=%.0f  P25=%.0f  P75=%.0f  P95=%.0f",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	s.line("Range", "%d to %d turns (longest seed %d)", stats.MinTurns, stats.MaxTurns, stats.MaxTurnsSeed)

	s.header(" Slaps & challenges ")
	games := float64(stats.Games)
	s.line("Challenges", "%d total, %.1f per game", stats.TotalChallenges, float64(stats.TotalChallenges)/games)
	s.line("Slaps", "%d total, %.2f per game", stats.TotalSlaps, float64(stats.TotalSlaps)/games)

	s.header(" Wins by seat ")
	for player, wins := range stats.WinCounts {
		s.line(fmt.Sprintf("Player %d", player), "%d wins (%.1f%%)", wins, stats.WinRate(player)*100)
	}

	if hist := stats.Histogram(s.histBin); len(hist) > 1 {
		s.header(" Game length distribution ")
		s.histogram(stats, hist)
	}

	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(s.w, "\nCompleted %d games in %.1fs (%.0f games/sec)\n", stats.Games, secs, games/secs)
	} else {
		fmt.Fprintf(s.w, "\nCompleted %d games\n", stats.Games)
	}
}

func (s *Summary) header(title string) {
	if s.styled {
		fmt.Fprintf(s.w, "\n%s\n", headerStyle.Render(title))
	} else {
		fmt.Fprintf(s.w, "\n===%s===\n", title)
	}
}

func (s *Summary) line(label, format string, args ...any) {
	value := fmt.Sprintf(format, args...)
	if s.styled {
		fmt.Fprintf(s.w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
	} else {
		fmt.Fprintf(s.w, "%s: %s\n", label, value)
	}
}

// histogram draws one bar per bin, scaled to a fixed width.
func (s *Summary) histogram(stats *statistics.Statistics, hist []int) {
	const maxWidth = 40

	peak := 0
	for _, n := range hist {
		if n > peak {
			peak = n
		}
	}
	if peak == 0 {
		return
	}

	for i, n := range hist {
		lo := stats.MinTurns + i*s.histBin
		bar := strings.Repeat("█", n*maxWidth/peak)
		if s.styled {
			bar = barStyle.Render(bar)
		}
		fmt.Fprintf(s.w, "%6d-%-6d %s %d\n", lo, lo+s.histBin-1, bar, n)
	}
}
