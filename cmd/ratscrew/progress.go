package main

import (
	"fmt"
	"io"
	"sync"
)

// dotReporter prints a dot per chunk of completed games, fifty dots to a
// line with a running percentage. Used when the live TUI is off.
type dotReporter struct {
	mu          sync.Mutex
	w           io.Writer
	total       int
	interval    int
	dotsPrinted int
	dotsPerLine int
}

func newDotReporter(w io.Writer, total int) *dotReporter {
	interval := total / 500
	if interval < 1 {
		interval = 1
	}
	return &dotReporter{
		w:           w,
		total:       total,
		interval:    interval,
		dotsPerLine: 50,
	}
}

// update is called periodically with the completed game count.
func (r *dotReporter) update(done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := done / r.interval
	for i := r.dotsPrinted; i < target; i++ {
		fmt.Fprint(r.w, ".")
		if (i+1)%r.dotsPerLine == 0 {
			games := (i + 1) * r.interval
			pct := float64(games) * 100 / float64(total)
			fmt.Fprintf(r.w, " %d/%d (%.0f%%)\n", games, total, pct)
		}
	}
	r.dotsPrinted = target
}

// finish terminates a partially filled dot line.
func (r *dotReporter) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dotsPrinted%r.dotsPerLine != 0 {
		fmt.Fprintln(r.w)
	}
}
