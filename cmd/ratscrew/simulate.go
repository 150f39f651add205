package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/stjordanis/ratscrew/internal/display"
	"github.com/stjordanis/ratscrew/internal/simulator"
	"github.com/stjordanis/ratscrew/internal/tui"
)

// SimulateCmd runs a batch of games and prints a statistical summary.
// Settings come from flags, or from an HCL config file with any non-zero
// flags taking precedence.
type SimulateCmd struct {
	Games   int    `help:"Number of games to simulate" default:"0"`
	Players int    `short:"p" help:"Players per game" default:"0"`
	Arbiter string `help:"Slap arbiter strategy: uniform, weighted" default:""`
	Seed    int64  `help:"Base RNG seed" default:"0"`
	Workers int    `help:"Parallel workers (0 = one per CPU)" default:"0"`
	Config  string `short:"c" help:"HCL config file" type:"path"`
	TUI     bool   `help:"Show a live progress UI"`
	Verbose bool   `help:"Verbose logging"`
}

// Run executes the simulate command
func (cmd *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cmd.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := cmd.buildConfig(logger)
	if err != nil {
		return err
	}

	var progress *dotReporter
	var program *tea.Program
	if cmd.TUI {
		program = tea.NewProgram(tui.NewProgressModel(cfg.Games))
		cfg.Progress = func(done, total int) {
			program.Send(tui.ProgressMsg{Done: done, Total: total})
		}
	} else {
		progress = newDotReporter(os.Stderr, cfg.Games)
		cfg.Progress = progress.update
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	type runResult struct {
		summary *simulator.Summary
		err     error
	}
	resultCh := make(chan runResult, 1)
	go func() {
		summary, err := sim.Run(context.Background())
		resultCh <- runResult{summary, err}
		if program != nil {
			program.Send(tui.DoneMsg{})
		}
	}()

	if program != nil {
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("progress UI failed: %w", err)
		}
	}

	result := <-resultCh
	if result.err != nil {
		return result.err
	}
	if progress != nil {
		progress.finish()
	}

	display.NewSummary(os.Stdout).Render(result.summary.Stats, result.summary.Elapsed)
	return nil
}

// buildConfig merges the HCL config file (when given) with CLI flags.
// Flags left at their zero value defer to the file; the file's own
// defaults cover anything still unset.
func (cmd *SimulateCmd) buildConfig(logger *log.Logger) (simulator.Config, error) {
	file := simulator.DefaultFileConfig()
	if cmd.Config != "" {
		loaded, err := simulator.LoadFileConfig(cmd.Config)
		if err != nil {
			return simulator.Config{}, err
		}
		file = loaded
	}

	if cmd.Games != 0 {
		file.Simulation.Games = cmd.Games
	}
	if cmd.Players != 0 {
		file.Simulation.Players = cmd.Players
	}
	if cmd.Seed != 0 {
		file.Simulation.Seed = cmd.Seed
	}
	if cmd.Workers != 0 {
		file.Simulation.Workers = cmd.Workers
	}
	if cmd.Arbiter != "" {
		file.Arbiter.Strategy = cmd.Arbiter
	}

	if err := file.Validate(); err != nil {
		return simulator.Config{}, err
	}

	cfg := file.SimulatorConfig()
	cfg.Logger = logger
	logger.Debug("simulation configured",
		"games", cfg.Games, "players", cfg.Players,
		"arbiter", cfg.Arbiter, "seed", cfg.Seed, "workers", cfg.Workers)
	return cfg, nil
}
