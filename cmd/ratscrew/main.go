package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run a batch of game simulations and summarize the results"`
	Trace    TraceCmd         `cmd:"" help:"Run a single game with a turn-by-turn event log"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ratscrew"),
		kong.Description("Egyptian Ratscrew simulator for studying game length and slap dynamics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
