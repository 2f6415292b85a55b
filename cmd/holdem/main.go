package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a poker hand from card tokens"`
	Deal     DealCmd          `cmd:"" help:"Deal a fresh 6-player hand and print its snapshot"`
	Replay   ReplayCmd        `cmd:"" help:"Replay a hand scenario file and print the results"`
	Simulate SimulateCmd      `cmd:"" help:"Deal and evaluate random hands concurrently"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("6-max No-Limit Texas Hold'em hand evaluator and betting engine"),
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
