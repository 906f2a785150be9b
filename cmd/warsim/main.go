package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Simulate SimulateCmd `cmd:"" default:"withargs" help:"Simulate a batch of games and report statistics"`
	Play     PlayCmd     `cmd:"" help:"Play a single game with a turn-by-turn trace"`
	Version  VersionCmd  `cmd:"" help:"Show version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("warsim"),
		kong.Description("Statistical simulator for the card game War"),
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
