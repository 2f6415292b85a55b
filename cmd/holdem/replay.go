package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/kalebalebachew/holdem-engine/game"
	"github.com/kalebalebachew/holdem-engine/internal/scenario"
)

// ReplayCmd runs a scenario file through the engine and reports the
// per-seat results.
type ReplayCmd struct {
	Path  string `arg:"" help:"Scenario HCL file"`
	Debug bool   `help:"Log every applied action"`
	Dump  bool   `help:"Dump the full final state"`
}

func (c *ReplayCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	scn, err := scenario.Load(c.Path)
	if err != nil {
		return err
	}

	state, err := scn.BuildHand()
	if err != nil {
		return err
	}
	actions, err := scn.GameActions()
	if err != nil {
		return err
	}

	snap := state.Snapshot()
	snap.Actions = actions

	final, err := game.NewReplayer(logger).Replay(snap)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("hand " + final.ID))
	fmt.Printf("street: %s  pot: %d\n", final.Street, final.Pot)

	results := final.Results()
	if results == nil {
		fmt.Println(infoStyle.Render("hand still running, no results yet"))
	} else {
		for seat := 0; seat < game.NumPlayers; seat++ {
			fmt.Printf("seat %d: %s\n", seat, renderNet(results[seat]))
		}
	}

	if c.Dump {
		litter.Dump(final.Snapshot())
	}
	return nil
}
