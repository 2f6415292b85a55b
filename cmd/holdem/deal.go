package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kalebalebachew/holdem-engine/game"
	"github.com/kalebalebachew/holdem-engine/internal/randutil"
)

// DealCmd creates a fresh hand with shuffled cards and prints the
// snapshot a collaborator would persist.
type DealCmd struct {
	Seed  int64  `default:"0" help:"RNG seed (0 uses the current time)"`
	Stack int    `default:"1000" help:"Starting stack for every seat"`
	ID    string `help:"Hand ID (defaults to a generated UUID)"`
	JSON  bool   `help:"Print the raw snapshot JSON only"`
}

func (c *DealCmd) Run() error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var stacks [game.NumPlayers]int
	for i := range stacks {
		stacks[i] = c.Stack
	}

	state, err := game.NewHand(
		randutil.New(seed),
		stacks,
		game.Positions{Dealer: 0, SB: 1, BB: 2},
		game.WithID(c.ID),
	)
	if err != nil {
		return err
	}

	snap := state.Snapshot()
	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(snap)
	}

	fmt.Println(headerStyle.Render("hand " + snap.ID))
	fmt.Printf("seed:  %d\n", seed)
	board := state.FullBoard()
	fmt.Printf("board: %s\n", renderCards(board[:]))
	for seat := 0; seat < game.NumPlayers; seat++ {
		p := state.Players[seat]
		fmt.Printf("seat %d: %s  stack %d%s\n",
			seat,
			renderCards(p.HoleCards[:]),
			p.Stack,
			positionTag(snap.Positions, seat),
		)
	}
	return nil
}

func positionTag(pos game.Positions, seat int) string {
	switch seat {
	case pos.Dealer:
		return infoStyle.Render("  (dealer)")
	case pos.SB:
		return infoStyle.Render("  (sb)")
	case pos.BB:
		return infoStyle.Render("  (bb)")
	default:
		return ""
	}
}
