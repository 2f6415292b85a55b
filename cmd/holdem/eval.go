package main

import (
	"fmt"

	"github.com/kalebalebachew/holdem-engine/poker"
)

// EvalCmd evaluates a single hand of 5 to 7 card tokens
type EvalCmd struct {
	Cards []string `arg:"" name:"cards" help:"5 to 7 card tokens, e.g. As Ks Qs Js Ts"`
}

func (c *EvalCmd) Run() error {
	rank, err := poker.EvaluateTokens(c.Cards)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (rank %d)", rank.Category, rank.Category)))
	fmt.Printf("best five: %s\n", renderCards(rank.Best5))
	fmt.Printf("tiebreak:  %v\n", rank.Tiebreak)
	return nil
}
