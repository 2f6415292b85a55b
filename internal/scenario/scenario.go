// Package scenario loads hand scenarios from HCL files. A scenario fixes
// everything a hand needs (stacks, blinds, positions, optionally the
// exact cards) plus an ordered action list, and is the input format for
// the replay command and for integration tests.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/kalebalebachew/holdem-engine/game"
	"github.com/kalebalebachew/holdem-engine/internal/randutil"
	"github.com/kalebalebachew/holdem-engine/poker"
)

// Scenario is the top-level HCL document
type Scenario struct {
	Game    GameConfig     `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Actions []ActionConfig `hcl:"action,block"`
}

// GameConfig configures the hand itself
type GameConfig struct {
	ID         string   `hcl:"id,optional"`
	Seed       int64    `hcl:"seed,optional"`
	SmallBlind int      `hcl:"small_blind,optional"`
	BigBlind   int      `hcl:"big_blind,optional"`
	Stacks     []int    `hcl:"stacks,optional"`
	Dealer     int      `hcl:"dealer,optional"`
	Board      []string `hcl:"board,optional"`
}

// PlayerConfig fixes one seat's hole cards, e.g. player "0" { cards = ["As", "Kd"] }
type PlayerConfig struct {
	Seat  string   `hcl:"seat,label"`
	Cards []string `hcl:"cards"`
}

// ActionConfig is one step of the hand, e.g. action "raise" { player = 3, amount = 120 }
type ActionConfig struct {
	Type   string `hcl:"type,label"`
	Player int    `hcl:"player,optional"`
	Amount int    `hcl:"amount,optional"`
}

// Load parses and validates a scenario file, applying defaults for
// anything the file leaves out.
func Load(filename string) (*Scenario, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("scenario file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario: %s", diags.Error())
	}

	var s Scenario
	if diags = gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario: %s", diags.Error())
	}

	s.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Game.SmallBlind == 0 {
		s.Game.SmallBlind = game.DefaultSmallBlind
	}
	if s.Game.BigBlind == 0 {
		s.Game.BigBlind = game.DefaultBigBlind
	}
	if len(s.Game.Stacks) == 0 {
		s.Game.Stacks = make([]int, game.NumPlayers)
		for i := range s.Game.Stacks {
			s.Game.Stacks[i] = 1000
		}
	}
}

func (s *Scenario) validate() error {
	if len(s.Game.Stacks) != game.NumPlayers {
		return fmt.Errorf("stacks must list %d entries, got %d", game.NumPlayers, len(s.Game.Stacks))
	}
	if s.Game.Dealer < 0 || s.Game.Dealer >= game.NumPlayers {
		return fmt.Errorf("dealer seat %d out of range", s.Game.Dealer)
	}
	if n := len(s.Game.Board); n != 0 && n != game.BoardSize {
		return fmt.Errorf("board must list %d cards when present, got %d", game.BoardSize, n)
	}
	if n := len(s.Players); n != 0 && n != game.NumPlayers {
		return fmt.Errorf("either no player blocks or all %d, got %d", game.NumPlayers, n)
	}
	if s.Game.Seed == 0 && (len(s.Players) == 0 || len(s.Game.Board) == 0) {
		return fmt.Errorf("a seed is required unless both hole cards and board are fixed")
	}
	for _, p := range s.Players {
		if len(p.Cards) != 2 {
			return fmt.Errorf("player %q must list exactly 2 cards", p.Seat)
		}
	}
	for _, a := range s.Actions {
		if _, err := game.ParseActionType(a.Type); err != nil {
			return fmt.Errorf("action %q: %w", a.Type, err)
		}
	}
	return nil
}

// Positions derives blinds from the dealer seat the way a live table does
func (s *Scenario) Positions() game.Positions {
	return game.Positions{
		Dealer: s.Game.Dealer,
		SB:     (s.Game.Dealer + 1) % game.NumPlayers,
		BB:     (s.Game.Dealer + 2) % game.NumPlayers,
	}
}

// BuildHand constructs the hand the scenario describes
func (s *Scenario) BuildHand(opts ...game.HandOption) (*game.State, error) {
	var stacks [game.NumPlayers]int
	copy(stacks[:], s.Game.Stacks)

	handOpts := []game.HandOption{
		game.WithID(s.Game.ID),
		game.WithBlinds(s.Game.SmallBlind, s.Game.BigBlind),
	}

	if len(s.Players) > 0 {
		var holes [game.NumPlayers][2]poker.Card
		assigned := make([]bool, game.NumPlayers)
		for _, pc := range s.Players {
			seat, err := seatIndex(pc.Seat)
			if err != nil {
				return nil, err
			}
			if assigned[seat] {
				return nil, fmt.Errorf("player %q listed twice", pc.Seat)
			}
			assigned[seat] = true
			for i, token := range pc.Cards {
				card, err := poker.ParseCard(token)
				if err != nil {
					return nil, err
				}
				holes[seat][i] = card
			}
		}
		handOpts = append(handOpts, game.WithHoleCards(holes))
	}

	if len(s.Game.Board) > 0 {
		var board [game.BoardSize]poker.Card
		for i, token := range s.Game.Board {
			card, err := poker.ParseCard(token)
			if err != nil {
				return nil, err
			}
			board[i] = card
		}
		handOpts = append(handOpts, game.WithBoard(board))
	}

	handOpts = append(handOpts, opts...)
	return game.NewHand(randutil.New(s.Game.Seed), stacks, s.Positions(), handOpts...)
}

// GameActions converts the action blocks into engine actions
func (s *Scenario) GameActions() ([]game.Action, error) {
	actions := make([]game.Action, len(s.Actions))
	for i, a := range s.Actions {
		t, err := game.ParseActionType(a.Type)
		if err != nil {
			return nil, err
		}
		actions[i] = game.Action{Type: t, Player: a.Player, Amount: a.Amount}
	}
	return actions, nil
}

func seatIndex(label string) (int, error) {
	if len(label) != 1 || label[0] < '0' || label[0] > '5' {
		return 0, fmt.Errorf("player label %q must be a seat 0..5", label)
	}
	return int(label[0] - '0'), nil
}
