package game

import (
	"encoding/json"
	"fmt"
)

// Street represents the phase of a hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	Complete
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "complete"}[s]
}

// ActionType is the closed set of actions a hand understands: the six
// player actions plus the three street deals. Untyped action records are
// deliberately not supported; the validator checks the per-variant
// required fields once at the boundary.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
	DealFlop
	DealTurn
	DealRiver
)

var actionTypeNames = [...]string{
	"fold", "check", "call", "bet", "raise", "allin",
	"deal_flop", "deal_turn", "deal_river",
}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionTypeNames) {
		return "unknown"
	}
	return actionTypeNames[t]
}

// IsDeal returns true for the street-advance actions
func (t ActionType) IsDeal() bool {
	return t == DealFlop || t == DealTurn || t == DealRiver
}

// ParseActionType parses the wire name of an action type
func ParseActionType(name string) (ActionType, error) {
	for i, n := range actionTypeNames {
		if n == name {
			return ActionType(i), nil
		}
	}
	return 0, inputErrorf("unknown action type %q", name)
}

// MarshalJSON encodes the action type as its wire name
func (t ActionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an action type from its wire name
func (t *ActionType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseActionType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Action is a single entry in a hand's action history. Player is the
// 0-based acting seat for player actions and ignored for deals; Amount is
// the street contribution level for Bet and Raise and must be zero for
// everything else.
type Action struct {
	Type   ActionType `json:"type"`
	Player int        `json:"player"`
	Amount int        `json:"amount,omitempty"`
}

func (a Action) String() string {
	if a.Type.IsDeal() {
		return a.Type.String()
	}
	if a.Amount > 0 {
		return fmt.Sprintf("%s(player=%d amount=%d)", a.Type, a.Player, a.Amount)
	}
	return fmt.Sprintf("%s(player=%d)", a.Type, a.Player)
}

// Constructors for each action variant.

func NewFold(player int) Action  { return Action{Type: Fold, Player: player} }
func NewCheck(player int) Action { return Action{Type: Check, Player: player} }
func NewCall(player int) Action  { return Action{Type: Call, Player: player} }
func NewAllIn(player int) Action { return Action{Type: AllIn, Player: player} }
func NewDealFlop() Action        { return Action{Type: DealFlop} }
func NewDealTurn() Action        { return Action{Type: DealTurn} }
func NewDealRiver() Action       { return Action{Type: DealRiver} }

func NewBet(player, amount int) Action {
	return Action{Type: Bet, Player: player, Amount: amount}
}

func NewRaise(player, amount int) Action {
	return Action{Type: Raise, Player: player, Amount: amount}
}
