package game

import (
	"github.com/kalebalebachew/holdem-engine/poker"
)

// Snapshot is the collaborator-facing shape of a hand, used by response
// and persistence shims. Cards are encoded as two-character tokens and the
// stacks are the hand's initial stacks, so a snapshot plus its action list
// is sufficient to replay the hand exactly.
type Snapshot struct {
	ID          string           `json:"id"`
	Stacks      [NumPlayers]int  `json:"stacks"`
	Positions   Positions        `json:"positions"`
	PlayerCards map[int][]string `json:"player_cards"`
	BoardCards  []string         `json:"board_cards"`
	Actions     []Action         `json:"actions"`
	Results     map[int]int      `json:"results,omitempty"`
	SmallBlind  int              `json:"small_blind,omitempty"`
	BigBlind    int              `json:"big_blind,omitempty"`
}

// Snapshot captures the hand's replayable state. Results are present only
// once the hand has settled.
func (s *State) Snapshot() Snapshot {
	playerCards := make(map[int][]string, NumPlayers)
	for seat, p := range s.Players {
		playerCards[seat] = []string{p.HoleCards[0].String(), p.HoleCards[1].String()}
	}

	actions := make([]Action, len(s.history))
	for i, entry := range s.history {
		actions[i] = entry.Action
	}

	return Snapshot{
		ID:          s.ID,
		Stacks:      s.initialStacks,
		Positions:   s.Positions,
		PlayerCards: playerCards,
		BoardCards:  poker.FormatCards(s.board[:]),
		Actions:     actions,
		Results:     s.Results(),
		SmallBlind:  s.SmallBlind,
		BigBlind:    s.BigBlind,
	}
}
