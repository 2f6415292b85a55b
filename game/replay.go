package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/kalebalebachew/holdem-engine/poker"
)

// Replayer reconstructs a hand from a snapshot and runs its recorded
// actions back in submission order. Replaying the same snapshot is
// deterministic: it always produces identical final stacks and results.
type Replayer struct {
	logger *log.Logger
}

// NewReplayer creates a replayer logging each step to the given logger
func NewReplayer(logger *log.Logger) *Replayer {
	return &Replayer{logger: logger}
}

// Replay builds a hand from the snapshot's stacks, positions and cards,
// then applies every recorded action. It returns the resulting state; an
// action that fails to apply aborts the replay with its index.
func (r *Replayer) Replay(snap Snapshot, opts ...HandOption) (*State, error) {
	var holes [NumPlayers][2]poker.Card
	for seat := 0; seat < NumPlayers; seat++ {
		tokens, ok := snap.PlayerCards[seat]
		if !ok || len(tokens) != 2 {
			return nil, inputErrorf("seat %d must have exactly 2 hole cards", seat)
		}
		for i, token := range tokens {
			card, err := poker.ParseCard(token)
			if err != nil {
				return nil, &InputError{Reason: err.Error()}
			}
			holes[seat][i] = card
		}
	}

	if len(snap.BoardCards) != BoardSize {
		return nil, inputErrorf("snapshot must carry all %d board cards, got %d", BoardSize, len(snap.BoardCards))
	}
	var board [BoardSize]poker.Card
	for i, token := range snap.BoardCards {
		card, err := poker.ParseCard(token)
		if err != nil {
			return nil, &InputError{Reason: err.Error()}
		}
		board[i] = card
	}

	smallBlind, bigBlind := snap.SmallBlind, snap.BigBlind
	if smallBlind == 0 && bigBlind == 0 {
		smallBlind, bigBlind = DefaultSmallBlind, DefaultBigBlind
	}

	handOpts := append([]HandOption{
		WithID(snap.ID),
		WithHoleCards(holes),
		WithBoard(board),
		WithBlinds(smallBlind, bigBlind),
	}, opts...)

	state, err := NewHand(nil, snap.Stacks, snap.Positions, handOpts...)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("replaying hand", "id", state.ID, "actions", len(snap.Actions))

	for i, action := range snap.Actions {
		if err := state.Apply(action); err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, action, err)
		}
		r.logger.Debug("applied action",
			"index", i,
			"action", action.String(),
			"street", state.Street.String(),
			"pot", state.Pot,
		)
	}

	if results := state.Results(); results != nil {
		r.logger.Info("hand settled", "id", state.ID, "pot", state.Pot, "results", results)
	}

	return state, nil
}
