package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalebalebachew/holdem-engine/poker"
)

func mustCard(t *testing.T, token string) poker.Card {
	t.Helper()
	card, err := poker.ParseCard(token)
	require.NoError(t, err)
	return card
}

func holePairs(t *testing.T, tokens ...string) [NumPlayers][2]poker.Card {
	t.Helper()
	require.Len(t, tokens, 2*NumPlayers)

	var holes [NumPlayers][2]poker.Card
	for seat := 0; seat < NumPlayers; seat++ {
		holes[seat][0] = mustCard(t, tokens[2*seat])
		holes[seat][1] = mustCard(t, tokens[2*seat+1])
	}
	return holes
}

func boardCards(t *testing.T, tokens ...string) [BoardSize]poker.Card {
	t.Helper()
	require.Len(t, tokens, BoardSize)

	var board [BoardSize]poker.Card
	for i, token := range tokens {
		board[i] = mustCard(t, token)
	}
	return board
}

// testHoles gives seat 2 pocket queens and seat 3 pocket nines; on
// testBoard both make a full house and the queens win.
func testHoles(t *testing.T) [NumPlayers][2]poker.Card {
	t.Helper()
	return holePairs(t,
		"As", "Kd", // seat 0
		"2c", "7d", // seat 1
		"Qh", "Qs", // seat 2
		"9c", "9d", // seat 3
		"5h", "6h", // seat 4
		"Jc", "Ts", // seat 5
	)
}

func testBoard(t *testing.T) [BoardSize]poker.Card {
	t.Helper()
	return boardCards(t, "Qd", "9h", "2h", "5s", "5d")
}

// newTestHand builds a hand with fixed cards, 1000 chip stacks and the
// dealer on seat 0, so the small blind is seat 1 and the big blind seat 2.
func newTestHand(t *testing.T, opts ...HandOption) *State {
	t.Helper()

	stacks := [NumPlayers]int{1000, 1000, 1000, 1000, 1000, 1000}
	return newTestHandStacks(t, stacks, opts...)
}

func newTestHandStacks(t *testing.T, stacks [NumPlayers]int, opts ...HandOption) *State {
	t.Helper()

	handOpts := append([]HandOption{
		WithHoleCards(testHoles(t)),
		WithBoard(testBoard(t)),
	}, opts...)

	state, err := NewHand(nil, stacks, Positions{Dealer: 0, SB: 1, BB: 2}, handOpts...)
	require.NoError(t, err)
	return state
}

func apply(t *testing.T, s *State, actions ...Action) {
	t.Helper()
	for i, a := range actions {
		require.NoError(t, s.Apply(a), "action %d: %s", i, a)
	}
}
