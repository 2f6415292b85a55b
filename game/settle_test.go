package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidePotsLayerByAllInLevel(t *testing.T) {
	stacks := [NumPlayers]int{1000, 1000, 1000, 100, 1000, 1000}
	holes := holePairs(t,
		"Ks", "Kh", // seat 0, wins the side pot
		"2c", "7d", // seat 1
		"Qs", "Qd", // seat 2
		"As", "Ad", // seat 3, all-in, wins the main pot
		"3c", "8d", // seat 4
		"4c", "6s", // seat 5
	)
	board := boardCards(t, "2h", "7c", "9d", "Jh", "3s")

	s, err := NewHand(nil, stacks, Positions{Dealer: 0, SB: 1, BB: 2},
		WithHoleCards(holes), WithBoard(board))
	require.NoError(t, err)

	apply(t, s,
		NewAllIn(3), NewFold(4), NewFold(5), NewCall(0), NewFold(1), NewCall(2),
		NewDealFlop(),
		NewCheck(2), NewCheck(0),
		NewDealTurn(),
		NewBet(2, 200), NewCall(0),
		NewDealRiver(),
		NewCheck(2), NewCheck(0),
	)

	require.Equal(t, Complete, s.Street)

	// Main pot: 100 from each of seats 0, 2, 3 plus the dead small blind.
	// The aces can only win that layer; the kings take the 400 side pot.
	assert.Equal(t, map[int]int{0: 100, 1: -20, 2: -300, 3: 220, 4: 0, 5: 0}, s.Results())
}

func TestSplitPotOddChipGoesToEarliestAfterDealer(t *testing.T) {
	holes := holePairs(t,
		"7s", "8s", // seat 0
		"Ah", "Kh", // seat 1
		"Ad", "Kd", // seat 2
		"2c", "2d", // seat 3
		"6d", "9h", // seat 4
		"4h", "7c", // seat 5
	)
	board := boardCards(t, "Qs", "Js", "Tc", "8c", "3h")

	stacks := [NumPlayers]int{1000, 1000, 1000, 1000, 1000, 1000}
	s, err := NewHand(nil, stacks, Positions{Dealer: 0, SB: 1, BB: 2},
		WithHoleCards(holes), WithBoard(board))
	require.NoError(t, err)

	apply(t, s,
		NewCall(3), NewFold(4), NewFold(5), NewFold(0), NewCall(1), NewCheck(2),
		NewDealFlop(),
		NewBet(1, 25), NewCall(2), NewCall(3),
		NewDealTurn(),
		NewCheck(1), NewCheck(2), NewCheck(3),
		NewDealRiver(),
		NewCheck(1), NewCheck(2), NewCheck(3),
	)

	require.Equal(t, Complete, s.Street)

	// Seats 1 and 2 split a 195 chip pot with identical broadway
	// straights; the odd chip goes to seat 1, closest after the button.
	assert.Equal(t, map[int]int{0: 0, 1: 33, 2: 32, 3: -65, 4: 0, 5: 0}, s.Results())
}

func TestShortAllInRaiseDoesNotReopen(t *testing.T) {
	stacks := [NumPlayers]int{1000, 1000, 1000, 1000, 60, 1000}
	s := newTestHandStacks(t, stacks)

	apply(t, s, NewCall(3))

	// Seat 4's 60 chip all-in is less than a full raise over the big
	// blind. It moves the bet level without resetting the minimum raise.
	apply(t, s, NewAllIn(4))
	assert.Equal(t, 60, s.Betting.CurrentBet)
	assert.Equal(t, 40, s.Betting.MinRaise)

	apply(t, s, NewFold(5), NewCall(0), NewFold(1), NewCall(2))

	// Seat 3 called 40 before the all-in and still owes 20.
	require.Equal(t, 3, s.Actor)
	apply(t, s, NewCall(3))
	require.NoError(t, s.Apply(NewDealFlop()))

	apply(t, s,
		NewCheck(2), NewCheck(3), NewCheck(0),
		NewDealTurn(),
		NewCheck(2), NewCheck(3), NewCheck(0),
		NewDealRiver(),
		NewCheck(2), NewCheck(3), NewCheck(0),
	)

	// Queens full of fives scoops the single 60-capped pot.
	require.Equal(t, Complete, s.Street)
	assert.Equal(t, map[int]int{0: -60, 1: -20, 2: 200, 3: -60, 4: -60, 5: 0}, s.Results())
}

func TestAllInShowdownRunsOutRemainingStreets(t *testing.T) {
	stacks := [NumPlayers]int{1000, 1000, 1000, 1000, 1000, 1000}
	s := newTestHandStacks(t, stacks)

	// Everyone folds to seat 2 except seat 3; both get all the chips in
	// preflop, so every later street deals with nobody to act.
	apply(t, s,
		NewAllIn(3), NewFold(4), NewFold(5), NewFold(0), NewFold(1), NewAllIn(2),
	)

	require.Equal(t, -1, s.Actor)
	apply(t, s, NewDealFlop())
	require.Equal(t, -1, s.Actor)
	apply(t, s, NewDealTurn(), NewDealRiver())

	// Dealing the river with betting impossible settles immediately.
	require.Equal(t, Complete, s.Street)
	assert.Equal(t, map[int]int{0: 0, 1: -20, 2: 1020, 3: -1000, 4: 0, 5: 0}, s.Results())
}

func TestBuildPotsSinglePotWithoutAllIns(t *testing.T) {
	s := newTestHand(t)
	apply(t, s, NewCall(3), NewFold(4), NewFold(5), NewCall(0), NewCall(1), NewCheck(2))

	pots := s.buildPots()
	require.Len(t, pots, 1)
	assert.Equal(t, 160, pots[0].Amount)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, pots[0].Eligible)
}
