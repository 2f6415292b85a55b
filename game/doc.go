// Package game implements the betting engine for 6-max No-Limit Texas
// Hold'em hands.
//
// The main type is State, which owns one hand: six seats, the
// predetermined board, the pot, the betting round and the append-only
// action history. Actions (player decisions and street deals alike) are
// validated by Validate and applied by Apply; an illegal action is
// rejected with a StateError and never mutates the hand.
//
// # Basic Usage
//
// Create a hand with a seeded RNG and feed it actions:
//
//	rng := randutil.New(42)
//	s, err := game.NewHand(rng, stacks, game.Positions{Dealer: 0, SB: 1, BB: 2})
//	err = s.Apply(game.NewCall(3))
//	...
//	err = s.Apply(game.NewDealFlop())
//
// The hand finishes on its own: a fold leaving one live player awards the
// pot uncontested, and the river round closing triggers showdown
// settlement. Results reports each seat's net chip result afterwards.
//
// # Deterministic Replay
//
// Snapshot captures everything needed to replay a hand; Replayer rebuilds
// the state and reapplies the recorded actions, producing identical
// results every time. Tests fix hole and board cards directly with the
// WithHoleCards and WithBoard options.
//
// # Architecture
//
// State delegates to specialized components:
//   - BettingRound: per-street bet level, min-raise and acted tracking
//   - Validate: the single source of truth for action legality
//   - buildPots / settleShowdown: layered side pots and payouts
//   - poker.Evaluate: hand strength at showdown
//
// A State has no internal locking; callers must guarantee at most one
// in-flight mutation per hand.
package game
