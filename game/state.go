package game

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/kalebalebachew/holdem-engine/poker"
)

const (
	// NumPlayers is fixed: the engine models 6-max hands only
	NumPlayers = 6
	// BoardSize is the number of community cards in a full board
	BoardSize = 5

	DefaultSmallBlind = 20
	DefaultBigBlind   = 40
)

// Positions maps the dealer button and blinds to seats
type Positions struct {
	Dealer int `json:"dealer"`
	SB     int `json:"sb"`
	BB     int `json:"bb"`
}

func (p Positions) validate() error {
	for _, seat := range []int{p.Dealer, p.SB, p.BB} {
		if seat < 0 || seat >= NumPlayers {
			return inputErrorf("position seat %d out of range 0..%d", seat, NumPlayers-1)
		}
	}
	if p.Dealer == p.SB || p.Dealer == p.BB || p.SB == p.BB {
		return inputErrorf("dealer, sb and bb must be distinct seats")
	}
	return nil
}

// HistoryEntry is one applied action together with when it was applied
type HistoryEntry struct {
	Action Action    `json:"action"`
	At     time.Time `json:"at"`
}

// State holds everything about one hand: seats, the predetermined board,
// betting state, and the append-only action history. The board is fixed
// once the hand is dealt and merely revealed by the deal actions; this
// mirrors how a live hand works and keeps replays exact.
//
// A State is a single-writer resource. It does no internal locking; the
// caller must serialize action submission per hand.
type State struct {
	ID         string
	Players    [NumPlayers]*Player
	Positions  Positions
	Street     Street
	Pot        int
	Actor      int // seat to act, -1 when nobody can
	Betting    *BettingRound
	SmallBlind int
	BigBlind   int

	board         [BoardSize]poker.Card
	revealed      int // 0, 3, 4 or 5
	history       []HistoryEntry
	initialStacks [NumPlayers]int
	results       map[int]int
	clock         quartz.Clock
}

type handConfig struct {
	id         string
	smallBlind int
	bigBlind   int
	holeCards  *[NumPlayers][2]poker.Card
	board      *[BoardSize]poker.Card
	clock      quartz.Clock
}

// HandOption customizes hand construction
type HandOption func(*handConfig)

// WithID sets the hand identifier instead of generating one
func WithID(id string) HandOption {
	return func(c *handConfig) { c.id = id }
}

// WithBlinds overrides the default 20/40 blinds
func WithBlinds(smallBlind, bigBlind int) HandOption {
	return func(c *handConfig) {
		c.smallBlind = smallBlind
		c.bigBlind = bigBlind
	}
}

// WithHoleCards fixes every seat's hole cards instead of dealing them
func WithHoleCards(cards [NumPlayers][2]poker.Card) HandOption {
	return func(c *handConfig) { c.holeCards = &cards }
}

// WithBoard fixes the five board cards instead of dealing them
func WithBoard(board [BoardSize]poker.Card) HandOption {
	return func(c *handConfig) { c.board = &board }
}

// WithClock injects the clock used to timestamp history entries.
// Tests use a quartz mock for deterministic timestamps.
func WithClock(clock quartz.Clock) HandOption {
	return func(c *handConfig) { c.clock = clock }
}

// NewHand creates a hand: validates the setup, assigns hole and board
// cards, posts the blinds and sets the first actor. Cards not fixed via
// options are dealt from a freshly shuffled deck, so rng may only be nil
// when both hole cards and board are fixed.
//
// The deal follows live-table order: two cards to each seat, then
// burn-flop, burn-turn, burn-river. The full board is decided here and
// revealed progressively by the deal actions.
func NewHand(rng *rand.Rand, stacks [NumPlayers]int, positions Positions, opts ...HandOption) (*State, error) {
	cfg := handConfig{
		smallBlind: DefaultSmallBlind,
		bigBlind:   DefaultBigBlind,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}

	// Every seat needs chips to play; a chipless seat could never
	// contribute to any pot it might win.
	for seat, stack := range stacks {
		if stack <= 0 {
			return nil, inputErrorf("seat %d has non-positive stack %d", seat, stack)
		}
	}
	if err := positions.validate(); err != nil {
		return nil, err
	}
	if cfg.smallBlind <= 0 || cfg.bigBlind <= 0 || cfg.bigBlind < cfg.smallBlind {
		return nil, inputErrorf("invalid blinds %d/%d", cfg.smallBlind, cfg.bigBlind)
	}

	s := &State{
		ID:         cfg.id,
		Positions:  positions,
		Street:     Preflop,
		Betting:    newBettingRound(cfg.bigBlind),
		SmallBlind: cfg.smallBlind,
		BigBlind:   cfg.bigBlind,
		clock:      cfg.clock,
	}
	for seat := range s.Players {
		s.Players[seat] = &Player{
			Seat:  seat,
			Stack: stacks[seat],
		}
		s.initialStacks[seat] = stacks[seat]
	}

	if err := s.assignCards(rng, cfg.holeCards, cfg.board); err != nil {
		return nil, err
	}

	s.postBlinds()
	s.Actor = s.nextToAct(positions.BB + 1)
	if s.Betting.closed(&s.Players, s.Street, positions.BB) {
		s.Actor = -1
	}

	return s, nil
}

// assignCards gives every seat its hole cards and fixes the board. Fixed
// cards are checked for duplicates; dealt cards avoid all cards already
// assigned, so no card ever appears twice in a hand.
func (s *State) assignCards(rng *rand.Rand, holes *[NumPlayers][2]poker.Card, board *[BoardSize]poker.Card) error {
	used := make(map[poker.Card]bool, 2*NumPlayers+BoardSize)
	take := func(c poker.Card) error {
		if used[c] {
			return inputErrorf("duplicate card %s", c)
		}
		used[c] = true
		return nil
	}

	if holes != nil {
		for _, pair := range holes {
			for _, c := range pair {
				if err := take(c); err != nil {
					return err
				}
			}
		}
	}
	if board != nil {
		for _, c := range board {
			if err := take(c); err != nil {
				return err
			}
		}
	}

	var deck *poker.Deck
	if holes == nil || board == nil {
		if rng == nil {
			return inputErrorf("rng is required unless all cards are fixed")
		}
		var err error
		deck, err = poker.NewDeck()
		if err != nil {
			return err
		}
		deck.Shuffle(rng)
	}

	// draw deals the next card not already assigned elsewhere
	draw := func() (poker.Card, error) {
		for {
			c, err := deck.DealOne()
			if err != nil {
				return poker.Card{}, err
			}
			if !used[c] {
				used[c] = true
				return c, nil
			}
		}
	}

	if holes != nil {
		for seat := range s.Players {
			s.Players[seat].HoleCards = holes[seat]
		}
	} else {
		for seat := range s.Players {
			for i := 0; i < 2; i++ {
				c, err := draw()
				if err != nil {
					return err
				}
				s.Players[seat].HoleCards[i] = c
			}
		}
	}

	if board != nil {
		s.board = *board
	} else {
		for i := 0; i < BoardSize; i++ {
			// burn before the flop and before each later street card
			if i == 0 || i == 3 || i == 4 {
				if _, err := draw(); err != nil {
					return err
				}
			}
			c, err := draw()
			if err != nil {
				return err
			}
			s.board[i] = c
		}
	}

	return nil
}

// postBlinds puts the forced bets in. Short stacks post what they can;
// the bet level is the full big blind either way.
func (s *State) postBlinds() {
	for _, post := range []struct {
		seat, amount int
	}{
		{s.Positions.SB, s.SmallBlind},
		{s.Positions.BB, s.BigBlind},
	} {
		s.Pot += s.Players[post.seat].contribute(post.amount)
	}
	s.Betting.CurrentBet = s.BigBlind
}

// nextToAct returns the first seat at or after from (wrapping) that can
// still act, or -1 when nobody can.
func (s *State) nextToAct(from int) int {
	for i := 0; i < NumPlayers; i++ {
		seat := (from + i) % NumPlayers
		if s.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

// liveCount returns the number of players who have not folded
func (s *State) liveCount() int {
	live := 0
	for _, p := range s.Players {
		if p.Live() {
			live++
		}
	}
	return live
}

// Board returns the revealed community cards
func (s *State) Board() []poker.Card {
	board := make([]poker.Card, s.revealed)
	copy(board, s.board[:s.revealed])
	return board
}

// FullBoard returns all five predetermined board cards
func (s *State) FullBoard() [BoardSize]poker.Card {
	return s.board
}

// History returns the append-only action log. It is the sole
// authoritative record for replaying the hand.
func (s *State) History() []HistoryEntry {
	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	return history
}

// InitialStacks returns the stack snapshot taken at hand creation
func (s *State) InitialStacks() [NumPlayers]int {
	return s.initialStacks
}

// Results returns each seat's net chip result (final stack minus initial
// stack), or nil while the hand is still running. The values sum to zero.
func (s *State) Results() map[int]int {
	if s.results == nil {
		return nil
	}
	results := make(map[int]int, len(s.results))
	for seat, net := range s.results {
		results[seat] = net
	}
	return results
}

func (s *State) computeResults() map[int]int {
	results := make(map[int]int, NumPlayers)
	for seat, p := range s.Players {
		results[seat] = p.Stack - s.initialStacks[seat]
	}
	return results
}

// checkConservation verifies the chip-conservation invariant after
// settlement. A violation is a defect in pot bookkeeping, not bad input.
func (s *State) checkConservation() error {
	total := 0
	for seat, p := range s.Players {
		total += p.Stack - s.initialStacks[seat]
	}
	if total != 0 {
		return fmt.Errorf("internal: settlement not zero-sum (off by %d)", total)
	}
	return nil
}
