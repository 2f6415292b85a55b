package game

import (
	"fmt"
	"sort"

	"github.com/kalebalebachew/holdem-engine/poker"
)

// Pot is one layer of the pot: its chips and the seats that can win it.
// Without all-ins there is a single layer holding everything.
type Pot struct {
	Amount   int
	Eligible []int
}

// buildPots partitions the total contributions into layered side pots.
// Each all-in level caps a layer; folded players' chips stay in the layers
// they reached but folded seats are never eligible.
func (s *State) buildPots() []Pot {
	levels := make(map[int]bool)
	for _, p := range s.Players {
		if p.Live() && p.AllIn && p.TotalBet > 0 {
			levels[p.TotalBet] = true
		}
	}

	if len(levels) == 0 {
		// Eligibility requires a contribution, same as the layered path.
		eligible := make([]int, 0, NumPlayers)
		for seat, p := range s.Players {
			if p.Live() && p.TotalBet > 0 {
				eligible = append(eligible, seat)
			}
		}
		return []Pot{{Amount: s.Pot, Eligible: eligible}}
	}

	caps := make([]int, 0, len(levels))
	for level := range levels {
		caps = append(caps, level)
	}
	sort.Ints(caps)

	const uncapped = -1

	var pots []Pot
	prev := 0
	layer := func(limit int) {
		pot := Pot{}
		for seat, p := range s.Players {
			contribution := p.TotalBet - prev
			if contribution <= 0 {
				continue
			}
			if limit != uncapped && contribution > limit-prev {
				contribution = limit - prev
			}
			pot.Amount += contribution
			if p.Live() {
				pot.Eligible = append(pot.Eligible, seat)
			}
		}
		if pot.Amount > 0 && len(pot.Eligible) > 0 {
			pots = append(pots, pot)
		}
		if limit != uncapped {
			prev = limit
		}
	}

	for _, limit := range caps {
		layer(limit)
	}
	layer(uncapped) // whatever exceeds the largest all-in

	return pots
}

// settleShowdown evaluates every live player's best hand from hole cards
// plus the full board, resolves each pot layer independently among its
// eligible seats, and finishes the hand with per-seat net results.
func (s *State) settleShowdown() error {
	s.Street = Showdown
	s.Actor = -1

	board := s.board[:]
	ranks := make(map[int]poker.HandRank, NumPlayers)
	for seat, p := range s.Players {
		if !p.Live() {
			continue
		}
		cards := append([]poker.Card{p.HoleCards[0], p.HoleCards[1]}, board...)
		rank, err := poker.Evaluate(cards)
		if err != nil {
			return fmt.Errorf("internal: seat %d hand evaluation: %w", seat, err)
		}
		ranks[seat] = rank
	}

	for _, pot := range s.buildPots() {
		s.awardPot(pot, ranks)
	}

	s.Street = Complete
	s.results = s.computeResults()
	return s.checkConservation()
}

// awardPot splits one pot layer among the eligible seats holding the best
// hand. Odd chips left by integer division go to the earliest winning
// seat(s) after the dealer, which keeps settlement deterministic.
func (s *State) awardPot(pot Pot, ranks map[int]poker.HandRank) {
	winners := make([]int, 0, len(pot.Eligible))
	for _, seat := range pot.Eligible {
		if len(winners) == 0 {
			winners = append(winners, seat)
			continue
		}
		switch cmp := ranks[seat].Compare(ranks[winners[0]]); {
		case cmp > 0:
			winners = winners[:0]
			winners = append(winners, seat)
		case cmp == 0:
			winners = append(winners, seat)
		}
	}
	if len(winners) == 0 {
		return
	}

	sort.Slice(winners, func(i, j int) bool {
		return s.seatOrder(winners[i]) < s.seatOrder(winners[j])
	})

	share := pot.Amount / len(winners)
	remainder := pot.Amount % len(winners)
	for i, seat := range winners {
		s.Players[seat].Stack += share
		if i < remainder {
			s.Players[seat].Stack++
		}
	}
}

// seatOrder ranks seats by distance after the dealer button
func (s *State) seatOrder(seat int) int {
	return (seat - s.Positions.Dealer - 1 + NumPlayers) % NumPlayers
}
