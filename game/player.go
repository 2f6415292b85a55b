package game

import "github.com/kalebalebachew/holdem-engine/poker"

// Player represents one of the six seats in a hand
type Player struct {
	Seat      int
	Stack     int
	HoleCards [2]poker.Card
	Folded    bool
	AllIn     bool
	StreetBet int // chips contributed this street
	TotalBet  int // chips contributed this hand
}

// Live returns true if the player has not folded
func (p *Player) Live() bool {
	return !p.Folded
}

// CanAct returns true if the player may still take actions
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// contribute moves up to amount chips from the stack into the current
// street's bet, flipping AllIn when the stack empties. Returns the amount
// actually moved.
func (p *Player) contribute(amount int) int {
	if amount > p.Stack {
		amount = p.Stack
	}
	p.Stack -= amount
	p.StreetBet += amount
	p.TotalBet += amount
	if p.Stack == 0 {
		p.AllIn = true
	}
	return amount
}
