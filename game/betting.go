package game

// BettingRound tracks the betting state for one street: the level every
// live player must match, the minimum raise increment, and who still has
// to act since the last aggression.
type BettingRound struct {
	CurrentBet int  // highest street contribution so far
	MinRaise   int  // size of the last bet or raise, big blind before one exists
	LastRaiser int  // seat of the last aggressor, -1 when none
	BBActed    bool // big blind has used its preflop option
	Acted      [NumPlayers]bool
	bigBlind   int
}

func newBettingRound(bigBlind int) *BettingRound {
	return &BettingRound{
		MinRaise:   bigBlind,
		LastRaiser: -1,
		bigBlind:   bigBlind,
	}
}

// resetForStreet clears the round for a freshly dealt street. The big
// blind option only matters preflop, so BBActed is left alone.
func (br *BettingRound) resetForStreet() {
	br.CurrentBet = 0
	br.MinRaise = br.bigBlind
	br.LastRaiser = -1
	br.Acted = [NumPlayers]bool{}
}

// MarkActed records that a seat has acted since the last aggression
func (br *BettingRound) MarkActed(seat int) {
	if seat >= 0 && seat < NumPlayers {
		br.Acted[seat] = true
	}
}

// reopen clears acted flags after a full raise so every other live player
// gets to act again. Short all-in raises do not call this.
func (br *BettingRound) reopen(raiser int) {
	br.Acted = [NumPlayers]bool{}
	br.Acted[raiser] = true
}

// closed reports whether the street's betting round is finished: every
// live, non-all-in player has acted since the last aggression and matched
// the current bet. Preflop the big blind keeps its option when the pot is
// unraised.
func (br *BettingRound) closed(players *[NumPlayers]*Player, street Street, bb int) bool {
	active := 0
	last := -1
	for i, p := range players {
		if p.CanAct() {
			active++
			last = i
		}
	}
	if active == 0 {
		return true
	}

	// A lone active player among all-ins only acts while there is an
	// outstanding bet to match; betting against nobody is pointless.
	if active == 1 {
		return players[last].StreetBet == br.CurrentBet
	}

	for i, p := range players {
		if !p.CanAct() {
			continue
		}
		if p.StreetBet != br.CurrentBet || !br.Acted[i] {
			return false
		}
	}

	if street == Preflop && br.LastRaiser == -1 {
		if players[bb].CanAct() && !br.BBActed {
			return false
		}
	}

	return true
}
