package game

// Validate is the single source of truth for action legality. It checks the
// action's shape and its legality against the current state without mutating
// anything, so callers can pre-check an action before submitting it.
// Apply applies exactly the actions Validate accepts, and nothing else.
func Validate(s *State, a Action) error {
	if a.Type < Fold || a.Type > DealRiver {
		return stateErrorf("unknown action type %d", int(a.Type))
	}

	if s.Street == Showdown || s.Street == Complete {
		return stateErrorf("hand is complete, no further actions allowed")
	}

	if a.Type.IsDeal() {
		return validateDeal(s, a)
	}
	return validatePlayerAction(s, a)
}

func validateDeal(s *State, a Action) error {
	if a.Amount != 0 {
		return stateErrorf("%s takes no amount", a.Type)
	}

	var want Street
	switch a.Type {
	case DealFlop:
		want = Preflop
		if s.Street == Flop || s.Street == Turn || s.Street == River {
			return stateErrorf("flop already dealt")
		}
	case DealTurn:
		want = Flop
		if s.Street == Turn || s.Street == River {
			return stateErrorf("turn already dealt")
		}
	case DealRiver:
		want = Turn
		if s.Street == River {
			return stateErrorf("river already dealt")
		}
	}
	if s.Street != want {
		return stateErrorf("%s is illegal on the %s", a.Type, s.Street)
	}

	if !s.Betting.closed(&s.Players, s.Street, s.Positions.BB) {
		return stateErrorf("%s is illegal while the %s betting round is open", a.Type, s.Street)
	}

	return nil
}

func validatePlayerAction(s *State, a Action) error {
	if a.Player < 0 || a.Player >= NumPlayers {
		return stateErrorf("player index %d out of range 0..%d", a.Player, NumPlayers-1)
	}

	p := s.Players[a.Player]
	switch {
	case p.Folded:
		return stateErrorf("player %d has folded", a.Player)
	case p.AllIn:
		return stateErrorf("player %d is all-in", a.Player)
	case s.Actor != a.Player:
		return stateErrorf("not player %d's turn", a.Player)
	}

	switch a.Type {
	case Bet, Raise:
		if a.Amount <= 0 {
			return stateErrorf("%s requires a positive amount", a.Type)
		}
	default:
		if a.Amount != 0 {
			return stateErrorf("%s takes no amount", a.Type)
		}
	}

	toCall := s.Betting.CurrentBet - p.StreetBet

	switch a.Type {
	case Fold:
		// always legal on your turn

	case Check:
		if toCall != 0 {
			return stateErrorf("cannot check, %d to call", toCall)
		}

	case Call:
		if toCall <= 0 {
			return stateErrorf("nothing to call, check instead")
		}

	case Bet:
		if s.Betting.CurrentBet != 0 {
			return stateErrorf("cannot bet into a %d bet, raise instead", s.Betting.CurrentBet)
		}
		if a.Amount > p.Stack {
			return stateErrorf("bet %d exceeds stack %d", a.Amount, p.Stack)
		}

	case Raise:
		if s.Betting.CurrentBet == 0 {
			return stateErrorf("nothing to raise, bet instead")
		}
		total := p.Stack + p.StreetBet
		if a.Amount > total {
			return stateErrorf("raise to %d exceeds stack, %d available", a.Amount, total)
		}
		if a.Amount <= s.Betting.CurrentBet {
			return stateErrorf("raise to %d does not exceed current bet %d", a.Amount, s.Betting.CurrentBet)
		}
		// A raise below the minimum is only legal as an all-in
		if minTo := s.Betting.CurrentBet + s.Betting.MinRaise; a.Amount < minTo && a.Amount < total {
			return stateErrorf("raise to %d below minimum %d", a.Amount, minTo)
		}

	case AllIn:
		if p.Stack == 0 {
			return stateErrorf("player %d has no chips", a.Player)
		}
	}

	return nil
}
