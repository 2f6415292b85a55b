package game

// Apply validates the action and applies it to the hand. Illegal actions
// are rejected with a StateError and leave the state untouched. Legal
// actions mutate pot, stacks and street, are appended to the history, and
// may complete the hand (fold-out, or settlement after the river).
func (s *State) Apply(a Action) error {
	if err := Validate(s, a); err != nil {
		return err
	}

	var err error
	if a.Type.IsDeal() {
		err = s.dealStreet(a.Type)
	} else {
		err = s.applyPlayerAction(a)
	}
	if err != nil {
		return err
	}

	s.history = append(s.history, HistoryEntry{Action: a, At: s.clock.Now()})
	return nil
}

func (s *State) applyPlayerAction(a Action) error {
	p := s.Players[a.Player]

	s.Betting.MarkActed(a.Player)
	if s.Street == Preflop && a.Player == s.Positions.BB {
		s.Betting.BBActed = true
	}

	switch a.Type {
	case Fold:
		p.Folded = true

	case Check:
		// no chips move

	case Call:
		// Short stacks call for whatever they have left
		s.Pot += p.contribute(s.Betting.CurrentBet - p.StreetBet)

	case Bet:
		s.Pot += p.contribute(a.Amount)
		s.Betting.MinRaise = a.Amount
		s.Betting.CurrentBet = a.Amount
		s.Betting.LastRaiser = a.Player
		s.Betting.reopen(a.Player)

	case Raise:
		full := a.Amount >= s.Betting.CurrentBet+s.Betting.MinRaise
		s.Pot += p.contribute(a.Amount - p.StreetBet)
		if full {
			s.Betting.MinRaise = a.Amount - s.Betting.CurrentBet
			s.Betting.reopen(a.Player)
		}
		// A short all-in raise moves the level without reopening the
		// betting for players who already acted
		s.Betting.CurrentBet = a.Amount
		s.Betting.LastRaiser = a.Player

	case AllIn:
		target := p.StreetBet + p.Stack
		s.Pot += p.contribute(p.Stack)
		if target > s.Betting.CurrentBet {
			if target >= s.Betting.CurrentBet+s.Betting.MinRaise {
				s.Betting.MinRaise = target - s.Betting.CurrentBet
				s.Betting.reopen(a.Player)
			}
			s.Betting.CurrentBet = target
			s.Betting.LastRaiser = a.Player
		}
	}

	if s.liveCount() == 1 {
		s.completeFoldOut()
		return nil
	}

	s.Actor = s.nextToAct(a.Player + 1)
	if s.Betting.closed(&s.Players, s.Street, s.Positions.BB) {
		s.Actor = -1
		if s.Street == River {
			return s.settleShowdown()
		}
	}

	return nil
}

// dealStreet reveals the next predetermined board cards and opens the new
// street's betting round. The first actor is the first live seat after the
// dealer; when nobody can act (everyone all-in) the round closes
// immediately and, after the river, the hand settles.
func (s *State) dealStreet(t ActionType) error {
	switch t {
	case DealFlop:
		s.revealed = 3
		s.Street = Flop
	case DealTurn:
		s.revealed = 4
		s.Street = Turn
	case DealRiver:
		s.revealed = 5
		s.Street = River
	}

	for _, p := range s.Players {
		p.StreetBet = 0
	}
	s.Betting.resetForStreet()

	s.Actor = s.nextToAct(s.Positions.Dealer + 1)
	if s.Betting.closed(&s.Players, s.Street, s.Positions.BB) {
		s.Actor = -1
		if s.Street == River {
			return s.settleShowdown()
		}
	}

	return nil
}

// completeFoldOut awards the pot to the last live player without a
// showdown and finishes the hand.
func (s *State) completeFoldOut() {
	for _, p := range s.Players {
		if p.Live() {
			p.Stack += s.Pot
			break
		}
	}
	s.Street = Complete
	s.Actor = -1
	s.results = s.computeResults()
}
