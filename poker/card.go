package poker

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the single-character suit code used in card tokens
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14); the wheel straight
// treats them as 1 inside the evaluator.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character rank code used in card tokens
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Card represents a playing card. Cards are value types; equality and
// ordering in hand comparison use the rank only, suits break no ties.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character token for the card (e.g. "As", "Tc").
// It is the exact inverse of ParseCard.
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-character card token such as "As" or "Tc".
// Tokens are case-sensitive: upper-case rank, lower-case suit.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardFormat, token)
	}

	var rank Rank
	switch token[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(token[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: %q has invalid rank %q", ErrInvalidCardFormat, token, token[0])
	}

	var suit Suit
	switch token[1] {
	case 's':
		suit = Spades
	case 'h':
		suit = Hearts
	case 'd':
		suit = Diamonds
	case 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: %q has invalid suit %q", ErrInvalidCardFormat, token, token[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a slice of card tokens, rejecting duplicates
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	seen := make(map[Card]bool, len(tokens))
	for _, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		if seen[card] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen[card] = true
		cards = append(cards, card)
	}
	return cards, nil
}

// FormatCards returns the tokens for a slice of cards
func FormatCards(cards []Card) []string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return tokens
}
