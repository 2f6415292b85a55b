package poker

import (
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck. Cards are dealt sequentially;
// because the deck is built from the full (rank, suit) cross product, a card
// can never be dealt twice from the same deck.
type Deck struct {
	cards [52]Card
	next  int
}

// NewDeck creates a new unshuffled deck containing all 52 cards.
// It returns ErrInternalDeck if the construction arithmetic is broken,
// which should be unreachable.
func NewDeck() (*Deck, error) {
	d := &Deck{}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	if i != len(d.cards) {
		return nil, ErrInternalDeck
	}
	return d, nil
}

// Shuffle shuffles the deck using Fisher-Yates. The caller supplies the
// randomness source so dealing is reproducible under test with a seeded
// generator.
func (d *Deck) Shuffle(rng *rand.Rand) {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Burn discards the next card, preserving the burn-then-reveal discipline
// used when dealing board cards.
func (d *Deck) Burn() error {
	_, err := d.DealOne()
	return err
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
