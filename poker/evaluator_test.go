package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvaluate(t *testing.T, tokens ...string) HandRank {
	t.Helper()
	rank, err := EvaluateTokens(tokens)
	require.NoError(t, err)
	return rank
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		category HandCategory
		tiebreak []int
	}{
		{
			name:     "royal flush",
			cards:    []string{"As", "Ks", "Qs", "Js", "Ts"},
			category: RoyalFlush,
			tiebreak: []int{},
		},
		{
			name:     "straight flush",
			cards:    []string{"9h", "8h", "7h", "6h", "5h"},
			category: StraightFlush,
			tiebreak: []int{9},
		},
		{
			name:     "steel wheel",
			cards:    []string{"5c", "4c", "3c", "2c", "Ac"},
			category: StraightFlush,
			tiebreak: []int{5},
		},
		{
			name:     "four of a kind",
			cards:    []string{"Kh", "Kd", "Kc", "Ks", "2d"},
			category: FourOfAKind,
			tiebreak: []int{13, 2},
		},
		{
			name:     "full house",
			cards:    []string{"2h", "2d", "2c", "3h", "3d"},
			category: FullHouse,
			tiebreak: []int{2, 3},
		},
		{
			name:     "flush",
			cards:    []string{"Ad", "Jd", "9d", "6d", "3d"},
			category: Flush,
			tiebreak: []int{14, 11, 9, 6, 3},
		},
		{
			name:     "broadway straight",
			cards:    []string{"Ah", "Kd", "Qc", "Js", "Th"},
			category: Straight,
			tiebreak: []int{14},
		},
		{
			name:     "wheel",
			cards:    []string{"5h", "4d", "3c", "2s", "Ah"},
			category: Straight,
			tiebreak: []int{5},
		},
		{
			name:     "three of a kind",
			cards:    []string{"7h", "7d", "7c", "Kd", "2s"},
			category: ThreeOfAKind,
			tiebreak: []int{7, 13, 2},
		},
		{
			name:     "two pair",
			cards:    []string{"Jh", "Jd", "4c", "4s", "9h"},
			category: TwoPair,
			tiebreak: []int{11, 4, 9},
		},
		{
			name:     "one pair",
			cards:    []string{"8h", "8d", "Ac", "Ts", "3h"},
			category: Pair,
			tiebreak: []int{8, 14, 10, 3},
		},
		{
			name:     "high card",
			cards:    []string{"Ah", "Qd", "9c", "6s", "2h"},
			category: HighCard,
			tiebreak: []int{14, 12, 9, 6, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank := mustEvaluate(t, tt.cards...)
			assert.Equal(t, tt.category, rank.Category)
			assert.Equal(t, tt.tiebreak, rank.Tiebreak)
			assert.Len(t, rank.Best5, 5)
		})
	}
}

func TestEvaluateCategoryValues(t *testing.T) {
	// Category values are part of the wire contract.
	assert.Equal(t, 1, int(HighCard))
	assert.Equal(t, 2, int(Pair))
	assert.Equal(t, 3, int(TwoPair))
	assert.Equal(t, 4, int(ThreeOfAKind))
	assert.Equal(t, 5, int(Straight))
	assert.Equal(t, 6, int(Flush))
	assert.Equal(t, 7, int(FullHouse))
	assert.Equal(t, 8, int(FourOfAKind))
	assert.Equal(t, 9, int(StraightFlush))
	assert.Equal(t, 10, int(RoyalFlush))
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		cards  []string
		sentry error
	}{
		{name: "four cards", cards: []string{"As", "Ks", "Qs", "Js"}, sentry: ErrInsufficientCards},
		{name: "empty", cards: []string{}, sentry: ErrInsufficientCards},
		{
			name:   "eight cards",
			cards:  []string{"As", "Ks", "Qs", "Js", "Ts", "9s", "8s", "7s"},
			sentry: ErrTooManyCards,
		},
		{name: "duplicate", cards: []string{"As", "As", "Qs", "Js", "Ts"}, sentry: ErrDuplicateCard},
		{name: "bad token", cards: []string{"As", "Ks", "Qs", "Js", "1s"}, sentry: ErrInvalidCardFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateTokens(tt.cards)
			assert.ErrorIs(t, err, tt.sentry)
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	// Hands listed strongest first. Every pair must compare consistently
	// in both directions.
	hands := []HandRank{
		mustEvaluate(t, "As", "Ks", "Qs", "Js", "Ts"),
		mustEvaluate(t, "9h", "8h", "7h", "6h", "5h"),
		mustEvaluate(t, "5c", "4c", "3c", "2c", "Ac"),
		mustEvaluate(t, "Kh", "Kd", "Kc", "Ks", "2d"),
		mustEvaluate(t, "Ah", "Ad", "Ac", "3h", "3d"),
		mustEvaluate(t, "2h", "2d", "2c", "3h", "3d"),
		mustEvaluate(t, "Ad", "Jd", "9d", "6d", "3d"),
		mustEvaluate(t, "Ah", "Kd", "Qc", "Js", "Th"),
		mustEvaluate(t, "6h", "5d", "4c", "3s", "2h"),
		mustEvaluate(t, "5h", "4d", "3c", "2s", "Ah"),
		mustEvaluate(t, "7h", "7d", "7c", "Kd", "2s"),
		mustEvaluate(t, "Jh", "Jd", "4c", "4s", "9h"),
		mustEvaluate(t, "8h", "8d", "Ac", "Ts", "3h"),
		mustEvaluate(t, "8h", "8d", "Ac", "Ts", "2h"),
		mustEvaluate(t, "Ah", "Qd", "9c", "6s", "2h"),
	}

	for i := range hands {
		for j := range hands {
			got := hands[i].Compare(hands[j])
			switch {
			case i < j:
				assert.Positive(t, got, "hand %d should beat hand %d", i, j)
			case i > j:
				assert.Negative(t, got, "hand %d should lose to hand %d", i, j)
			default:
				assert.Zero(t, got, "hand %d should tie itself", i)
			}
		}
	}
}

func TestEvaluateTies(t *testing.T) {
	// Suits never break ties.
	a := mustEvaluate(t, "Ah", "Kd", "Qc", "Js", "Th")
	b := mustEvaluate(t, "As", "Kh", "Qd", "Jc", "Ts")
	assert.Equal(t, 0, a.Compare(b))

	c := mustEvaluate(t, "Ad", "Jd", "9d", "6d", "3d")
	d := mustEvaluate(t, "Ac", "Jc", "9c", "6c", "3c")
	assert.Equal(t, 0, c.Compare(d))
}

func TestEvaluateSevenCardUsesBestFive(t *testing.T) {
	// Two pair on board, pocket pair makes a full house; the weaker
	// board pair must not appear in the result.
	rank := mustEvaluate(t, "9c", "9d", "9h", "4s", "4d", "Kh", "Kd")
	assert.Equal(t, FullHouse, rank.Category)
	assert.Equal(t, []int{9, 13}, rank.Tiebreak)

	// Flush hidden inside seven cards alongside a straight.
	rank = mustEvaluate(t, "Ah", "Kh", "Qh", "Jh", "9h", "Ts", "2c")
	assert.Equal(t, Flush, rank.Category)
	assert.Equal(t, []int{14, 13, 12, 11, 9}, rank.Tiebreak)
}

func TestEvaluateSevenCardMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 1))

	for trial := 0; trial < 200; trial++ {
		deck, err := NewDeck()
		require.NoError(t, err)
		deck.Shuffle(rng)

		cards, err := deck.Deal(7)
		require.NoError(t, err)

		got, err := Evaluate(cards)
		require.NoError(t, err)

		best := bruteForceBest(t, cards)
		assert.Equal(t, 0, got.Compare(best), "trial %d cards %v", trial, FormatCards(cards))
	}
}

// bruteForceBest maximizes over every five card subset evaluated on its own.
func bruteForceBest(t *testing.T, cards []Card) HandRank {
	t.Helper()

	var best HandRank
	first := true
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						rank, err := Evaluate([]Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
						require.NoError(t, err)
						if first || rank.Compare(best) > 0 {
							best = rank
							first = false
						}
					}
				}
			}
		}
	}
	return best
}
