package poker

import (
	"fmt"
	"sort"
)

// Evaluate determines the best 5-card hand obtainable from 5 to 7 cards.
// It enumerates every 5-card combination of the input (21 combinations for
// 7 cards), scores each independently, and returns the maximum under
// HandRank ordering. Best5 holds the winning combination sorted descending
// by rank.
//
// Inputs with duplicate cards are rejected.
func Evaluate(cards []Card) (HandRank, error) {
	if len(cards) < 5 {
		return HandRank{}, fmt.Errorf("%w: got %d", ErrInsufficientCards, len(cards))
	}
	if len(cards) > 7 {
		return HandRank{}, fmt.Errorf("%w: got %d", ErrTooManyCards, len(cards))
	}

	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return HandRank{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}

	var best HandRank
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						rank := scoreFive([5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
						if best.Category == 0 || rank.Compare(best) > 0 {
							best = rank
						}
					}
				}
			}
		}
	}

	return best, nil
}

// EvaluateTokens evaluates a hand given as card tokens. It is the
// single-hand interface exposed to collaborators.
func EvaluateTokens(tokens []string) (HandRank, error) {
	cards, err := ParseCards(tokens)
	if err != nil {
		return HandRank{}, err
	}
	return Evaluate(cards)
}

// scoreFive classifies exactly five cards and builds the tie-break key for
// the detected category.
func scoreFive(five [5]Card) HandRank {
	sorted := five[:]
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank > sorted[j].Rank
		}
		return sorted[i].Suit < sorted[j].Suit
	})

	flush := true
	for _, c := range sorted[1:] {
		if c.Suit != sorted[0].Suit {
			flush = false
			break
		}
	}

	// Five consecutive distinct ranks. The wheel (5-4-3-2-A) is special-cased
	// because the Ace's numeric value does not wrap.
	straight := true
	for i := 1; i < 5; i++ {
		if sorted[i].Rank != sorted[0].Rank-Rank(i) {
			straight = false
			break
		}
	}
	wheel := !straight &&
		sorted[0].Rank == Ace && sorted[1].Rank == Five && sorted[2].Rank == Four &&
		sorted[3].Rank == Three && sorted[4].Rank == Two

	straightHigh := int(sorted[0].Rank)
	if wheel {
		straight = true
		straightHigh = int(Five)
	}

	if straight && flush {
		if sorted[0].Rank == Ace && !wheel {
			return HandRank{Category: RoyalFlush, Tiebreak: []int{}, Best5: sorted}
		}
		return HandRank{Category: StraightFlush, Tiebreak: []int{straightHigh}, Best5: sorted}
	}

	// Histogram of the five ranks, grouped by multiplicity: groups are
	// ordered by count descending, then rank descending.
	counts := make(map[Rank]int, 5)
	for _, c := range sorted {
		counts[c.Rank]++
	}
	type group struct {
		rank  Rank
		count int
	}
	groups := make([]group, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, group{rank, count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	switch {
	case groups[0].count == 4:
		return HandRank{
			Category: FourOfAKind,
			Tiebreak: []int{int(groups[0].rank), int(groups[1].rank)},
			Best5:    sorted,
		}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{
			Category: FullHouse,
			Tiebreak: []int{int(groups[0].rank), int(groups[1].rank)},
			Best5:    sorted,
		}
	case flush:
		return HandRank{Category: Flush, Tiebreak: ranksOf(sorted), Best5: sorted}
	case straight:
		return HandRank{Category: Straight, Tiebreak: []int{straightHigh}, Best5: sorted}
	case groups[0].count == 3:
		return HandRank{
			Category: ThreeOfAKind,
			Tiebreak: []int{int(groups[0].rank), int(groups[1].rank), int(groups[2].rank)},
			Best5:    sorted,
		}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{
			Category: TwoPair,
			Tiebreak: []int{int(groups[0].rank), int(groups[1].rank), int(groups[2].rank)},
			Best5:    sorted,
		}
	case groups[0].count == 2:
		return HandRank{
			Category: Pair,
			Tiebreak: []int{int(groups[0].rank), int(groups[1].rank), int(groups[2].rank), int(groups[3].rank)},
			Best5:    sorted,
		}
	default:
		return HandRank{Category: HighCard, Tiebreak: ranksOf(sorted), Best5: sorted}
	}
}

func ranksOf(cards []Card) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	return ranks
}
