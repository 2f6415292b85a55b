package poker

// HandCategory enumerates the categories of poker hands ordered from
// weakest (1) to strongest (10). The numeric values are part of the
// public interface and match the ranks reported to collaborators.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "HighCard"
	case Pair:
		return "Pair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	case RoyalFlush:
		return "RoyalFlush"
	default:
		return "Unknown"
	}
}

// HandRank is the strength of a best 5-card hand: its category plus a
// tie-break key. Two ranks with equal category and equal tiebreak sequence
// are a true tie (split pot); suits never break ties.
type HandRank struct {
	Category HandCategory
	Tiebreak []int
	Best5    []Card
}

// Compare returns a negative number if r is weaker than other, zero if the
// hands tie, and a positive number if r is stronger. Category decides first,
// then the tiebreak sequence lexicographically in descending significance.
func (r HandRank) Compare(other HandRank) int {
	if r.Category != other.Category {
		return int(r.Category) - int(other.Category)
	}
	for i := 0; i < len(r.Tiebreak) && i < len(other.Tiebreak); i++ {
		if r.Tiebreak[i] != other.Tiebreak[i] {
			return r.Tiebreak[i] - other.Tiebreak[i]
		}
	}
	return len(r.Tiebreak) - len(other.Tiebreak)
}
