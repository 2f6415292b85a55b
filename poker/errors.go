package poker

import "errors"

// Caller-caused input errors. These are expected conditions: the caller
// corrects the input and retries.
var (
	ErrInvalidCardFormat = errors.New("invalid card format")
	ErrDuplicateCard     = errors.New("duplicate card")
	ErrInsufficientCards = errors.New("a hand must contain at least 5 cards")
	ErrTooManyCards      = errors.New("a hand must contain at most 7 cards")
)

// Invariant violations. Reaching either of these signals a bug in deck
// bookkeeping, not bad input; callers should abort the operation loudly
// rather than continue with a corrupted state.
var (
	ErrDeckExhausted = errors.New("deck exhausted")
	ErrInternalDeck  = errors.New("deck invariant violated")
)
