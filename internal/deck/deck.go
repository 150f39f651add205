package deck

import rand "math/rand/v2"

// Size is the number of cards in a standard deck.
const Size = 52

// New creates a standard 52-card deck in a fixed enumeration order:
// suits Spades through Clubs, ranks Two through Ace within each suit.
// No shuffling happens here; callers shuffle with an explicit RNG so
// that simulation runs stay reproducible.
func New() []Card {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle permutes cards in place using the provided RNG.
func Shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
