package game

import (
	"math/bits"

	"github.com/stjordanis/ratscrew/internal/deck"
)

// cardSet is a bitset over the 52 distinct cards, used for the card
// conservation check: bit index = (rank-2)*4 + suit.
type cardSet uint64

func cardIndex(card deck.Card) int {
	return int(card.Rank-deck.Two)*4 + int(card.Suit)
}

// add inserts a card and reports whether it was already present.
func (cs *cardSet) add(card deck.Card) bool {
	bit := cardSet(1) << cardIndex(card)
	dup := *cs&bit != 0
	*cs |= bit
	return dup
}

func (cs cardSet) count() int {
	return bits.OnesCount64(uint64(cs))
}
