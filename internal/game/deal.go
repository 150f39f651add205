package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/stjordanis/ratscrew/internal/deck"
)

// Deal shuffles a copy of cards with the provided RNG and distributes them
// round-robin, one card per player per round starting from player 0, until
// the deck is exhausted. Leftover cards when the count does not divide
// evenly go to the earliest players in the rotation. The input slice is
// left untouched so one deck value can seed many games.
//
// Returns ErrConfiguration if players < 1. A player count above the deck
// size is legal; the surplus players start with empty hands.
func Deal(cards []deck.Card, players int, rng *rand.Rand) ([]*Hand, error) {
	if players < 1 {
		return nil, fmt.Errorf("%w: player count %d, need at least 1", ErrConfiguration, players)
	}

	shuffled := make([]deck.Card, len(cards))
	copy(shuffled, cards)
	deck.Shuffle(shuffled, rng)

	hands := make([]*Hand, players)
	for i := range hands {
		hands[i] = NewHand()
	}
	for i, card := range shuffled {
		hands[i%players].PushTop(card)
	}
	return hands, nil
}
