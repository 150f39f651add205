package game

import (
	"github.com/stjordanis/ratscrew/internal/deck"
)

// Hand is one player's cards, ordered bottom to top. Cards are played from
// the top (the last element) and a won pile is appended underneath the
// bottom (the front), so cards received from the pile are played last.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards, bottom first.
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, len(cards))}
	copy(h.cards, cards)
	return h
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Empty returns true if the hand has no cards.
func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PopTop removes and returns the top card. The second return is false if
// the hand is empty.
func (h *Hand) PopTop() (deck.Card, bool) {
	if len(h.cards) == 0 {
		return deck.Card{}, false
	}
	card := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return card, true
}

// PushTop adds a card to the top of the hand. Dealing uses this.
func (h *Hand) PushTop(card deck.Card) {
	h.cards = append(h.cards, card)
}

// ReceivePile appends a won pile underneath the hand. The pile arrives
// ordered earliest-played first; the most recently played pile card ends up
// adjacent to the hand's old bottom and the earliest pile card becomes the
// new outermost bottom card, the last the receiving player will play.
func (h *Hand) ReceivePile(pile []deck.Card) {
	merged := make([]deck.Card, 0, len(pile)+len(h.cards))
	merged = append(merged, pile...)
	merged = append(merged, h.cards...)
	h.cards = merged
}

// Cards returns a copy of the hand, bottom first.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}
