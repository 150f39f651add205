package game

import (
	"github.com/stjordanis/ratscrew/internal/deck"
)

// Pile is the shared face-up stack of played cards, ordered earliest-played
// first. Only the engine mutates it: one card per play, emptied in full when
// a challenge resolves or a slap succeeds.
type Pile struct {
	cards []deck.Card
}

// Push places a card on top of the pile.
func (p *Pile) Push(card deck.Card) {
	p.cards = append(p.cards, card)
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.cards)
}

// TakeAll removes and returns every card in the pile, earliest-played first.
func (p *Pile) TakeAll() []deck.Card {
	taken := p.cards
	p.cards = nil
	return taken
}

// Cards returns a copy of the pile, earliest-played first.
func (p *Pile) Cards() []deck.Card {
	out := make([]deck.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Slappable reports whether the pile can legally be slapped.
func (p *Pile) Slappable() bool {
	return Slappable(p.cards)
}

// Slappable reports whether a pile of cards (earliest-played first) can be
// slapped: the top two cards share a rank (a double), or the top card and
// the third from the top share a rank (a sandwich, middle rank irrelevant).
// Piles of fewer than two cards are never slappable. Only rank is compared.
func Slappable(pile []deck.Card) bool {
	n := len(pile)
	if n >= 2 && pile[n-1].Rank == pile[n-2].Rank {
		return true
	}
	if n >= 3 && pile[n-1].Rank == pile[n-3].Rank {
		return true
	}
	return false
}
