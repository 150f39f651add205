package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stjordanis/ratscrew/internal/deck"
)

func TestSlappable(t *testing.T) {
	tests := []struct {
		name     string
		pile     string
		expected bool
	}{
		{"empty pile", "", false},
		{"single card", "Qd", false},
		{"double", "QdQh", true},
		{"no match", "2s3c", false},
		{"sandwich", "Qd2sQh", true},
		{"three no match", "Qd2sKh", false},
		{"double on deep pile", "2s7c9dQdQh", true},
		{"sandwich on deep pile", "KsKc3h4d3c", true},
		{"match buried too deep", "Qd2s3cQh", false},
		{"suits irrelevant", "QdQc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pile := deck.MustParseCards(tt.pile)
			assert.Equal(t, tt.expected, Slappable(pile), "pile %q", tt.pile)
		})
	}
}

func TestPilePushAndTakeAll(t *testing.T) {
	var p Pile
	cards := deck.MustParseCards("2s3cQh")
	for _, c := range cards {
		p.Push(c)
	}
	assert.Equal(t, 3, p.Len())

	taken := p.TakeAll()
	assert.Equal(t, cards, taken, "TakeAll returns earliest-played first")
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.TakeAll())
}
