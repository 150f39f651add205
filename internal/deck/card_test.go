package deck

import "testing"

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Queen), "Q♦"},
		{NewCard(Clubs, Two), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestIsRoyal(t *testing.T) {
	royals := []Rank{Jack, Queen, King, Ace}
	for _, r := range royals {
		if !r.IsRoyal() {
			t.Errorf("%s.IsRoyal() = false, want true", r)
		}
	}

	for r := Two; r <= Ten; r++ {
		if r.IsRoyal() {
			t.Errorf("%s.IsRoyal() = true, want false", r)
		}
	}
}

func TestChanceCards(t *testing.T) {
	tests := []struct {
		rank     Rank
		expected int
	}{
		{Jack, 1},
		{Queen, 2},
		{King, 3},
		{Ace, 4},
		{Two, 0},
		{Ten, 0},
	}

	for _, tt := range tests {
		if got := tt.rank.ChanceCards(); got != tt.expected {
			t.Errorf("%s.ChanceCards() = %d, want %d", tt.rank, got, tt.expected)
		}
	}
}
