// Package arbiter provides slap-arbiter strategies for the game engine:
// pluggable deciders for which player wins a contested slap. All
// randomness comes from an injected RNG so batches stay reproducible.
package arbiter

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/stjordanis/ratscrew/internal/deck"
	"github.com/stjordanis/ratscrew/internal/game"
)

// Uniform picks the slap winner uniformly among all players, empty-handed
// players included. This is the baseline model: everyone is equally fast.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform creates a new Uniform arbiter
func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

// ChooseSlapper picks a uniform random player index.
func (u *Uniform) ChooseSlapper(pile []deck.Card, handSizes []int) int {
	return u.rng.IntN(len(handSizes))
}

// Weighted picks the slap winner with probability proportional to hand
// size plus a base weight, modelling players with more cards staying more
// engaged. The base weight keeps empty-handed players eligible; with a
// base of zero they can never win a slap.
type Weighted struct {
	rng  *rand.Rand
	base float64
}

// NewWeighted creates a new Weighted arbiter with the given base weight.
func NewWeighted(rng *rand.Rand, base float64) *Weighted {
	return &Weighted{rng: rng, base: base}
}

// ChooseSlapper samples a player index weighted by hand size.
func (w *Weighted) ChooseSlapper(pile []deck.Card, handSizes []int) int {
	total := 0.0
	for _, n := range handSizes {
		total += w.base + float64(n)
	}
	if total <= 0 {
		// All hands empty and no base weight; cannot happen in a live
		// game (the pile is non-empty so someone just played), but fall
		// back to uniform rather than divide by zero.
		return w.rng.IntN(len(handSizes))
	}

	target := w.rng.Float64() * total
	for i, n := range handSizes {
		target -= w.base + float64(n)
		if target < 0 {
			return i
		}
	}
	return len(handSizes) - 1
}

// Fixed always awards slaps to the same player. Useful in tests and for
// studying the advantage a perfect slapper has.
type Fixed struct {
	Player int
}

// NewFixed creates a new Fixed arbiter
func NewFixed(player int) *Fixed {
	return &Fixed{Player: player}
}

// ChooseSlapper returns the fixed player index, valid or not; the engine
// validates it.
func (f *Fixed) ChooseSlapper(pile []deck.Card, handSizes []int) int {
	return f.Player
}

// FromName constructs an arbiter by its configuration name.
func FromName(name string, rng *rand.Rand) (game.SlapArbiter, error) {
	switch name {
	case "uniform", "":
		return NewUniform(rng), nil
	case "weighted":
		return NewWeighted(rng, 1.0), nil
	default:
		return nil, fmt.Errorf("unknown arbiter strategy %q", name)
	}
}
