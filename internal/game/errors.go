package game

import "errors"

// ErrConfiguration indicates invalid input from the caller: a bad player
// count, or a slap arbiter that returned an out-of-range index. These fail
// fast rather than being clamped or ignored.
var ErrConfiguration = errors.New("invalid configuration")

// ErrInvariant indicates an engine bug: cards created, destroyed or
// duplicated after the deal, or a game that fails to terminate. Not
// recoverable; the game run aborts.
var ErrInvariant = errors.New("invariant violation")
