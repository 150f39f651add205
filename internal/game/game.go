// Package game implements the Egyptian Ratscrew turn-resolution engine: a
// single-threaded state machine over per-player hands, the shared pile and
// the active challenge. Randomness (the shuffle and the slap arbiter's
// choice) is injected so simulated games are reproducible from a seed.
package game

import (
	"fmt"

	"github.com/stjordanis/ratscrew/internal/deck"
)

// State represents the engine's position in the turn-resolution state machine.
type State int

const (
	// NormalPlay means no challenge is active; each turn plays one card.
	NormalPlay State = iota
	// Challenged means a royal has been played and chance cards are owed.
	Challenged
	// GameOver means exactly one player holds cards; the game has ended.
	GameOver
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case NormalPlay:
		return "normal_play"
	case Challenged:
		return "challenged"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// noChallenger marks the challenge state as inactive.
const noChallenger = -1

// SlapArbiter decides which player wins a contested slap. It is only
// invoked when the pile is slappable, so pile is never empty. Any player
// may win, including empty-handed ones. The returned index must be in
// [0, len(handSizes)); anything else is a configuration error.
type SlapArbiter interface {
	ChooseSlapper(pile []deck.Card, handSizes []int) int
}

// SlapArbiterFunc adapts a plain function to the SlapArbiter interface.
type SlapArbiterFunc func(pile []deck.Card, handSizes []int) int

// ChooseSlapper calls the wrapped function.
func (f SlapArbiterFunc) ChooseSlapper(pile []deck.Card, handSizes []int) int {
	return f(pile, handSizes)
}

// Result is what a completed game reports: how many turn slots elapsed and
// which player ended up holding every card.
type Result struct {
	Turns  int
	Winner int
}

// Game owns one simulated game's state. Not safe for concurrent use; run
// each game on a single goroutine and give every game its own instance.
type Game struct {
	hands   []*Hand
	pile    Pile
	arbiter SlapArbiter
	bus     EventBus

	state      State
	current    int // whose turn slot is next
	turns      int // turn slots consumed so far, skips included
	challenger int
	chances    int
	winner     int
	maxTurns   int

	fullSet   cardSet
	cardCount int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithEventBus replaces the game's event bus, letting several games share
// one subscriber set.
func WithEventBus(bus EventBus) Option {
	return func(g *Game) { g.bus = bus }
}

// WithSubscriber subscribes an observer to the game's events.
func WithSubscriber(sub EventSubscriber) Option {
	return func(g *Game) { g.bus.Subscribe(sub) }
}

// WithMaxTurns caps the number of turn slots before the run aborts with an
// invariant violation. Zero means no cap.
func WithMaxTurns(n int) Option {
	return func(g *Game) { g.maxTurns = n }
}

// NewGame creates a game over the given hands, usually the output of Deal.
// The hands are owned by the game from here on. The arbiter is required
// even though it is only consulted when a slap triggers.
func NewGame(hands []*Hand, arbiter SlapArbiter, opts ...Option) (*Game, error) {
	if len(hands) < 1 {
		return nil, fmt.Errorf("%w: need at least 1 player, got %d", ErrConfiguration, len(hands))
	}
	if arbiter == nil {
		return nil, fmt.Errorf("%w: slap arbiter is required", ErrConfiguration)
	}

	g := &Game{
		hands:      hands,
		arbiter:    arbiter,
		bus:        NewEventBus(),
		state:      NormalPlay,
		challenger: noChallenger,
		winner:     noChallenger,
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, h := range hands {
		for _, c := range h.Cards() {
			if g.fullSet.add(c) {
				return nil, fmt.Errorf("%w: duplicate card %s in dealt hands", ErrInvariant, c)
			}
			g.cardCount++
		}
	}
	return g, nil
}

// State returns the engine's current state.
func (g *Game) State() State { return g.state }

// Turns returns the number of turn slots consumed so far.
func (g *Game) Turns() int { return g.turns }

// PileLen returns the number of cards currently on the shared pile.
func (g *Game) PileLen() int { return g.pile.Len() }

// HandSizes returns the current card count of every hand.
func (g *Game) HandSizes() []int {
	sizes := make([]int, len(g.hands))
	for i, h := range g.hands {
		sizes[i] = h.Len()
	}
	return sizes
}

// Run steps the game until it terminates and returns the outcome. A
// configuration error or invariant violation aborts the run; the game
// state is not usable afterwards.
func (g *Game) Run() (Result, error) {
	for g.state != GameOver {
		if err := g.Step(); err != nil {
			return Result{}, err
		}
	}
	return Result{Turns: g.turns, Winner: g.winner}, nil
}

// Step executes one turn slot. The termination check runs first, before
// any card moves, so the end of the game is detected at the earliest
// possible moment. An empty-handed player's slot is consumed with no
// action; the player stays in the rotation and can re-enter play by
// winning a slap.
func (g *Game) Step() error {
	if g.state == GameOver {
		return nil
	}
	if g.checkTermination() {
		return nil
	}
	if g.maxTurns > 0 && g.turns >= g.maxTurns {
		return fmt.Errorf("%w: game exceeded %d turns without terminating", ErrInvariant, g.maxTurns)
	}

	player := g.current
	g.turns++
	hand := g.hands[player]

	if hand.Empty() {
		g.bus.Publish(TurnSkippedEvent{Player: player, turn: g.turns})
		g.advance()
		return nil
	}

	var err error
	switch g.state {
	case NormalPlay:
		err = g.playNormal(player, hand)
	case Challenged:
		err = g.playChallenged(player, hand)
	}
	if err != nil {
		return err
	}

	g.advance()
	return nil
}

// playNormal plays a single card. A royal puts the pile into contested
// status with the acting player as challenger.
func (g *Game) playNormal(player int, hand *Hand) error {
	card, _ := hand.PopTop()
	g.pile.Push(card)
	g.bus.Publish(CardPlayedEvent{Player: player, Card: card, PileSize: g.pile.Len(), turn: g.turns})

	if card.IsRoyal() {
		g.state = Challenged
		g.challenger = player
		g.chances = card.Rank.ChanceCards()
		g.bus.Publish(ChallengeStartedEvent{Challenger: player, Card: card, Chances: g.chances, turn: g.turns})
	}
	return nil
}

// playChallenged plays chance cards one at a time until the challenge
// resolves or this player can no longer act. After each card the slap
// check runs first: a slap awards the pile and aborts the challenge
// outright, whatever chances remain. Failing that, a royal makes the
// acting player the new challenger and passes the obligation on. If the
// hand empties early the outstanding chances are inherited by the next
// player in rotation.
func (g *Game) playChallenged(player int, hand *Hand) error {
	for g.chances > 0 && !hand.Empty() {
		card, _ := hand.PopTop()
		g.pile.Push(card)
		g.chances--
		g.bus.Publish(CardPlayedEvent{
			Player:           player,
			Card:             card,
			PileSize:         g.pile.Len(),
			ChancesRemaining: g.chances,
			turn:             g.turns,
		})

		if g.pile.Slappable() {
			return g.resolveSlap()
		}

		if card.IsRoyal() {
			g.challenger = player
			g.chances = card.Rank.ChanceCards()
			g.bus.Publish(ChallengeStartedEvent{Challenger: player, Card: card, Chances: g.chances, turn: g.turns})
			return nil
		}
	}

	if g.chances == 0 {
		// Challenge resolved by exhaustion: the whole pile goes to the
		// challenger, who may well be empty-handed by now.
		return g.awardPile(g.challenger, AwardChallenge)
	}
	return nil
}

// resolveSlap asks the arbiter for a winner and hands them the pile. The
// arbiter's answer is validated defensively; an out-of-range index fails
// the run rather than corrupting hand state.
func (g *Game) resolveSlap() error {
	winner := g.arbiter.ChooseSlapper(g.pile.Cards(), g.HandSizes())
	if winner < 0 || winner >= len(g.hands) {
		return fmt.Errorf("%w: slap arbiter returned player %d, want 0..%d",
			ErrConfiguration, winner, len(g.hands)-1)
	}
	g.bus.Publish(SlapEvent{Winner: winner, PileSize: g.pile.Len(), turn: g.turns})
	return g.awardPile(winner, AwardSlap)
}

// awardPile transfers the entire pile to the bottom of one hand, clears
// the challenge state and returns the engine to normal play. The card
// conservation check runs after every transfer.
func (g *Game) awardPile(player int, reason AwardReason) error {
	cards := g.pile.TakeAll()
	g.hands[player].ReceivePile(cards)

	g.state = NormalPlay
	g.challenger = noChallenger
	g.chances = 0

	g.bus.Publish(PileAwardedEvent{Player: player, Cards: len(cards), Reason: reason, turn: g.turns})
	return g.checkConservation()
}

// checkTermination moves the engine to GameOver when exactly one player
// holds a non-empty hand.
func (g *Game) checkTermination() bool {
	nonEmpty := 0
	winner := noChallenger
	for i, h := range g.hands {
		if !h.Empty() {
			nonEmpty++
			winner = i
		}
	}
	if nonEmpty != 1 {
		return false
	}
	g.state = GameOver
	g.winner = winner
	g.bus.Publish(GameOverEvent{Winner: winner, turn: g.turns})
	return true
}

// checkConservation verifies that the multiset of cards across all hands
// plus the pile still equals the dealt deck.
func (g *Game) checkConservation() error {
	var seen cardSet
	count := 0
	for _, h := range g.hands {
		for _, c := range h.Cards() {
			if seen.add(c) {
				return fmt.Errorf("%w: duplicate card %s", ErrInvariant, c)
			}
			count++
		}
	}
	for _, c := range g.pile.Cards() {
		if seen.add(c) {
			return fmt.Errorf("%w: duplicate card %s", ErrInvariant, c)
		}
		count++
	}
	if count != g.cardCount || seen != g.fullSet {
		return fmt.Errorf("%w: %d cards in play, dealt %d", ErrInvariant, count, g.cardCount)
	}
	return nil
}

func (g *Game) advance() {
	g.current = (g.current + 1) % len(g.hands)
}
