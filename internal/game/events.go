package game

import (
	"github.com/stjordanis/ratscrew/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for the turn-resolution engine. These are the
// structured observability hook: the engine publishes them instead of
// printing anything itself.
const (
	EventTypeCardPlayed       EventType = "card_played"
	EventTypeTurnSkipped      EventType = "turn_skipped"
	EventTypeChallengeStarted EventType = "challenge_started"
	EventTypeSlap             EventType = "slap"
	EventTypePileAwarded      EventType = "pile_awarded"
	EventTypeGameOver         EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Turn() int
}

// CardPlayedEvent is published after each individual card lands on the pile,
// in normal play and during challenge sequences alike.
type CardPlayedEvent struct {
	Player           int
	Card             deck.Card
	PileSize         int
	ChancesRemaining int // after this card; zero when no challenge is active
	turn             int
}

func (e CardPlayedEvent) EventType() EventType { return EventTypeCardPlayed }
func (e CardPlayedEvent) Turn() int            { return e.turn }

// TurnSkippedEvent is published when an empty-handed player's turn slot is
// consumed with no action. The player stays in the rotation.
type TurnSkippedEvent struct {
	Player int
	turn   int
}

func (e TurnSkippedEvent) EventType() EventType { return EventTypeTurnSkipped }
func (e TurnSkippedEvent) Turn() int            { return e.turn }

// ChallengeStartedEvent is published when a royal puts the pile into
// contested status, both for a fresh challenge and for a counter-challenge
// played mid-sequence (the acting player becomes the new challenger).
type ChallengeStartedEvent struct {
	Challenger int
	Card       deck.Card
	Chances    int
	turn       int
}

func (e ChallengeStartedEvent) EventType() EventType { return EventTypeChallengeStarted }
func (e ChallengeStartedEvent) Turn() int            { return e.turn }

// SlapEvent is published when the pile becomes slappable and the arbiter
// picks a winner. Any active challenge is aborted.
type SlapEvent struct {
	Winner   int
	PileSize int
	turn     int
}

func (e SlapEvent) EventType() EventType { return EventTypeSlap }
func (e SlapEvent) Turn() int            { return e.turn }

// AwardReason says why a pile was transferred to a hand.
type AwardReason string

const (
	AwardChallenge AwardReason = "challenge" // chances exhausted, challenger collects
	AwardSlap      AwardReason = "slap"      // arbiter's chosen slapper collects
)

// PileAwardedEvent is published when the entire pile is transferred to the
// bottom of a player's hand and cleared.
type PileAwardedEvent struct {
	Player int
	Cards  int
	Reason AwardReason
	turn   int
}

func (e PileAwardedEvent) EventType() EventType { return EventTypePileAwarded }
func (e PileAwardedEvent) Turn() int            { return e.turn }

// GameOverEvent is published once, when exactly one player holds cards.
type GameOverEvent struct {
	Winner int
	turn   int
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Turn() int            { return e.turn }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// SubscriberFunc adapts a plain function to the EventSubscriber interface.
type SubscriberFunc func(event GameEvent)

// OnEvent calls the wrapped function.
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }
