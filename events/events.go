package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventType names a kind of domain event
type EventType string

const (
	EventTypeGuildSettingsChanged EventType = "guild_settings_changed"
	EventTypeAccountLinked        EventType = "account_linked"
	EventTypeAccountUnlinked      EventType = "account_unlinked"
	EventTypeRconProfileChanged   EventType = "rcon_profile_changed"
)

// AllEventTypes lists every event type the bot emits
var AllEventTypes = []EventType{
	EventTypeGuildSettingsChanged,
	EventTypeAccountLinked,
	EventTypeAccountUnlinked,
	EventTypeRconProfileChanged,
}

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GuildSettingsChangedEvent is emitted after a guild preference was written
type GuildSettingsChangedEvent struct {
	GuildID int64  `json:"guild_id"`
	Field   string `json:"field"` // prefix, locale, regional, server or news
}

func (e GuildSettingsChangedEvent) Type() EventType {
	return EventTypeGuildSettingsChanged
}

// AccountLinkedEvent is emitted when a user links a Minecraft account
type AccountLinkedEvent struct {
	UserID int64     `json:"user_id"`
	UUID   uuid.UUID `json:"uuid"`
}

func (e AccountLinkedEvent) Type() EventType {
	return EventTypeAccountLinked
}

// AccountUnlinkedEvent is emitted when a user removes their link
type AccountUnlinkedEvent struct {
	UserID int64 `json:"user_id"`
}

func (e AccountUnlinkedEvent) Type() EventType {
	return EventTypeAccountUnlinked
}

// RconProfileChangedEvent is emitted when a guild saves or resets its profile
type RconProfileChangedEvent struct {
	GuildID int64 `json:"guild_id"`
	Deleted bool  `json:"deleted"`
}

func (e RconProfileChangedEvent) Type() EventType {
	return EventTypeRconProfileChanged
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit calls every handler of the event's type on its own goroutine.
// A panicking handler is logged and does not affect the others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event")

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds events raised inside a unit of work until the
// transaction commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits the pending events. Called after a successful commit.
func (b *TransactionalBus) Flush(ctx context.Context) {
	log.WithField("pendingEventCount", len(b.pending)).Debug("Flushing pending events")

	// handlers outlive the transaction, so they get a fresh context
	eventCtx := context.WithoutCancel(ctx)
	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops the pending events. Called after a rollback.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
