package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"obsidion/events"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventEnvelope wraps a forwarded domain event
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

// EventForwarder republishes in-process domain events to NATS
type EventForwarder struct {
	publisher MessagePublisher
	now       func() time.Time
}

// NewEventForwarder creates a forwarder publishing through publisher
func NewEventForwarder(publisher MessagePublisher) *EventForwarder {
	return &EventForwarder{
		publisher: publisher,
		now:       time.Now,
	}
}

// Register subscribes the forwarder to every domain event type on bus
func (f *EventForwarder) Register(bus *events.Bus) {
	for _, t := range events.AllEventTypes {
		bus.Subscribe(t, f.Forward)
	}
}

// Forward publishes one event. Failures are logged; forwarding is best
// effort and never affects the command that raised the event.
func (f *EventForwarder) Forward(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).WithField("eventType", event.Type()).Error("Failed to marshal event")
		return
	}

	envelope := EventEnvelope{
		EventID:       uuid.NewString(),
		EventType:     string(event.Type()),
		Timestamp:     f.now().UTC(),
		SourceService: "obsidion",
		Payload:       payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		log.WithError(err).Error("Failed to marshal event envelope")
		return
	}

	subject := EventSubject(event.Type())
	if err := f.publisher.Publish(ctx, subject, data); err != nil {
		log.WithFields(log.Fields{
			"subject": subject,
			"eventId": envelope.EventID,
			"error":   err,
		}).Warn("Failed to forward event")
	}
}
