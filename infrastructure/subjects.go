package infrastructure

import (
	"fmt"
	"time"

	"obsidion/events"
	"obsidion/models"
)

// JetStream layout
const (
	NewsStream   = "OBSIDION_NEWS"
	EventsStream = "OBSIDION_EVENTS"

	newsSubjectPrefix  = "obsidion.news"
	eventSubjectPrefix = "obsidion.events"

	newsMaxAge   = 7 * 24 * time.Hour
	eventsMaxAge = 24 * time.Hour
)

// NewsSubject is where publishers put items of category
func NewsSubject(category models.NewsCategory) string {
	return fmt.Sprintf("%s.%s", newsSubjectPrefix, category)
}

// EventSubject is where a domain event type is forwarded to
func EventSubject(eventType events.EventType) string {
	return fmt.Sprintf("%s.%s", eventSubjectPrefix, eventType)
}

// NewsSubjects lists the subjects of every news category
func NewsSubjects() []string {
	subjects := make([]string, 0, len(models.NewsCategories))
	for _, c := range models.NewsCategories {
		subjects = append(subjects, NewsSubject(c))
	}
	return subjects
}

// EventSubjects lists the subjects of every forwarded event type
func EventSubjects() []string {
	subjects := make([]string, 0, len(events.AllEventTypes))
	for _, t := range events.AllEventTypes {
		subjects = append(subjects, EventSubject(t))
	}
	return subjects
}

// EnsureNewsStream creates the stream news publishers write to
func (c *NATSClient) EnsureNewsStream() error {
	return c.EnsureStream(NewsStream, NewsSubjects(), newsMaxAge)
}

// EnsureEventStream creates the stream forwarded events are stored in
func (c *NATSClient) EnsureEventStream() error {
	return c.EnsureStream(EventsStream, EventSubjects(), eventsMaxAge)
}
