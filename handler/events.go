package handler

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	subjectDatasetLoaded  = "insights.dataset.loaded"
	subjectReportExported = "insights.report.exported"
)

// EventPublisher publishes engine lifecycle events to NATS. A nil publisher
// is valid and publishes nothing, so the engine runs without a broker.
type EventPublisher struct {
	conn *nats.Conn
}

// NewEventPublisher connects to NATS at the given URL.
func NewEventPublisher(url string) (*EventPublisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &EventPublisher{conn: nc}, nil
}

// Close closes the NATS connection.
func (p *EventPublisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

// EventMessage is the envelope published for every event.
type EventMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
	PostCount int       `json:"postCount,omitempty"`
	Kind      string    `json:"kind,omitempty"`
}

// PublishDatasetLoaded announces a successful corpus load.
func (p *EventPublisher) PublishDatasetLoaded(postCount int) {
	p.publish(subjectDatasetLoaded, EventMessage{
		Timestamp: time.Now(),
		Source:    "insights-service",
		Version:   "1.0",
		PostCount: postCount,
	})
}

// PublishReportExported announces an export, full or partial.
func (p *EventPublisher) PublishReportExported(kind string) {
	p.publish(subjectReportExported, EventMessage{
		Timestamp: time.Now(),
		Source:    "insights-service",
		Version:   "1.0",
		Kind:      kind,
	})
}

func (p *EventPublisher) publish(subject string, message EventMessage) {
	if p == nil || p.conn == nil {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal %s event: %v", subject, err)
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		log.Printf("[ERROR] Failed to publish %s event: %v", subject, err)
		return
	}
	log.Printf("[INFO] Published event to NATS: %s", subject)
}
