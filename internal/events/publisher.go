package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/medibook/booking-platform/pkg/logging"
)

// Queue is the transport the publisher writes to.
type Queue interface {
	Send(ctx context.Context, body string) error
}

// Publisher serializes booking events onto a queue. Publishing is
// best-effort: the caller decides whether a failure is fatal.
type Publisher struct {
	queue  Queue
	logger *logging.Logger
}

// NewPublisher creates a queue-backed publisher.
func NewPublisher(queue Queue, logger *logging.Logger) *Publisher {
	if queue == nil {
		panic("events: queue cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Publisher{queue: queue, logger: logger}
}

// Publish sends the event, stamping OccurredAt if unset.
func (p *Publisher) Publish(ctx context.Context, event BookingEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal event: %w", err)
	}
	if err := p.queue.Send(ctx, string(body)); err != nil {
		return err
	}

	p.logger.Debug("booking event published", "type", event.Type, "booking_id", event.BookingID)
	return nil
}
