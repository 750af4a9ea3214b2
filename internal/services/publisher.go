package services

import (
	"time"

	"storetrack/internal/logging"
	"storetrack/internal/models"
)

// EventPublisher delivers order events to a message broker.
type EventPublisher interface {
	PublishJSON(payload interface{}) error
}

// publishOrderEvent sends an event after its change has committed. A failed
// publish is logged and never fails the request.
func publishOrderEvent(publisher EventPublisher, event models.OrderEvent) {
	if publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if err := publisher.PublishJSON(event); err != nil {
		logging.Warn().Err(err).
			Str("event", event.Type).
			Str("order_id", event.OrderID).
			Msg("failed to publish order event")
		return
	}
	logging.Debug().Str("event", event.Type).Str("order_id", event.OrderID).Msg("published order event")
}
