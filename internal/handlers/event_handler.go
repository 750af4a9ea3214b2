package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"storetrack/internal/logging"
	"storetrack/internal/models"
	"storetrack/internal/services"

	"github.com/streadway/amqp"
)

// EventHandler consumes order events delivered by RabbitMQ.
type EventHandler struct {
	alerts *services.StockAlertService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(alerts *services.StockAlertService) *EventHandler {
	return &EventHandler{
		alerts: alerts,
	}
}

// HandleDelivery decodes one order event and runs the stock alert check.
// A body that is not an order event is rejected.
func (h *EventHandler) HandleDelivery(msg amqp.Delivery) error {
	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logging.Warn().Err(err).Uint64("delivery_tag", msg.DeliveryTag).Msg("discarding malformed order event")
		return fmt.Errorf("failed to decode order event: %w", err)
	}

	if _, err := h.alerts.HandleOrderEvent(context.Background(), event); err != nil {
		logging.Error().Err(err).Str("order_id", event.OrderID).Msg("failed to check stock for order event")
		return err
	}
	return nil
}
