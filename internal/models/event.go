package models

import "time"

// Order event types published to the broker.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDeleted       = "order.deleted"
)

// OrderEvent describes a committed change to an order.
type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    string      `json:"order_id"`
	ProductID  string      `json:"product_id"`
	Quantity   int         `json:"quantity"`
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status,omitempty"`
	StockDelta int         `json:"stock_delta"`
	OccurredAt time.Time   `json:"occurred_at"`
}
