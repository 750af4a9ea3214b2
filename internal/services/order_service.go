package services

import (
	"context"
	"strings"
	"time"

	"storetrack/internal/logging"
	"storetrack/internal/metrics"
	"storetrack/internal/models"
	"storetrack/internal/repositories"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest carries the fields accepted when placing an order.
type CreateOrderRequest struct {
	ProductID     string             `json:"product_id"`
	Quantity      int                `json:"quantity"`
	TotalPrice    decimal.Decimal    `json:"total_price"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Notes         string             `json:"notes"`
	Status        models.OrderStatus `json:"status"`
}

// OrderService handles business logic related to orders, including keeping
// product stock reconciled with order status.
type OrderService struct {
	store     repositories.Store
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(store repositories.Store, publisher EventPublisher) *OrderService {
	return &OrderService{
		store:     store,
		publisher: publisher,
	}
}

// GetAllOrders retrieves orders joined with their product.
func (s *OrderService) GetAllOrders(ctx context.Context, filter models.OrderFilter) ([]models.OrderView, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	orders, err := s.store.Orders().List(ctx, filter)
	if err != nil {
		return nil, storeError("list orders", err, nil)
	}
	return orders, nil
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get order", err, ErrOrderNotFound)
	}
	return order, nil
}

// CreateOrder validates and inserts a new order. Stock is left untouched
// here; it only moves on transitions into or out of cancelled.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	if req.ProductID == "" {
		return nil, ErrProductNotFound
	}
	if _, err := s.store.Products().GetByID(ctx, req.ProductID); err != nil {
		return nil, storeError("get product", err, ErrProductNotFound)
	}
	if err := check(req.Quantity, "min=1", ErrInvalidQuantity); err != nil {
		return nil, err
	}
	if req.TotalPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if err := checkName(req.CustomerName, "required,max=100", ErrInvalidCustomerName); err != nil {
		return nil, err
	}
	if err := checkName(req.CustomerPhone, "required,max=20", ErrInvalidCustomerPhone); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	order := &models.Order{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		TotalPrice:    req.TotalPrice,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         req.Notes,
		Status:        status,
	}
	if err := s.store.Orders().Create(ctx, order); err != nil {
		return nil, storeError("create order", err, nil)
	}

	metrics.OrdersCreated.Inc()
	publishOrderEvent(s.publisher, models.OrderEvent{
		Type:      models.EventOrderCreated,
		OrderID:   order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		ToStatus:  order.Status,
	})
	return order, nil
}

// UpdateOrderStatus moves an order to a new status and applies the matching
// stock change to its product. Both writes commit together or not at all.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var (
		updated *models.Order
		from    models.OrderStatus
		delta   int
	)
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		order, err := tx.Orders().GetForUpdate(ctx, id)
		if err != nil {
			return storeError("lock order", err, ErrOrderNotFound)
		}
		from = order.Status
		delta = models.StockDelta(order.Status, status, order.Quantity)
		if delta != 0 {
			if err := adjustStock(ctx, tx, order.ProductID, delta); err != nil {
				return err
			}
		}
		if err := tx.Orders().UpdateStatus(ctx, order.ID, status); err != nil {
			return storeError("update order status", err, ErrOrderNotFound)
		}
		order.Status = status
		order.UpdatedAt = time.Now()
		updated = order
		return nil
	})
	if err != nil {
		return nil, storeError("update order status", err, nil)
	}

	metrics.OrderTransitions.WithLabelValues(string(from), string(status)).Inc()
	if action := models.TransitionAction(from, status); action != models.StockNone {
		metrics.StockAdjustments.WithLabelValues(string(action)).Inc()
	}
	logging.Info().
		Str("order_id", id).
		Str("from", string(from)).
		Str("to", string(status)).
		Int("stock_delta", delta).
		Msg("order status updated")

	publishOrderEvent(s.publisher, models.OrderEvent{
		Type:       models.EventOrderStatusChanged,
		OrderID:    updated.ID,
		ProductID:  updated.ProductID,
		Quantity:   updated.Quantity,
		FromStatus: from,
		ToStatus:   status,
		StockDelta: delta,
	})
	return updated, nil
}

// DeleteOrder removes an order. An order that still holds stock gives its
// quantity back to the product first.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	var (
		deleted *models.Order
		delta   int
	)
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		order, err := tx.Orders().GetForUpdate(ctx, id)
		if err != nil {
			return storeError("lock order", err, ErrOrderNotFound)
		}
		if order.Status.HoldsStock() {
			delta = order.Quantity
			if err := adjustStock(ctx, tx, order.ProductID, delta); err != nil {
				return err
			}
		}
		if err := tx.Orders().Delete(ctx, order.ID); err != nil {
			return storeError("delete order", err, ErrOrderNotFound)
		}
		deleted = order
		return nil
	})
	if err != nil {
		return storeError("delete order", err, nil)
	}

	metrics.OrdersDeleted.Inc()
	if delta != 0 {
		metrics.StockAdjustments.WithLabelValues(string(models.StockRelease)).Inc()
	}
	logging.Info().Str("order_id", id).Int("stock_delta", delta).Msg("order deleted")

	publishOrderEvent(s.publisher, models.OrderEvent{
		Type:       models.EventOrderDeleted,
		OrderID:    deleted.ID,
		ProductID:  deleted.ProductID,
		Quantity:   deleted.Quantity,
		FromStatus: deleted.Status,
		StockDelta: delta,
	})
	return nil
}

// adjustStock locks the product row and applies delta, refusing to take
// stock below zero.
func adjustStock(ctx context.Context, tx repositories.Store, productID string, delta int) error {
	product, err := tx.Products().GetForUpdate(ctx, productID)
	if err != nil {
		return storeError("lock product", err, ErrProductNotFound)
	}
	if product.Stock+delta < 0 {
		return ErrInsufficientStock
	}
	return storeError("adjust stock", tx.Products().AdjustStock(ctx, productID, delta), ErrProductNotFound)
}
