package repositories

import (
	"context"
	"time"

	"storetrack/internal/models"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	List(ctx context.Context, filter models.OrderFilter) ([]models.OrderView, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// GetForUpdate reads an order and locks its row until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter models.OrderFilter) (int64, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
	// RevenueSince sums total_price of non-cancelled orders created at or after since.
	RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}
