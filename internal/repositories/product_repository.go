package repositories

import (
	"context"

	"storetrack/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// GetForUpdate reads a product and locks its row until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	// AdjustStock adds delta (which may be negative) to the product's stock.
	AdjustStock(ctx context.Context, id string, delta int) error
	Count(ctx context.Context) (int64, error)
}
