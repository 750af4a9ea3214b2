package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storetrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

func (r *GORMOrderRepository) filtered(ctx context.Context, filter models.OrderFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Table("orders")
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(orders.id LIKE ? OR orders.customer_name LIKE ?)", pattern, pattern)
	}
	if !filter.Since.IsZero() {
		query = query.Where("orders.created_at >= ?", filter.Since)
	}
	return query
}

// List retrieves orders joined with their product, newest first.
func (r *GORMOrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.OrderView, error) {
	query := r.filtered(ctx, filter).
		Select("orders.*, products.name AS product_name, products.price AS product_price").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Order("orders.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	orders := []models.OrderView{}
	if err := query.Scan(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and holds a row lock on it.
func (r *GORMOrderRepository) GetForUpdate(ctx context.Context, id string) (*models.Order, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GORMOrderRepository) first(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create inserts a new order.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus sets the status of an order and bumps its timestamp.
func (r *GORMOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update status of order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for status update: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes an order by its ID.
func (r *GORMOrderRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of orders matching the filter.
func (r *GORMOrderRepository) Count(ctx context.Context, filter models.OrderFilter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// CountByProduct returns the number of orders referencing a product.
func (r *GORMOrderRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders of product %s: %w", productID, err)
	}
	return total, nil
}

// RevenueSince sums the total price of non-cancelled orders created since the given time.
func (r *GORMOrderRepository) RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("SUM(total_price)").
		Where("status <> ? AND created_at >= ?", models.StatusCancelled, since).
		Row().Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}
