package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"storetrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	store *MemoryStore
}

func matchOrder(o models.Order, filter models.OrderFilter) bool {
	if filter.Status != "" && o.Status != filter.Status {
		return false
	}
	if filter.Search != "" && !strings.Contains(o.ID, filter.Search) && !strings.Contains(o.CustomerName, filter.Search) {
		return false
	}
	if !filter.Since.IsZero() && o.CreatedAt.Before(filter.Since) {
		return false
	}
	return true
}

// List returns orders joined with their product, newest first.
func (r *MemoryOrderRepository) List(_ context.Context, filter models.OrderFilter) ([]models.OrderView, error) {
	defer r.store.rlock()()

	orderList := make([]models.OrderView, 0, len(r.store.data.orders))
	for _, o := range r.store.data.orders {
		if !matchOrder(o, filter) {
			continue
		}
		view := models.OrderView{Order: o}
		if p, ok := r.store.data.products[o.ProductID]; ok {
			name := p.Name
			view.ProductName = &name
			view.ProductPrice = decimal.NewNullDecimal(p.Price)
		}
		orderList = append(orderList, view)
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	if filter.Limit > 0 && len(orderList) > filter.Limit {
		orderList = orderList[:filter.Limit]
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (*models.Order, error) {
	defer r.store.rlock()()

	order, ok := r.store.data.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found: %w", id, ErrNotFound)
	}
	return &order, nil
}

// GetForUpdate returns an order by its ID. Transactions on a MemoryStore
// are already exclusive.
func (r *MemoryOrderRepository) GetForUpdate(ctx context.Context, id string) (*models.Order, error) {
	return r.GetByID(ctx, id)
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	defer r.store.lock()()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	r.store.data.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MemoryOrderRepository) UpdateStatus(_ context.Context, id string, status models.OrderStatus) error {
	defer r.store.lock()()

	order, ok := r.store.data.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s not found for status update: %w", id, ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.store.data.orders[id] = order
	return nil
}

// Delete removes an order by its ID.
func (r *MemoryOrderRepository) Delete(_ context.Context, id string) error {
	defer r.store.lock()()

	if _, ok := r.store.data.orders[id]; !ok {
		return fmt.Errorf("order with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	delete(r.store.data.orders, id)
	return nil
}

// Count returns the number of orders matching the filter.
func (r *MemoryOrderRepository) Count(_ context.Context, filter models.OrderFilter) (int64, error) {
	defer r.store.rlock()()

	var total int64
	for _, o := range r.store.data.orders {
		if matchOrder(o, filter) {
			total++
		}
	}
	return total, nil
}

// CountByProduct returns the number of orders referencing a product.
func (r *MemoryOrderRepository) CountByProduct(_ context.Context, productID string) (int64, error) {
	defer r.store.rlock()()

	var total int64
	for _, o := range r.store.data.orders {
		if o.ProductID == productID {
			total++
		}
	}
	return total, nil
}

// RevenueSince sums the total price of non-cancelled orders created since the given time.
func (r *MemoryOrderRepository) RevenueSince(_ context.Context, since time.Time) (decimal.Decimal, error) {
	defer r.store.rlock()()

	revenue := decimal.Zero
	for _, o := range r.store.data.orders {
		if o.Status == models.StatusCancelled || o.CreatedAt.Before(since) {
			continue
		}
		revenue = revenue.Add(o.TotalPrice)
	}
	return revenue, nil
}
