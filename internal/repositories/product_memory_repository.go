package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"storetrack/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	store *MemoryStore
}

// List returns products matching the filter, newest first.
func (r *MemoryProductRepository) List(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	defer r.store.rlock()()

	productList := make([]models.Product, 0, len(r.store.data.products))
	for _, p := range r.store.data.products {
		if filter.Search != "" && !strings.Contains(p.Name, filter.Search) {
			continue
		}
		if filter.LowStockOnly && !p.IsLowStock() {
			continue
		}
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].CreatedAt.After(productList[j].CreatedAt)
	})
	if filter.Limit > 0 && len(productList) > filter.Limit {
		productList = productList[:filter.Limit]
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	defer r.store.rlock()()

	product, ok := r.store.data.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found: %w", id, ErrNotFound)
	}
	return &product, nil
}

// GetForUpdate returns a product by its ID. Transactions on a MemoryStore
// are already exclusive.
func (r *MemoryProductRepository) GetForUpdate(ctx context.Context, id string) (*models.Product, error) {
	return r.GetByID(ctx, id)
}

// Create adds a new product.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	defer r.store.lock()()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.store.data.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(_ context.Context, product *models.Product) error {
	defer r.store.lock()()

	existing, ok := r.store.data.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s not found for update: %w", product.ID, ErrNotFound)
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	r.store.data.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	defer r.store.lock()()

	if _, ok := r.store.data.products[id]; !ok {
		return fmt.Errorf("product with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	delete(r.store.data.products, id)
	return nil
}

// AdjustStock adds delta to the product's stock.
func (r *MemoryProductRepository) AdjustStock(_ context.Context, id string, delta int) error {
	defer r.store.lock()()

	product, ok := r.store.data.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s not found for stock adjustment: %w", id, ErrNotFound)
	}
	product.Stock += delta
	product.UpdatedAt = time.Now()
	r.store.data.products[id] = product
	return nil
}

// Count returns the number of products.
func (r *MemoryProductRepository) Count(_ context.Context) (int64, error) {
	defer r.store.rlock()()
	return int64(len(r.store.data.products)), nil
}
