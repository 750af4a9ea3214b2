package repositories

import (
	"context"

	"gorm.io/gorm"
)

// GORMStore is a Store backed by a GORM database handle.
type GORMStore struct {
	db       *gorm.DB
	products *GORMProductRepository
	orders   *GORMOrderRepository
}

// NewGORMStore creates a new GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{
		db:       db,
		products: NewGORMProductRepository(db),
		orders:   NewGORMOrderRepository(db),
	}
}

// Products returns the product repository.
func (s *GORMStore) Products() ProductRepository {
	return s.products
}

// Orders returns the order repository.
func (s *GORMStore) Orders() OrderRepository {
	return s.orders
}

// WithinTransaction runs fn inside a database transaction.
func (s *GORMStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}
