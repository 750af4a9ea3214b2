package repositories

import (
	"context"
	"sync"

	"storetrack/internal/models"
)

type memoryData struct {
	mu       sync.RWMutex
	products map[string]models.Product
	orders   map[string]models.Order
}

// MemoryStore is an in-memory implementation of Store, used for local runs
// without a database and in tests.
type MemoryStore struct {
	data *memoryData
	inTx bool
}

// NewMemoryStore creates a new, empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: &memoryData{
			products: make(map[string]models.Product),
			orders:   make(map[string]models.Order),
		},
	}
}

// Products returns the product repository.
func (s *MemoryStore) Products() ProductRepository {
	return &MemoryProductRepository{store: s}
}

// Orders returns the order repository.
func (s *MemoryStore) Orders() OrderRepository {
	return &MemoryOrderRepository{store: s}
}

// WithinTransaction runs fn while holding the store's write lock. When fn
// fails, every change it made is discarded.
func (s *MemoryStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	products := make(map[string]models.Product, len(s.data.products))
	for id, p := range s.data.products {
		products[id] = p
	}
	orders := make(map[string]models.Order, len(s.data.orders))
	for id, o := range s.data.orders {
		orders[id] = o
	}

	if err := fn(&MemoryStore{data: s.data, inTx: true}); err != nil {
		s.data.products = products
		s.data.orders = orders
		return err
	}
	return nil
}

// Inside a transaction the write lock is already held.
func (s *MemoryStore) rlock() func() {
	if s.inTx {
		return func() {}
	}
	s.data.mu.RLock()
	return s.data.mu.RUnlock
}

func (s *MemoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.data.mu.Lock()
	return s.data.mu.Unlock
}
