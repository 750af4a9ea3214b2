package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is wrapped by every repository error caused by a missing row.
var ErrNotFound = errors.New("record not found")

// Store groups the repositories that share one backing database.
type Store interface {
	Products() ProductRepository
	Orders() OrderRepository
	// WithinTransaction runs fn against a Store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}
