package services_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"storetrack/internal/config"
	"storetrack/internal/database"
	"storetrack/internal/logging"
	"storetrack/internal/models"
	"storetrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newSQLiteStore(t *testing.T) repositories.Store {
	t.Helper()
	db, err := database.Open(config.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repositories.NewGORMStore(db)
}

// forEachStore runs fn against a fresh GORM (SQLite) store and a fresh memory store.
func forEachStore(t *testing.T, fn func(t *testing.T, store repositories.Store)) {
	t.Run("gorm", func(t *testing.T) { fn(t, newSQLiteStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, repositories.NewMemoryStore()) })
}

func seedProduct(t *testing.T, store repositories.Store, stock, minStock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: "Laptop", Price: decimal.NewFromInt(1200), Stock: stock, MinStock: minStock}
	require.NoError(t, store.Products().Create(context.Background(), p))
	return p
}

func seedOrder(t *testing.T, store repositories.Store, productID string, quantity int, status models.OrderStatus) *models.Order {
	t.Helper()
	o := &models.Order{
		ProductID:     productID,
		Quantity:      quantity,
		TotalPrice:    decimal.NewFromInt(int64(quantity) * 1200),
		CustomerName:  "Sara Ahmadi",
		CustomerPhone: "09120000000",
		Status:        status,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, store.Orders().Create(context.Background(), o))
	return o
}

func stockOf(t *testing.T, store repositories.Store, productID string) int {
	t.Helper()
	p, err := store.Products().GetByID(context.Background(), productID)
	require.NoError(t, err)
	return p.Stock
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(payload interface{}) error {
	args := m.Called(payload)
	return args.Error(0)
}
