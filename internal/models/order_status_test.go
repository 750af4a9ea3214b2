package models_test

import (
	"testing"

	"storetrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range models.OrderStatuses {
		assert.True(t, s.Valid(), "status %s should be valid", s)
	}
	for _, s := range []models.OrderStatus{"", "processing", "delivered", "PENDING"} {
		assert.False(t, s.Valid(), "status %q should be invalid", s)
	}
}

func TestStockDelta(t *testing.T) {
	testCases := []struct {
		from, to models.OrderStatus
		action   models.StockAction
		delta    int
	}{
		{models.StatusPending, models.StatusCancelled, models.StockRelease, 3},
		{models.StatusShipped, models.StatusCancelled, models.StockRelease, 3},
		{models.StatusCancelled, models.StatusPending, models.StockCommit, -3},
		{models.StatusCancelled, models.StatusShipped, models.StockCommit, -3},
		{models.StatusPending, models.StatusShipped, models.StockNone, 0},
		{models.StatusShipped, models.StatusPending, models.StockNone, 0},
		{models.StatusPending, models.StatusPending, models.StockNone, 0},
		{models.StatusShipped, models.StatusShipped, models.StockNone, 0},
		{models.StatusCancelled, models.StatusCancelled, models.StockNone, 0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.action, models.TransitionAction(tc.from, tc.to))
			assert.Equal(t, tc.delta, models.StockDelta(tc.from, tc.to, 3))
		})
	}
}

func TestProduct_StockLevel(t *testing.T) {
	assert.Equal(t, models.StockOutOfStock, (&models.Product{Stock: 0, MinStock: 2}).StockLevel())
	assert.Equal(t, models.StockLow, (&models.Product{Stock: 2, MinStock: 2}).StockLevel())
	assert.Equal(t, models.StockInStock, (&models.Product{Stock: 3, MinStock: 2}).StockLevel())
	assert.True(t, (&models.Product{Stock: 1, MinStock: 1}).IsLowStock())
	assert.False(t, (&models.Product{Stock: 5, MinStock: 1}).IsLowStock())
}
