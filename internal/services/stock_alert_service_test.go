package services_test

import (
	"context"
	"testing"

	"storetrack/internal/metrics"
	"storetrack/internal/models"
	"storetrack/internal/repositories"
	"storetrack/internal/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockAlertService_HandleOrderEvent(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := services.NewStockAlertService(store)
	ctx := context.Background()

	plenty := seedProduct(t, store, 50, 5)
	atThreshold := seedProduct(t, store, 5, 5)

	before := testutil.ToFloat64(metrics.LowStockAlerts)

	alerted, err := service.HandleOrderEvent(ctx, models.OrderEvent{Type: models.EventOrderStatusChanged, ProductID: plenty.ID})
	require.NoError(t, err)
	assert.False(t, alerted)

	alerted, err = service.HandleOrderEvent(ctx, models.OrderEvent{Type: models.EventOrderStatusChanged, ProductID: atThreshold.ID})
	require.NoError(t, err)
	assert.True(t, alerted)

	alerted, err = service.HandleOrderEvent(ctx, models.OrderEvent{Type: models.EventOrderDeleted, ProductID: "gone"})
	require.NoError(t, err)
	assert.False(t, alerted)

	alerted, err = service.HandleOrderEvent(ctx, models.OrderEvent{Type: models.EventOrderCreated})
	require.NoError(t, err)
	assert.False(t, alerted)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LowStockAlerts))
}
