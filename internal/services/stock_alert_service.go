package services

import (
	"context"
	"errors"

	"storetrack/internal/logging"
	"storetrack/internal/metrics"
	"storetrack/internal/models"
	"storetrack/internal/repositories"
)

// StockAlertService watches order events for products that fell to or below
// their reorder threshold.
type StockAlertService struct {
	store repositories.Store
}

// NewStockAlertService creates a new StockAlertService.
func NewStockAlertService(store repositories.Store) *StockAlertService {
	return &StockAlertService{
		store: store,
	}
}

// HandleOrderEvent checks the product named by the event and reports whether
// it is low on stock. Events for products that no longer exist are ignored.
func (s *StockAlertService) HandleOrderEvent(ctx context.Context, event models.OrderEvent) (bool, error) {
	if event.ProductID == "" {
		return false, nil
	}
	product, err := s.store.Products().GetByID(ctx, event.ProductID)
	if err != nil {
		err = storeError("get product", err, ErrProductNotFound)
		if errors.Is(err, ErrProductNotFound) {
			return false, nil
		}
		return false, err
	}
	if !product.IsLowStock() {
		return false, nil
	}

	metrics.LowStockAlerts.Inc()
	logging.Warn().
		Str("product_id", product.ID).
		Str("product", product.Name).
		Int("stock", product.Stock).
		Int("min_stock", product.MinStock).
		Str("event", event.Type).
		Msg("product at or below minimum stock")
	return true, nil
}
