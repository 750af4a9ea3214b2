package services

import (
	"context"
	"time"

	"storetrack/internal/models"
	"storetrack/internal/repositories"
)

const (
	revenueWindow     = 7 * 24 * time.Hour
	recentOrdersLimit = 5
)

// ReportService builds read-only summaries over products and orders.
type ReportService struct {
	store repositories.Store
	now   func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(store repositories.Store) *ReportService {
	return &ReportService{
		store: store,
		now:   time.Now,
	}
}

// Dashboard gathers the counters shown on the admin front page.
func (s *ReportService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var (
		dash models.Dashboard
		err  error
	)
	if dash.TotalProducts, err = s.store.Products().Count(ctx); err != nil {
		return nil, storeError("count products", err, nil)
	}
	if dash.TotalOrders, err = s.store.Orders().Count(ctx, models.OrderFilter{}); err != nil {
		return nil, storeError("count orders", err, nil)
	}
	if dash.PendingOrders, err = s.store.Orders().Count(ctx, models.OrderFilter{Status: models.StatusPending}); err != nil {
		return nil, storeError("count pending orders", err, nil)
	}
	if dash.WeeklyRevenue, err = s.store.Orders().RevenueSince(ctx, s.now().Add(-revenueWindow)); err != nil {
		return nil, storeError("sum revenue", err, nil)
	}

	lowStock, err := s.store.Products().List(ctx, models.ProductFilter{LowStockOnly: true})
	if err != nil {
		return nil, storeError("list low stock products", err, nil)
	}
	dash.LowStockProducts = withStockStatus(lowStock)

	if dash.RecentOrders, err = s.store.Orders().List(ctx, models.OrderFilter{Limit: recentOrdersLimit}); err != nil {
		return nil, storeError("list recent orders", err, nil)
	}
	return &dash, nil
}
