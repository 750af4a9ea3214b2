package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storetrack_orders_created_total",
		Help: "Total number of orders created.",
	})

	OrdersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storetrack_orders_deleted_total",
		Help: "Total number of orders deleted.",
	})

	OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storetrack_order_status_transitions_total",
		Help: "Committed order status transitions by source and target status.",
	}, []string{"from", "to"})

	// StockAdjustments counts stock mutations caused by order changes,
	// labelled "release" or "commit".
	StockAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storetrack_stock_adjustments_total",
		Help: "Stock adjustments applied by order reconciliation.",
	}, []string{"action"})

	LowStockAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storetrack_low_stock_alerts_total",
		Help: "Order events that left a product at or below its minimum stock.",
	})
)

// Handler exposes the default registry in Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
