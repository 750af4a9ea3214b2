package models

import "github.com/shopspring/decimal"

// Dashboard summarizes the warehouse for the admin front page.
type Dashboard struct {
	TotalProducts    int64           `json:"total_products"`
	TotalOrders      int64           `json:"total_orders"`
	PendingOrders    int64           `json:"pending_orders"`
	WeeklyRevenue    decimal.Decimal `json:"weekly_revenue"`
	LowStockProducts []Product       `json:"low_stock_products"`
	RecentOrders     []OrderView     `json:"recent_orders"`
}
