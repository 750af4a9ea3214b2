package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock levels reported for a product.
const (
	StockInStock    = "in_stock"
	StockLow        = "low_stock"
	StockOutOfStock = "out_of_stock"
)

// Product represents a product held in the warehouse.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	MinStock    int             `json:"min_stock" gorm:"not null;default:0"`
	StockStatus string          `json:"stock_status" gorm:"-"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsLowStock reports whether the on-hand quantity reached the reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockLevel classifies the product's current stock.
func (p *Product) StockLevel() string {
	switch {
	case p.Stock <= 0:
		return StockOutOfStock
	case p.IsLowStock():
		return StockLow
	default:
		return StockInStock
	}
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Search       string // substring of the product name
	LowStockOnly bool
	Limit        int // 0 means no limit
}
