package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a customer order for a single product.
type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID     string          `json:"product_id" gorm:"type:varchar(36);not null;index"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
	CustomerName  string          `json:"customer_name" gorm:"type:varchar(100);not null;index"`
	CustomerPhone string          `json:"customer_phone" gorm:"type:varchar(20);not null"`
	Notes         string          `json:"notes" gorm:"type:text"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:pending;index"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderView is an order joined with the name and price of its product.
// ProductName and ProductPrice are nil when the product row is gone.
type OrderView struct {
	Order
	ProductName  *string             `json:"product_name"`
	ProductPrice decimal.NullDecimal `json:"product_price"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	Status OrderStatus // exact match when set
	Search string      // substring of the order ID or customer name
	Since  time.Time   // created at or after, when non-zero
	Limit  int         // 0 means no limit
}
