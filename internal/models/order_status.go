package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every accepted status.
var OrderStatuses = []OrderStatus{StatusPending, StatusShipped, StatusCancelled}

// Valid reports whether s is one of the accepted statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusCancelled:
		return true
	}
	return false
}

// HoldsStock reports whether an order in this status keeps its quantity
// out of the product's stock.
func (s OrderStatus) HoldsStock() bool {
	return s == StatusPending || s == StatusShipped
}

// StockAction is what a status transition does to the product's stock.
type StockAction string

const (
	StockNone    StockAction = "none"
	StockRelease StockAction = "release" // quantity goes back on the shelf
	StockCommit  StockAction = "commit"  // quantity is taken off the shelf
)

// TransitionAction returns the stock action for moving an order from one
// status to another.
func TransitionAction(from, to OrderStatus) StockAction {
	switch {
	case from == to:
		return StockNone
	case to == StatusCancelled && from.HoldsStock():
		return StockRelease
	case from == StatusCancelled && to.HoldsStock():
		return StockCommit
	default:
		return StockNone
	}
}

// StockDelta returns the signed change to apply to the product's stock when an
// order of the given quantity moves from one status to another.
func StockDelta(from, to OrderStatus, quantity int) int {
	switch TransitionAction(from, to) {
	case StockRelease:
		return quantity
	case StockCommit:
		return -quantity
	}
	return 0
}
