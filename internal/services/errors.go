package services

import (
	"errors"
	"fmt"

	"storetrack/internal/repositories"
)

// ValidationError reports input the caller can correct.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// PersistenceError wraps a failure of the backing store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidStatus        = &ValidationError{Code: "invalid_status", Message: "status must be one of pending, shipped, cancelled"}
	ErrInvalidQuantity      = &ValidationError{Code: "invalid_quantity", Message: "quantity must be at least 1"}
	ErrInvalidPrice         = &ValidationError{Code: "invalid_price", Message: "total price must not be negative"}
	ErrInvalidCustomerName  = &ValidationError{Code: "invalid_customer_name", Message: "customer name is required and must be at most 100 characters"}
	ErrInvalidCustomerPhone = &ValidationError{Code: "invalid_customer_phone", Message: "customer phone is required and must be at most 20 characters"}
	ErrInsufficientStock    = &ValidationError{Code: "insufficient_stock", Message: "not enough stock to reinstate the order"}

	ErrInvalidProductName  = &ValidationError{Code: "invalid_product_name", Message: "product name is required"}
	ErrInvalidProductPrice = &ValidationError{Code: "invalid_product_price", Message: "price must not be negative"}
	ErrInvalidStock        = &ValidationError{Code: "invalid_stock", Message: "stock must be a non-negative integer"}
	ErrInvalidMinStock     = &ValidationError{Code: "invalid_min_stock", Message: "min stock must be a non-negative integer"}
	ErrProductInUse        = &ValidationError{Code: "product_in_use", Message: "product is referenced by existing orders"}

	ErrOrderNotFound   = &NotFoundError{Code: "order_not_found", Message: "order not found"}
	ErrProductNotFound = &NotFoundError{Code: "product_not_found", Message: "product not found"}
)

// storeError turns a repository error into the service taxonomy: missing rows
// become notFound, anything else a PersistenceError.
func storeError(op string, err error, notFound *NotFoundError) error {
	if err == nil {
		return nil
	}
	var (
		ve *ValidationError
		ne *NotFoundError
		pe *PersistenceError
	)
	if errors.As(err, &ve) || errors.As(err, &ne) || errors.As(err, &pe) {
		return err
	}
	if notFound != nil && errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return &PersistenceError{Op: op, Err: err}
}
