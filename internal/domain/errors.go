package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrDebtExceeded     = errors.New("debt exceeded")
	ErrOutOfStock       = errors.New("out of stock")
	ErrMembersOnly      = errors.New("members only")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StockError names the product that cannot cover a requested quantity.
type StockError struct {
	ProductID int
	Name      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
	}
	return fmt.Sprintf("insufficient stock for %s. Available: %d", e.Name, e.Available)
}

func (e *StockError) Unwrap() error {
	return ErrOutOfStock
}

var taxonomy = []error{
	ErrInvalidArgument, ErrNotFound, ErrConflict, ErrDebtExceeded,
	ErrOutOfStock, ErrMembersOnly, ErrStoreUnavailable,
}

// IsDomainError reports whether err belongs to the error taxonomy above.
func IsDomainError(err error) bool {
	for _, target := range taxonomy {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StoreFailure classifies err as ErrStoreUnavailable unless it already carries
// a domain error. The cause stays in the chain for logging.
func StoreFailure(err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
