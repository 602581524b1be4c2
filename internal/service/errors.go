package service

import (
	"errors"
	"fmt"
)

// ErrAlreadyProcessed guards the terminal state: a completed order rejects
// further processing without touching the router or the attempt counter.
var ErrAlreadyProcessed = errors.New("payment order already processed")

// ValidationError marks client input that fails before any lookup or state
// change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NoEligibleMethodsError is returned when the catalog has no enabled method
// admitting the order's amount for its country. The order is still marked
// failed and its attempt counted before this surfaces.
type NoEligibleMethodsError struct {
	Country string
	Amount  int64
}

func (e *NoEligibleMethodsError) Error() string {
	return fmt.Sprintf("no payment methods available for %s with amount %d", e.Country, e.Amount)
}
