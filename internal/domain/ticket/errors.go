package ticket

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName        = errors.New("ticket type name must not be empty")
	ErrInvalidTier      = errors.New("invalid ticket tier")
	ErrNegativePrice    = errors.New("ticket price must not be negative")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidSaleRange = errors.New("sale end precedes sale start")
	ErrSoldExceedsTotal = errors.New("quantity sold exceeds quantity total")
	ErrAlreadyRedeemed  = errors.New("ticket instance already redeemed")
	ErrInstanceVoid     = errors.New("ticket instance is void")
)

// CapacityExceededError reports an admission failure together with the
// remaining capacity observed at decision time, so the caller can retry
// with a smaller quantity.
type CapacityExceededError struct {
	TicketTypeID string
	Requested    int32
	Remaining    int32
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded for ticket type %s: requested %d, %d remaining",
		e.TicketTypeID, e.Requested, e.Remaining)
}
