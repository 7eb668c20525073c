package ticket

import (
	"fmt"

	"github.com/google/uuid"
)

// NewCode derives the opaque code payload embedded in a ticket's scannable
// artifact. The format is deterministic; global uniqueness comes from the
// freshly generated instance ID, not from the salt.
func NewCode(ticketTypeID, instanceID uuid.UUID, salt string) string {
	return fmt.Sprintf("%s-%s-%s", ticketTypeID, instanceID, salt)
}

// Reservation is a provisional claim against a ticket type's remaining
// capacity, returned by the ledger and consumed by Release on compensation.
type Reservation struct {
	TicketTypeID uuid.UUID
	Quantity     int32
}
