// Package memledger provides an in-memory capacity ledger with the same
// admission semantics as the Postgres ledger. It backs unit tests and local
// development without a database; the check-and-increment is atomic under a
// single mutex per ledger.
package memledger

import (
	"context"
	"sync"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownTicketType = errs.New("unknown ticket type")

type entry struct {
	total int32
	sold  int32
}

type Ledger struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

func New() *Ledger {
	return &Ledger{entries: make(map[uuid.UUID]*entry)}
}

// Register seeds a ticket type's counters. Re-registering replaces them.
func (l *Ledger) Register(ticketTypeID uuid.UUID, total, sold int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[ticketTypeID] = &entry{total: total, sold: sold}
}

func (l *Ledger) Reserve(_ context.Context, ticketTypeID uuid.UUID, qty int32) (ticket.Reservation, error) {
	if qty <= 0 {
		return ticket.Reservation{}, ticket.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ticketTypeID]
	if !ok {
		return ticket.Reservation{}, ErrUnknownTicketType
	}
	if remaining := e.total - e.sold; qty > remaining {
		return ticket.Reservation{}, &ticket.CapacityExceededError{
			TicketTypeID: ticketTypeID.String(),
			Requested:    qty,
			Remaining:    remaining,
		}
	}
	e.sold += qty
	return ticket.Reservation{TicketTypeID: ticketTypeID, Quantity: qty}, nil
}

func (l *Ledger) Release(_ context.Context, res ticket.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[res.TicketTypeID]
	if !ok {
		return ErrUnknownTicketType
	}
	if res.Quantity > e.sold {
		return ticket.ErrSoldExceedsTotal
	}
	e.sold -= res.Quantity
	return nil
}

// Sold reports the current sold counter, for tests and diagnostics.
func (l *Ledger) Sold(ticketTypeID uuid.UUID) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.entries[ticketTypeID]; ok {
		return e.sold
	}
	return 0
}
