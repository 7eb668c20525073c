package ticket

import (
	"time"

	"github.com/google/uuid"
)

// Instance is one concrete issued ticket. The identifier and code payload
// are fixed at creation; only status and the artifact locator may change
// afterwards.
type Instance struct {
	ID              uuid.UUID
	TicketTypeID    uuid.UUID
	EventID         uuid.UUID
	CodePayload     string
	ArtifactLocator *string
	Status          InstanceStatus
	IssuedAt        time.Time
}

func NewInstance(ticketTypeID, eventID uuid.UUID, salt string, issuedAt time.Time) *Instance {
	id := uuid.New()
	return &Instance{
		ID:           id,
		TicketTypeID: ticketTypeID,
		EventID:      eventID,
		CodePayload:  NewCode(ticketTypeID, id, salt),
		Status:       InstanceAvailable,
		IssuedAt:     issuedAt,
	}
}

func (i *Instance) Redeem() error {
	switch i.Status {
	case InstanceRedeemed:
		return ErrAlreadyRedeemed
	case InstanceVoid:
		return ErrInstanceVoid
	default:
		i.Status = InstanceRedeemed
		return nil
	}
}
