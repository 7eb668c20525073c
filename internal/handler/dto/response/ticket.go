package response

import (
	"time"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/usecase/commands"
	"eventdeck/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketTypeResponse struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"eventId"`
	Name          string     `json:"name"`
	Description   *string    `json:"description,omitempty"`
	PriceCents    int64      `json:"priceCents"`
	QuantityTotal int32      `json:"quantityTotal"`
	QuantitySold  int32      `json:"quantitySold"`
	Remaining     int32      `json:"remaining"`
	Tier          string     `json:"tier"`
	SaleStart     *time.Time `json:"saleStart,omitempty"`
	SaleEnd       *time.Time `json:"saleEnd,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromTicketTypeView(v *queries.TicketTypeView) *TicketTypeResponse {
	return &TicketTypeResponse{
		ID:            v.ID,
		EventID:       v.EventID,
		Name:          v.Name,
		Description:   v.Description,
		PriceCents:    v.PriceCents,
		QuantityTotal: v.QuantityTotal,
		QuantitySold:  v.QuantitySold,
		Remaining:     v.QuantityTotal - v.QuantitySold,
		Tier:          v.Tier,
		SaleStart:     v.SaleStart,
		SaleEnd:       v.SaleEnd,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

type InstanceResponse struct {
	ID              uuid.UUID `json:"id"`
	TicketTypeID    uuid.UUID `json:"ticketTypeId"`
	EventID         uuid.UUID `json:"eventId"`
	CodePayload     string    `json:"codePayload"`
	ArtifactLocator *string   `json:"artifactLocator,omitempty"`
	Status          string    `json:"status"`
	IssuedAt        time.Time `json:"issuedAt"`
}

func FromInstanceView(v *queries.InstanceView) *InstanceResponse {
	return &InstanceResponse{
		ID:              v.ID,
		TicketTypeID:    v.TicketTypeID,
		EventID:         v.EventID,
		CodePayload:     v.CodePayload,
		ArtifactLocator: v.ArtifactLocator,
		Status:          v.Status,
		IssuedAt:        v.IssuedAt,
	}
}

func fromInstance(inst *ticket.Instance) *InstanceResponse {
	return &InstanceResponse{
		ID:              inst.ID,
		TicketTypeID:    inst.TicketTypeID,
		EventID:         inst.EventID,
		CodePayload:     inst.CodePayload,
		ArtifactLocator: inst.ArtifactLocator,
		Status:          string(inst.Status),
		IssuedAt:        inst.IssuedAt,
	}
}

type IssueBatchResponse struct {
	TicketTypeID    uuid.UUID               `json:"ticketTypeId"`
	Requested       int32                   `json:"requested"`
	Issued          int                     `json:"issued"`
	Instances       []*InstanceResponse     `json:"instances"`
	FailedArtifacts []commands.SlotFailure  `json:"failedArtifacts,omitempty"`
}

func FromIssuanceResult(r *commands.IssuanceResult) *IssueBatchResponse {
	instances := make([]*InstanceResponse, len(r.Instances))
	for i, inst := range r.Instances {
		instances[i] = fromInstance(inst)
	}
	return &IssueBatchResponse{
		TicketTypeID:    r.TicketTypeID,
		Requested:       r.Requested,
		Issued:          len(r.Instances),
		Instances:       instances,
		FailedArtifacts: r.FailedArtifacts,
	}
}
