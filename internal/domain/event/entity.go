package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("event title must not be empty")
	ErrInvalidType     = errors.New("invalid event type")
	ErrInvalidStatus   = errors.New("invalid event status")
	ErrInvalidDates    = errors.New("event end date precedes start date")
	ErrInvalidCapacity = errors.New("max capacity must not be negative")
)

type Event struct {
	id               uuid.UUID
	ownerID          uuid.UUID
	title            string
	description      *string
	eventType        Type
	status           Status
	startDate        *time.Time
	endDate          *time.Time
	venueName        *string
	venueAddress     *string
	maxCapacity      *int32
	budgetTotalCents int64
	isPublic         bool
	createdAt        time.Time
	updatedAt        time.Time
}

type NewEventParams struct {
	OwnerID          uuid.UUID
	Title            string
	Description      *string
	EventType        Type
	StartDate        *time.Time
	EndDate          *time.Time
	VenueName        *string
	VenueAddress     *string
	MaxCapacity      *int32
	BudgetTotalCents int64
	IsPublic         bool
}

func NewEvent(p NewEventParams) (*Event, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !p.EventType.IsValid() {
		return nil, ErrInvalidType
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return nil, ErrInvalidDates
	}
	if p.MaxCapacity != nil && *p.MaxCapacity < 0 {
		return nil, ErrInvalidCapacity
	}

	return &Event{
		id:               uuid.New(),
		ownerID:          p.OwnerID,
		title:            title,
		description:      p.Description,
		eventType:        p.EventType,
		status:           StatusPlanning,
		startDate:        p.StartDate,
		endDate:          p.EndDate,
		venueName:        p.VenueName,
		venueAddress:     p.VenueAddress,
		maxCapacity:      p.MaxCapacity,
		budgetTotalCents: p.BudgetTotalCents,
		isPublic:         p.IsPublic,
	}, nil
}

func (e *Event) ID() uuid.UUID            { return e.id }
func (e *Event) OwnerID() uuid.UUID       { return e.ownerID }
func (e *Event) Title() string            { return e.title }
func (e *Event) Description() *string     { return e.description }
func (e *Event) EventType() Type          { return e.eventType }
func (e *Event) Status() Status           { return e.status }
func (e *Event) StartDate() *time.Time    { return e.startDate }
func (e *Event) EndDate() *time.Time      { return e.endDate }
func (e *Event) VenueName() *string       { return e.venueName }
func (e *Event) VenueAddress() *string    { return e.venueAddress }
func (e *Event) MaxCapacity() *int32      { return e.maxCapacity }
func (e *Event) BudgetTotalCents() int64  { return e.budgetTotalCents }
func (e *Event) IsPublic() bool           { return e.isPublic }
func (e *Event) CreatedAt() time.Time     { return e.createdAt }
func (e *Event) UpdatedAt() time.Time     { return e.updatedAt }
