package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("booking name must not be empty")
	ErrInvalidType   = errors.New("invalid booking type")
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrNegativeFee   = errors.New("fee must not be negative")
)

type Type string

const (
	TypeArtist    Type = "artist"
	TypeSpeaker   Type = "speaker"
	TypePerformer Type = "performer"
	TypeDJ        Type = "dj"
	TypeBand      Type = "band"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeArtist, TypeSpeaker, TypePerformer, TypeDJ, TypeBand:
		return true
	default:
		return false
	}
}

func (t Type) String() string { return string(t) }

type Status string

const (
	StatusInquiry     Status = "inquiry"
	StatusNegotiating Status = "negotiating"
	StatusConfirmed   Status = "confirmed"
	StatusCancelled   Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusInquiry, StatusNegotiating, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Booking covers artists, speakers and other booked acts for an event.
type Booking struct {
	ID              uuid.UUID
	EventID         uuid.UUID
	Name            string
	BookingType     Type
	ContactEmail    *string
	ContactPhone    *string
	AgentName       *string
	FeeAmountCents  *int64
	FeeCurrency     string
	Status          Status
	PerformanceDate *time.Time
	ContractSigned  bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewBookingParams struct {
	EventID         uuid.UUID
	Name            string
	BookingType     Type
	ContactEmail    *string
	ContactPhone    *string
	AgentName       *string
	FeeAmountCents  *int64
	FeeCurrency     string
	PerformanceDate *time.Time
}

func NewBooking(p NewBookingParams) (*Booking, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !p.BookingType.IsValid() {
		return nil, ErrInvalidType
	}
	if p.FeeAmountCents != nil && *p.FeeAmountCents < 0 {
		return nil, ErrNegativeFee
	}
	currency := p.FeeCurrency
	if currency == "" {
		currency = "USD"
	}

	return &Booking{
		ID:              uuid.New(),
		EventID:         p.EventID,
		Name:            name,
		BookingType:     p.BookingType,
		ContactEmail:    p.ContactEmail,
		ContactPhone:    p.ContactPhone,
		AgentName:       p.AgentName,
		FeeAmountCents:  p.FeeAmountCents,
		FeeCurrency:     currency,
		Status:          StatusInquiry,
		PerformanceDate: p.PerformanceDate,
	}, nil
}
