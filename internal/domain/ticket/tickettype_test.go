//go:build unit

package ticket_test

import (
	"strings"
	"testing"
	"time"

	"eventdeck/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTicketType(t *testing.T, total int32) *ticket.TicketType {
	t.Helper()
	tt, err := ticket.NewTicketType(ticket.NewTicketTypeParams{
		EventID:       uuid.New(),
		Name:          "General Admission",
		PriceCents:    5000,
		QuantityTotal: total,
		Tier:          ticket.TierRegular,
	})
	require.NoError(t, err)
	return tt
}

func TestNewTicketType(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		tt := newTicketType(t, 100)
		assert.NotEqual(t, uuid.Nil, tt.ID())
		assert.Equal(t, "General Admission", tt.Name())
		assert.Equal(t, int32(100), tt.Remaining())
		assert.True(t, tt.IsActive())
	})

	t.Run("trims the name", func(t *testing.T) {
		tt, err := ticket.NewTicketType(ticket.NewTicketTypeParams{
			EventID:       uuid.New(),
			Name:          "  VIP  ",
			QuantityTotal: 10,
			Tier:          ticket.TierVIP,
		})
		require.NoError(t, err)
		assert.Equal(t, "VIP", tt.Name())
	})

	cases := []struct {
		name   string
		mutate func(*ticket.NewTicketTypeParams)
		errIs  error
	}{
		{
			name:   "empty name",
			mutate: func(p *ticket.NewTicketTypeParams) { p.Name = "   " },
			errIs:  ticket.ErrEmptyName,
		},
		{
			name:   "invalid tier",
			mutate: func(p *ticket.NewTicketTypeParams) { p.Tier = "platinum" },
			errIs:  ticket.ErrInvalidTier,
		},
		{
			name:   "negative price",
			mutate: func(p *ticket.NewTicketTypeParams) { p.PriceCents = -1 },
			errIs:  ticket.ErrNegativePrice,
		},
		{
			name:   "zero quantity",
			mutate: func(p *ticket.NewTicketTypeParams) { p.QuantityTotal = 0 },
			errIs:  ticket.ErrInvalidQuantity,
		},
		{
			name: "sale end before sale start",
			mutate: func(p *ticket.NewTicketTypeParams) {
				start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
				end := start.Add(-time.Hour)
				p.SaleStart = &start
				p.SaleEnd = &end
			},
			errIs: ticket.ErrInvalidSaleRange,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ticket.NewTicketTypeParams{
				EventID:       uuid.New(),
				Name:          "General Admission",
				PriceCents:    5000,
				QuantityTotal: 100,
				Tier:          ticket.TierRegular,
			}
			tc.mutate(&p)
			_, err := ticket.NewTicketType(p)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestReserveQuantity(t *testing.T) {
	t.Run("admits up to remaining capacity", func(t *testing.T) {
		tt := newTicketType(t, 10)

		require.NoError(t, tt.ReserveQuantity(4))
		assert.Equal(t, int32(6), tt.Remaining())

		require.NoError(t, tt.ReserveQuantity(6))
		assert.Equal(t, int32(0), tt.Remaining())
	})

	t.Run("rejects beyond remaining with capacity details", func(t *testing.T) {
		tt := newTicketType(t, 10)
		require.NoError(t, tt.ReserveQuantity(2))

		err := tt.ReserveQuantity(10)
		require.Error(t, err)

		var capErr *ticket.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, tt.ID().String(), capErr.TicketTypeID)
		assert.Equal(t, int32(10), capErr.Requested)
		assert.Equal(t, int32(8), capErr.Remaining)
		assert.Equal(t, int32(8), tt.Remaining(), "rejected admission must not mutate the counter")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		tt := newTicketType(t, 10)
		assert.ErrorIs(t, tt.ReserveQuantity(0), ticket.ErrInvalidQuantity)
		assert.ErrorIs(t, tt.ReserveQuantity(-1), ticket.ErrInvalidQuantity)
	})
}

func TestReleaseQuantity(t *testing.T) {
	t.Run("undoes a reservation", func(t *testing.T) {
		tt := newTicketType(t, 10)
		require.NoError(t, tt.ReserveQuantity(7))
		require.NoError(t, tt.ReleaseQuantity(7))
		assert.Equal(t, int32(10), tt.Remaining())
	})

	t.Run("rejects releasing more than sold", func(t *testing.T) {
		tt := newTicketType(t, 10)
		require.NoError(t, tt.ReserveQuantity(3))
		assert.ErrorIs(t, tt.ReleaseQuantity(4), ticket.ErrSoldExceedsTotal)
	})
}

func TestReconstructTicketType(t *testing.T) {
	t.Run("rejects sold above total", func(t *testing.T) {
		_, err := ticket.ReconstructTicketType(
			uuid.New(), uuid.New(), "GA", nil, 5000, 10, 11,
			ticket.TierRegular, nil, nil, true, time.Now(), time.Now(),
		)
		assert.ErrorIs(t, err, ticket.ErrSoldExceedsTotal)
	})
}

func TestNewCode(t *testing.T) {
	ttID := uuid.New()
	instID := uuid.New()

	code := ticket.NewCode(ttID, instID, "1700000000000-3")
	parts := strings.Split(code, "-")

	// uuid-uuid-millis-slot: 5 dash groups per UUID, then the two salt parts.
	require.Len(t, parts, 12)
	assert.True(t, strings.HasPrefix(code, ttID.String()+"-"))
	assert.Contains(t, code, instID.String())
	assert.True(t, strings.HasSuffix(code, "-1700000000000-3"))
}
