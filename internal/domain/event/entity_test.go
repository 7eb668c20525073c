//go:build unit

package event_test

import (
	"testing"
	"time"

	"eventdeck/internal/domain/event"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(event.Event{}),
	cmpopts.EquateEmpty(),
}

func validParams() event.NewEventParams {
	return event.NewEventParams{
		OwnerID:          uuid.New(),
		Title:            "Summer Music Festival",
		EventType:        event.TypeConcert,
		BudgetTotalCents: 1_000_000,
	}
}

func TestNewEvent(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		p := validParams()
		actual, err := event.NewEvent(p)
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, err := event.NewEvent(p)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Event mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, event.StatusPlanning, actual.Status())
		assert.False(t, actual.IsPublic())
	})

	t.Run("trims the title", func(t *testing.T) {
		p := validParams()
		p.Title = "  Summer Music Festival  "
		e, err := event.NewEvent(p)
		require.NoError(t, err)
		assert.Equal(t, "Summer Music Festival", e.Title())
	})

	cases := []struct {
		name   string
		mutate func(*event.NewEventParams)
		errIs  error
	}{
		{
			name:   "empty title",
			mutate: func(p *event.NewEventParams) { p.Title = "   " },
			errIs:  event.ErrEmptyTitle,
		},
		{
			name:   "invalid event type",
			mutate: func(p *event.NewEventParams) { p.EventType = "rave" },
			errIs:  event.ErrInvalidType,
		},
		{
			name: "end date before start date",
			mutate: func(p *event.NewEventParams) {
				start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
				end := start.Add(-24 * time.Hour)
				p.StartDate = &start
				p.EndDate = &end
			},
			errIs: event.ErrInvalidDates,
		},
		{
			name: "negative max capacity",
			mutate: func(p *event.NewEventParams) {
				capacity := int32(-1)
				p.MaxCapacity = &capacity
			},
			errIs: event.ErrInvalidCapacity,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			actual, err := event.NewEvent(p)
			require.Nil(t, actual)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
