//go:build unit

package memledger_test

import (
	"context"
	"sync"
	"testing"

	"eventdeck/internal/domain/ticket"
	"eventdeck/internal/infra/memledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("admits within remaining capacity", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		l.Register(id, 10, 0)

		res, err := l.Reserve(ctx, id, 6)
		require.NoError(t, err)
		assert.Equal(t, id, res.TicketTypeID)
		assert.Equal(t, int32(6), res.Quantity)
		assert.Equal(t, int32(6), l.Sold(id))
	})

	t.Run("rejects over remaining capacity with observed remaining", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		l.Register(id, 10, 2)

		_, err := l.Reserve(ctx, id, 10)
		require.Error(t, err)

		var capErr *ticket.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int32(10), capErr.Requested)
		assert.Equal(t, int32(8), capErr.Remaining)
		assert.Equal(t, int32(2), l.Sold(id), "failed admission must not mutate the counter")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		l.Register(id, 10, 0)

		_, err := l.Reserve(ctx, id, 0)
		assert.ErrorIs(t, err, ticket.ErrInvalidQuantity)
	})

	t.Run("rejects unknown ticket type", func(t *testing.T) {
		l := memledger.New()
		_, err := l.Reserve(ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, memledger.ErrUnknownTicketType)
	})

	t.Run("two competing reservations admit exactly one winner", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		l.Register(id, 10, 0)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = l.Reserve(ctx, id, 6)
			}()
		}
		wg.Wait()

		var failures int
		for _, err := range errs {
			if err != nil {
				var capErr *ticket.CapacityExceededError
				require.ErrorAs(t, err, &capErr)
				failures++
			}
		}
		assert.Equal(t, 1, failures, "6+6 against 10 must admit exactly one")
		assert.Equal(t, int32(6), l.Sold(id))
	})

	t.Run("never oversells under parallel load", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		const total = int32(100)
		l.Register(id, total, 0)

		var wg sync.WaitGroup
		var mu sync.Mutex
		var admitted int32
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := l.Reserve(ctx, id, 3); err == nil {
					mu.Lock()
					admitted += 3
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, l.Sold(id), total)
		assert.Equal(t, admitted, l.Sold(id))
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("restores reserved capacity", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		l.Register(id, 10, 0)

		res, err := l.Reserve(ctx, id, 7)
		require.NoError(t, err)
		require.NoError(t, l.Release(ctx, res))
		assert.Equal(t, int32(0), l.Sold(id))

		_, err = l.Reserve(ctx, id, 10)
		assert.NoError(t, err, "released capacity must be reservable again")
	})

	t.Run("rejects releasing more than sold", func(t *testing.T) {
		l := memledger.New()
		id := uuid.New()
		l.Register(id, 10, 1)

		err := l.Release(ctx, ticket.Reservation{TicketTypeID: id, Quantity: 5})
		assert.ErrorIs(t, err, ticket.ErrSoldExceedsTotal)
	})
}
