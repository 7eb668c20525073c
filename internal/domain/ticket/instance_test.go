//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"eventdeck/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	ttID := uuid.New()
	eventID := uuid.New()
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	inst := ticket.NewInstance(ttID, eventID, "1700000000000-0", issuedAt)

	assert.NotEqual(t, uuid.Nil, inst.ID)
	assert.Equal(t, ttID, inst.TicketTypeID)
	assert.Equal(t, eventID, inst.EventID)
	assert.Equal(t, ticket.NewCode(ttID, inst.ID, "1700000000000-0"), inst.CodePayload)
	assert.Equal(t, ticket.InstanceAvailable, inst.Status)
	assert.Nil(t, inst.ArtifactLocator)
	assert.Equal(t, issuedAt, inst.IssuedAt)
}

func TestInstanceRedeem(t *testing.T) {
	newAvailable := func() *ticket.Instance {
		return ticket.NewInstance(uuid.New(), uuid.New(), "salt", time.Now())
	}

	t.Run("available to redeemed", func(t *testing.T) {
		inst := newAvailable()
		require.NoError(t, inst.Redeem())
		assert.Equal(t, ticket.InstanceRedeemed, inst.Status)
	})

	t.Run("redeeming twice fails", func(t *testing.T) {
		inst := newAvailable()
		require.NoError(t, inst.Redeem())
		assert.ErrorIs(t, inst.Redeem(), ticket.ErrAlreadyRedeemed)
		assert.Equal(t, ticket.InstanceRedeemed, inst.Status)
	})

	t.Run("void instances cannot be redeemed", func(t *testing.T) {
		inst := newAvailable()
		inst.Status = ticket.InstanceVoid
		assert.ErrorIs(t, inst.Redeem(), ticket.ErrInstanceVoid)
		assert.Equal(t, ticket.InstanceVoid, inst.Status)
	})
}
