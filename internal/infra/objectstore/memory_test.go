//go:build unit

package objectstore_test

import (
	"context"
	"testing"

	"eventdeck/internal/infra"
	"eventdeck/internal/infra/objectstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePut(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and returns a locator", func(t *testing.T) {
		s := objectstore.NewMemoryStore()

		locator, err := s.Put(ctx, "qr/abc.png", []byte("png-bytes"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "mem://qr/abc.png", locator)

		data, ok := s.Get("qr/abc.png")
		require.True(t, ok)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("same key overwrites instead of accumulating", func(t *testing.T) {
		s := objectstore.NewMemoryStore()

		_, err := s.Put(ctx, "qr/abc.png", []byte("v1"), "image/png")
		require.NoError(t, err)
		_, err = s.Put(ctx, "qr/abc.png", []byte("v2"), "image/png")
		require.NoError(t, err)

		assert.Equal(t, 1, s.Len())
		data, _ := s.Get("qr/abc.png")
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("stored bytes are insulated from caller mutation", func(t *testing.T) {
		s := objectstore.NewMemoryStore()

		buf := []byte("original")
		_, err := s.Put(ctx, "qr/abc.png", buf, "image/png")
		require.NoError(t, err)
		buf[0] = 'X'

		data, _ := s.Get("qr/abc.png")
		assert.Equal(t, []byte("original"), data)
	})

	t.Run("injected failure surfaces as storage failure", func(t *testing.T) {
		s := objectstore.NewMemoryStore()
		s.FailKeys = map[string]bool{"qr/bad.png": true}

		_, err := s.Put(ctx, "qr/bad.png", []byte("png-bytes"), "image/png")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStorageFailure))
	})
}
