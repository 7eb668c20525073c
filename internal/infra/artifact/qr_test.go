//go:build unit

package artifact_test

import (
	"bytes"
	"testing"

	"eventdeck/internal/infra/artifact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQREncoder(t *testing.T) {
	e := artifact.NewQREncoder()

	t.Run("encodes payload as PNG", func(t *testing.T) {
		data, err := e.Encode("tt-1-inst-1-1700000000000-0")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})

	t.Run("deterministic for a given payload", func(t *testing.T) {
		first, err := e.Encode("same-payload")
		require.NoError(t, err)
		second, err := e.Encode("same-payload")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects an empty payload", func(t *testing.T) {
		_, err := e.Encode("")
		assert.ErrorIs(t, err, artifact.ErrEncodeFailed)
	})

	t.Run("key is stable per payload", func(t *testing.T) {
		assert.Equal(t, "qr/payload.png", e.Key("payload"))
		assert.Equal(t, e.Key("payload"), e.Key("payload"))
	})

	t.Run("content type is PNG", func(t *testing.T) {
		assert.Equal(t, "image/png", e.ContentType())
	})
}
