// Package artifact renders ticket code payloads as scannable images.
package artifact

import (
	"eventdeck/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

// Artifact image size in pixels. Matches the dimensions scanners are
// calibrated against; changing it invalidates printed collateral.
const imageSize = 256

const contentType = "image/png"

var ErrEncodeFailed = errs.New("failed to encode artifact")

type QREncoder struct{}

func NewQREncoder() *QREncoder {
	return &QREncoder{}
}

// Encode renders payload as a PNG QR image. Deterministic for a given
// payload and encoding parameters.
func (e *QREncoder) Encode(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrEncodeFailed)
	}
	return png, nil
}

// Key derives the storage key for a payload's artifact. Keys are stable
// per payload, so re-uploads overwrite instead of accumulating.
func (e *QREncoder) Key(payload string) string {
	return "qr/" + payload + ".png"
}

func (e *QREncoder) ContentType() string {
	return contentType
}
