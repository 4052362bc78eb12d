// Package qr adapts the third-party QR encoder behind the share.QRRenderer
// boundary. Low error correction is a deliberate trade: it maximizes byte
// capacity at the cost of scan resilience.
package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// Size is the fixed render box in logical units.
	Size = 256

	// MaxPayloadLen mirrors the share-URL budget; a version-40 code at Low
	// error correction tops out around 2953 bytes.
	MaxPayloadLen = 2900
)

// ErrTooLong is returned when the text exceeds QR capacity. Callers show the
// copy-link fallback instead of a code.
var ErrTooLong = errors.New("text too long for QR code")

// Renderer renders share URLs as PNG QR codes.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// Render encodes text as a Size×Size PNG.
func (Renderer) Render(text string) ([]byte, error) {
	if len(text) > MaxPayloadLen {
		return nil, fmt.Errorf("%w: %d chars, max is %d", ErrTooLong, len(text), MaxPayloadLen)
	}
	png, err := qrcode.Encode(text, qrcode.Low, Size)
	if err != nil {
		return nil, fmt.Errorf("generate QR code: %w", err)
	}
	return png, nil
}
