package infra

// qrcode.go — QR symbol rasterization using skip2/go-qrcode.
// The symbol geometry is fixed by the visual-QR fiscal spec: module box size
// 10 px, quiet-zone border 5 modules, minimum symbol version 1 with the
// version auto-incremented to fit the payload, black on white. Callers must
// not assume a fixed output size.

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEncoding is returned when the symbol encoder cannot fit the content
// even at the maximum version, or receives malformed input. Encoding is a
// one-shot operation: the error is reported, never retried.
var ErrEncoding = errors.New("qr: no se pudo codificar el contenido")

// QREncoder renders payload text into a PNG QR symbol.
type QREncoder struct {
	boxSize int // pixels per module
	border  int // quiet zone, in modules
}

func NewQREncoder(boxSize, border int) *QREncoder {
	if boxSize <= 0 {
		boxSize = 10
	}
	if border < 0 {
		border = 5
	}
	return &QREncoder{boxSize: boxSize, border: border}
}

// Encode returns the PNG bytes of the QR symbol for texto.
func (e *QREncoder) Encode(texto string) ([]byte, error) {
	q, err := qrcode.New(texto, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	q.DisableBorder = true

	// Rasterize module-by-module so the box size and border hold exactly,
	// instead of letting the library scale to a requested pixel size.
	modules := q.Bitmap()
	side := len(modules)*e.boxSize + 2*e.border*e.boxSize
	img := image.NewGray(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	offset := e.border * e.boxSize
	for my, row := range modules {
		for mx, dark := range row {
			if !dark {
				continue
			}
			for dy := 0; dy < e.boxSize; dy++ {
				for dx := 0; dx < e.boxSize; dx++ {
					img.SetGray(offset+mx*e.boxSize+dx, offset+my*e.boxSize+dy, color.Gray{Y: 0})
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}
