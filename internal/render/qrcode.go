package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"

	"github.com/framed-app/framed/internal/render/layout"
)

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int, fg, bg color.Color) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	return q.Image(sizePx), nil
}

// drawQRBadge places the code for payload in the top-right corner.
func drawQRBadge(dst draw.Image, payload string, l Layout, fg, bg color.Color) error {
	img, err := GenerateQRCodeImage(payload, l.QRSize, fg, bg)
	if err != nil || img == nil {
		return err
	}
	size := img.Bounds().Size()
	rect := layout.AnchorTopRight(layout.Inset(dst.Bounds(), l.QRInset), size.X, size.Y)
	draw.Draw(dst, rect, img, img.Bounds().Min, draw.Over)
	return nil
}
