package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// InstallQRCode returns a QR code pointing at the app's install URL, dark
// modules in fg on a white background. An empty url yields (nil, nil).
func InstallQRCode(url string, sizePx int, fg color.Color) (image.Image, error) {
	if url == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	if fg != nil {
		qrCode.ForegroundColor = fg
	}
	qrCode.BackgroundColor = color.White

	img := qrCode.Image(sizePx)
	if img == nil {
		return nil, errors.New("qr code image is empty")
	}
	return img, nil
}
