package render

import (
	"image/color"
	"testing"
)

func TestInstallQRCodeEmptyURL(t *testing.T) {
	img, err := InstallQRCode("", 128, nil)
	if err != nil || img != nil {
		t.Errorf("InstallQRCode(\"\") = %v, %v; want nil, nil", img, err)
	}
}

func TestInstallQRCode(t *testing.T) {
	img, err := InstallQRCode("https://saferoute.example/install", 0, testNavy)
	if err != nil {
		t.Fatalf("InstallQRCode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != defaultQRCodeSizePx || b.Dy() != defaultQRCodeSizePx {
		t.Errorf("bounds = %v, want %dpx square", b, defaultQRCodeSizePx)
	}
	// The quiet zone is background.
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("corner = %v, want white", color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)})
	}
}
