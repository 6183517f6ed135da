package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/orientalgrid-web/sos-guardian-pro/internal/render/layout"
)

// pixelSink is the part of a framebuffer device the preview writes to.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// FBPreview shows each finished asset on a Linux framebuffer, letterboxed
// and scaled with nearest-neighbour sampling.
type FBPreview struct {
	dev    *fb.Device
	screen pixelSink
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// OpenFBPreview opens the framebuffer device, e.g. /dev/fb0.
func OpenFBPreview(device string) (*FBPreview, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, err
	}
	return &FBPreview{dev: dev, screen: dev}, nil
}

// Show blits img to the screen, replacing whatever was there.
func (p *FBPreview) Show(img image.Image) {
	if p == nil || p.screen == nil || img == nil {
		return
	}
	blit(p.screen, img)
	if p.Logger != nil {
		b := img.Bounds()
		p.Logger.Infof("fb", "previewed %dx%d", b.Dx(), b.Dy())
	}
}

func (p *FBPreview) Close() {
	if p == nil || p.dev == nil {
		return
	}
	p.dev.Close()
	p.dev = nil
	p.screen = nil
}

// blit letterboxes src into dst on black. Transparent pixels show black.
func blit(dst pixelSink, src image.Image) {
	screen := dst.Bounds()
	srcBounds := src.Bounds()
	target := layout.FitAspect(screen, srcBounds.Dx(), srcBounds.Dy())
	black := color.RGBA{A: 0xFF}
	for y := screen.Min.Y; y < screen.Max.Y; y++ {
		for x := screen.Min.X; x < screen.Max.X; x++ {
			if !image.Pt(x, y).In(target) {
				dst.Set(x, y, black)
				continue
			}
			sx := srcBounds.Min.X + (x-target.Min.X)*srcBounds.Dx()/target.Dx()
			sy := srcBounds.Min.Y + (y-target.Min.Y)*srcBounds.Dy()/target.Dy()
			r, g, b, _ := src.At(sx, sy).RGBA()
			dst.Set(x, y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}
