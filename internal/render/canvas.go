package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/orientalgrid-web/sos-guardian-pro/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter ellipse.
const kappa = 0.5522847498

// Canvas is an offscreen RGBA buffer for a single output file.
type Canvas struct {
	img    *image.RGBA
	fonts  *Fonts
	opaque bool
}

var _ Drawer = (*Canvas)(nil)

// NewCanvas allocates a fully transparent width×height canvas.
func NewCanvas(width, height int, fonts *Fonts) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height)), fonts: fonts}, nil
}

// NewOpaqueCanvas allocates a canvas filled with bg. Its alpha channel is
// forced to opaque so the PNG is written without one.
func NewOpaqueCanvas(width, height int, bg color.Color, fonts *Fonts) (*Canvas, error) {
	c, err := NewCanvas(width, height, fonts)
	if err != nil {
		return nil, err
	}
	c.opaque = true
	c.FillBackground(bg)
	return c, nil
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the underlying buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) FillBackground(col color.Color) {
	if c.opaque {
		col = opaqueColor(col)
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// FillEllipse fills the ellipse inscribed in box with anti-aliased edges.
func (c *Canvas) FillEllipse(box image.Rectangle, col color.Color) {
	box = layout.Normalize(box)
	if box.Empty() {
		return
	}
	bounds := c.img.Bounds()

	cx := float32(box.Min.X+box.Max.X) / 2
	cy := float32(box.Min.Y+box.Max.Y) / 2
	rx := float32(box.Dx()) / 2
	ry := float32(box.Dy()) / 2
	kx := rx * kappa
	ky := ry * kappa

	var r vector.Rasterizer
	r.Reset(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(cx+rx, cy)
	r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	r.ClosePath()
	r.Draw(c.img, bounds, image.NewUniform(col), image.Point{})
}

// StrokeRect draws a widthPx outline along the inside of box.
func (c *Canvas) StrokeRect(box image.Rectangle, widthPx int, col color.Color) {
	box = layout.Normalize(box)
	if widthPx <= 0 || box.Empty() {
		return
	}
	src := &image.Uniform{C: col}
	if 2*widthPx >= box.Dx() || 2*widthPx >= box.Dy() {
		draw.Draw(c.img, box, src, image.Point{}, draw.Over)
		return
	}
	bands := []image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+widthPx),
		image.Rect(box.Min.X, box.Max.Y-widthPx, box.Max.X, box.Max.Y),
		image.Rect(box.Min.X, box.Min.Y+widthPx, box.Min.X+widthPx, box.Max.Y-widthPx),
		image.Rect(box.Max.X-widthPx, box.Min.Y+widthPx, box.Max.X, box.Max.Y-widthPx),
	}
	for _, band := range bands {
		draw.Draw(c.img, band, src, image.Point{}, draw.Over)
	}
}

// DrawImageInRect letterboxes img into rect with nearest-neighbour sampling
// so hard-edged sources like QR codes stay crisp.
func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle) {
	if img == nil {
		return
	}
	rect = layout.FitAspect(rect, img.Bounds().Dx(), img.Bounds().Dy())
	if rect.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(c.img, rect, img, img.Bounds(), xdraw.Over, nil)
}

// WritePNG encodes the canvas. Opaque canvases are written as RGB.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func opaqueColor(col color.Color) color.Color {
	r, g, b, _ := col.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}
