package render

import (
	"image"
	"image/color"
)

// Drawer is what artwork draws through. Canvas is the only implementation;
// artwork never touches the pixel buffer directly.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground(c color.Color)

	// Shape primitives. Boxes are half-open rectangles; use
	// layout.InclusiveBox for boxes whose far corner is a covered pixel.
	FillEllipse(box image.Rectangle, c color.Color)
	StrokeRect(box image.Rectangle, widthPx int, c color.Color)

	// Text is an overlay: on error nothing has been drawn and the error
	// tells whether it can be skipped (see IsSkippable).
	DrawTextCentered(text string, center image.Point, style TextStyle) (TextMetrics, error)

	// DrawImageInRect scales img to the largest aspect-preserving
	// rectangle inside rect.
	DrawImageInRect(img image.Image, rect image.Rectangle)
}

// TextStyle describes how to render text. Every line is centered on the
// anchor horizontally.
type TextStyle struct {
	Color       color.Color
	Size        int // font size in pixels; 0 means DefaultFontSize
	LineSpacing int // extra pixels between lines
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
	Lines      int
}
