package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// InclusiveBox converts a bounding box whose far corner is itself a covered
// pixel (x1,y1 included) into a half-open image.Rectangle.
func InclusiveBox(x0, y0, x1, y1 int) image.Rectangle {
	rect := Normalize(image.Rect(x0, y0, x1, y1))
	rect.Max.X++
	rect.Max.Y++
	return rect
}

// MarginBox is the inclusive box [margin, margin, w-margin, h-margin]
// used for shapes inscribed in a w×h canvas.
func MarginBox(width, height, marginPx int) image.Rectangle {
	return InclusiveBox(marginPx, marginPx, width-marginPx, height-marginPx)
}

// Center returns the midpoint of rect, rounded down.
func Center(rect image.Rectangle) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in the bottom-right of rect.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Max.X-widthPx, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

// FitAspect returns the largest rectangle with the aspect ratio of
// (widthPx,heightPx) that fits into rect, centered on both axes.
func FitAspect(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx <= 0 || heightPx <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	outW := rect.Dx()
	outH := outW * heightPx / widthPx
	if outH > rect.Dy() {
		outH = rect.Dy()
		outW = outH * widthPx / heightPx
	}
	x := rect.Min.X + (rect.Dx()-outW)/2
	y := rect.Min.Y + (rect.Dy()-outH)/2
	return image.Rect(x, y, x+outW, y+outH)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
