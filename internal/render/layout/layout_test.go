package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		padding int
		want    image.Rectangle
	}{
		{"zero padding", image.Rect(0, 0, 10, 10), 0, image.Rect(0, 0, 10, 10)},
		{"negative padding", image.Rect(0, 0, 10, 10), -3, image.Rect(0, 0, 10, 10)},
		{"regular", image.Rect(0, 0, 1280, 720), 50, image.Rect(50, 50, 1230, 670)},
		{"overshoot normalizes", image.Rect(0, 0, 4, 4), 3, image.Rect(1, 1, 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inset(tt.rect, tt.padding); got != tt.want {
				t.Errorf("Inset(%v, %d) = %v, want %v", tt.rect, tt.padding, got, tt.want)
			}
		})
	}
}

func TestInclusiveBox(t *testing.T) {
	got := InclusiveBox(2, 2, 14, 14)
	if want := image.Rect(2, 2, 15, 15); got != want {
		t.Errorf("InclusiveBox = %v, want %v", got, want)
	}
	got = InclusiveBox(14, 14, 2, 2)
	if want := image.Rect(2, 2, 15, 15); got != want {
		t.Errorf("InclusiveBox reversed = %v, want %v", got, want)
	}
}

func TestMarginBox(t *testing.T) {
	tests := []struct {
		size, margin int
		want         image.Rectangle
	}{
		{16, 2, image.Rect(2, 2, 15, 15)},
		{512, 64, image.Rect(64, 64, 449, 449)},
		{96, 0, image.Rect(0, 0, 97, 97)},
	}
	for _, tt := range tests {
		if got := MarginBox(tt.size, tt.size, tt.margin); got != tt.want {
			t.Errorf("MarginBox(%d, %d) = %v, want %v", tt.size, tt.margin, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := Center(image.Rect(0, 0, 1280, 720)); got != image.Pt(640, 360) {
		t.Errorf("Center = %v, want (640,360)", got)
	}
	if got := Center(image.Rect(10, 10, 15, 15)); got != image.Pt(12, 12) {
		t.Errorf("Center odd = %v, want (12,12)", got)
	}
}

func TestAnchorBottomRight(t *testing.T) {
	rect := image.Rect(50, 50, 1230, 670)
	if got, want := AnchorBottomRight(rect, 100, 100), image.Rect(1130, 570, 1230, 670); got != want {
		t.Errorf("AnchorBottomRight = %v, want %v", got, want)
	}
	if got := AnchorBottomRight(image.Rect(0, 0, 10, 10), 40, 40); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("AnchorBottomRight clamp = %v", got)
	}
}

func TestFitAspect(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
		w, h int
		want image.Rectangle
	}{
		{"wide into wide", image.Rect(0, 0, 1920, 1080), 1280, 720, image.Rect(0, 0, 1920, 1080)},
		{"tall into wide", image.Rect(0, 0, 1920, 1080), 720, 1280, image.Rect(656, 0, 1263, 1080)},
		{"square into wide", image.Rect(0, 0, 800, 600), 96, 96, image.Rect(100, 0, 700, 600)},
		{"degenerate", image.Rect(0, 0, 800, 600), 0, 96, image.Rect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitAspect(tt.rect, tt.w, tt.h); got != tt.want {
				t.Errorf("FitAspect = %v, want %v", got, tt.want)
			}
		})
	}
}
