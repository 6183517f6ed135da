package render

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/orientalgrid-web/sos-guardian-pro/internal/assets"
)

func bundledFonts(t *testing.T) *Fonts {
	t.Helper()
	fonts, err := NewFonts(assets.FontTTF)
	if err != nil {
		t.Fatalf("NewFonts: %v", err)
	}
	return fonts
}

func TestFontsFaceIsCachedPerSize(t *testing.T) {
	fonts := bundledFonts(t)
	a, err := fonts.Face(24)
	if err != nil {
		t.Fatalf("Face(24): %v", err)
	}
	b, _ := fonts.Face(24)
	if a != b {
		t.Error("Face(24) returned a new face on second call")
	}
	c, _ := fonts.Face(48)
	if a == c {
		t.Error("Face(48) returned the 24px face")
	}
	if got := a.Metrics().Height.Ceil(); got < 20 || got > 40 {
		t.Errorf("24px face height = %d, want about 24", got)
	}
}

func TestFontsCovers(t *testing.T) {
	fonts := bundledFonts(t)
	for _, text := range []string{"SR", "!", "SafeRoute\n1280x720"} {
		if err := fonts.Covers(text); err != nil {
			t.Errorf("Covers(%q) = %v, want nil", text, err)
		}
	}
	for _, text := range []string{"📍", "👥", "SR📍"} {
		err := fonts.Covers(text)
		if !errors.Is(err, ErrGlyphUnavailable) {
			t.Errorf("Covers(%q) = %v, want ErrGlyphUnavailable", text, err)
		}
	}
}

func TestNewFontsFallsBackToBasicfont(t *testing.T) {
	fonts, err := NewFonts([]byte("not a font"))
	if err == nil {
		t.Fatal("NewFonts accepted garbage")
	}
	face, err := fonts.Face(200)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	if got := face.Metrics().Height.Ceil(); got != 13 {
		t.Errorf("fallback face height = %d, want 13", got)
	}
	if err := fonts.Covers("SR"); err != nil {
		t.Errorf("Covers(SR) = %v", err)
	}
	if err := fonts.Covers("👥"); !errors.Is(err, ErrGlyphUnavailable) {
		t.Errorf("Covers(👥) = %v, want ErrGlyphUnavailable", err)
	}
}

func TestLoadFontFileMissing(t *testing.T) {
	fonts, err := LoadFontFile(filepath.Join(t.TempDir(), "arial.ttf"))
	if !errors.Is(err, ErrFontUnavailable) {
		t.Fatalf("LoadFontFile err = %v, want ErrFontUnavailable", err)
	}
	if _, err := fonts.Face(24); !errors.Is(err, ErrFontUnavailable) {
		t.Errorf("Face err = %v, want ErrFontUnavailable", err)
	}
	if !IsSkippable(err) {
		t.Error("IsSkippable(font error) = false")
	}
}

func TestIsSkippable(t *testing.T) {
	if IsSkippable(nil) {
		t.Error("IsSkippable(nil) = true")
	}
	if IsSkippable(errors.New("disk full")) {
		t.Error("IsSkippable(other) = true")
	}
	if !IsSkippable(ErrGlyphUnavailable) {
		t.Error("IsSkippable(ErrGlyphUnavailable) = false")
	}
}

func TestDrawTextCentered(t *testing.T) {
	c, err := NewCanvas(192, 192, bundledFonts(t))
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	style := TextStyle{Color: testBlue, Size: 48}
	metrics, err := c.DrawTextCentered("SR", image.Pt(96, 96), style)
	if err != nil {
		t.Fatalf("DrawTextCentered: %v", err)
	}
	if metrics.Width <= 0 || metrics.Width >= 192 {
		t.Errorf("Width = %d, want within canvas", metrics.Width)
	}

	minX, maxX, minY, maxY := inkBounds(c.Image())
	if minX > maxX {
		t.Fatal("no ink drawn")
	}
	// Ink is centered within a few pixels on both axes.
	if mid := (minX + maxX) / 2; mid < 90 || mid > 102 {
		t.Errorf("horizontal ink center = %d, want ~96", mid)
	}
	if mid := (minY + maxY) / 2; mid < 84 || mid > 108 {
		t.Errorf("vertical ink center = %d, want ~96", mid)
	}
}

func TestDrawTextMultiLineMetrics(t *testing.T) {
	c, _ := NewCanvas(400, 400, bundledFonts(t))
	center := image.Pt(200, 200)
	single, err := c.DrawTextCentered("SafeRoute", center, TextStyle{Size: 48})
	if err != nil {
		t.Fatalf("DrawTextCentered: %v", err)
	}
	double, err := c.DrawTextCentered("SafeRoute\n1280x720", center, TextStyle{Size: 48, LineSpacing: 8})
	if err != nil {
		t.Fatalf("DrawTextCentered: %v", err)
	}
	if double.Lines != 2 {
		t.Errorf("Lines = %d, want 2", double.Lines)
	}
	if want := 2*single.LineHeight + 8; double.Height != want {
		t.Errorf("Height = %d, want %d", double.Height, want)
	}
}

func TestDrawTextSkipsMissingGlyphWithoutDrawing(t *testing.T) {
	c, _ := NewCanvas(96, 96, bundledFonts(t))
	_, err := c.DrawTextCentered("👥", image.Pt(48, 48), TextStyle{Color: color.White, Size: 48})
	if !errors.Is(err, ErrGlyphUnavailable) {
		t.Fatalf("err = %v, want ErrGlyphUnavailable", err)
	}
	if minX, maxX, _, _ := inkBounds(c.Image()); minX <= maxX {
		t.Error("canvas has ink after a skipped overlay")
	}
}

func TestDrawTextWithoutFonts(t *testing.T) {
	c, _ := NewCanvas(96, 96, nil)
	if _, err := c.DrawTextCentered("!", image.Pt(48, 48), TextStyle{}); !errors.Is(err, ErrFontUnavailable) {
		t.Errorf("err = %v, want ErrFontUnavailable", err)
	}
}

// inkBounds returns the extent of non-transparent pixels; minX > maxX when
// there are none.
func inkBounds(img *image.RGBA) (minX, maxX, minY, maxY int) {
	b := img.Bounds()
	minX, minY = b.Max.X, b.Max.Y
	maxX, maxY = -1, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	return minX, maxX, minY, maxY
}
