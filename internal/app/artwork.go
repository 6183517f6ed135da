package app

import (
	"fmt"
	"image"

	"github.com/orientalgrid-web/sos-guardian-pro/internal/catalog"
	"github.com/orientalgrid-web/sos-guardian-pro/internal/render"
	"github.com/orientalgrid-web/sos-guardian-pro/internal/render/layout"
)

// Outcome is what drawing an artwork produced besides pixels.
type Outcome struct {
	// OverlaySkipped is the reason the text overlay was left out, if it was.
	OverlaySkipped error
}

// Artwork is one output file: where it goes, the canvas it needs and how
// to draw it.
type Artwork interface {
	Dir() string
	Filename() string
	NewCanvas(fonts *render.Fonts) (*render.Canvas, error)
	Draw(d render.Drawer) (Outcome, error)
}

// overlay draws optional text. Skippable failures become the outcome;
// anything else is returned.
func overlay(d render.Drawer, text string, center image.Point, style render.TextStyle) (Outcome, error) {
	if _, err := d.DrawTextCentered(text, center, style); err != nil {
		if render.IsSkippable(err) {
			return Outcome{OverlaySkipped: err}, nil
		}
		return Outcome{}, fmt.Errorf("draw %q: %w", text, err)
	}
	return Outcome{}, nil
}

func canvasCenter(d render.Drawer) image.Point {
	width, height := d.Size()
	return layout.Center(image.Rect(0, 0, width, height))
}

// ShieldIcon is the main app icon: a blue disc with a white inner disc and
// the product initials on larger sizes.
type ShieldIcon struct{ Spec catalog.IconSpec }

func (ShieldIcon) Dir() string        { return catalog.IconsDir }
func (s ShieldIcon) Filename() string { return s.Spec.Filename }

func (s ShieldIcon) NewCanvas(fonts *render.Fonts) (*render.Canvas, error) {
	return render.NewCanvas(s.Spec.Size, s.Spec.Size, fonts)
}

func (s ShieldIcon) Draw(d render.Drawer) (Outcome, error) {
	blue, err := catalog.ShieldBlue.RGBA()
	if err != nil {
		return Outcome{}, err
	}
	white, err := catalog.White.RGBA()
	if err != nil {
		return Outcome{}, err
	}

	size := s.Spec.Size
	d.FillEllipse(layout.MarginBox(size, size, size/8), blue)
	d.FillEllipse(layout.MarginBox(size, size, size/4), white)

	if size < catalog.IconLabelMinSize {
		return Outcome{}, nil
	}
	return overlay(d, catalog.IconLabel, canvasCenter(d), render.TextStyle{Color: blue, Size: size / 4})
}

// ShortcutIcon is a quick-action launcher icon.
type ShortcutIcon struct{ Spec catalog.ShortcutSpec }

func (ShortcutIcon) Dir() string        { return catalog.IconsDir }
func (s ShortcutIcon) Filename() string { return s.Spec.Filename }

func (s ShortcutIcon) NewCanvas(fonts *render.Fonts) (*render.Canvas, error) {
	return render.NewCanvas(s.Spec.Size, s.Spec.Size, fonts)
}

func (s ShortcutIcon) Draw(d render.Drawer) (Outcome, error) {
	fill, err := s.Spec.Color.RGBA()
	if err != nil {
		return Outcome{}, err
	}
	white, err := catalog.White.RGBA()
	if err != nil {
		return Outcome{}, err
	}

	size := s.Spec.Size
	d.FillEllipse(layout.MarginBox(size, size, 0), fill)
	return overlay(d, s.Spec.Label, canvasCenter(d), render.TextStyle{Color: white, Size: size / 2})
}

// Screenshot is a placeholder app screen: navy background, blue frame,
// product name and resolution, optionally an install QR code.
type Screenshot struct {
	Spec catalog.ScreenshotSpec
	// QR is drawn in the bottom-right corner inside the frame when set.
	QR image.Image
}

func (Screenshot) Dir() string        { return catalog.ScreenshotsDir }
func (s Screenshot) Filename() string { return s.Spec.Filename }

func (s Screenshot) NewCanvas(fonts *render.Fonts) (*render.Canvas, error) {
	navy, err := catalog.Navy.RGBA()
	if err != nil {
		return nil, err
	}
	return render.NewOpaqueCanvas(s.Spec.Width, s.Spec.Height, navy, fonts)
}

func (s Screenshot) Draw(d render.Drawer) (Outcome, error) {
	blue, err := catalog.ShieldBlue.RGBA()
	if err != nil {
		return Outcome{}, err
	}
	white, err := catalog.White.RGBA()
	if err != nil {
		return Outcome{}, err
	}

	width, height := d.Size()
	inset := catalog.ScreenshotInset
	frame := layout.InclusiveBox(inset, inset, width-inset, height-inset)
	d.StrokeRect(frame, catalog.ScreenshotStroke, blue)

	if s.QR != nil {
		side := min(width, height) / catalog.ScreenshotQRFraction
		inner := layout.Inset(frame, catalog.ScreenshotStroke+inset/2)
		d.DrawImageInRect(s.QR, layout.AnchorBottomRight(inner, side, side))
	}

	label := fmt.Sprintf("%s\n%dx%d", catalog.ProductName, width, height)
	style := render.TextStyle{
		Color:       white,
		Size:        catalog.ScreenshotFontSize,
		LineSpacing: catalog.ScreenshotLineSpace,
	}
	return overlay(d, label, canvasCenter(d), style)
}
