// Package catalog holds the fixed list of assets pwagen produces. The
// generator is a pure function of these tables.
package catalog

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Output directories, relative to the output root.
const (
	IconsDir       = "icons"
	ScreenshotsDir = "screenshots"
)

const (
	ProductName = "SafeRoute"

	// IconLabel is drawn on shield icons of at least IconLabelMinSize px.
	IconLabel        = "SR"
	IconLabelMinSize = 72

	ScreenshotInset      = 50
	ScreenshotStroke     = 5
	ScreenshotFontSize   = 48
	ScreenshotLineSpace  = 8
	ScreenshotQRFraction = 5 // QR side is min(width, height)/ScreenshotQRFraction
)

// Hex is an sRGB color in #rrggbb form.
type Hex string

// Palette.
const (
	ShieldBlue    Hex = "#0066ff"
	Navy          Hex = "#0a192f"
	White         Hex = "#ffffff"
	EmergencyRed  Hex = "#ff3366"
	ContactsGreen Hex = "#00cc88"
)

// RGBA parses h into an opaque color.
func (h Hex) RGBA() (color.RGBA, error) {
	c, err := colorful.Hex(string(h))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", string(h), err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// IconSpec is one shield icon.
type IconSpec struct {
	Size     int
	Filename string
}

// ShortcutSpec is one quick-action icon: a colored disc with a label.
type ShortcutSpec struct {
	Size     int
	Filename string
	Color    Hex
	Label    string
}

// ScreenshotSpec is one placeholder screenshot.
type ScreenshotSpec struct {
	Filename string
	Width    int
	Height   int
}

var Icons = []IconSpec{
	{Size: 16, Filename: "icon-16x16.png"},
	{Size: 32, Filename: "icon-32x32.png"},
	{Size: 72, Filename: "icon-72x72.png"},
	{Size: 96, Filename: "icon-96x96.png"},
	{Size: 144, Filename: "icon-144x144.png"},
	{Size: 152, Filename: "icon-152x152.png"},
	{Size: 180, Filename: "icon-180x180.png"},
	{Size: 192, Filename: "icon-192x192.png"},
	{Size: 310, Filename: "icon-310x310.png"},
	{Size: 512, Filename: "icon-512x512.png"},
}

var Shortcuts = []ShortcutSpec{
	{Size: 96, Filename: "emergency-96.png", Color: EmergencyRed, Label: "!"},
	{Size: 96, Filename: "tracking-96.png", Color: ShieldBlue, Label: "📍"},
	{Size: 96, Filename: "contacts-96.png", Color: ContactsGreen, Label: "👥"},
}

var Screenshots = []ScreenshotSpec{
	{Filename: "wide.png", Width: 1280, Height: 720},
	{Filename: "narrow.png", Width: 720, Height: 1280},
}

// Validate checks every table so a bad record fails the run before any file
// is written.
func Validate() error {
	var errs []error
	for _, hex := range []Hex{ShieldBlue, Navy, White} {
		if _, err := hex.RGBA(); err != nil {
			errs = append(errs, err)
		}
	}

	seen := map[string]bool{}
	checkName := func(dir, name string) {
		if name == "" {
			errs = append(errs, fmt.Errorf("%s: empty filename", dir))
			return
		}
		key := dir + "/" + name
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate filename", key))
		}
		seen[key] = true
	}

	for _, icon := range Icons {
		checkName(IconsDir, icon.Filename)
		if icon.Size <= 0 {
			errs = append(errs, fmt.Errorf("%s: size %d must be positive", icon.Filename, icon.Size))
		}
	}
	for _, shortcut := range Shortcuts {
		checkName(IconsDir, shortcut.Filename)
		if shortcut.Size <= 0 {
			errs = append(errs, fmt.Errorf("%s: size %d must be positive", shortcut.Filename, shortcut.Size))
		}
		if _, err := shortcut.Color.RGBA(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", shortcut.Filename, err))
		}
	}
	for _, shot := range Screenshots {
		checkName(ScreenshotsDir, shot.Filename)
		if shot.Width <= 2*ScreenshotInset || shot.Height <= 2*ScreenshotInset {
			errs = append(errs, fmt.Errorf("%s: %dx%d leaves no room inside the %dpx inset", shot.Filename, shot.Width, shot.Height, ScreenshotInset))
		}
	}
	return errors.Join(errs...)
}
