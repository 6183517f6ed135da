package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFontSize is used when a TextStyle leaves Size at zero.
const DefaultFontSize = 48

var (
	// ErrFontUnavailable means the configured font could not be loaded.
	ErrFontUnavailable = errors.New("font unavailable")
	// ErrGlyphUnavailable means the font has no glyph for a rune in the text.
	ErrGlyphUnavailable = errors.New("glyph unavailable")
)

// IsSkippable reports whether a text error only means the overlay cannot be
// drawn. Callers continue without the overlay for these.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrFontUnavailable) || errors.Is(err, ErrGlyphUnavailable)
}

// Fonts hands out faces of one font at arbitrary pixel sizes.
type Fonts struct {
	ttFont  *truetype.Font
	loadErr error
	faces   map[int]font.Face
}

// NewFonts parses TrueType data. If the data does not parse, every face is
// basicfont.Face7x13 so text is still rendered, just not scaled.
func NewFonts(data []byte) (*Fonts, error) {
	fonts := &Fonts{faces: make(map[int]font.Face)}
	tt, err := truetype.Parse(data)
	if err != nil {
		return fonts, fmt.Errorf("truetype parse failed, using basicfont: %w", err)
	}
	fonts.ttFont = tt
	return fonts, nil
}

// LoadFontFile reads a TrueType font from disk. A missing or broken file
// does not fail here: the returned Fonts reports ErrFontUnavailable from
// every Face call so overlays get skipped, and the error is also returned
// for logging.
func LoadFontFile(path string) (*Fonts, error) {
	fonts := &Fonts{faces: make(map[int]font.Face)}
	data, err := os.ReadFile(path)
	if err != nil {
		fonts.loadErr = fmt.Errorf("%w: %v", ErrFontUnavailable, err)
		return fonts, fonts.loadErr
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		fonts.loadErr = fmt.Errorf("%w: parse %s: %v", ErrFontUnavailable, path, err)
		return fonts, fonts.loadErr
	}
	fonts.ttFont = tt
	return fonts, nil
}

// Face returns a face for sizePx, cached per size.
func (f *Fonts) Face(sizePx int) (font.Face, error) {
	if f == nil {
		return nil, ErrFontUnavailable
	}
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.ttFont == nil {
		return basicfont.Face7x13, nil
	}
	if sizePx <= 0 {
		sizePx = DefaultFontSize
	}
	if face, ok := f.faces[sizePx]; ok {
		return face, nil
	}
	// 72 DPI makes one point one pixel.
	face := truetype.NewFace(f.ttFont, &truetype.Options{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull})
	f.faces[sizePx] = face
	return face, nil
}

// Covers returns ErrGlyphUnavailable for the first rune of text the font
// cannot render. Line breaks are layout, not glyphs.
func (f *Fonts) Covers(text string) error {
	if f == nil {
		return ErrFontUnavailable
	}
	if f.loadErr != nil {
		return f.loadErr
	}
	for _, r := range text {
		if r == '\n' {
			continue
		}
		if f.ttFont != nil {
			if f.ttFont.Index(r) == 0 {
				return fmt.Errorf("%w: %q (U+%04X)", ErrGlyphUnavailable, r, r)
			}
			continue
		}
		if _, ok := basicfont.Face7x13.GlyphAdvance(r); !ok {
			return fmt.Errorf("%w: %q (U+%04X)", ErrGlyphUnavailable, r, r)
		}
	}
	return nil
}
