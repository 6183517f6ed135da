package render

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawTextCentered draws text so the middle of its block (between the first
// line's ascender and the last line's descender) sits at center.
func (c *Canvas) DrawTextCentered(text string, center image.Point, style TextStyle) (TextMetrics, error) {
	face, err := c.textFace(text, style)
	if err != nil {
		return TextMetrics{}, err
	}
	lines := strings.Split(text, "\n")
	metrics, widths := measureLines(face, lines, style.LineSpacing)

	textColor := style.Color
	if textColor == nil {
		textColor = color.White
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	top := center.Y - metrics.Height/2
	for i, line := range lines {
		xPos := center.X - widths[i]/2
		baseline := top + i*(metrics.LineHeight+style.LineSpacing) + metrics.Ascent
		drawer.Dot = fixed.P(xPos, baseline)
		drawer.DrawString(line)
	}
	return metrics, nil
}

func (c *Canvas) textFace(text string, style TextStyle) (font.Face, error) {
	face, err := c.fonts.Face(style.Size)
	if err != nil {
		return nil, err
	}
	if err := c.fonts.Covers(text); err != nil {
		return nil, err
	}
	return face, nil
}

func measureLines(face font.Face, lines []string, spacing int) (TextMetrics, []int) {
	fm := face.Metrics()
	metrics := TextMetrics{
		Ascent:  fm.Ascent.Ceil(),
		Descent: fm.Descent.Ceil(),
		Lines:   len(lines),
	}
	metrics.LineHeight = metrics.Ascent + metrics.Descent
	metrics.Height = len(lines)*metrics.LineHeight + (len(lines)-1)*spacing

	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = font.MeasureString(face, line).Ceil()
		if widths[i] > metrics.Width {
			metrics.Width = widths[i]
		}
	}
	return metrics, widths
}

