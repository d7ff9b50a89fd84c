package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// metricText covers the tallest ascender and deepest descender of Latin copy.
const metricText = "Aj"

type textAlign int

const (
	alignCenter textAlign = iota
	alignLeft
)

// inkHeight is the height of the drawn glyphs of s, in pixels.
func inkHeight(face font.Face, s string) int {
	b, _ := font.BoundString(face, s)
	return (b.Max.Y - b.Min.Y).Ceil()
}

// drawLine draws s with the top of its ink at y. Centered lines use the
// measured ink width of s.
func drawLine(dst draw.Image, s string, y int, fg color.Color, face font.Face, align textAlign, x int) {
	if s == "" {
		return
	}
	drawer := &font.Drawer{Dst: dst, Src: &image.Uniform{C: fg}, Face: face}
	b, _ := drawer.BoundString(s)
	inkW := (b.Max.X - b.Min.X).Ceil()
	if align == alignCenter {
		x = (dst.Bounds().Dx() - inkW) / 2
	}
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(x) - b.Min.X,
		Y: fixed.I(y) - b.Min.Y,
	}
	drawer.DrawString(s)
}

// drawTextBlock draws the title lines and the subtitle starting at the
// header margin. Lines advance by the line height used in Metrics so text
// stays inside the reserved block.
func drawTextBlock(dst draw.Image, cfg TextConfig, faces FaceSet, l Layout, align textAlign) {
	titleH := inkHeight(faces.Title, metricText)
	subtitleH := inkHeight(faces.Subtitle, metricText)

	y := l.HeaderMargin
	if cfg.Title != "" {
		for _, line := range splitLines(cfg.Title, l.MaxTitleLines) {
			drawLine(dst, line, y, cfg.Text, faces.Title, align, l.TextX)
			y += titleH + l.LineSpacing
		}
	}
	y += l.CaptionSpacing - l.LineSpacing
	if cfg.Subtitle != "" {
		for _, line := range splitLines(cfg.Subtitle, l.MaxSubtitleLines) {
			drawLine(dst, line, y, cfg.SubtitleFg, faces.Subtitle, align, l.TextX)
			y += subtitleH
		}
	}
}

// splitLines splits on explicit line breaks. Lines past max are joined onto
// the last allowed line so the reserved block is never exceeded.
func splitLines(s string, max int) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if max > 0 && len(lines) > max {
		tail := strings.Join(lines[max-1:], " ")
		lines = append(lines[:max-1], tail)
	}
	return lines
}
