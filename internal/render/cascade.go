package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// renderCascade fans the frames diagonally from the lower left. The first
// frame ends up in front. Only the first screen's text is drawn,
// left-aligned.
func renderCascade(rc *renderContext, frames []image.Image, texts []TextConfig) error {
	c := rc.layout.Cascade
	first := texts[0]
	rc.fill(first.Background)

	scale := c.ScaleFew
	if len(frames) >= c.ManyThreshold {
		scale = c.ScaleMany
	}
	startY := int(float64(rc.layout.Canvas.Y) * c.StartYRatio)

	for i := range frames {
		frame := frames[len(frames)-1-i]
		size := frame.Bounds().Size()
		scaled := imaging.Resize(frame, int(float64(size.X)*scale), int(float64(size.Y)*scale), imaging.Lanczos)
		rotated := imaging.Rotate(scaled, c.Angle, color.Transparent)

		at := image.Pt(c.StartX+i*c.StepX, startY-i*c.StepY-rotated.Bounds().Dy())
		shadow, pad := blurredShadow(rotated, c.ShadowAlpha, c.ShadowBlur)
		paste(rc.canvas, shadow, at.Add(image.Pt(c.ShadowOffset-pad, c.ShadowOffset-pad)))
		paste(rc.canvas, rotated, at)
	}

	drawTextBlock(rc.canvas, first, rc.faces, rc.layout, alignLeft)
	return nil
}
