package render

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/framed-app/framed/internal/render/layout"
)

// Metrics is the fixed text reservation of a layout. It depends on the
// font faces and layout constants only, never on the text being drawn.
type Metrics struct {
	TextBottom int
	DeviceTop  int
}

// NewMetrics reserves MaxTitleLines worst-case title lines and
// MaxSubtitleLines subtitle lines below the header margin.
func NewMetrics(faces FaceSet, l Layout) Metrics {
	titleLine := inkHeight(faces.Title, metricText)
	subtitleLine := inkHeight(faces.Subtitle, metricText)

	bottom := l.HeaderMargin +
		l.MaxTitleLines*(titleLine+l.LineSpacing) +
		(l.CaptionSpacing - l.LineSpacing) +
		l.MaxSubtitleLines*subtitleLine
	return Metrics{TextBottom: bottom, DeviceTop: bottom + l.CompactOffset}
}

// PlaceDevice returns the frame to draw and its top-left corner. Frames
// taller than the space below DeviceTop are scaled down uniformly to leave
// BottomMargin free, then centered horizontally.
func (m Metrics) PlaceDevice(frame image.Image, l Layout) (image.Image, image.Point) {
	size := frame.Bounds().Size()
	remaining := l.Canvas.Y - m.DeviceTop
	if size.Y > remaining {
		scale := float64(remaining-l.BottomMargin) / float64(size.Y)
		if scale > 0 && scale < 1 {
			w := int(float64(size.X) * scale)
			h := int(float64(size.Y) * scale)
			frame = imaging.Resize(frame, w, h, imaging.Lanczos)
			size = image.Pt(w, h)
		}
	}
	canvas := image.Rectangle{Max: l.Canvas}
	return frame, layout.CenterHorizontally(canvas, size.X, size.Y, m.DeviceTop).Min
}
