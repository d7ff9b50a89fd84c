package render

import "image"

// Layout holds the fixed constants of one template variant. The values were
// tuned visually for the working canvas and are kept as named fields.
type Layout struct {
	Canvas     image.Point // working resolution
	Output     image.Point // final resolution
	Screenshot image.Point // raw screenshots are resized to this before framing

	HeaderMargin   int
	LineSpacing    int
	CaptionSpacing int
	CompactOffset  int // gap between the reserved text block and the device
	BottomMargin   int

	TitleSize        float64
	SubtitleSize     float64
	MaxTitleLines    int
	MaxSubtitleLines int
	TextX            int // left edge for left-aligned text

	QRSize  int
	QRInset int

	Wave        WaveConfig
	Perspective PerspectiveConfig
	Cascade     CascadeConfig
}

type PerspectiveConfig struct {
	VerticalShrink   float64
	HorizontalShrink float64
	IndexOffsetX     int // stagger per index, relative to index 1
	Top              int
	WarpedCount      int // images with index below this are warped
	ShadowOffset     image.Point
	ShadowAlpha      uint8
	ShadowBlur       float64
}

type CascadeConfig struct {
	Angle         float64 // degrees, counter-clockwise
	ScaleFew      float64
	ScaleMany     float64
	ManyThreshold int
	StepX         int
	StepY         int
	StartX        int
	StartYRatio   float64
	ShadowOffset  int
	ShadowAlpha   uint8
	ShadowBlur    float64
}

var baseLayout = Layout{
	Canvas:     image.Pt(1350, 2868),
	Output:     image.Pt(1290, 2796),
	Screenshot: image.Pt(1206, 2622),

	HeaderMargin:   200,
	LineSpacing:    30,
	CaptionSpacing: 60,
	CompactOffset:  110,
	BottomMargin:   100,

	TitleSize:        95,
	SubtitleSize:     45,
	MaxTitleLines:    2,
	MaxSubtitleLines: 1,
	TextX:            100,

	QRSize:  150,
	QRInset: 24,
}

var defaultWave = WaveConfig{
	BaseY:          0.70,
	Step:           5,
	OvertoneRatio:  2,
	OvertoneWeight: 0.35,
	OvertonePhase:  0.5,
	Layers: [4]WaveLayer{
		{Amplitude: 350, Frequency: 0.8, Phase: 0, Opacity: 0.2, StrokeWidth: 16},
		{Amplitude: 250, Frequency: 1.5, Phase: 2.0, Opacity: 0.4, StrokeWidth: 10},
		{Amplitude: 180, Frequency: 2.2, Phase: 4.0, Opacity: 0.7, StrokeWidth: 6},
		{Amplitude: 100, Frequency: 3.0, Phase: 6.0, Opacity: 0.5, StrokeWidth: 4},
	},
}

var defaultPerspective = PerspectiveConfig{
	VerticalShrink:   180,
	HorizontalShrink: 100,
	IndexOffsetX:     30,
	Top:              450,
	WarpedCount:      2,
	ShadowOffset:     image.Pt(40, 60),
	ShadowAlpha:      80,
	ShadowBlur:       20,
}

var defaultCascade = CascadeConfig{
	Angle:         -15,
	ScaleFew:      0.55,
	ScaleMany:     0.48,
	ManyThreshold: 3,
	StepX:         320,
	StepY:         100,
	StartX:        50,
	StartYRatio:   0.6,
	ShadowOffset:  30,
	ShadowAlpha:   60,
	ShadowBlur:    25,
}

func layoutFor(v Variant) Layout {
	l := baseLayout
	switch v {
	case Panoramic:
		l.Wave = defaultWave
	case Perspective:
		l.Wave = defaultWave
		l.Perspective = defaultPerspective
	case Cascade:
		l.Cascade = defaultCascade
	}
	return l
}
