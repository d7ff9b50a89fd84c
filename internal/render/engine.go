package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/framed-app/framed/internal/logging"
)

var (
	ErrNoFrames   = errors.New("no device frames")
	ErrIndexRange = errors.New("index out of range")
)

// Input is one screen to render. Frame is the composited device frame; a
// nil frame renders the background and text only.
type Input struct {
	Frame image.Image
	Text  TextConfig
	Index int // 0-based position in the panorama
	Total int
}

// Engine renders template variants. It holds only immutable fonts, so one
// Engine may serve concurrent renders.
type Engine struct {
	fonts  *Fonts
	logger logging.Logger
}

func NewEngine(fonts *Fonts, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Engine{fonts: fonts, logger: logger}
}

type strategy struct {
	single func(rc *renderContext, in Input) error
	group  func(rc *renderContext, frames []image.Image, texts []TextConfig) error
}

var strategies = map[Variant]strategy{
	Standard:    {single: renderStandard},
	Panoramic:   {single: renderPanoramic},
	Perspective: {single: renderPerspective},
	Cascade:     {single: renderStandard, group: renderCascade},
}

// renderContext is the state of one render call.
type renderContext struct {
	layout  Layout
	faces   FaceSet
	metrics Metrics
	canvas  *image.RGBA
}

func (e *Engine) newContext(v Variant) (*renderContext, error) {
	l := v.Layout()
	faces, err := e.fonts.Faces(l)
	if err != nil {
		return nil, err
	}
	return &renderContext{
		layout:  l,
		faces:   faces,
		metrics: NewMetrics(faces, l),
		canvas:  image.NewRGBA(image.Rect(0, 0, l.Canvas.X, l.Canvas.Y)),
	}, nil
}

func (rc *renderContext) fill(c color.Color) {
	draw.Draw(rc.canvas, rc.canvas.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// placeFlat draws frame upright at the fixed device position.
func (rc *renderContext) placeFlat(frame image.Image) {
	if frame == nil {
		return
	}
	img, at := rc.metrics.PlaceDevice(frame, rc.layout)
	paste(rc.canvas, img, at)
}

func (rc *renderContext) finish(text TextConfig) (*image.NRGBA, error) {
	if text.QRCode != "" {
		if err := drawQRBadge(rc.canvas, text.QRCode, rc.layout, text.Text, text.Background); err != nil {
			return nil, fmt.Errorf("qr badge: %w", err)
		}
	}
	return imaging.Resize(rc.canvas, rc.layout.Output.X, rc.layout.Output.Y, imaging.Lanczos), nil
}

// Render draws one screen with variant v and returns it at the variant's
// output resolution.
func (e *Engine) Render(v Variant, in Input) (*image.NRGBA, error) {
	s, ok := strategies[v]
	if !ok {
		v, s = Standard, strategies[Standard]
	}
	if in.Total < 1 {
		in.Total = 1
	}
	if in.Index < 0 || in.Index >= in.Total {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, in.Index, in.Total)
	}

	rc, err := e.newContext(v)
	if err != nil {
		return nil, err
	}
	defer rc.faces.Close()

	if err := s.single(rc, in); err != nil {
		return nil, fmt.Errorf("%s: %w", v, err)
	}
	return rc.finish(in.Text)
}

// RenderGroup draws several frames into one image. frames[i] pairs with
// texts[i]. Variants without a group layout render the first screen only.
func (e *Engine) RenderGroup(v Variant, frames []image.Image, texts []TextConfig) (*image.NRGBA, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if len(texts) != len(frames) {
		return nil, fmt.Errorf("%d frames but %d text configs", len(frames), len(texts))
	}
	s := strategies[v]
	if s.group == nil {
		e.logger.Infof("render", "%s has no group layout, rendering first screen only", v)
		return e.Render(v, Input{Frame: frames[0], Text: texts[0], Index: 0, Total: 1})
	}

	rc, err := e.newContext(v)
	if err != nil {
		return nil, err
	}
	defer rc.faces.Close()

	if err := s.group(rc, frames, texts); err != nil {
		return nil, fmt.Errorf("%s: %w", v, err)
	}
	return rc.finish(texts[0])
}

func paste(dst draw.Image, src image.Image, at image.Point) {
	b := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, src, b.Min, draw.Over)
}
