package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/framed-app/framed/internal/geometry"
)

// renderPerspective draws the panorama background and text, then stands
// the first WarpedCount devices in perspective. Later devices are upright.
func renderPerspective(rc *renderContext, in Input) error {
	rc.fill(in.Text.Background)
	DrawWave(rc.canvas, in.Text.Accent, in.Index, in.Total, rc.layout.Wave)
	drawTextBlock(rc.canvas, in.Text, rc.faces, rc.layout, alignCenter)
	if in.Frame == nil {
		return nil
	}
	if in.Index >= rc.layout.Perspective.WarpedCount {
		rc.placeFlat(in.Frame)
		return nil
	}
	return rc.placeReceding(in.Frame, in.Index)
}

// recedingQuad is the destination of a w x h frame whose right edge is
// pulled in and shortened, so the device appears turned away.
func recedingQuad(p PerspectiveConfig, canvasW int, w, h float64, index int) geometry.Quad {
	targetW := w - p.HorizontalShrink
	baseX := (canvasW-int(targetW))/2 + (index-1)*p.IndexOffsetX
	q := geometry.Quad{
		{X: 0, Y: 0},
		{X: targetW, Y: p.VerticalShrink},
		{X: targetW, Y: h - p.VerticalShrink},
		{X: 0, Y: h},
	}
	return q.Translate(float64(baseX), float64(p.Top))
}

func (rc *renderContext) placeReceding(frame image.Image, index int) error {
	p := rc.layout.Perspective
	size := frame.Bounds().Size()
	w, h := float64(size.X), float64(size.Y)
	src := geometry.RectQuad(0, 0, w, h)

	dst := recedingQuad(p, rc.layout.Canvas.X, w, h, index)
	coeffs, err := geometry.Solve(dst, src)
	if err != nil {
		return fmt.Errorf("device quad: %w", err)
	}
	shadowDst := dst.Translate(float64(p.ShadowOffset.X), float64(p.ShadowOffset.Y))
	shadowCoeffs, err := geometry.Solve(shadowDst, src)
	if err != nil {
		return fmt.Errorf("shadow quad: %w", err)
	}

	shadow := geometry.Warp(silhouette(frame, p.ShadowAlpha, 0), rc.layout.Canvas, shadowCoeffs, shadowDst.Bounds())
	blurWithin(shadow, shadowDst.Bounds(), p.ShadowBlur)
	draw.Draw(rc.canvas, rc.canvas.Bounds(), shadow, image.Point{}, draw.Over)

	warped := geometry.Warp(frame, rc.layout.Canvas, coeffs, dst.Bounds())
	draw.Draw(rc.canvas, rc.canvas.Bounds(), warped, image.Point{}, draw.Over)
	return nil
}
