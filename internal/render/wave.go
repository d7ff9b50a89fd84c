package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// WaveLayer is one stroked line of the panoramic waveform.
type WaveLayer struct {
	Amplitude   float64
	Frequency   float64 // cycles per canvas width
	Phase       float64
	Opacity     float64
	StrokeWidth float64
}

// WaveConfig describes the waveform shared by every image of a panorama.
// Layers are drawn in order, widest and faintest first.
type WaveConfig struct {
	BaseY          float64 // fraction of the canvas height
	Step           int     // sampling step along x, in pixels
	OvertoneRatio  float64
	OvertoneWeight float64
	OvertonePhase  float64
	Layers         [4]WaveLayer
}

// WaveY returns the y of a layer at localX on image index of total. The
// value depends on the global x only, so adjacent images meet at the seam.
func WaveY(cfg WaveConfig, layer WaveLayer, index, total int, localX float64, size image.Point) float64 {
	if total < 1 {
		total = 1
	}
	w := float64(size.X)
	globalX := float64(index)*w + localX
	totalW := float64(total) * w

	envelope := math.Max(0, math.Sin(math.Pi*globalX/totalW))
	angle := globalX/w*2*math.Pi*layer.Frequency + layer.Phase
	wave := (math.Sin(angle) + cfg.OvertoneWeight*math.Sin(cfg.OvertoneRatio*angle+cfg.OvertonePhase)) /
		(1 + cfg.OvertoneWeight)

	return cfg.BaseY*float64(size.Y) + layer.Amplitude*envelope*wave
}

// DrawWave strokes every layer of cfg onto dst in c at the layer opacity.
func DrawWave(dst *image.RGBA, c color.Color, index, total int, cfg WaveConfig) {
	size := dst.Bounds().Size()
	step := cfg.Step
	if step <= 0 {
		step = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	dc := gg.NewContextForRGBA(dst)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, layer := range cfg.Layers {
		if layer.Amplitude == 0 && layer.StrokeWidth == 0 {
			continue
		}
		dc.SetRGBA255(int(n.R), int(n.G), int(n.B), int(layer.Opacity*255))
		dc.SetLineWidth(layer.StrokeWidth)

		// Overdraw both edges by the stroke width so caps stay off-canvas.
		pad := int(math.Ceil(layer.StrokeWidth))
		first := true
		for x := -pad; x <= size.X+pad+step; x += step {
			y := WaveY(cfg, layer, index, total, float64(x), size)
			if first {
				dc.MoveTo(float64(x), y)
				first = false
				continue
			}
			dc.LineTo(float64(x), y)
		}
		dc.Stroke()
	}
}
