package geometry

import (
	"image"
	"image/draw"
	"math"
)

// Warp renders src onto a transparent canvas of the given size. For every
// destination pixel inside clip, c maps the pixel center back into src and
// the source is sampled bilinearly. Pixels mapping outside src stay
// transparent.
func Warp(src image.Image, size image.Point, c Coefficients, clip image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	clip = clip.Intersect(out.Bounds())
	if clip.Empty() {
		return out
	}
	s := toRGBA(src)

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := out.Pix[y*out.Stride:]
		for x := clip.Min.X; x < clip.Max.X; x++ {
			p := c.Apply(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			px, ok := sampleBilinear(s, p.X-0.5, p.Y-0.5)
			if !ok {
				continue
			}
			copy(row[x*4:x*4+4], px[:])
		}
	}
	return out
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return rgba
}

// sampleBilinear interpolates premultiplied pixels around (fx, fy); texels
// outside the image count as transparent.
func sampleBilinear(img *image.RGBA, fx, fy float64) ([4]uint8, bool) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if fx <= -1 || fy <= -1 || fx >= float64(w) || fy >= float64(h) {
		return [4]uint8{}, false
	}
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var acc [4]float64
	weights := [4]float64{(1 - tx) * (1 - ty), tx * (1 - ty), (1 - tx) * ty, tx * ty}
	offsets := [4]image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, off := range offsets {
		x, y := x0+off.X, y0+off.Y
		if x < 0 || y < 0 || x >= w || y >= h || weights[i] == 0 {
			continue
		}
		idx := y*img.Stride + x*4
		for ch := 0; ch < 4; ch++ {
			acc[ch] += weights[i] * float64(img.Pix[idx+ch])
		}
	}

	var px [4]uint8
	for ch := range acc {
		px[ch] = uint8(math.Min(255, math.Round(acc[ch])))
	}
	// Rounding can leave a color channel above alpha in premultiplied space.
	for ch := 0; ch < 3; ch++ {
		if px[ch] > px[3] {
			px[ch] = px[3]
		}
	}
	return px, px[3] != 0
}
