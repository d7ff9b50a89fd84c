package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
)

// silhouette returns a black copy of src whose alpha is src's alpha scaled
// by alpha/255, shifted by pad pixels into a canvas grown by pad per side.
func silhouette(src image.Image, alpha uint8, pad int) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2*pad, b.Dy()+2*pad))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			out.SetNRGBA(x-b.Min.X+pad, y-b.Min.Y+pad, color.NRGBA{A: uint8((a >> 8) * uint32(alpha) / 255)})
		}
	}
	return out
}

// blurPad is the margin a Gaussian blur of sigma spreads into.
func blurPad(sigma float64) int {
	return int(math.Ceil(3 * sigma))
}

// blurredShadow returns the drop shadow of src and the padding around it.
// The shadow's origin sits pad pixels up and left of src's origin.
func blurredShadow(src image.Image, alpha uint8, sigma float64) (*image.NRGBA, int) {
	pad := blurPad(sigma)
	s := silhouette(src, alpha, pad)
	if sigma > 0 {
		s = imaging.Blur(s, sigma)
	}
	return s, pad
}

// blurWithin blurs the region r of img, grown by the blur margin, in
// place. Pixels outside the grown region are left untouched.
func blurWithin(img *image.RGBA, r image.Rectangle, sigma float64) {
	if sigma <= 0 || r.Empty() {
		return
	}
	pad := blurPad(sigma)
	r = image.Rect(r.Min.X-pad, r.Min.Y-pad, r.Max.X+pad, r.Max.Y+pad).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	blurred := imaging.Blur(imaging.Crop(img, r), sigma)
	draw.Draw(img, r, blurred, image.Point{}, draw.Src)
}
