// Package frame composites screenshots into a device bezel.
package frame

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// DefaultCornerRadius matches the rounded screen cutout of the bundled bezel.
const DefaultCornerRadius = 80

var (
	// ErrBezelMissing means the bezel asset could not be found. Nothing can
	// be framed without it.
	ErrBezelMissing = errors.New("bezel asset missing")
	// ErrBezelTooSmall means the screenshot does not fit inside the bezel.
	ErrBezelTooSmall = errors.New("bezel smaller than screenshot")
)

// LoadBezel decodes the bezel image at path.
func LoadBezel(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBezelMissing, path)
		}
		return nil, fmt.Errorf("decode bezel %s: %w", path, err)
	}
	return img, nil
}

// Prepare resizes a raw screenshot to the working screenshot size. The
// input is left untouched.
func Prepare(screenshot image.Image, size image.Point) *image.NRGBA {
	return imaging.Resize(screenshot, size.X, size.Y, imaging.Lanczos)
}

// Compose centers the screenshot inside the bezel and returns a frame the
// size of the bezel.
func Compose(screenshot, bezel image.Image) (*image.NRGBA, error) {
	return ComposeWithRadius(screenshot, bezel, DefaultCornerRadius)
}

// ComposeWithRadius is Compose with an explicit screen corner radius.
//
// The screenshot is drawn first through a rounded-rect mask so its corners
// never show outside the bezel's cutout, then the bezel is drawn over it.
func ComposeWithRadius(screenshot, bezel image.Image, radius float64) (*image.NRGBA, error) {
	sb, bb := screenshot.Bounds(), bezel.Bounds()
	if bb.Dx() < sb.Dx() || bb.Dy() < sb.Dy() {
		return nil, fmt.Errorf("%w: bezel %dx%d, screenshot %dx%d", ErrBezelTooSmall, bb.Dx(), bb.Dy(), sb.Dx(), sb.Dy())
	}

	out := image.NewNRGBA(image.Rect(0, 0, bb.Dx(), bb.Dy()))
	offset := image.Pt((bb.Dx()-sb.Dx())/2, (bb.Dy()-sb.Dy())/2)
	target := image.Rectangle{Min: offset, Max: offset.Add(sb.Size())}

	mask := RoundedMask(sb.Size(), radius)
	draw.DrawMask(out, target, screenshot, sb.Min, mask, image.Point{}, draw.Over)
	draw.Draw(out, out.Bounds(), bezel, bb.Min, draw.Over)
	return out, nil
}

// RoundedMask returns an alpha mask of the given size that is opaque inside
// a rounded rectangle and transparent in the corners.
func RoundedMask(size image.Point, radius float64) *image.Alpha {
	dc := gg.NewContext(size.X, size.Y)
	dc.DrawRoundedRectangle(0, 0, float64(size.X), float64(size.Y), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	return dc.AsMask()
}
