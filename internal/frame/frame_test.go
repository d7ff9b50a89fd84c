package frame_test

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/framed-app/framed/internal/frame"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// ring returns a transparent bezel with an opaque border of the given width.
func ring(w, h, border int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	black := &image.Uniform{C: color.NRGBA{A: 255}}
	draw.Draw(img, image.Rect(0, 0, w, border), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, h-border, w, h), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, border, h), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(w-border, 0, w, h), black, image.Point{}, draw.Src)
	return img
}

func TestComposeRejectsBezelSmallerThanScreenshot(t *testing.T) {
	cases := []struct {
		name  string
		shot  image.Point
		bezel image.Point
	}{
		{"wider", image.Pt(120, 100), image.Pt(110, 200)},
		{"taller", image.Pt(100, 220), image.Pt(110, 200)},
		{"both", image.Pt(300, 300), image.Pt(110, 200)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shot := solid(tc.shot.X, tc.shot.Y, color.White)
			bezel := ring(tc.bezel.X, tc.bezel.Y, 4)
			if _, err := frame.Compose(shot, bezel); !errors.Is(err, frame.ErrBezelTooSmall) {
				t.Fatalf("expected ErrBezelTooSmall, got %v", err)
			}
		})
	}
}

func TestComposeReturnsBezelSizedFrame(t *testing.T) {
	shot := solid(100, 180, color.NRGBA{R: 255, A: 255})
	bezel := image.NewNRGBA(image.Rect(0, 0, 120, 200))
	draw.Draw(bezel, image.Rect(0, 0, 14, 200), &image.Uniform{C: color.NRGBA{A: 255}}, image.Point{}, draw.Src)

	out, err := frame.Compose(shot, bezel)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if out.Bounds() != bezel.Bounds() {
		t.Fatalf("unexpected frame bounds: got %v want %v", out.Bounds(), bezel.Bounds())
	}
	if c := out.NRGBAAt(60, 100); c != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("expected screenshot pixel at center, got %+v", c)
	}
	// Screenshot spans (10,10)-(110,190); the bezel bar covers x < 14.
	if c := out.NRGBAAt(12, 100); c != (color.NRGBA{A: 255}) {
		t.Fatalf("expected bezel drawn over content, got %+v", c)
	}
	if c := out.NRGBAAt(109, 10); c.A != 0 {
		t.Fatalf("expected masked corner to be transparent, got %+v", c)
	}
}

func TestComposeAcceptsExactFit(t *testing.T) {
	shot := solid(50, 80, color.White)
	out, err := frame.ComposeWithRadius(shot, ring(50, 80, 2), 10)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if out.Bounds().Size() != image.Pt(50, 80) {
		t.Fatalf("unexpected size: %v", out.Bounds().Size())
	}
}

func TestLoadBezelMissing(t *testing.T) {
	_, err := frame.LoadBezel(filepath.Join(t.TempDir(), "bezel.png"))
	if !errors.Is(err, frame.ErrBezelMissing) {
		t.Fatalf("expected ErrBezelMissing, got %v", err)
	}
}

func TestRoundedMask(t *testing.T) {
	mask := frame.RoundedMask(image.Pt(200, 400), 80)
	if a := mask.AlphaAt(0, 0).A; a != 0 {
		t.Fatalf("expected transparent corner, got alpha %d", a)
	}
	if a := mask.AlphaAt(100, 200).A; a != 255 {
		t.Fatalf("expected opaque center, got alpha %d", a)
	}
	if a := mask.AlphaAt(100, 1).A; a == 0 {
		t.Fatal("expected straight top edge to be covered")
	}
}

func TestPrepareResizes(t *testing.T) {
	src := solid(40, 60, color.White)
	out := frame.Prepare(src, image.Pt(20, 30))
	if out.Bounds().Size() != image.Pt(20, 30) {
		t.Fatalf("unexpected size: %v", out.Bounds().Size())
	}
	if src.Bounds().Size() != image.Pt(40, 60) {
		t.Fatal("source must not be modified")
	}
}
