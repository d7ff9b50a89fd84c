package layout_test

import (
	"image"
	"testing"

	"github.com/framed-app/framed/internal/render/layout"
)

func TestInsetAndAnchors(t *testing.T) {
	canvas := image.Rect(0, 0, 1350, 2868)
	inner := layout.Inset(canvas, 24)
	if want := image.Rect(24, 24, 1326, 2844); inner != want {
		t.Fatalf("Inset = %v, want %v", inner, want)
	}

	if got, want := layout.AnchorTopRight(inner, 150, 150), image.Rect(1176, 24, 1326, 174); got != want {
		t.Fatalf("AnchorTopRight = %v, want %v", got, want)
	}
}

func TestAnchorClampsToRect(t *testing.T) {
	r := image.Rect(10, 10, 60, 40)
	if got, want := layout.AnchorTopRight(r, 100, 100), r; got != want {
		t.Fatalf("AnchorTopRight = %v, want %v", got, want)
	}
	if got := layout.AnchorTopRight(r, -5, -5); !got.Empty() {
		t.Fatalf("negative size should be empty, got %v", got)
	}
}

func TestNormalizeAndCenter(t *testing.T) {
	r := layout.Normalize(image.Rectangle{Min: image.Pt(50, 80), Max: image.Pt(10, 20)})
	if want := image.Rect(10, 20, 50, 80); r != want {
		t.Fatalf("Normalize = %v, want %v", r, want)
	}
	if got, want := layout.CenterHorizontally(image.Rect(0, 0, 100, 100), 40, 10, 5), image.Rect(30, 5, 70, 15); got != want {
		t.Fatalf("CenterHorizontally = %v, want %v", got, want)
	}
}
