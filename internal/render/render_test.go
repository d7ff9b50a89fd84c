package render_test

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/framed-app/framed/internal/locale"
	"github.com/framed-app/framed/internal/render"
)

func newEngine(t *testing.T) *render.Engine {
	t.Helper()
	fonts, err := render.DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts: %v", err)
	}
	return render.NewEngine(fonts, nil)
}

func solidFrame(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func isRed(c color.NRGBA) bool { return c.R > 200 && c.G < 60 && c.B < 60 && c.A > 200 }

// redBounds returns the bounding box of the red pixels of img.
func redBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isRed(img.NRGBAAt(x, y)) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestParseVariant(t *testing.T) {
	cases := []struct {
		name  string
		want  render.Variant
		known bool
	}{
		{"standard", render.Standard, true},
		{"Panoramic", render.Panoramic, true},
		{" perspective ", render.Perspective, true},
		{"cascade", render.Cascade, true},
		{"diagonal", render.Cascade, true},
		{"carousel", render.Standard, false},
		{"", render.Standard, false},
	}
	for _, tc := range cases {
		got, known := render.ParseVariant(tc.name)
		if got != tc.want || known != tc.known {
			t.Fatalf("ParseVariant(%q) = %v, %v; want %v, %v", tc.name, got, known, tc.want, tc.known)
		}
	}
	if !render.Cascade.GroupAware() || render.Standard.GroupAware() {
		t.Fatalf("only cascade should be group aware")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#F5F5F7":   {R: 0xF5, G: 0xF5, B: 0xF7, A: 0xFF},
		"#fff":      {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		"#00000080": {A: 0x80},
		"red":       {R: 0xFF, A: 0xFF},
	}
	for in, want := range cases {
		got, err := render.ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %v, want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "notacolor"} {
		if _, err := render.ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestBuildTextConfigLayering(t *testing.T) {
	defaults := render.Panoramic.Defaults()
	template := render.Settings{BackgroundColor: "#000000", TextColor: "#FFFFFF"}
	screen := render.Settings{
		Title:       locale.Localized(map[string]string{"en": "Hello", "ja": "こんにちは"}),
		Subtitle:    locale.Plain("Sub"),
		TextColor:   "#FF0000",
		AccentColor: "#00FF00",
	}
	group := render.Settings{TextColor: "#0000FF"}

	cfg, err := render.BuildTextConfig("en-US", defaults, template, screen, group)
	if err != nil {
		t.Fatalf("BuildTextConfig: %v", err)
	}
	if cfg.Title != "Hello" || cfg.Subtitle != "Sub" {
		t.Fatalf("text = %q / %q", cfg.Title, cfg.Subtitle)
	}
	if want := (color.NRGBA{A: 0xFF}); cfg.Background != want {
		t.Fatalf("background = %v, want %v", cfg.Background, want)
	}
	if want := (color.NRGBA{B: 0xFF, A: 0xFF}); cfg.Text != want {
		t.Fatalf("text color = %v, want %v", cfg.Text, want)
	}
	if want := (color.NRGBA{G: 0xFF, A: 0xFF}); cfg.Accent != want {
		t.Fatalf("accent = %v, want %v", cfg.Accent, want)
	}
	if want := (color.NRGBA{R: 0x86, G: 0x86, B: 0x8B, A: 0xFF}); cfg.SubtitleFg != want {
		t.Fatalf("subtitle color = %v, want %v", cfg.SubtitleFg, want)
	}

	if _, err := render.BuildTextConfig("en", render.Settings{TextColor: "nope"}); err == nil {
		t.Fatalf("expected error for invalid color")
	}
}

func TestDevicePositionIgnoresTextLength(t *testing.T) {
	e := newEngine(t)
	frame := solidFrame(600, 1200, color.NRGBA{R: 255, A: 255})

	render1 := func(title string) image.Rectangle {
		cfg := render.DefaultTextConfig()
		cfg.Text = cfg.Background
		cfg.SubtitleFg = cfg.Background
		cfg.Title = title
		cfg.Subtitle = "Subtitle"
		out, err := e.Render(render.Standard, render.Input{Frame: frame, Text: cfg, Total: 1})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		return redBounds(out)
	}

	short := render1("Hi")
	long := render1("A much longer headline\nthat wraps onto two lines")
	if short.Empty() {
		t.Fatalf("device not drawn")
	}
	if short != long {
		t.Fatalf("device moved with text length: %v vs %v", short, long)
	}
}

func TestOutputResolution(t *testing.T) {
	e := newEngine(t)
	frame := solidFrame(300, 600, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	cfg := render.DefaultTextConfig()
	cfg.Title = "Title\nSecond"
	cfg.Subtitle = "Subtitle"

	for _, v := range render.Variants() {
		for index := 0; index < 3; index++ {
			out, err := e.Render(v, render.Input{Frame: frame, Text: cfg, Index: index, Total: 3})
			if err != nil {
				t.Fatalf("%s[%d]: %v", v, index, err)
			}
			if got, want := out.Bounds().Size(), v.Layout().Output; got != want {
				t.Fatalf("%s[%d] size = %v, want %v", v, index, got, want)
			}
		}
	}

	frames := []image.Image{frame, frame, frame}
	texts := []render.TextConfig{cfg, cfg, cfg}
	for _, v := range render.Variants() {
		out, err := e.RenderGroup(v, frames, texts)
		if err != nil {
			t.Fatalf("group %s: %v", v, err)
		}
		if got, want := out.Bounds().Size(), v.Layout().Output; got != want {
			t.Fatalf("group %s size = %v, want %v", v, got, want)
		}
	}
}

func TestPerspectiveWarpsOnlyLeadingImages(t *testing.T) {
	e := newEngine(t)
	frame := solidFrame(600, 1200, color.NRGBA{R: 255, A: 255})
	cfg := render.DefaultTextConfig()
	cfg.Accent = cfg.Background

	at := func(v render.Variant, index int) image.Rectangle {
		out, err := e.Render(v, render.Input{Frame: frame, Text: cfg, Index: index, Total: 4})
		if err != nil {
			t.Fatalf("Render %s[%d]: %v", v, index, err)
		}
		return redBounds(out)
	}

	flat := at(render.Standard, 0)
	if got := at(render.Perspective, 2); got != flat {
		t.Fatalf("index 2 should be upright at %v, got %v", flat, got)
	}
	warped := at(render.Perspective, 0)
	if warped.Empty() || warped.Dx() >= flat.Dx() {
		t.Fatalf("index 0 should be foreshortened: warped %v flat %v", warped, flat)
	}
	if next := at(render.Perspective, 1); next.Min.X <= warped.Min.X {
		t.Fatalf("index 1 should be staggered right of index 0: %v vs %v", next, warped)
	}
}

func TestWaveContinuity(t *testing.T) {
	l := render.Panoramic.Layout()
	cfg := l.Wave
	w := l.Canvas.X
	for i, layer := range cfg.Layers {
		end := render.WaveY(cfg, layer, 0, 3, float64(w-1), l.Canvas)
		start := render.WaveY(cfg, layer, 1, 3, 0, l.Canvas)
		if d := math.Abs(end - start); d > float64(cfg.Step) {
			t.Fatalf("layer %d: seam jump %.2f exceeds step %d", i, d, cfg.Step)
		}
		if a, b := render.WaveY(cfg, layer, 0, 3, float64(w), l.Canvas), start; a != b {
			t.Fatalf("layer %d: same global x differs: %v vs %v", i, a, b)
		}
		base := cfg.BaseY * float64(l.Canvas.Y)
		if got := render.WaveY(cfg, layer, 0, 3, 0, l.Canvas); math.Abs(got-base) > 1e-9 {
			t.Fatalf("layer %d: envelope should vanish at panorama start, got %v", i, got)
		}
	}
}

func TestDrawWaveMarksCanvas(t *testing.T) {
	l := render.Panoramic.Layout()
	dst := image.NewRGBA(image.Rect(0, 0, l.Canvas.X, l.Canvas.Y))
	render.DrawWave(dst, color.NRGBA{R: 255, A: 255}, 1, 3, l.Wave)

	y := int(render.WaveY(l.Wave, l.Wave.Layers[2], 1, 3, float64(l.Canvas.X/2), l.Canvas))
	if _, _, _, a := dst.At(l.Canvas.X/2, y).RGBA(); a == 0 {
		t.Fatalf("expected wave stroke at (%d,%d)", l.Canvas.X/2, y)
	}
	if _, _, _, a := dst.At(l.Canvas.X/2, 10).RGBA(); a != 0 {
		t.Fatalf("unexpected paint near the top edge")
	}
}

func TestRenderErrors(t *testing.T) {
	e := newEngine(t)
	cfg := render.DefaultTextConfig()
	if _, err := e.Render(render.Standard, render.Input{Text: cfg, Index: 3, Total: 3}); !errors.Is(err, render.ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if _, err := e.RenderGroup(render.Cascade, nil, nil); !errors.Is(err, render.ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestQRBadgeDrawnTopRight(t *testing.T) {
	e := newEngine(t)
	cfg := render.DefaultTextConfig()
	cfg.Text = color.NRGBA{A: 255}

	dark := func(qr string) bool {
		cfg.QRCode = qr
		out, err := e.Render(render.Standard, render.Input{Text: cfg, Total: 1})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		b := out.Bounds()
		for y := 30; y < 160; y++ {
			for x := b.Max.X - 160; x < b.Max.X-30; x++ {
				if out.NRGBAAt(x, y).R < 60 {
					return true
				}
			}
		}
		return false
	}

	if dark("") {
		t.Fatalf("badge drawn without a payload")
	}
	if !dark("https://example.com/app") {
		t.Fatalf("badge missing")
	}
}
