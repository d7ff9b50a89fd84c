package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framed-app/framed/internal/config"
	"github.com/framed-app/framed/internal/locale"
	"github.com/framed-app/framed/internal/render"
	"github.com/framed-app/framed/internal/web"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Project.OutputDir = filepath.Join(t.TempDir(), "shots")
	cfg.Project.Bezel = filepath.Join(t.TempDir(), "missing.png")
	a, err := New(&cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestPreviewerRendersTextOnlyScreens(t *testing.T) {
	a := newTestApp(t)
	img, err := previewer{p: a.Processor}.Preview(context.Background(), web.PreviewRequest{
		Template: "standard",
		Settings: render.Settings{Title: locale.Plain("Only text")},
		Total:    1,
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if got, want := img.Bounds().Size(), render.Standard.Layout().Output; got != want {
		t.Fatalf("size = %v, want %v", got, want)
	}
	if a.Store.Snapshot().Previews != 1 {
		t.Fatalf("preview not counted")
	}
}

func TestProcessWithoutScreensWarns(t *testing.T) {
	a := newTestApp(t)
	report, err := a.Process(context.Background())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(report.Results) != 0 {
		t.Fatalf("expected empty report, got %d results", len(report.Results))
	}
	found := false
	for _, e := range a.Recorder.Entries("WARN") {
		if strings.Contains(e.Message, "no screens configured") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a warning about missing screens")
	}
}

func TestServeReturnsExitError(t *testing.T) {
	a := newTestApp(t)
	want := errors.New("stop")
	a.Exit(want)
	err := a.Serve(context.Background(), web.ServerConfig{ListenAddr: "127.0.0.1:0"})
	if !errors.Is(err, want) {
		t.Fatalf("expected exit error, got %v", err)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Serve(ctx, web.ServerConfig{ListenAddr: "127.0.0.1:0", DevMode: true}); err != nil {
		t.Fatalf("Serve: %v", err)
	}
}

func TestNewLogsFontSources(t *testing.T) {
	a := newTestApp(t)
	if a.Fonts.BoldSource == "" || a.Fonts.RegularSource == "" {
		t.Fatalf("font sources not recorded: %+v", a.Fonts)
	}
	want := "title font " + a.Fonts.BoldSource + ", subtitle font " + a.Fonts.RegularSource
	for _, e := range a.Recorder.Entries("INFO") {
		if e.Component == "fonts" && e.Message == want {
			return
		}
	}
	t.Fatalf("expected font log line %q in %+v", want, a.Recorder.Entries(""))
}
