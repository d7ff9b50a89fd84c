package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func saveImage(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := imaging.Save(imaging.New(w, h, c), path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

// setupProject writes a small project: a 140x260 bezel around 120x240
// screenshots, one device and two screens.
func setupProject(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	configPath = filepath.Join(dir, "framed.toml")
	writeFile(t, configPath, `
[project]
output_dir = "shots"
bezel = "bezel.png"
template = "standard"
screenshot_width = 120
screenshot_height = 240
languages = ["en"]

[[devices]]
name = "phone"

[[screens]]
key = "home"
title = "Home"

[[screens]]
key = "detail"
title = { en = "Detail", ja = "詳細" }

[logging]
format = "json"
`)
	bezel := imaging.New(140, 260, color.NRGBA{})
	for y := 0; y < 260; y++ {
		bezel.SetNRGBA(0, y, color.NRGBA{A: 255})
		bezel.SetNRGBA(139, y, color.NRGBA{A: 255})
	}
	if err := imaging.Save(bezel, filepath.Join(dir, "bezel.png")); err != nil {
		t.Fatalf("save bezel: %v", err)
	}
	return dir, configPath
}

func TestTemplatesCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"templates"}, "")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	for _, name := range []string{"standard", "panoramic", "perspective", "cascade"} {
		requireContains(t, out, name)
	}
}

func TestTemplateHelpCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"template-help", "--name", "panoramic"}, "")
	if err != nil {
		t.Fatalf("template-help: %v", err)
	}
	requireContains(t, out, "Template: panoramic")
	requireContains(t, out, "accent_color")
	requireContains(t, out, "Output 1290x2796")

	if _, _, err := runCLI(t, []string{"template-help", "--name", "carousel"}, ""); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "framed.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatalf("expected error when the file exists")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "3 screen(s), 1 group(s)")
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framed.toml")
	writeFile(t, path, "[project]\nscreenshot_width = -1\n")
	if _, _, err := runCLI(t, []string{"config", "validate"}, path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestProcessCommandWritesImages(t *testing.T) {
	dir, configPath := setupProject(t)
	raw := filepath.Join(dir, "shots", "raw", "phone_en")
	saveImage(t, filepath.Join(raw, "home.png"), 60, 120, color.NRGBA{R: 200, A: 255})
	saveImage(t, filepath.Join(raw, "detail.png"), 60, 120, color.NRGBA{B: 200, A: 255})

	out, _, err := runCLI(t, []string{"process"}, configPath)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	requireContains(t, out, "2 generated, 0 skipped, 0 failed")

	for _, name := range []string{"01_home.png", "02_detail.png"} {
		img, err := imaging.Open(filepath.Join(dir, "shots", "framed", "phone_en", name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		if got := img.Bounds().Size(); got.X != 1290 || got.Y != 2796 {
			t.Fatalf("%s size = %v", name, got)
		}
	}
}

func TestProcessWithoutConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "framed.toml")
	out, stderr, err := runCLI(t, []string{"process"}, missing)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	requireContains(t, out, "Nothing to render")
	requireContains(t, stderr, "no screens configured")
}

func TestSamplesCommand(t *testing.T) {
	dir, configPath := setupProject(t)
	raws := filepath.Join(dir, "sample_raws")
	saveImage(t, filepath.Join(raws, "home.png"), 60, 120, color.NRGBA{G: 200, A: 255})
	saveImage(t, filepath.Join(raws, "extra.png"), 60, 120, color.NRGBA{R: 90, A: 255})
	writeFile(t, filepath.Join(raws, "notes.txt"), "ignored")
	outDir := filepath.Join(dir, "samples")

	out, _, err := runCLI(t, []string{"samples", "--raws", raws, "--out", outDir, "-t", "cascade"}, configPath)
	if err != nil {
		t.Fatalf("samples: %v", err)
	}
	requireContains(t, out, "Generated 3 sample image(s)")

	for _, name := range []string{"01_extra.png", "02_home.png", "group.png"} {
		if _, err := os.Stat(filepath.Join(outDir, "cascade", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	if _, _, err := runCLI(t, []string{"samples", "--raws", raws, "-t", "carousel"}, configPath); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestRawKeysSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	saveImage(t, filepath.Join(dir, "b.png"), 2, 2, color.NRGBA{A: 255})
	saveImage(t, filepath.Join(dir, "a.png"), 2, 2, color.NRGBA{A: 255})
	writeFile(t, filepath.Join(dir, "c.jpg.txt"), "x")
	if err := os.Mkdir(filepath.Join(dir, "d.png"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	keys, err := rawKeys(dir)
	if err != nil {
		t.Fatalf("rawKeys: %v", err)
	}
	if strings.Join(keys, ",") != "a,b" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestLogFileReceivesPlainLines(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "framed.log")
	_, _, err := runCLI(t, []string{"--log-file", logPath, "process"}, filepath.Join(dir, "framed.toml"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	requireContains(t, string(data), "[WARN] processor: no screens configured")
	requireContains(t, string(data), "[INFO] fonts: title font")
}

func TestConfigInitPrint(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runCLI(t, []string{"config", "init", "--print", "--path", filepath.Join(dir, "framed.toml")}, "")
	if err != nil {
		t.Fatalf("config init --print: %v", err)
	}
	requireContains(t, out, "[project]")
	requireContains(t, out, "[[screens]]")
	if _, err := os.Stat(filepath.Join(dir, "framed.toml")); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written, got %v", err)
	}
}
