package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/framed-app/framed/internal/locale"
	"github.com/framed-app/framed/internal/render"
)

//go:embed sample_config.toml
var sampleConfig string

// Project holds the asset paths and the render matrix.
type Project struct {
	Name             string   `toml:"name"`
	OutputDir        string   `toml:"output_dir"`
	Bezel            string   `toml:"bezel"`
	FontBold         string   `toml:"font_bold"`
	FontRegular      string   `toml:"font_regular"`
	Template         string   `toml:"template"`
	ScreenshotWidth  int      `toml:"screenshot_width"`
	ScreenshotHeight int      `toml:"screenshot_height"`
	Languages        []string `toml:"languages"`
}

// Device is one entry of the device matrix. Name is the directory prefix
// of its raw and framed screenshots.
type Device struct {
	Name string `toml:"name"`
}

// Overlay is a layer of text and color settings. Title and Subtitle are a
// plain string or a table of language tag to string.
type Overlay struct {
	Title           any    `toml:"title"`
	Subtitle        any    `toml:"subtitle"`
	BackgroundColor string `toml:"background_color"`
	TextColor       string `toml:"text_color"`
	SubtitleColor   string `toml:"subtitle_color"`
	AccentColor     string `toml:"accent_color"`
	PanoramicColor  string `toml:"panoramic_color"` // older name of accent_color
	QRCode          string `toml:"qr_code"`
}

// Screen configures one screenshot. SourceKey names the raw image when it
// differs from Key.
type Screen struct {
	Key       string `toml:"key"`
	SourceKey string `toml:"source_key"`
	Overlay
}

// Source returns the raw image key of the screen.
func (s Screen) Source() string {
	if s.SourceKey != "" {
		return s.SourceKey
	}
	return s.Key
}

// Group renders several screens into one output file.
type Group struct {
	Output   string   `toml:"output"`
	Screens  []string `toml:"screens"`
	Template string   `toml:"template"`
	Overlay
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Server contains configuration for the preview API.
type Server struct {
	Listen string `toml:"listen"`
	Dev    bool   `toml:"dev"`
}

// Config encapsulates a framed project.
//
// Configuration sections:
//   - Project: asset paths, default template, languages
//   - Devices: device directories to process
//   - TemplateSettings: settings layered over every template default
//   - Screens: ordered screen metadata; order sets the panorama index
//   - Groups: multi-screen composites
//   - Logging, Server: ambient settings
type Config struct {
	Project          Project  `toml:"project"`
	Devices          []Device `toml:"devices"`
	TemplateSettings Overlay  `toml:"template_settings"`
	Screens          []Screen `toml:"screens"`
	Groups           []Group  `toml:"groups"`
	Logging          Logging  `toml:"logging"`
	Server           Server   `toml:"server"`
}

// Load locates, parses, and validates a configuration file. A missing file
// yields the defaults with no screens. It returns the resolved path and
// whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(filepath.Dir(resolvedPath)); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultFileName
	}
	expanded, err := expandPath(path, "")
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return filepath.Join(expanded, DefaultFileName), fileExists(filepath.Join(expanded, DefaultFileName)), nil
	}
	return expanded, true, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// expandPath resolves ~ and makes relative paths absolute against base, or
// the working directory when base is empty.
func expandPath(pathValue, base string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	if !filepath.IsAbs(cleaned) && base != "" {
		cleaned = filepath.Join(base, cleaned)
	}
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ScreenshotSize is the size raw screenshots are resized to before framing.
func (c *Config) ScreenshotSize() image.Point {
	return image.Pt(c.Project.ScreenshotWidth, c.Project.ScreenshotHeight)
}

// RawDir is the directory holding the raw screenshots of device and lang.
func (c *Config) RawDir(device, lang string) string {
	return filepath.Join(c.Project.OutputDir, "raw", device+"_"+lang)
}

// FramedDir is the directory receiving the rendered images of device and lang.
func (c *Config) FramedDir(device, lang string) string {
	return filepath.Join(c.Project.OutputDir, "framed", device+"_"+lang)
}

// Screen returns the screen configured under key and its 0-based position.
func (c *Config) Screen(key string) (Screen, int, bool) {
	for i, s := range c.Screens {
		if s.Key == key {
			return s, i, true
		}
	}
	return Screen{}, -1, false
}

// Grouped reports whether key belongs to any group.
func (c *Config) Grouped(key string) bool {
	for _, g := range c.Groups {
		for _, k := range g.Screens {
			if k == key {
				return true
			}
		}
	}
	return false
}

// Settings converts the overlay into a render settings layer.
func (o Overlay) Settings() (render.Settings, error) {
	title, err := locale.FromValue(o.Title)
	if err != nil {
		return render.Settings{}, fmt.Errorf("title: %w", err)
	}
	subtitle, err := locale.FromValue(o.Subtitle)
	if err != nil {
		return render.Settings{}, fmt.Errorf("subtitle: %w", err)
	}
	accent := o.AccentColor
	if accent == "" {
		accent = o.PanoramicColor
	}
	return render.Settings{
		Title:           title,
		Subtitle:        subtitle,
		BackgroundColor: o.BackgroundColor,
		TextColor:       o.TextColor,
		SubtitleColor:   o.SubtitleColor,
		AccentColor:     accent,
		QRCode:          o.QRCode,
	}, nil
}

// SampleConfig returns the annotated sample project file.
func SampleConfig() string { return sampleConfig }

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
