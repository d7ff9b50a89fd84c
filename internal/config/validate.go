package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/framed-app/framed/internal/render"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProject(); err != nil {
		return err
	}
	if err := c.validateDevices(); err != nil {
		return err
	}
	if err := c.validateScreens(); err != nil {
		return err
	}
	if err := c.validateGroups(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateProject() error {
	p := c.Project
	if p.OutputDir == "" {
		return errors.New("project.output_dir must be set")
	}
	if p.ScreenshotWidth <= 0 || p.ScreenshotHeight <= 0 {
		return fmt.Errorf("project.screenshot_width and screenshot_height must be positive (got %dx%d)", p.ScreenshotWidth, p.ScreenshotHeight)
	}
	if err := validateOverlay("template_settings", c.TemplateSettings); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDevices() error {
	seen := make(map[string]struct{}, len(c.Devices))
	for i, d := range c.Devices {
		if d.Name == "" {
			return fmt.Errorf("devices[%d].name must be set", i)
		}
		if strings.ContainsAny(d.Name, `/\`) {
			return fmt.Errorf("devices[%d].name %q must not contain path separators", i, d.Name)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("devices[%d].name %q is listed twice", i, d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}

func (c *Config) validateScreens() error {
	seen := make(map[string]struct{}, len(c.Screens))
	for i, s := range c.Screens {
		field := fmt.Sprintf("screens[%d]", i)
		if s.Key == "" {
			return fmt.Errorf("%s.key must be set", field)
		}
		if !isPlainName(s.Source()) {
			return fmt.Errorf("%s: key %q must be a plain name without path separators", field, s.Source())
		}
		if _, dup := seen[s.Key]; dup {
			return fmt.Errorf("%s.key %q is listed twice", field, s.Key)
		}
		seen[s.Key] = struct{}{}
		if err := validateOverlay(field, s.Overlay); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateGroups() error {
	outputs := make(map[string]struct{}, len(c.Groups))
	for i, g := range c.Groups {
		field := fmt.Sprintf("groups[%d]", i)
		if g.Output == "" {
			return fmt.Errorf("%s.output must be set", field)
		}
		if filepath.Base(g.Output) != g.Output || !isPlainName(g.Output) {
			return fmt.Errorf("%s.output %q must be a file name", field, g.Output)
		}
		if _, dup := outputs[g.Output]; dup {
			return fmt.Errorf("%s.output %q is used twice", field, g.Output)
		}
		outputs[g.Output] = struct{}{}
		if len(g.Screens) == 0 {
			return fmt.Errorf("%s.screens must list at least one screen", field)
		}
		for j, key := range g.Screens {
			if key == "" {
				return fmt.Errorf("%s.screens[%d] is empty", field, j)
			}
			if !isPlainName(key) {
				return fmt.Errorf("%s.screens[%d] %q must be a plain name without path separators", field, j, key)
			}
		}
		if err := validateOverlay(field, g.Overlay); err != nil {
			return err
		}
	}
	return nil
}

// isPlainName reports whether name can be joined to a directory without
// leaving it.
func isPlainName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func validateOverlay(field string, o Overlay) error {
	settings, err := o.Settings()
	if err != nil {
		return fmt.Errorf("%s.%w", field, err)
	}
	for _, kv := range settings.Fields() {
		if kv[0] == "qr_code" {
			continue
		}
		if _, err := render.ParseColor(kv[1]); err != nil {
			return fmt.Errorf("%s.%s: %w", field, kv[0], err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
	return nil
}
