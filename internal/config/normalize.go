package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize(base string) error {
	if err := c.normalizeProject(base); err != nil {
		return err
	}
	for i := range c.Devices {
		c.Devices[i].Name = strings.TrimSpace(c.Devices[i].Name)
	}
	c.TemplateSettings.normalize()
	for i := range c.Screens {
		s := &c.Screens[i]
		s.Key = strings.TrimSpace(s.Key)
		s.SourceKey = strings.TrimSpace(s.SourceKey)
		s.Overlay.normalize()
	}
	for i := range c.Groups {
		g := &c.Groups[i]
		g.Output = strings.TrimSpace(g.Output)
		g.Template = strings.ToLower(strings.TrimSpace(g.Template))
		for j := range g.Screens {
			g.Screens[j] = strings.TrimSpace(g.Screens[j])
		}
		g.Overlay.normalize()
	}
	c.normalizeLogging()
	c.Server.Listen = strings.TrimSpace(c.Server.Listen)
	if c.Server.Listen == "" {
		c.Server.Listen = defaultListenAddr
	}
	return nil
}

func (c *Config) normalizeProject(base string) error {
	p := &c.Project
	p.Name = strings.TrimSpace(p.Name)
	p.Template = strings.ToLower(strings.TrimSpace(p.Template))
	if p.Template == "" {
		p.Template = defaultTemplate
	}

	var err error
	if strings.TrimSpace(p.OutputDir) == "" {
		p.OutputDir = defaultOutputDir
	}
	if p.OutputDir, err = expandPath(strings.TrimSpace(p.OutputDir), base); err != nil {
		return fmt.Errorf("project.output_dir: %w", err)
	}
	if strings.TrimSpace(p.Bezel) == "" {
		p.Bezel = defaultBezel
	}
	if p.Bezel, err = expandPath(strings.TrimSpace(p.Bezel), base); err != nil {
		return fmt.Errorf("project.bezel: %w", err)
	}
	if p.FontBold, err = expandPath(strings.TrimSpace(p.FontBold), base); err != nil {
		return fmt.Errorf("project.font_bold: %w", err)
	}
	if p.FontRegular, err = expandPath(strings.TrimSpace(p.FontRegular), base); err != nil {
		return fmt.Errorf("project.font_regular: %w", err)
	}

	seen := make(map[string]struct{}, len(p.Languages))
	langs := p.Languages[:0]
	for _, lang := range p.Languages {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			continue
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	if len(langs) == 0 {
		langs = []string{defaultLanguage}
	}
	p.Languages = langs
	return nil
}

func (o *Overlay) normalize() {
	o.BackgroundColor = strings.TrimSpace(o.BackgroundColor)
	o.TextColor = strings.TrimSpace(o.TextColor)
	o.SubtitleColor = strings.TrimSpace(o.SubtitleColor)
	o.AccentColor = strings.TrimSpace(o.AccentColor)
	o.PanoramicColor = strings.TrimSpace(o.PanoramicColor)
	o.QRCode = strings.TrimSpace(o.QRCode)
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
