package render

import (
	"fmt"
	"image/color"

	"github.com/framed-app/framed/internal/locale"
)

// Settings is one layer of text and color configuration. Empty fields
// leave the value of lower layers in place.
type Settings struct {
	Title           locale.Text
	Subtitle        locale.Text
	BackgroundColor string
	TextColor       string
	SubtitleColor   string
	AccentColor     string
	QRCode          string
}

// Over returns s with every field set in top replacing the value of s.
func (s Settings) Over(top Settings) Settings {
	if !top.Title.IsZero() {
		s.Title = top.Title
	}
	if !top.Subtitle.IsZero() {
		s.Subtitle = top.Subtitle
	}
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&s.BackgroundColor, top.BackgroundColor)
	pick(&s.TextColor, top.TextColor)
	pick(&s.SubtitleColor, top.SubtitleColor)
	pick(&s.AccentColor, top.AccentColor)
	pick(&s.QRCode, top.QRCode)
	return s
}

// Fields lists the non-text settings as key/value pairs in a stable order.
func (s Settings) Fields() [][2]string {
	var out [][2]string
	add := func(k, v string) {
		if v != "" {
			out = append(out, [2]string{k, v})
		}
	}
	add("background_color", s.BackgroundColor)
	add("text_color", s.TextColor)
	add("subtitle_color", s.SubtitleColor)
	add("accent_color", s.AccentColor)
	add("qr_code", s.QRCode)
	return out
}

// TextConfig is the fully resolved configuration of one rendered screen.
type TextConfig struct {
	Title      string
	Subtitle   string
	Background color.NRGBA
	Text       color.NRGBA
	SubtitleFg color.NRGBA
	Accent     color.NRGBA
	QRCode     string
}

// DefaultTextConfig returns an empty text block on the default palette.
func DefaultTextConfig() TextConfig {
	return TextConfig{
		Background: mustColor(DefaultBackground),
		Text:       mustColor(DefaultText),
		SubtitleFg: mustColor(DefaultSubtitle),
		Accent:     mustColor(DefaultAccent),
	}
}

// BuildTextConfig layers the given settings in increasing precedence on top
// of the default palette and resolves localized text for lang.
func BuildTextConfig(lang string, layers ...Settings) (TextConfig, error) {
	var merged Settings
	for _, layer := range layers {
		merged = merged.Over(layer)
	}

	cfg := DefaultTextConfig()
	cfg.Title = locale.Resolve(merged.Title, lang)
	cfg.Subtitle = locale.Resolve(merged.Subtitle, lang)
	cfg.QRCode = merged.QRCode

	colors := []struct {
		key   string
		value string
		dst   *color.NRGBA
	}{
		{"background_color", merged.BackgroundColor, &cfg.Background},
		{"text_color", merged.TextColor, &cfg.Text},
		{"subtitle_color", merged.SubtitleColor, &cfg.SubtitleFg},
		{"accent_color", merged.AccentColor, &cfg.Accent},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := ParseColor(c.value)
		if err != nil {
			return TextConfig{}, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = parsed
	}
	return cfg, nil
}
