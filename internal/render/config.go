package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Default palette, used when no layer of settings provides a color.
const (
	DefaultBackground = "#F5F5F7"
	DefaultText       = "#1D1D1F"
	DefaultSubtitle   = "#86868B"
	DefaultAccent     = "#C7C7CC"
)

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA or an SVG color name.
func ParseColor(value string) (color.NRGBA, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		}
		return color.NRGBA{}, fmt.Errorf("unknown color %q", value)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func mustColor(value string) color.NRGBA {
	c, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return c
}
