package render

import "strings"

// Variant selects one of the fixed template layouts.
type Variant int

const (
	Standard Variant = iota
	Panoramic
	Perspective
	Cascade
)

var variantInfo = [...]struct {
	name        string
	description string
	defaults    Settings
}{
	Standard: {
		name:        "standard",
		description: "Title and subtitle on top, one upright device below on a flat background.",
		defaults:    Settings{BackgroundColor: DefaultBackground, TextColor: DefaultText, SubtitleColor: DefaultSubtitle},
	},
	Panoramic: {
		name:        "panoramic",
		description: "Standard layout over a waveform that continues across every image of the listing.",
		defaults:    Settings{BackgroundColor: DefaultBackground, TextColor: DefaultText, SubtitleColor: DefaultSubtitle, AccentColor: DefaultAccent},
	},
	Perspective: {
		name:        "perspective",
		description: "Panoramic background; the first two devices stand in perspective with a drop shadow, the rest are upright.",
		defaults:    Settings{BackgroundColor: DefaultBackground, TextColor: DefaultText, SubtitleColor: DefaultSubtitle, AccentColor: DefaultAccent},
	},
	Cascade: {
		name:        "cascade",
		description: "Several devices of a group fanned diagonally in one image, text left-aligned.",
		defaults:    Settings{BackgroundColor: DefaultBackground, TextColor: DefaultText, SubtitleColor: DefaultSubtitle},
	},
}

// Variants returns every variant in declaration order.
func Variants() []Variant { return []Variant{Standard, Panoramic, Perspective, Cascade} }

// ParseVariant maps a configured template name to its variant. Unknown
// names return Standard and false.
func ParseVariant(name string) (Variant, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "diagonal" {
		return Cascade, true
	}
	for _, v := range Variants() {
		if variantInfo[v].name == name {
			return v, true
		}
	}
	return Standard, false
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantInfo) {
		return "unknown"
	}
	return variantInfo[v].name
}

func (v Variant) Description() string { return variantInfo[v].description }

// Defaults is the bottom settings layer of the variant.
func (v Variant) Defaults() Settings { return variantInfo[v].defaults }

// Layout returns the variant's layout constants.
func (v Variant) Layout() Layout { return layoutFor(v) }

// GroupAware reports whether the variant renders a whole group into one image.
func (v Variant) GroupAware() bool { return strategies[v].group != nil }
