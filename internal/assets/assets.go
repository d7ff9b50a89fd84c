// Package assets exposes the resources bundled into the binary.
package assets

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// BoldFontTTF is the fallback title font.
var BoldFontTTF = gobold.TTF

// RegularFontTTF is the fallback subtitle font.
var RegularFontTTF = goregular.TTF

// SystemBoldFonts and SystemRegularFonts are tried, in order, when no font
// is configured. They cover Japanese and Chinese copy on macOS.
var (
	SystemBoldFonts = []string{
		"/System/Library/Fonts/ヒラギノ角ゴシック W8.ttc",
		"/System/Library/Fonts/Hiragino Sans GB.ttc",
	}
	SystemRegularFonts = []string{
		"/System/Library/Fonts/ヒラギノ角ゴシック W6.ttc",
		"/System/Library/Fonts/Hiragino Sans GB.ttc",
	}
)
