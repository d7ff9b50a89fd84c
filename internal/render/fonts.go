package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/framed-app/framed/internal/assets"
	"github.com/framed-app/framed/internal/logging"
)

type fontSource interface {
	newFace(size float64) (font.Face, error)
}

type trueTypeFont struct{ f *truetype.Font }

func (t trueTypeFont) newFace(size float64) (font.Face, error) {
	return truetype.NewFace(t.f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

type openTypeFont struct{ f *opentype.Font }

func (o openTypeFont) newFace(size float64) (font.Face, error) {
	return opentype.NewFace(o.f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// Fonts holds the parsed title (bold) and subtitle (regular) fonts. Parsed
// fonts are immutable; faces are created per render because font.Face
// values are not safe for concurrent use.
type Fonts struct {
	bold    fontSource
	regular fontSource

	BoldSource    string
	RegularSource string
}

// FaceSet carries the faces of one render call.
type FaceSet struct {
	Title    font.Face
	Subtitle font.Face
}

func (f FaceSet) Close() {
	if f.Title != nil {
		_ = f.Title.Close()
	}
	if f.Subtitle != nil {
		_ = f.Subtitle.Close()
	}
}

// DefaultFonts returns the bundled Go fonts.
func DefaultFonts() (*Fonts, error) {
	bold, err := parseFont(assets.BoldFontTTF, "gobold.ttf")
	if err != nil {
		return nil, fmt.Errorf("parse bundled bold font: %w", err)
	}
	regular, err := parseFont(assets.RegularFontTTF, "goregular.ttf")
	if err != nil {
		return nil, fmt.Errorf("parse bundled regular font: %w", err)
	}
	return &Fonts{bold: bold, regular: regular, BoldSource: "bundled", RegularSource: "bundled"}, nil
}

// LoadFonts tries the configured path, then the system fonts, then the
// bundled fonts, for both weights.
func LoadFonts(boldPath, regularPath string, logger logging.Logger) (*Fonts, error) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	fonts, err := DefaultFonts()
	if err != nil {
		return nil, err
	}
	if src, name, ok := loadFirst(candidates(boldPath, assets.SystemBoldFonts), logger); ok {
		fonts.bold, fonts.BoldSource = src, name
	} else {
		logger.Warnf("fonts", "bold font not found, using bundled default")
	}
	if src, name, ok := loadFirst(candidates(regularPath, assets.SystemRegularFonts), logger); ok {
		fonts.regular, fonts.RegularSource = src, name
	} else {
		logger.Warnf("fonts", "regular font not found, using bundled default")
	}
	return fonts, nil
}

// Faces creates the title and subtitle faces at the layout's sizes.
func (f *Fonts) Faces(l Layout) (FaceSet, error) {
	title, err := f.bold.newFace(l.TitleSize)
	if err != nil {
		return FaceSet{}, fmt.Errorf("title face: %w", err)
	}
	subtitle, err := f.regular.newFace(l.SubtitleSize)
	if err != nil {
		_ = title.Close()
		return FaceSet{}, fmt.Errorf("subtitle face: %w", err)
	}
	return FaceSet{Title: title, Subtitle: subtitle}, nil
}

func candidates(configured string, system []string) []string {
	var out []string
	if strings.TrimSpace(configured) != "" {
		out = append(out, configured)
	}
	return append(out, system...)
}

func loadFirst(paths []string, logger logging.Logger) (fontSource, string, bool) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		src, err := parseFont(data, path)
		if err != nil {
			logger.Errorf("fonts", "parse %s failed: %v", path, err)
			continue
		}
		logger.Infof("fonts", "loaded %s", path)
		return src, path, true
	}
	return nil, "", false
}

func parseFont(data []byte, name string) (fontSource, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, err
		}
		return openTypeFont{f: f}, nil
	}
	if tt, err := truetype.Parse(data); err == nil {
		return trueTypeFont{f: tt}, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return openTypeFont{f: f}, nil
}
