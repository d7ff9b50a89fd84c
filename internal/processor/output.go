package processor

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// OutputName is the file name of an individually rendered screen: numeric
// keys keep their name, other keys get their 1-based position as prefix.
func OutputName(key string, position int) string {
	if isNumeric(key) {
		return key + ".png"
	}
	return fmt.Sprintf("%02d_%s.png", position, key)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// writePNG encodes img next to path and renames it into place, so readers
// never observe a partial file. It returns the written size.
func writePNG(path string, img image.Image) (int64, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+strings.TrimSuffix(filepath.Base(path), ".png")+"-*.png")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		_ = tmp.Close()
		cleanup()
		return 0, fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	info, err := tmp.Stat()
	if err != nil {
		_ = tmp.Close()
		cleanup()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return 0, fmt.Errorf("rename into place: %w", err)
	}
	return info.Size(), nil
}
