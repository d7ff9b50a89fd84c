package processor

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrSourceMissing reports a configured screen without a raw image.
var ErrSourceMissing = errors.New("source image missing")

// SourceLoader loads raw screenshots by key.
type SourceLoader interface {
	Load(key string) (image.Image, error)
}

// DirLoader reads <Dir>/<key>.png.
type DirLoader struct {
	Dir string
}

func (d DirLoader) Load(key string) (image.Image, error) {
	path := filepath.Join(d.Dir, key+".png")
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}
