package processor

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/framed-app/framed/internal/config"
	"github.com/framed-app/framed/internal/render"
)

// ErrEmptyGroup reports a group none of whose screens could be loaded.
var ErrEmptyGroup = errors.New("group has no available screens")

// RenderGroup frames the group's screens in order and renders them into
// one image. Missing screens are logged and left out; a group without any
// screen returns ErrEmptyGroup.
func (p *Processor) RenderGroup(ctx context.Context, g config.Group, src SourceLoader, lang string) (*image.NRGBA, error) {
	name := g.Template
	if name == "" {
		name = p.cfg.Project.Template
	}
	v := p.variant(name)

	overlay, err := g.Settings()
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.Output, err)
	}

	frames := make([]image.Image, 0, len(g.Screens))
	texts := make([]render.TextConfig, 0, len(g.Screens))
	for _, key := range g.Screens {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		screen, _, ok := p.cfg.Screen(key)
		if !ok {
			screen = config.Screen{Key: key}
		}
		framed, text, err := p.prepare(screen, src, lang, v, overlay)
		if err != nil {
			if errors.Is(err, ErrSourceMissing) {
				p.logger.Warnf("group", "%s: skipping %s: %v", g.Output, key, err)
				continue
			}
			return nil, fmt.Errorf("group %s: %s: %w", g.Output, key, err)
		}
		frames = append(frames, framed)
		texts = append(texts, text)
	}
	if len(frames) == 0 {
		return nil, ErrEmptyGroup
	}
	return p.engine.RenderGroup(v, frames, texts)
}
