package processor

import (
	"context"
	"image"

	"github.com/framed-app/framed/internal/frame"
	"github.com/framed-app/framed/internal/render"
)

// PreviewInput is a single screen rendered outside of a run.
type PreviewInput struct {
	Template   string // empty uses the project template
	Lang       string
	Screenshot image.Image // nil renders background and text only
	Settings   render.Settings
	Index      int
	Total      int
}

// Preview renders one screen with the project's bezel and template
// settings. LoadAssets must have succeeded before.
func (p *Processor) Preview(ctx context.Context, in PreviewInput) (*image.NRGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := in.Template
	if name == "" {
		name = p.cfg.Project.Template
	}
	v := p.variant(name)

	lang := in.Lang
	if lang == "" && len(p.cfg.Project.Languages) > 0 {
		lang = p.cfg.Project.Languages[0]
	}

	var framed image.Image
	if in.Screenshot != nil {
		if p.bezel == nil {
			return nil, frame.ErrBezelMissing
		}
		var err error
		framed, err = frame.Compose(frame.Prepare(in.Screenshot, p.cfg.ScreenshotSize()), p.bezel)
		if err != nil {
			return nil, err
		}
	}

	text, err := render.BuildTextConfig(lang, v.Defaults(), p.template, in.Settings)
	if err != nil {
		return nil, err
	}
	out, err := p.engine.Render(v, render.Input{Frame: framed, Text: text, Index: in.Index, Total: in.Total})
	if err != nil {
		return nil, err
	}
	p.store.AddPreview()
	p.logger.Infof("preview", "rendered %s (%s) %d/%d", v, lang, in.Index+1, max(in.Total, 1))
	return out, nil
}
