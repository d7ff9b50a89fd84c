package web

import (
	"context"
	"errors"
	"image"

	"github.com/framed-app/framed/internal/logging"
	"github.com/framed-app/framed/internal/render"
	"github.com/framed-app/framed/internal/state"
)

// PreviewRequest is one render requested through the API.
type PreviewRequest struct {
	Template   string
	Lang       string
	Screenshot image.Image // nil renders text and background only
	Settings   render.Settings
	Index      int
	Total      int
}

// Previewer renders a single screen on demand.
type Previewer interface {
	Preview(ctx context.Context, req PreviewRequest) (image.Image, error)
}

// StatusSource exposes the run state.
type StatusSource interface {
	Snapshot() state.State
}

// WarningSource exposes recently logged lines.
type WarningSource interface {
	Entries(level string) []logging.Entry
}

type APIV1Deps struct {
	Previewer Previewer
	Status    StatusSource
	Warnings  WarningSource
	Logger    logging.Logger
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Previewer == nil {
		out.Previewer = NoopPreviewer{Err: errors.New("preview not configured")}
	}
	if out.Status == nil {
		out.Status = state.NewStore()
	}
	if out.Warnings == nil {
		out.Warnings = logging.NewRecorder(1)
	}
	if out.Logger == nil {
		out.Logger = logging.NoopLogger{}
	}
	return out
}

type NoopPreviewer struct{ Err error }

func (p NoopPreviewer) Preview(context.Context, PreviewRequest) (image.Image, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return nil, errors.New("preview not configured")
}
