// Package app wires configuration, logging, rendering and the preview
// server into the commands of the framed CLI.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"sync/atomic"

	"github.com/framed-app/framed/internal/config"
	"github.com/framed-app/framed/internal/logging"
	"github.com/framed-app/framed/internal/processor"
	"github.com/framed-app/framed/internal/render"
	"github.com/framed-app/framed/internal/state"
	"github.com/framed-app/framed/internal/web"
)

// recentEntries bounds the log lines kept for the status endpoint.
const recentEntries = 200

type App struct {
	Config    *config.Config
	Store     *state.Store
	Logger    logging.Logger
	Recorder  *logging.Recorder
	Engine    *render.Engine
	Fonts     *render.Fonts
	Processor *processor.Processor
	Web       web.Server

	exitOnce atomic.Bool
	exitCh   chan error
}

// NewLogger builds the slog logger described by the logging section.
func NewLogger(cfg config.Logging, out io.Writer) (logging.Logger, error) {
	logger, err := logging.New(logging.Options{Level: cfg.Level, Format: cfg.Format, Output: out})
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// New builds an App for cfg. Every log line also goes to an in-memory
// recorder served by the status endpoint.
func New(cfg *config.Config, base logging.Logger) (*App, error) {
	if base == nil {
		base = logging.NoopLogger{}
	}
	rec := logging.NewRecorder(recentEntries)
	logger := logging.Tee{base, rec}

	fonts, err := render.LoadFonts(cfg.Project.FontBold, cfg.Project.FontRegular, logger)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	logger.Infof("fonts", "title font %s, subtitle font %s", fonts.BoldSource, fonts.RegularSource)
	store := state.NewStore()
	engine := render.NewEngine(fonts, logger)

	return &App{
		Config:    cfg,
		Store:     store,
		Logger:    logger,
		Recorder:  rec,
		Engine:    engine,
		Fonts:     fonts,
		Processor: processor.New(cfg, engine, logger, store),
		Web:       &web.NoopServer{},
		exitCh:    make(chan error, 1),
	}, nil
}

// Exit requests Serve to return err.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Process renders the whole project once.
func (app *App) Process(ctx context.Context) (processor.Report, error) {
	return app.Processor.Run(ctx)
}

// Serve runs the preview API until ctx is cancelled or Exit is called. A
// missing bezel is logged; previews without a screenshot still work.
func (app *App) Serve(ctx context.Context, sc web.ServerConfig) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if err := app.Processor.LoadAssets(); err != nil {
		app.Logger.Warnf("app", "assets: %v", err)
	}

	deps := web.APIV1Deps{
		Previewer: previewer{p: app.Processor},
		Status:    app.Store,
		Warnings:  app.Recorder,
		Logger:    app.Logger,
	}
	var handler http.Handler = web.NewDefaultMux(web.APIV1Config{
		Deps:      deps,
		OutputDir: filepath.Join(app.Config.Project.OutputDir, "framed"),
	})
	if sc.DevMode {
		app.Logger.Infof("app", "dev mode: CORS enabled")
		handler = web.WithDevCORS(handler)
	}
	app.Web = web.NewHTTPServer(sc.ListenAddr, handler, app.Logger)

	if err := app.Web.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Web.Stop() }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-app.exitCh:
		return err
	}
}

// previewer adapts the processor to the web API.
type previewer struct {
	p *processor.Processor
}

func (pv previewer) Preview(ctx context.Context, req web.PreviewRequest) (image.Image, error) {
	out, err := pv.p.Preview(ctx, processor.PreviewInput{
		Template:   req.Template,
		Lang:       req.Lang,
		Screenshot: req.Screenshot,
		Settings:   req.Settings,
		Index:      req.Index,
		Total:      req.Total,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
