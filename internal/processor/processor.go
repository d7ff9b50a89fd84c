// Package processor renders every configured screen and group of a
// project for each device and language.
package processor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/framed-app/framed/internal/config"
	"github.com/framed-app/framed/internal/frame"
	"github.com/framed-app/framed/internal/logging"
	"github.com/framed-app/framed/internal/render"
	"github.com/framed-app/framed/internal/state"
)

var ErrLocked = errors.New("another framed run is using the output directory")

const lockFileName = ".framed.lock"

// Processor renders a project. It is not safe for concurrent Runs; the
// output directory lock rejects a second process.
type Processor struct {
	cfg    *config.Config
	engine *render.Engine
	logger logging.Logger
	store  *state.Store
	now    func() time.Time

	bezel    image.Image
	template render.Settings
}

func New(cfg *config.Config, engine *render.Engine, logger logging.Logger, store *state.Store) *Processor {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	if store == nil {
		store = state.NewStore()
	}
	return &Processor{cfg: cfg, engine: engine, logger: logger, store: store, now: time.Now}
}

// LoadAssets loads the bezel and the template settings layer. A missing
// bezel is fatal for the whole run.
func (p *Processor) LoadAssets() error {
	bezel, err := frame.LoadBezel(p.cfg.Project.Bezel)
	if err != nil {
		return err
	}
	tmpl, err := p.cfg.TemplateSettings.Settings()
	if err != nil {
		return fmt.Errorf("template_settings: %w", err)
	}
	p.bezel = bezel
	p.template = tmpl
	return nil
}

// Run renders every device and language. Screens that fail are reported
// and skipped; only asset and lock errors abort the run.
func (p *Processor) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	if len(p.cfg.Screens) == 0 && len(p.cfg.Groups) == 0 {
		p.logger.Warnf("processor", "no screens configured, skipping processing")
		return report, nil
	}
	if err := p.LoadAssets(); err != nil {
		return report, err
	}

	if err := os.MkdirAll(p.cfg.Project.OutputDir, 0o755); err != nil {
		return report, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(p.cfg.Project.OutputDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return report, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return report, ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	p.store.StartRun(report.RunID, p.now())
	p.logger.Infof("processor", "run %s started", report.RunID)
	err = p.runMatrix(ctx, &report)
	p.store.FinishRun(p.now(), err)
	if err != nil {
		return report, err
	}
	p.logger.Infof("processor", "run %s finished: %d generated, %d skipped, %d failed",
		report.RunID, report.Count(StatusGenerated), report.Count(StatusSkipped), report.Count(StatusFailed))
	return report, nil
}

func (p *Processor) runMatrix(ctx context.Context, report *Report) error {
	variant := p.variant(p.cfg.Project.Template)
	for _, device := range p.cfg.Devices {
		for _, lang := range p.cfg.Project.Languages {
			if err := ctx.Err(); err != nil {
				return err
			}
			srcDir := p.cfg.RawDir(device.Name, lang)
			if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
				p.logger.Infof("processor", "no raw screenshots for %s (%s), skipping", device.Name, lang)
				continue
			}
			dstDir := p.cfg.FramedDir(device.Name, lang)
			if err := os.MkdirAll(dstDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dstDir, err)
			}
			p.store.SetTarget(device.Name, lang)
			p.logger.Infof("processor", "processing %s (%s)", device.Name, lang)

			t := target{device: device.Name, lang: lang, src: DirLoader{Dir: srcDir}, dst: dstDir}
			if err := p.renderScreens(ctx, t, variant, report); err != nil {
				return err
			}
			if err := p.renderGroups(ctx, t, report); err != nil {
				return err
			}
		}
	}
	return nil
}

type target struct {
	device string
	lang   string
	src    SourceLoader
	dst    string
}

func (t target) result(name string, status Status, detail string) Result {
	return Result{Device: t.device, Language: t.lang, Name: name, Status: status, Detail: detail}
}

// sequence is the ordered list of screens rendered individually. A
// screen's position in it is its panorama index.
func (p *Processor) sequence() []config.Screen {
	var out []config.Screen
	for _, s := range p.cfg.Screens {
		if !p.cfg.Grouped(s.Key) {
			out = append(out, s)
		}
	}
	return out
}

func (p *Processor) renderScreens(ctx context.Context, t target, v render.Variant, report *Report) error {
	screens := p.sequence()
	for i, screen := range screens {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := OutputName(screen.Key, i+1)
		out, err := p.RenderScreen(screen, t.src, t.lang, v, i, len(screens))
		if err != nil {
			if errors.Is(err, ErrSourceMissing) {
				p.logger.Warnf("processor", "%s: %v", screen.Key, err)
				p.store.AddSkipped()
				report.add(t.result(name, StatusSkipped, "source missing"))
				continue
			}
			p.logger.Errorf("processor", "%s: %v", screen.Key, err)
			p.store.AddFailed()
			report.add(t.result(name, StatusFailed, err.Error()))
			continue
		}
		p.write(t, name, out, report)
	}
	return nil
}

func (p *Processor) renderGroups(ctx context.Context, t target, report *Report) error {
	for _, g := range p.cfg.Groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := p.RenderGroup(ctx, g, t.src, t.lang)
		if err != nil {
			if errors.Is(err, ErrEmptyGroup) {
				p.logger.Warnf("processor", "group %s: no screens available, skipping", g.Output)
				p.store.AddSkipped()
				report.add(t.result(g.Output, StatusSkipped, "no screens available"))
				continue
			}
			p.logger.Errorf("processor", "group %s: %v", g.Output, err)
			p.store.AddFailed()
			report.add(t.result(g.Output, StatusFailed, err.Error()))
			continue
		}
		p.write(t, g.Output, out, report)
	}
	return nil
}

func (p *Processor) write(t target, name string, img image.Image, report *Report) {
	size, err := writePNG(filepath.Join(t.dst, name), img)
	if err != nil {
		p.logger.Errorf("processor", "write %s: %v", name, err)
		p.store.AddFailed()
		report.add(t.result(name, StatusFailed, err.Error()))
		return
	}
	p.logger.Infof("processor", "generated %s", name)
	p.store.AddGenerated(size)
	res := t.result(name, StatusGenerated, "")
	res.Bytes = size
	report.add(res)
}

// RenderScreen frames one screen and renders it at index of total.
func (p *Processor) RenderScreen(screen config.Screen, src SourceLoader, lang string, v render.Variant, index, total int) (*image.NRGBA, error) {
	framed, text, err := p.prepare(screen, src, lang, v)
	if err != nil {
		return nil, err
	}
	return p.engine.Render(v, render.Input{Frame: framed, Text: text, Index: index, Total: total})
}

// prepare loads, resizes and frames the raw image of screen and resolves
// its text. Extra settings layers are applied above the screen's own.
func (p *Processor) prepare(screen config.Screen, src SourceLoader, lang string, v render.Variant, extra ...render.Settings) (image.Image, render.TextConfig, error) {
	raw, err := src.Load(screen.Source())
	if err != nil {
		return nil, render.TextConfig{}, err
	}
	if p.bezel == nil {
		return nil, render.TextConfig{}, frame.ErrBezelMissing
	}
	framed, err := frame.Compose(frame.Prepare(raw, p.cfg.ScreenshotSize()), p.bezel)
	if err != nil {
		return nil, render.TextConfig{}, err
	}

	own, err := screen.Settings()
	if err != nil {
		return nil, render.TextConfig{}, fmt.Errorf("screen %s: %w", screen.Key, err)
	}
	layers := append([]render.Settings{v.Defaults(), p.template, own}, extra...)
	text, err := render.BuildTextConfig(lang, layers...)
	if err != nil {
		return nil, render.TextConfig{}, err
	}
	return framed, text, nil
}

func (p *Processor) variant(name string) render.Variant {
	v, ok := render.ParseVariant(name)
	if !ok {
		p.logger.Warnf("processor", "unknown template %q, using %s", name, v)
	}
	return v
}
