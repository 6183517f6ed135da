package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/orientalgrid-web/sos-guardian-pro/internal/assets"
	"github.com/orientalgrid-web/sos-guardian-pro/internal/catalog"
	"github.com/orientalgrid-web/sos-guardian-pro/internal/render"
)

// Previewer shows finished canvases while the run is in progress.
type Previewer interface {
	Show(img image.Image)
	Close()
}

// App generates the asset catalog into Config.OutDir.
type App struct {
	Config Config
	Logger Logger
	// Out receives one "Created: <path>" line per saved file.
	Out     io.Writer
	Preview Previewer

	fonts *render.Fonts
	qr    image.Image
	ready bool
}

// Created describes one written file.
type Created struct {
	// Path is relative to the output root, slash separated.
	Path           string
	Width, Height  int
	OverlaySkipped error
}

// Report lists the files of a run in the order they were written.
type Report struct {
	Files []Created
}

func New(cfg Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}, Out: io.Discard}
}

// Run validates the catalog and writes every asset in table order. The first
// fatal error stops the run; files written before it stay on disk.
func (app *App) Run(ctx context.Context) (Report, error) {
	var report Report
	if err := catalog.Validate(); err != nil {
		return report, fmt.Errorf("catalog: %w", err)
	}
	if err := app.PrepareDirs(); err != nil {
		return report, err
	}
	if err := app.prepare(); err != nil {
		return report, err
	}

	var artworks []Artwork
	for _, spec := range catalog.Icons {
		artworks = append(artworks, ShieldIcon{Spec: spec})
	}
	for _, spec := range catalog.Shortcuts {
		artworks = append(artworks, ShortcutIcon{Spec: spec})
	}
	for _, spec := range catalog.Screenshots {
		artworks = append(artworks, Screenshot{Spec: spec, QR: app.qr})
	}

	for _, artwork := range artworks {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		created, err := app.Render(artwork)
		if err != nil {
			app.Logger.Errorf("app", "stopped after %d files: %v", len(report.Files), err)
			return report, err
		}
		report.Files = append(report.Files, created)
	}
	app.Logger.Infof("app", "run complete, %d files", len(report.Files))
	return report, nil
}

// PrepareDirs creates the icons and screenshots directories under the output
// root. Existing directories are fine.
func (app *App) PrepareDirs() error {
	for _, dir := range []string{catalog.IconsDir, catalog.ScreenshotsDir} {
		full := filepath.Join(app.outDir(), dir)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", full, err)
		}
	}
	return nil
}

func (app *App) RenderIcon(spec catalog.IconSpec) (Created, error) {
	return app.Render(ShieldIcon{Spec: spec})
}

func (app *App) RenderShortcut(spec catalog.ShortcutSpec) (Created, error) {
	return app.Render(ShortcutIcon{Spec: spec})
}

func (app *App) RenderScreenshot(spec catalog.ScreenshotSpec) (Created, error) {
	if err := app.prepare(); err != nil {
		return Created{}, err
	}
	return app.Render(Screenshot{Spec: spec, QR: app.qr})
}

// Render draws one artwork onto a fresh canvas and saves it. The target
// directory must already exist.
func (app *App) Render(artwork Artwork) (Created, error) {
	if err := app.prepare(); err != nil {
		return Created{}, err
	}
	relPath := path.Join(artwork.Dir(), artwork.Filename())

	canvas, err := artwork.NewCanvas(app.fonts)
	if err != nil {
		return Created{}, fmt.Errorf("%s: %w", relPath, err)
	}
	outcome, err := artwork.Draw(canvas)
	if err != nil {
		return Created{}, fmt.Errorf("%s: %w", relPath, err)
	}
	if outcome.OverlaySkipped != nil {
		app.Logger.Warnf("text", "%s: label skipped: %v", relPath, outcome.OverlaySkipped)
	}

	if err := app.save(canvas, filepath.Join(app.outDir(), filepath.FromSlash(relPath))); err != nil {
		return Created{}, err
	}
	fmt.Fprintf(app.out(), "Created: %s\n", relPath)
	if app.Preview != nil {
		app.Preview.Show(canvas.Image())
	}

	width, height := canvas.Size()
	return Created{Path: relPath, Width: width, Height: height, OverlaySkipped: outcome.OverlaySkipped}, nil
}

// Close releases the preview device, if any.
func (app *App) Close() {
	if app.Preview != nil {
		app.Preview.Close()
	}
}

// prepare loads fonts and the install QR code once per App.
func (app *App) prepare() error {
	if app.ready {
		return nil
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	if app.Config.FontPath != "" {
		fonts, err := render.LoadFontFile(app.Config.FontPath)
		if err != nil {
			app.Logger.Warnf("font", "labels will be skipped: %v", err)
		} else {
			app.Logger.Infof("font", "loaded %s", app.Config.FontPath)
		}
		app.fonts = fonts
	} else {
		fonts, err := render.NewFonts(assets.FontTTF)
		if err != nil {
			app.Logger.Warnf("font", "%v", err)
		}
		app.fonts = fonts
	}

	if app.Config.InstallURL != "" {
		navy, err := catalog.Navy.RGBA()
		if err != nil {
			return err
		}
		qr, err := render.InstallQRCode(app.Config.InstallURL, 0, navy)
		if err != nil {
			return fmt.Errorf("install qr code: %w", err)
		}
		app.qr = qr
		app.Logger.Infof("qr", "install QR for %s", app.Config.InstallURL)
	}

	app.ready = true
	return nil
}

func (app *App) save(canvas *render.Canvas, target string) (err error) {
	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", target, cerr)
		}
	}()
	if err := canvas.WritePNG(file); err != nil {
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return nil
}

func (app *App) outDir() string {
	if app.Config.OutDir == "" {
		return "."
	}
	return app.Config.OutDir
}

func (app *App) out() io.Writer {
	if app.Out == nil {
		return io.Discard
	}
	return app.Out
}

// ErrNoPreview is returned by OpenPreview when no device is configured.
var ErrNoPreview = errors.New("no preview device configured")

// OpenPreview attaches the framebuffer preview named by Config.PreviewFB.
func (app *App) OpenPreview() error {
	if app.Config.PreviewFB == "" {
		return ErrNoPreview
	}
	preview, err := render.OpenFBPreview(app.Config.PreviewFB)
	if err != nil {
		return fmt.Errorf("open preview %s: %w", app.Config.PreviewFB, err)
	}
	preview.Logger = app.Logger
	app.Preview = preview
	return nil
}
