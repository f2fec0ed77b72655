// Package app coordinates tscview's resolution pipeline, session state,
// and terminal event loop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/dshills/tscview/internal/config"
	"github.com/dshills/tscview/internal/diag"
	"github.com/dshills/tscview/internal/highlight"
	"github.com/dshills/tscview/internal/project"
	"github.com/dshills/tscview/internal/tsc"
	"github.com/dshills/tscview/internal/view"
)

// Options configures the application.
type Options struct {
	// File is the configuration file to show. Empty means look for
	// tsconfig.json in the working directory.
	File string

	// ConfigPath overrides the default config file location.
	ConfigPath string

	// Theme overrides the configured theme name.
	Theme string

	// LogLevel overrides the configured diagnostic level.
	LogLevel string

	// HTMLOut, when set, selects one-shot mode: resolve once, write the
	// rendered HTML document to this path, and exit.
	HTMLOut string
}

// Application wires the locator, resolver, highlighter, and panel together.
type Application struct {
	opts Options
	cfg  config.Config

	logger   *diag.Logger
	logClose io.Closer

	locator  *tsc.Locator
	resolver *tsc.Resolver
	session  *Session
	theme    *highlight.Theme

	running atomic.Bool

	// done is closed by Shutdown; the event loop exits when it observes
	// the close.
	done     chan struct{}
	doneOnce sync.Once
}

// New creates the application: loads configuration, opens the diagnostic
// log, selects the theme, and validates the target file.
func New(opts Options) (*Application, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
		cfg.ThemeFile = ""
	}

	app := &Application{
		opts:    opts,
		cfg:     cfg,
		locator: tsc.NewLocator(),
		done:    make(chan struct{}),
	}

	app.logger = diag.NullLogger
	if cfg.LogFile != "" {
		sink, err := diag.FileSink(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		logCfg := diag.DefaultConfig()
		logCfg.Level = diag.ParseLevel(cfg.LogLevel)
		logCfg.Output = sink
		app.logger = diag.NewLogger(logCfg)
		app.logClose = sink
	}

	app.resolver = tsc.NewResolver(app.logger.WithComponent("resolver"), cfg.Timeout())

	theme, err := app.loadTheme()
	if err != nil {
		return nil, err
	}
	app.theme = theme

	file, err := resolveTargetFile(opts.File)
	if err != nil {
		return nil, err
	}
	app.session = NewSession(file, project.FindRoot(file))

	return app, nil
}

// Session returns the application's session.
func (app *Application) Session() *Session {
	return app.session
}

// Logger returns the diagnostic logger.
func (app *Application) Logger() *diag.Logger {
	return app.logger
}

// Shutdown stops the event loop and releases application resources.
// Safe to call more than once and from any goroutine.
func (app *Application) Shutdown() {
	app.doneOnce.Do(func() { close(app.done) })
	if panel := app.session.Panel(); panel != nil {
		panel.Dispose()
	}
	if app.logClose != nil {
		_ = app.logClose.Close()
		app.logClose = nil
	}
}

// loadTheme selects the theme per configuration: a Lua theme file wins over
// a built-in name.
func (app *Application) loadTheme() (*highlight.Theme, error) {
	if app.cfg.ThemeFile != "" {
		theme, err := highlight.LoadLuaTheme(app.cfg.ThemeFile)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
		return theme, nil
	}

	theme := highlight.ThemeByName(app.cfg.Theme)
	if theme == nil {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", app.cfg.Theme, highlight.ThemeNames())
	}
	return theme, nil
}

// resolveTargetFile validates the target file, falling back to
// ./tsconfig.json when none is given.
func resolveTargetFile(file string) (string, error) {
	if file == "" {
		candidate := "tsconfig.json"
		if _, err := os.Stat(candidate); err != nil {
			return "", ErrNoActiveTarget
		}
		file = candidate
	}

	if !project.IsConfigName(filepath.Base(file)) {
		return "", fmt.Errorf("%s: %w", file, ErrWrongFileType)
	}
	if _, err := os.Stat(file); err != nil {
		return "", fmt.Errorf("%s: %w", file, ErrNoActiveTarget)
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// resolve runs the full pipeline for the session's current target and
// returns the document to display. Resolver failures become error documents
// here; they never propagate further up.
func (app *Application) resolve(ctx context.Context) view.Document {
	file, root := app.session.Target()
	display := project.RelativePath(root, file)

	command := app.cfg.Compiler
	if command == "" {
		command = app.locator.Locate(root)
	}

	out, err := app.resolver.Resolve(ctx, command, file)
	if err != nil {
		app.logger.Warn("resolution failed for %s: %v", display, err)
		return view.NewError(display, err.Error())
	}

	return view.NewSuccess(display, highlight.Format(out))
}

// Export resolves once and writes the rendered HTML document to path.
// The document is written even when resolution fails; the error is returned
// so the caller can set the exit status.
func (app *Application) Export(ctx context.Context, path string) error {
	doc := app.resolve(ctx)
	html := view.RenderHTML(doc)

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if doc.IsError() {
		return fmt.Errorf("resolution failed: %s", doc.Diagnostic)
	}
	return nil
}
