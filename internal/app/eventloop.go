package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tscview/internal/highlight"
	"github.com/dshills/tscview/internal/project"
	"github.com/dshills/tscview/internal/view"
	"github.com/dshills/tscview/internal/watch"
)

// Run starts the interactive viewer and blocks until the user quits or
// Shutdown is called.
//
// All display mutation happens on this loop. Resolutions run on their own
// goroutines and funnel results back through one channel, so two overlapping
// resolutions simply render in completion order: the later one wins and
// replaces the panel wholesale. That race is accepted; saves are infrequent
// and the panel never shows a partially rendered document.
func (app *Application) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	return app.runScreen(screen)
}

// runScreen runs the event loop on an already-created screen.
func (app *Application) runScreen(screen tcell.Screen) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	panel := view.NewPanel(screen, app.theme)
	app.session.AttachPanel(panel)
	defer panel.Dispose()

	file, _ := app.session.Target()
	watcher, err := watch.New(project.IsConfigName, app.cfg.Debounce())
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Watch(filepath.Dir(file)); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan view.Document, 4)
	app.startResolve(ctx, results)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-app.done:
			return nil

		case doc := <-results:
			panel.Render(doc)

		case ev := <-watcher.Events():
			app.handleSave(ctx, ev, results)

		case err := <-watcher.Errors():
			app.logger.Warn("watcher: %v", err)

		case tev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleTerminalEvent(ctx, tev, panel, results); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// startResolve runs one resolution pipeline on its own goroutine.
func (app *Application) startResolve(ctx context.Context, results chan<- view.Document) {
	go func() {
		doc := app.resolve(ctx)
		select {
		case results <- doc:
		case <-ctx.Done():
		}
	}()
}

// handleSave reacts to a debounced save event. Saving the tracked file
// brings the panel forward and refreshes it; saving a different tsconfig in
// the watched directory switches tracking to it, mirroring editor tab
// activation.
func (app *Application) handleSave(ctx context.Context, ev watch.Event, results chan<- view.Document) {
	tracked, _ := app.session.Target()

	if ev.Path != tracked {
		app.logger.Info("tracking %s", ev.Path)
		app.session.SetTarget(ev.Path, project.FindRoot(ev.Path))
	} else if panel := app.session.Panel(); panel != nil {
		panel.Reveal()
	}
	app.startResolve(ctx, results)
}

// handleTerminalEvent processes one tcell event.
// Returns ErrQuit when the user asks to exit.
func (app *Application) handleTerminalEvent(ctx context.Context, ev tcell.Event, panel *view.Panel, results chan<- view.Document) error {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		panel.Resize()

	case *tcell.EventKey:
		switch {
		case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC:
			return ErrQuit
		case tev.Key() == tcell.KeyUp:
			panel.ScrollBy(-1)
		case tev.Key() == tcell.KeyDown:
			panel.ScrollBy(1)
		case tev.Key() == tcell.KeyPgUp:
			panel.ScrollBy(-10)
		case tev.Key() == tcell.KeyPgDn:
			panel.ScrollBy(10)
		case tev.Rune() == 'q':
			return ErrQuit
		case tev.Rune() == 'k':
			panel.ScrollBy(-1)
		case tev.Rune() == 'j':
			panel.ScrollBy(1)
		case tev.Rune() == 'g':
			panel.ScrollBy(-1 << 30)
		case tev.Rune() == 'G':
			panel.ScrollBy(1 << 30)
		case tev.Rune() == 'r':
			app.startResolve(ctx, results)
		case tev.Rune() == 't':
			app.cycleTheme(panel)
		}
	}
	return nil
}

// cycleTheme switches the panel to the next built-in theme.
func (app *Application) cycleTheme(panel *view.Panel) {
	names := highlight.ThemeNames()
	next := 0
	for i, name := range names {
		if name == app.theme.Name {
			next = (i + 1) % len(names)
			break
		}
	}
	app.theme = highlight.ThemeByName(names[next])
	panel.SetTheme(app.theme)
}
