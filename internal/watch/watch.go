// Package watch delivers debounced save events for configuration files.
//
// Rapid successive writes to the same file (editors often truncate then
// write) are coalesced into a single event.
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when operating on a closed watcher.
var ErrClosed = errors.New("watcher closed")

// defaultDelay is used when no debounce delay is configured.
const defaultDelay = 250 * time.Millisecond

// Event reports a save of a matched file.
type Event struct {
	// Path is the saved file's path as reported by the OS.
	Path string

	// Time is when the debounced event fired.
	Time time.Time
}

// Watcher watches directories and emits debounced save events for files
// whose base name satisfies the match function.
type Watcher struct {
	fsw   *fsnotify.Watcher
	match func(name string) bool
	delay time.Duration

	events chan Event
	errors chan error

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher. match filters by base file name; delay is the
// debounce window (non-positive selects the default).
func New(match func(name string) bool, delay time.Duration) (*Watcher, error) {
	if match == nil {
		match = func(string) bool { return true }
	}
	if delay <= 0 {
		delay = defaultDelay
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		match:   match,
		delay:   delay,
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		pending: make(map[string]*time.Timer),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a directory.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.fsw.Add(dir)
}

// Events returns the debounced save event channel.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the watcher error channel.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and cancels pending debounce timers.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	close(w.closeCh)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop forwards matching fsnotify events through the debouncer.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.match(filepath.Base(ev.Name)) {
				continue
			}
			w.debounce(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				// Error channel full; drop rather than block the loop.
			}
		}
	}
}

// debounce schedules delivery for path, restarting its window on each save.
func (w *Watcher) debounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.delay)
		return
	}

	w.pending[path] = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		w.mu.Unlock()

		if closed {
			return
		}
		select {
		case w.events <- Event{Path: path, Time: time.Now()}:
		case <-w.closeCh:
		}
	})
}
