package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/tscview/internal/project"
)

func TestWatcherEmitsSaveEvent(t *testing.T) {
	dir := t.TempDir()

	w, err := New(project.IsConfigName, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	target := filepath.Join(dir, "tsconfig.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if filepath.Base(ev.Path) != "tsconfig.json" {
			t.Errorf("event path = %q, want tsconfig.json", ev.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for save event")
	}
}

func TestWatcherIgnoresUnmatchedFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New(project.IsConfigName, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event for %q", ev.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesRapidSaves(t *testing.T) {
	dir := t.TempDir()

	w, err := New(project.IsConfigName, 150*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	target := filepath.Join(dir, "tsconfig.json")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	count := 0
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-w.Events():
			count++
		case <-deadline:
			if count != 1 {
				t.Errorf("event count = %d, want 1 after debouncing", count)
			}
			return
		}
	}
}

func TestWatcherCloseIsTerminal(t *testing.T) {
	w, err := New(nil, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != ErrClosed {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}
	if err := w.Watch(t.TempDir()); err != ErrClosed {
		t.Errorf("Watch() after close = %v, want ErrClosed", err)
	}
}
