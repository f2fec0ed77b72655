package tsc

import (
	"path/filepath"
	"testing"
)

func TestLocalBinary(t *testing.T) {
	root := filepath.Join("home", "proj")

	got := localBinary(root, "linux")
	want := filepath.Join(root, "node_modules", ".bin", "tsc")
	if got != want {
		t.Errorf("localBinary(linux) = %q, want %q", got, want)
	}

	got = localBinary(root, "windows")
	if got != want+".cmd" {
		t.Errorf("localBinary(windows) = %q, want %q", got, want+".cmd")
	}
}

func TestLocatePrefersLocalWhenProbeSucceeds(t *testing.T) {
	var probed string
	l := &Locator{
		Global: GlobalCommand,
		probe: func(command string) bool {
			probed = command
			return true
		},
	}

	got := l.Locate("/proj")
	if got != probed {
		t.Errorf("Locate() = %q, want the probed local path %q", got, probed)
	}
	if filepath.Base(filepath.Dir(probed)) != ".bin" {
		t.Errorf("probed %q, want a node_modules/.bin path", probed)
	}
}

func TestLocateFallsBackToGlobalOnProbeFailure(t *testing.T) {
	l := &Locator{
		Global: GlobalCommand,
		probe:  func(string) bool { return false },
	}

	if got := l.Locate("/proj"); got != GlobalCommand {
		t.Errorf("Locate() = %q, want %q", got, GlobalCommand)
	}
}

func TestLocateWithoutRootSkipsProbe(t *testing.T) {
	l := &Locator{
		Global: GlobalCommand,
		probe: func(string) bool {
			t.Error("probe should not run without a project root")
			return false
		},
	}

	if got := l.Locate(""); got != GlobalCommand {
		t.Errorf("Locate(\"\") = %q, want %q", got, GlobalCommand)
	}
}

func TestLocateProbeFailureRaisesNoError(t *testing.T) {
	// A locator pointed at a nonexistent local binary silently selects the
	// global command; a missing compiler only fails at resolution time.
	l := NewLocator()
	if got := l.Locate(t.TempDir()); got != GlobalCommand {
		t.Errorf("Locate() = %q, want %q", got, GlobalCommand)
	}
}
