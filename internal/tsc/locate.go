package tsc

import (
	"context"
	"path/filepath"
	"runtime"
	"time"
)

// GlobalCommand is the bare command name used when no project-local compiler
// can be found.
const GlobalCommand = "tsc"

// probeTimeout bounds the version query used to confirm a local binary runs.
const probeTimeout = 5 * time.Second

// Locator chooses the compiler binary to invoke for a project.
type Locator struct {
	// Global is the fallback command name. Defaults to GlobalCommand.
	Global string

	// probe confirms a candidate binary runs. Replaceable in tests.
	probe func(command string) bool
}

// NewLocator creates a locator with the default global fallback.
func NewLocator() *Locator {
	return &Locator{
		Global: GlobalCommand,
		probe:  probeCommand,
	}
}

// Locate returns the command to invoke for the given project root.
//
// When a root is known, the project-local binary under node_modules/.bin is
// preferred if a cheap version query confirms it runs. Any probe failure is
// silently treated as "use global": a missing compiler only surfaces as an
// error when the resolution call itself fails.
func (l *Locator) Locate(projectRoot string) string {
	if projectRoot == "" {
		return l.Global
	}

	local := localBinary(projectRoot, runtime.GOOS)
	if l.probe(local) {
		return local
	}
	return l.Global
}

// localBinary synthesizes the project-local compiler path for the platform.
func localBinary(projectRoot, goos string) string {
	bin := filepath.Join(projectRoot, "node_modules", ".bin", "tsc")
	if goos == "windows" {
		bin += ".cmd"
	}
	return bin
}

// probeCommand runs a version query to confirm the command executes.
func probeCommand(command string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	inv := NewInvocation(command, "--version")
	return inv.Run(ctx) == nil
}
