package tsc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/tscview/internal/diag"
)

// fakeTool writes an executable shell script standing in for tsc.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsc")
	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveSuccess(t *testing.T) {
	tool := fakeTool(t, `echo '{"compilerOptions":{"strict":true}}'`)
	r := NewResolver(diag.NullLogger, 0)

	got, err := r.Resolve(context.Background(), tool, "tsconfig.json")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != `{"compilerOptions":{"strict":true}}` {
		t.Errorf("Resolve() = %q", got)
	}
}

func TestResolveEmptyOutputDefaultsToEmptyObject(t *testing.T) {
	tool := fakeTool(t, "exit 0")
	r := NewResolver(diag.NullLogger, 0)

	got, err := r.Resolve(context.Background(), tool, "tsconfig.json")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "{}" {
		t.Errorf("Resolve() = %q, want {}", got)
	}
}

func TestResolveCompilerDiagnostic(t *testing.T) {
	tool := fakeTool(t, `echo 'error TS5023: Unknown compiler option' >&2; exit 1`)
	r := NewResolver(diag.NullLogger, 0)

	_, err := r.Resolve(context.Background(), tool, "tsconfig.json")

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want *ResolutionError", err)
	}
	if !strings.Contains(resErr.Stderr, "error TS5023") {
		t.Errorf("Stderr = %q, want the compiler diagnostic", resErr.Stderr)
	}
	if resErr.File != "tsconfig.json" {
		t.Errorf("File = %q, want tsconfig.json", resErr.File)
	}
}

func TestResolveToolNotInstalled(t *testing.T) {
	r := NewResolver(diag.NullLogger, 0)

	_, err := r.Resolve(context.Background(), "/nonexistent/path/tsc", "tsconfig.json")
	if !errors.Is(err, ErrToolNotInstalled) {
		t.Errorf("Resolve() error = %v, want ErrToolNotInstalled", err)
	}
}

func TestResolveToolNotInPath(t *testing.T) {
	r := NewResolver(diag.NullLogger, 0)

	_, err := r.Resolve(context.Background(), "definitely-not-a-real-compiler", "tsconfig.json")
	if !errors.Is(err, ErrToolNotInstalled) {
		t.Errorf("Resolve() error = %v, want ErrToolNotInstalled", err)
	}
}

func TestResolvePartialOutputAnnotated(t *testing.T) {
	tool := fakeTool(t, `echo '{"partial":'; exit 2`)
	r := NewResolver(diag.NullLogger, 0)

	_, err := r.Resolve(context.Background(), tool, "tsconfig.json")
	if err == nil {
		t.Fatal("Resolve() should fail on nonzero exit")
	}
	if !strings.Contains(err.Error(), `{"partial":`) {
		t.Errorf("error = %v, want partial stdout appended", err)
	}
}

func TestResolveTimeout(t *testing.T) {
	tool := fakeTool(t, "sleep 10")
	r := NewResolver(diag.NullLogger, 100*time.Millisecond)

	start := time.Now()
	_, err := r.Resolve(context.Background(), tool, "tsconfig.json")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Resolve() error = %v, want deadline exceeded", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("Resolve() should return promptly on timeout")
	}
	if !strings.Contains(err.Error(), "timed out after") {
		t.Errorf("error = %v, want the timeout named", err)
	}
}

func TestResolveTimeoutAfterStderrOutput(t *testing.T) {
	tool := fakeTool(t, `echo 'error TS18003: No inputs' >&2; sleep 10`)
	r := NewResolver(diag.NullLogger, 100*time.Millisecond)

	_, err := r.Resolve(context.Background(), tool, "tsconfig.json")

	var resErr *ResolutionError
	if errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want a timeout, not a compiler diagnostic", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Resolve() error = %v, want deadline exceeded", err)
	}
	if !strings.Contains(err.Error(), "timed out after") {
		t.Errorf("error = %v, want the timeout named", err)
	}
}

func TestResolveLogsCommandLine(t *testing.T) {
	var buf strings.Builder
	logger := diag.NewLogger(diag.Config{Level: diag.LevelInfo, Output: &buf})

	tool := fakeTool(t, "echo '{}'")
	r := NewResolver(logger, 0)

	if _, err := r.Resolve(context.Background(), tool, "app/tsconfig.json"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "--project") || !strings.Contains(out, "--showConfig") {
		t.Errorf("diagnostic log missing command line: %q", out)
	}
	if !strings.Contains(out, "app/tsconfig.json") {
		t.Errorf("diagnostic log missing target file: %q", out)
	}
}
