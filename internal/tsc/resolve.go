// Package tsc locates and invokes the TypeScript compiler to retrieve a
// project's fully-resolved configuration.
package tsc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/tscview/internal/diag"
)

// DefaultTimeout bounds a resolution subprocess.
const DefaultTimeout = 30 * time.Second

// emptyConfig is returned when the compiler succeeds with no output.
const emptyConfig = "{}"

// Resolver invokes the compiler with --showConfig and classifies failures.
type Resolver struct {
	logger  *diag.Logger
	timeout time.Duration
}

// NewResolver creates a resolver logging to the given diagnostic logger.
// A timeout of zero selects DefaultTimeout.
func NewResolver(logger *diag.Logger, timeout time.Duration) *Resolver {
	if logger == nil {
		logger = diag.NullLogger
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{logger: logger, timeout: timeout}
}

// Resolve runs `<command> --project <file> --showConfig` and returns the
// resolved configuration text.
//
// Failure classification:
//   - the OS cannot locate or execute the binary: ErrToolNotInstalled
//   - the timeout elapsed: a timeout error, even if the compiler had
//     already written diagnostics before hanging
//   - the compiler ran, wrote diagnostics to stderr and nothing to
//     stdout: *ResolutionError carrying the stderr text
//   - anything else: the process error annotated with partial stdout
func (r *Resolver) Resolve(ctx context.Context, command, file string) (string, error) {
	inv := NewInvocation(command, "--project", file, "--showConfig")

	// Logged before execution so a hung invocation is still visible.
	r.logger.WithField("invocation", inv.ID).Info("exec: %s", inv.CommandLine())

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := inv.Run(runCtx)
	stdout := strings.TrimSpace(inv.Stdout())
	stderr := strings.TrimSpace(inv.Stderr())

	if err == nil {
		if stdout == "" {
			return emptyConfig, nil
		}
		return stdout, nil
	}

	r.logger.WithField("invocation", inv.ID).
		Debug("exec failed: exit=%d runtime=%s err=%v", inv.ExitCode(), inv.Runtime().Round(time.Millisecond), err)

	if classifyExecError(err) == failureNotInstalled {
		return "", fmt.Errorf("%s: %w", command, ErrToolNotInstalled)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "", fmt.Errorf("tsc --showConfig timed out after %s: %w", r.timeout, err)
	}

	if stderr != "" && stdout == "" {
		return "", NewResolutionError(file, stderr, err)
	}

	if stdout != "" {
		return "", fmt.Errorf("tsc --showConfig failed: %w (partial output: %s)", err, stdout)
	}
	return "", fmt.Errorf("tsc --showConfig failed: %w", err)
}
