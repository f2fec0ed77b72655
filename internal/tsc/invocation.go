package tsc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// InvocationState represents the state of a compiler invocation.
type InvocationState int

const (
	// StateCreated indicates the invocation has been created but not started.
	StateCreated InvocationState = iota
	// StateRunning indicates the subprocess is currently running.
	StateRunning
	// StateExited indicates the subprocess has exited.
	StateExited
)

// String returns a human-readable state name.
func (s InvocationState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Invocation is a single managed compiler subprocess.
//
// It wraps an exec.Cmd with lifecycle tracking and fully buffered output
// capture. Output is never streamed; both pipes are buffered in memory and
// handed back after the process exits.
type Invocation struct {
	// ID is the unique identifier for this invocation, used to tie
	// diagnostic log lines to renders.
	ID string

	// Cmd is the underlying exec.Cmd.
	Cmd *exec.Cmd

	// Started is the time the subprocess was started.
	Started time.Time

	stdout bytes.Buffer
	stderr bytes.Buffer

	// done is closed when the subprocess exits.
	done chan struct{}

	state    atomic.Int32
	exitCode atomic.Int32

	mu      sync.RWMutex
	exitErr error

	waitOnce sync.Once
}

// NewInvocation creates an invocation of the given command.
// The command is not started until Run is called.
func NewInvocation(name string, args ...string) *Invocation {
	cmd := exec.Command(name, args...)
	inv := &Invocation{
		ID:   uuid.NewString(),
		Cmd:  cmd,
		done: make(chan struct{}),
	}
	cmd.Stdout = &inv.stdout
	cmd.Stderr = &inv.stderr
	inv.state.Store(int32(StateCreated))
	inv.exitCode.Store(-1) // -1 indicates not exited
	return inv
}

// CommandLine returns the full command line for diagnostic logging.
func (inv *Invocation) CommandLine() string {
	return inv.Cmd.String()
}

// State returns the current invocation state.
func (inv *Invocation) State() InvocationState {
	return InvocationState(inv.state.Load())
}

// ExitCode returns the subprocess exit code, or -1 before exit.
func (inv *Invocation) ExitCode() int {
	return int(inv.exitCode.Load())
}

// Stdout returns the captured standard output.
// Valid only after the invocation has exited.
func (inv *Invocation) Stdout() string {
	return inv.stdout.String()
}

// Stderr returns the captured standard error.
// Valid only after the invocation has exited.
func (inv *Invocation) Stderr() string {
	return inv.stderr.String()
}

// Done returns a channel that is closed when the subprocess exits.
func (inv *Invocation) Done() <-chan struct{} {
	return inv.done
}

// Run starts the subprocess and waits for it to exit or for the context to
// be cancelled. On cancellation the subprocess is killed and the context
// error is returned.
func (inv *Invocation) Run(ctx context.Context) error {
	if inv.State() != StateCreated {
		return ErrAlreadyStarted
	}

	if err := inv.Cmd.Start(); err != nil {
		inv.state.Store(int32(StateExited))
		close(inv.done)
		return fmt.Errorf("start %s: %w", inv.Cmd.Path, err)
	}

	inv.Started = time.Now()
	inv.state.Store(int32(StateRunning))

	go inv.waitLoop()

	select {
	case <-inv.done:
		return inv.exitError()
	case <-ctx.Done():
		_ = inv.Cmd.Process.Kill()
		<-inv.done
		return ctx.Err()
	}
}

// waitLoop waits for the subprocess to exit and records the result.
func (inv *Invocation) waitLoop() {
	inv.waitOnce.Do(func() {
		err := inv.Cmd.Wait()

		inv.mu.Lock()
		inv.exitErr = err
		inv.mu.Unlock()

		exitCode := 0
		if err != nil {
			exitCode = -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				exitCode = exitErr.ExitCode()
			}
		}

		inv.exitCode.Store(int32(exitCode))
		inv.state.Store(int32(StateExited))
		close(inv.done)
	})
}

// exitError returns the recorded error from waiting on the subprocess.
func (inv *Invocation) exitError() error {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.exitErr
}

// Runtime returns how long the subprocess has been running, or its total
// runtime after exit.
func (inv *Invocation) Runtime() time.Duration {
	if inv.Started.IsZero() {
		return 0
	}
	return time.Since(inv.Started)
}

// ErrAlreadyStarted is returned when Run is called more than once.
var ErrAlreadyStarted = fmt.Errorf("invocation already started")
