package tsc

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolNotInstalled is returned when the operating system cannot locate or
// execute the compiler binary. Its message is the user-facing remediation.
var ErrToolNotInstalled = errors.New(
	"TypeScript compiler not found: install it with `npm install -g typescript` " +
		"or add it to the project's node_modules")

// ResolutionError is returned when the compiler ran but reported an error
// instead of producing a resolved configuration.
type ResolutionError struct {
	// File is the configuration file the resolution targeted.
	File string

	// Stderr is the compiler's diagnostic output.
	Stderr string

	// Err is the underlying process error.
	Err error
}

// NewResolutionError creates a ResolutionError for the given file.
func NewResolutionError(file, stderr string, err error) *ResolutionError {
	return &ResolutionError{File: file, Stderr: stderr, Err: err}
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stderr != "" {
		return fmt.Sprintf("resolve %s: %s", e.File, e.Stderr)
	}
	return fmt.Sprintf("resolve %s: %v", e.File, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// failureKind classifies a raw OS-level exec failure.
type failureKind int

const (
	// failureOther is any failure not otherwise classified.
	failureOther failureKind = iota
	// failureNotInstalled means the OS could not locate or execute the binary.
	failureNotInstalled
)

// notInstalledPhrases are substrings of platform-dependent "cannot execute"
// messages, normalized to lower case. Windows reports "is not recognized",
// Unix shells report variations of "not found" or "no such file".
var notInstalledPhrases = []string{
	"not found",
	"not recognized",
	"no such file",
	"executable file not found",
}

// classifyExecError maps a raw process error onto the failure taxonomy.
// String matching on OS error text is confined to this function.
func classifyExecError(err error) failureKind {
	if err == nil {
		return failureOther
	}
	if errors.Is(err, exec.ErrNotFound) {
		return failureNotInstalled
	}

	raw := strings.ToLower(err.Error())
	for _, phrase := range notInstalledPhrases {
		if strings.Contains(raw, phrase) {
			return failureNotInstalled
		}
	}
	return failureOther
}
