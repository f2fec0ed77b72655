package app

import (
	"errors"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoActiveTarget indicates no configuration file was given and none
	// could be found in the working directory.
	ErrNoActiveTarget = errors.New("no TypeScript configuration file to show")

	// ErrWrongFileType indicates the given file is not a tsconfig file.
	ErrWrongFileType = errors.New("not a TypeScript configuration file (expected tsconfig*.json)")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")
)
