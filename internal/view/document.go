// Package view renders resolved configurations into display documents and
// presents them on a terminal panel.
package view

import (
	"github.com/dshills/tscview/internal/highlight"
)

// State is the display variant of a document.
type State int

const (
	// StateSuccess shows highlighted configuration text.
	StateSuccess State = iota
	// StateError shows a diagnostic message.
	StateError
)

// String returns the string representation of the state.
func (s State) String() string {
	if s == StateError {
		return "error"
	}
	return "success"
}

// Document is a displayable rendering of one resolution outcome.
//
// A Document is always in exactly one of the success or error states; the
// constructors are the only way to build one. A new resolution replaces the
// prior document wholesale.
type Document struct {
	state State

	// Path is the workspace-relative path shown in the header.
	Path string

	// Text is the formatted configuration text. Success only.
	Text string

	// Tokens is the classified scan of Text. Success only.
	Tokens []highlight.Token

	// Diagnostic is the failure message. Error only.
	Diagnostic string
}

// NewSuccess builds a success document from formatted configuration text.
func NewSuccess(path, text string) Document {
	return Document{
		state:  StateSuccess,
		Path:   path,
		Text:   text,
		Tokens: highlight.Scan(text),
	}
}

// NewError builds an error document carrying a diagnostic message.
func NewError(path, diagnostic string) Document {
	return Document{
		state:      StateError,
		Path:       path,
		Diagnostic: diagnostic,
	}
}

// State returns the document's display variant.
func (d Document) State() State {
	return d.state
}

// IsError reports whether this is the error variant.
func (d Document) IsError() bool {
	return d.state == StateError
}
