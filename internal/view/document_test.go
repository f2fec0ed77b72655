package view

import (
	"testing"
)

func TestNewSuccess(t *testing.T) {
	doc := NewSuccess("app/tsconfig.json", `{"a": 1}`)

	if doc.IsError() {
		t.Error("success document reports IsError")
	}
	if doc.State() != StateSuccess {
		t.Errorf("State() = %v, want success", doc.State())
	}
	if doc.Diagnostic != "" {
		t.Errorf("success document carries diagnostic %q", doc.Diagnostic)
	}
	if len(doc.Tokens) == 0 {
		t.Error("success document should carry scanned tokens")
	}
}

func TestNewError(t *testing.T) {
	doc := NewError("app/tsconfig.json", "error TS5023: Unknown compiler option")

	if !doc.IsError() {
		t.Error("error document reports success")
	}
	if doc.State() != StateError {
		t.Errorf("State() = %v, want error", doc.State())
	}
	if doc.Text != "" || len(doc.Tokens) != 0 {
		t.Error("error document should carry no configuration text")
	}
}

func TestStateString(t *testing.T) {
	if got := StateSuccess.String(); got != "success" {
		t.Errorf("StateSuccess.String() = %q", got)
	}
	if got := StateError.String(); got != "error" {
		t.Errorf("StateError.String() = %q", got)
	}
}
