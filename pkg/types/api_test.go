package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("set version: %w", ValidationError("Please provide a valid version number."))

	if !errors.Is(err, ErrValidation) {
		t.Error("Wrapped validation error should match ErrValidation")
	}
	if errors.Is(err, ErrParse) {
		t.Error("Validation error should not match ErrParse")
	}
}

func TestRootTagError_Message(t *testing.T) {
	err := RootTagError("fixtures/config.wrong.xml", "widget", "foo")

	want := `fixtures/config.wrong.xml has incorrect root node name (expected "widget", was "foo")`
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
	if err.Tag != "foo" {
		t.Errorf("Expected Tag 'foo', got %q", err.Tag)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := IOError("write", "/tmp/config.xml", cause)

	if !errors.Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}
	if err.Error() != "write /tmp/config.xml: permission denied" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", ParseError("a.xml", errors.New("eof"))))
	if !ok || kind != ErrKindParse {
		t.Errorf("Expected parse kind, got %v (%v)", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("Plain errors have no kind")
	}
}

func TestErrKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrKind
		expected string
	}{
		{ErrKindParse, "parse"},
		{ErrKindRootTag, "root-tag"},
		{ErrKindValidation, "validation"},
		{ErrKindIO, "io"},
		{ErrKindLimit, "limit"},
		{ErrKind(42), "kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ErrKind(%d).String() = %q, want %q", int(tt.kind), got, tt.expected)
		}
	}
}
