package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/commitlens/commitlens/internal/config"
	clerrors "github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/output"
)

func TestFormatError(t *testing.T) {
	catErr := clerrors.GitError(errors.New("exit status 128"), "rev-list failed")
	got := formatError(catErr)
	if !strings.Contains(got, "[GIT]") {
		t.Errorf("formatError(%v) = %q, want type prefix", catErr, got)
	}

	wrapped := errors.New("outer: " + catErr.Error())
	if got := formatError(wrapped); strings.Contains(got, "[GIT]") {
		t.Errorf("formatError(%v) = %q, plain errors should not gain a type prefix", wrapped, got)
	}
}

func TestResolveFormat(t *testing.T) {
	prev := cfg
	defer func() { cfg = prev }()
	cfg = config.Default()

	// Flag beats config.
	cfg.Output.Format = string(output.FormatJSON)
	if got := resolveFormat(string(output.FormatQuiet)); got != output.FormatQuiet {
		t.Errorf("resolveFormat(quiet) = %q, want %q", got, output.FormatQuiet)
	}

	// Config fills in when the flag is empty.
	if got := resolveFormat(""); got != output.FormatJSON {
		t.Errorf("resolveFormat(\"\") = %q, want %q", got, output.FormatJSON)
	}

	// Both empty falls through to terminal detection.
	cfg.Output.Format = ""
	if got := resolveFormat(""); got != output.DefaultFormat() {
		t.Errorf("resolveFormat(\"\") = %q, want %q", got, output.DefaultFormat())
	}
}
