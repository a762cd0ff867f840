package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/widgetkit/internal/config"
)

// testConfigPath copies a widget fixture into a temp dir and returns the copy.
func testConfigPath(t *testing.T, name string) string {
	t.Helper()
	// Go up two directories from cmd/widgetctl to repo root
	src := filepath.Join("..", "..", "pkg", "widget", "testdata", name)
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("test file not found: %s", src)
	}
	path := filepath.Join(t.TempDir(), "config.xml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
	return path
}

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	dryRun = false
	configPath = ""
	indent = config.DefaultIndent
	backup = false
	logLevel = ""
	cfg = config.Default()

	setEmail, setHref = "", ""
	elementAttrs = nil
	prefRemove = false
	accessAttrs, accessRemove, accessRemoveAll = nil, false, false
	pluginRemove = false
	applyConcurrency = 0
	fmtCheck = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot block the writer
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return <-done, fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
