// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// IsolateConfig points HOME and XDG_CONFIG_HOME at a fresh temp dir and
// changes into it, so no user or working-directory config.yaml is found.
// HUE_* variables from the outer environment are cleared for the test.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "HUE_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// WriteFile writes content to dir/name, creating parent directories, and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
