// SPDX-License-Identifier: MIT

// Package testutil locates repository fixtures for tests that run from
// different package directories.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

var (
	rootOnce sync.Once
	root     string
	rootErr  error
)

// RepoRoot returns the directory holding the module's go.mod.
func RepoRoot() (string, error) {
	rootOnce.Do(func() {
		_, file, _, ok := runtime.Caller(0)
		if !ok {
			rootErr = errors.New("testutil: caller unknown")
			return
		}
		for dir := filepath.Dir(file); ; {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				root = dir
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				rootErr = errors.New("testutil: go.mod not found")
				return
			}
			dir = parent
		}
	})
	return root, rootErr
}

// Path joins elems onto the repository root, failing t when the root
// cannot be found.
func Path(t testing.TB, elems ...string) string {
	t.Helper()
	r, err := RepoRoot()
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}
	return filepath.Join(append([]string{r}, elems...)...)
}

// SchemaPath is the committed api/medialive.yaml.
func SchemaPath(t testing.TB) string {
	t.Helper()
	return Path(t, "api", "medialive.yaml")
}
