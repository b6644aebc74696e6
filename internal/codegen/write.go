// SPDX-License-Identifier: MIT

package codegen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
)

// Result summarizes a Write call.
type Result struct {
	Written   []string
	Unchanged []string
	Removed   []string
}

// Changed reports whether Write touched the output directory.
func (r Result) Changed() bool {
	return len(r.Written)+len(r.Removed) > 0
}

// Write replaces the generated files in dir atomically. Files whose content
// is already current are left alone, and generated files no longer produced
// by the schema are removed. Hand-written files are never touched.
func Write(ctx context.Context, dir string, files []File) (Result, error) {
	var res Result
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}
	fileLogger := func(name string) zerolog.Logger {
		return log.Derive(ctx, func(c *zerolog.Context) {
			*c = c.Str(log.FieldComponent, "codegen").Str(log.FieldFile, name)
		})
	}

	keep := make(map[string]bool, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		keep[f.Name] = true
		path := filepath.Join(dir, f.Name)
		// #nosec G304 -- path is built from the output dir and a generated name
		if cur, err := os.ReadFile(path); err == nil && bytes.Equal(cur, f.Content) {
			res.Unchanged = append(res.Unchanged, f.Name)
			continue
		}
		if err := writeAtomic(path, f.Content); err != nil {
			return res, err
		}
		res.Written = append(res.Written, f.Name)
		logger := fileLogger(path)
		logger.Info().Int(log.FieldBytes, len(f.Content)).Msg("wrote file")
	}

	stale, err := staleFiles(dir, keep)
	if err != nil {
		return res, err
	}
	for _, name := range stale {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return res, fmt.Errorf("remove stale %s: %w", name, err)
		}
		res.Removed = append(res.Removed, name)
		logger := fileLogger(name)
		logger.Info().Msg("removed stale generated file")
	}
	return res, nil
}

func writeAtomic(path string, data []byte) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() { _ = pf.Cleanup() }()

	if _, err := pf.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// staleFiles lists *_gen.go files in dir that carry the generator header
// but are not in keep.
func staleFiles(dir string, keep map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}
	var stale []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || keep[name] || !strings.HasSuffix(name, "_gen.go") {
			continue
		}
		// #nosec G304 -- name comes from listing dir
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if bytes.HasPrefix(data, []byte(Header)) {
			stale = append(stale, name)
		}
	}
	return stale, nil
}

// Diff returns the names of files whose content in dir differs from files,
// plus stale generated files. It does not modify dir.
func Diff(dir string, files []File) ([]string, error) {
	keep := make(map[string]bool, len(files))
	var changed []string
	for _, f := range files {
		keep[f.Name] = true
		// #nosec G304 -- path is built from the output dir and a generated name
		cur, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil || !bytes.Equal(cur, f.Content) {
			changed = append(changed, f.Name)
		}
	}
	stale, err := staleFiles(dir, keep)
	if err != nil {
		return nil, err
	}
	return append(changed, stale...), nil
}
