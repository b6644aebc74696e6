// SPDX-License-Identifier: MIT

// Package codegen renders the Go source of the public medialive package
// from a parsed API schema.
package codegen

import (
	"context"
	"fmt"
	"time"

	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/ManuGH/medialive-go/internal/schema"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Options controls rendering.
type Options struct {
	// Package is the package clause of every generated file.
	Package string
	// Workers bounds the number of files formatted concurrently.
	Workers int
}

// File is one rendered, gofmt'ed source file.
type File struct {
	Name    string
	Content []byte
}

type job struct {
	name string
	emit func() []byte
}

// Render checks the schema and renders every generated file. Files are
// returned in a stable order: enums, one file per shape group in order of
// first appearance, then operations.
func Render(ctx context.Context, s *schema.Schema, opts Options) ([]File, error) {
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("check schema: %w", err)
	}
	if opts.Package == "" {
		opts.Package = "medialive"
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	jobs := []job{{name: "enums_gen.go", emit: func() []byte { return emitEnums(opts.Package, s) }}}
	for _, file := range s.Files() {
		jobs = append(jobs, job{
			name: "shapes_" + file + "_gen.go",
			emit: func() []byte { return emitShapes(opts.Package, s, file) },
		})
	}
	jobs = append(jobs, job{name: "operations_gen.go", emit: func() []byte { return emitOperations(opts.Package, s) }})

	logger := log.WithComponentFromContext(ctx, "codegen")
	out := make([]File, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			src, err := imports.Process(j.name, j.emit(), &imports.Options{
				Comments:   true,
				TabIndent:  true,
				TabWidth:   8,
				FormatOnly: true,
			})
			if err != nil {
				return fmt.Errorf("format %s: %w", j.name, err)
			}
			out[i] = File{Name: j.name, Content: src}
			logger.Debug().
				Str(log.FieldFile, j.name).
				Int(log.FieldBytes, len(src)).
				Int64(log.FieldDuration, time.Since(start).Milliseconds()).
				Msg("rendered file")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
