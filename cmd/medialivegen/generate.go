// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ManuGH/medialive-go/internal/codegen"
	"github.com/ManuGH/medialive-go/internal/config"
	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the medialive package from the schema",
		Long: `Loads and checks the schema, renders every generated file and writes
the ones whose content changed. Stale generated files are removed.
With --dry-run nothing is written and the command fails if the package
is out of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := contextOf(cmd)
			if dryRun {
				changed, err := diff(ctx, a.cfg)
				if err != nil {
					return err
				}
				if len(changed) > 0 {
					return fmt.Errorf("%d generated files out of date: %s", len(changed), strings.Join(changed, ", "))
				}
				printf(cmd, "up to date\n")
				return nil
			}
			res, err := generate(ctx, a.cfg)
			if err != nil {
				return err
			}
			printf(cmd, "%d written, %d unchanged, %d removed\n", len(res.Written), len(res.Unchanged), len(res.Removed))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report out-of-date files without writing")
	return cmd
}

func render(ctx context.Context, cfg config.Config) ([]codegen.File, error) {
	s, err := schema.Load(cfg.Schema)
	if err != nil {
		return nil, err
	}
	return codegen.Render(ctx, s, codegen.Options{Package: cfg.Package, Workers: cfg.Workers})
}

func generate(ctx context.Context, cfg config.Config) (codegen.Result, error) {
	logger := log.WithComponentFromContext(ctx, "generate")
	start := time.Now()

	files, err := render(ctx, cfg)
	if err != nil {
		return codegen.Result{}, err
	}
	res, err := codegen.Write(ctx, cfg.OutputDir, files)
	if err != nil {
		return res, err
	}
	logger.Info().
		Str(log.FieldPath, cfg.OutputDir).
		Int(log.FieldCount, len(res.Written)).
		Int64(log.FieldDuration, time.Since(start).Milliseconds()).
		Msg("generation finished")
	return res, nil
}

func diff(ctx context.Context, cfg config.Config) ([]string, error) {
	files, err := render(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return codegen.Diff(cfg.OutputDir, files)
}
