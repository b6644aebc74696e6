// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ManuGH/medialive-go/internal/config"
	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/ManuGH/medialive-go/internal/version"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "medialivegen.yaml"

// app is the state shared by all subcommands once the root has loaded the
// configuration.
type app struct {
	configPath string
	console    bool

	loader *config.Loader
	cfg    config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "medialivegen",
		Short:         "Generate the medialive DTO package from its schema",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to medialivegen.yaml (default: ./medialivegen.yaml when present)")
	root.PersistentFlags().BoolVar(&a.console, "log-console", false, "human readable log output")

	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newOpenAPICmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	a.loader = config.NewLoader(path)
	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Output:  cmd.ErrOrStderr(),
		Console: a.console,
	})

	ctx := log.ContextWithRunID(cmd.Context(), uuid.NewString())
	cmd.SetContext(ctx)
	logger := log.WithComponentFromContext(ctx, "cli")
	logger.Debug().
		Str(log.FieldPath, path).
		Str("config", cfg.String()).
		Msg("configuration loaded")
	return nil
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
