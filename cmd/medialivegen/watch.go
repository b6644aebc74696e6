// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ManuGH/medialive-go/internal/config"
	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the schema or config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, a.loader, a.cfg)
		},
	}
}

// watch generates once, then again after every debounced change. Failed
// regenerations are logged and the previous output is left in place.
func watch(ctx context.Context, loader *config.Loader, cfg config.Config) error {
	logger := log.WithComponentFromContext(ctx, "watch")
	if _, err := generate(ctx, cfg); err != nil {
		return err
	}

	h := config.NewHolder(cfg, loader)
	err := h.StartWatcher(ctx, func(ctx context.Context, cfg config.Config) {
		if _, err := generate(ctx, cfg); err != nil {
			logger.Error().Err(err).Str(log.FieldEvent, "generate.failed").Msg("regeneration failed")
		}
	})
	if err != nil {
		return err
	}
	h.Wait()
	return nil
}
