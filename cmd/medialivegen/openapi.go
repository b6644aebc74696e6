// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/ManuGH/medialive-go/internal/log"
	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var stdout bool
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Export the schema as an OpenAPI 3 document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := schema.Load(a.cfg.Schema)
			if err != nil {
				return err
			}
			data, err := s.MarshalOpenAPIYAML()
			if err != nil {
				return err
			}
			if stdout {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := renameio.WriteFile(a.cfg.OpenAPIPath, data, 0o644); err != nil {
				return fmt.Errorf("write openapi: %w", err)
			}
			logger := log.WithComponentFromContext(contextOf(cmd), "openapi")
			logger.Info().
				Str(log.FieldFile, a.cfg.OpenAPIPath).
				Int(log.FieldBytes, len(data)).
				Msg("wrote OpenAPI document")
			printf(cmd, "wrote %s\n", a.cfg.OpenAPIPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the document instead of writing it")
	return cmd
}
