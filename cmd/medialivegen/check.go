// SPDX-License-Identifier: MIT

package main

import (
	"github.com/ManuGH/medialive-go/internal/schema"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the schema and report every defect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := schema.Load(a.cfg.Schema)
			if err != nil {
				return err
			}
			if err := s.Check(); err != nil {
				return err
			}
			printf(cmd, "ok: %d shapes, %d enums, %d operations\n", len(s.Shapes), len(s.Enums), len(s.Operations))
			return nil
		},
	}
}
