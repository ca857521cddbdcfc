package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scsstypes"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove declarations whose source no longer exists",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := scsstypes.NewEngine(buildOptions(), buildSettings())
		if err != nil {
			return err
		}
		defer func() { _ = engine.Close() }()

		summary, err := engine.Clean(cmd.Context())
		if err != nil {
			return err
		}

		if !getBool("quiet", false) {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d orphaned declaration(s)\n", len(summary.Orphans))
			for _, path := range summary.Orphans {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path)
			}
		}
		return nil
	},
}
