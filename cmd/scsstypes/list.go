package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scsstypes"
	"github.com/yacobolo/scsstypes/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked style files and their declarations",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := scsstypes.NewEngine(buildOptions(), buildSettings())
		if err != nil {
			return err
		}
		defer func() { _ = engine.Close() }()

		sources, err := engine.Sources()
		if err != nil {
			return err
		}

		if getString("output-format", "") == "json" {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(sources)
		}

		rows := make([]report.SourceRow, 0, len(sources))
		for _, s := range sources {
			rows = append(rows, report.SourceRow{Path: s.Path, Module: s.Module, Declaration: s.Declaration})
		}
		report.RenderSources(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	listCmd.Flags().String("output-format", "", "Output format: text|json")
}
