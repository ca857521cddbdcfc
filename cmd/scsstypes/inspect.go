package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scsstypes"
	"github.com/yacobolo/scsstypes/internal/dts"
	"github.com/yacobolo/scsstypes/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the class names extracted from one style file",
	Long: `Compile one style file and print its exported names with their scoped
identifiers. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions()
		engine, err := scsstypes.NewEngine(opts, buildSettings())
		if err != nil {
			return err
		}
		defer func() { _ = engine.Close() }()

		out := cmd.OutOrStdout()

		if declaration, _ := cmd.Flags().GetBool("declaration"); declaration {
			text, err := engine.Declaration(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		}

		result := engine.Inspect(cmd.Context(), args[0])
		if result.Failed() {
			return result.Err
		}

		if schema, _ := cmd.Flags().GetBool("schema"); schema {
			data, err := json.MarshalIndent(dts.BuildSchema(opts.Name, result.Names(), opts.AdditionalProperties), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		rows := make([]report.NameRow, 0, result.Locals.Len())
		for _, name := range result.Names() {
			scoped, _ := result.Locals.Lookup(name)
			rows = append(rows, report.NameRow{Name: name, Scoped: scoped})
		}
		report.RenderNames(out, rows)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("declaration", false, "Print the declaration text instead of the name table")
	inspectCmd.Flags().Bool("schema", false, "Print the JSON schema the declaration is built from")
}
