package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scsstypes"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate declarations for every matched module",
	Long: `Compile every file matched by the glob, write a .d.ts next to each
module that exports class names, and remove declarations whose source is gone.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("output-format", "", "Summary format: text|json")
	f.String("name", "", "Generated interface name (default Styles)")
	f.StringSlice("export-name", nil, "Exported constant names, the first is the default export")
	f.String("banner", "", "Leading comment of generated files")
	f.Bool("additional-properties", false, "Allow unknown keys on the generated interface")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts := buildOptions()
	format := scsstypes.DetermineOutputFormat(getString("output-format", ""), opts.Quiet)
	if format == scsstypes.OutputJSON {
		// Notices would corrupt the JSON document on stdout
		opts.Quiet = true
	}

	engine, err := scsstypes.NewEngine(opts, buildSettings())
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	summary, runErr := engine.Run(cmd.Context())
	if err := scsstypes.WriteSummary(os.Stdout, summary, runErr, format, version); err != nil {
		return err
	}

	if runErr != nil {
		return errors.Join(errReported, runErr)
	}
	return nil
}
