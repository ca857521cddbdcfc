package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scsstypes",
	Short: "TypeScript declarations for CSS modules",
	Long: `Generate a .d.ts file next to every CSS module so imports like
import styles from "./button.module.scss" are fully typed.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress run notices")
	f.Bool("color", false, "Force color output")
	f.String("config", ".scsstypes.yaml", "Config file path")
	f.String("root", "", "Project root the file glob is resolved against")
	f.String("file-glob", "", "Glob selecting style modules (default src/**/*.module.scss)")
	f.Bool("modules-only", true, "Refuse files that are not style modules")
	f.Bool("remove-orphans", true, "Delete declarations whose source is gone")
	f.String("locals-convention", "", "asIs|camelCase|camelCaseOnly|dashes|dashesOnly")
	f.StringSlice("load-paths", nil, "Sass load paths (disables tsconfig.json discovery)")
	f.String("sass-binary", "", "Dart Sass executable (default sass)")
	f.Int("concurrency", 0, "Max files processed at once (0 = all at once)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
