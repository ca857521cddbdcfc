package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .scsstypes.yaml config file",
	Long:  `Create a .scsstypes.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".scsstypes.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# scsstypes configuration
# Docs: https://github.com/yacobolo/scsstypes

# Which files get declarations
file-glob: "src/**/*.module.scss"
modules-only: true          # refuse plain style sheets
module-suffixes:
  - ".module.scss"
  - ".module.sass"
  - ".module.css"

# Generated declaration
banner: "// This file is generated automatically do not modify it by hand"
name: Styles
export-name:
  - styles
additional-properties: false
locals-convention: camelCaseOnly   # asIs | camelCase | camelCaseOnly | dashes | dashesOnly

# Lifecycle
initialize: true
remove-orphans: true
concurrency: 0              # 0 = all files at once

# Sass
source-root: src            # load path next to the nearest tsconfig.json
load-paths: []              # explicit load paths disable discovery
sass-binary: sass
sass-timeout: 30s
scoped-names: development   # development | production
class-name-length: 5

# Watch mode
watch:
  debounce: 100ms
  ignore:
    - "**/dist/**"

# Diagnostics
log:
  filename: ""              # empty = temp dir, off = disabled
  level: info
  max-size: 10
  max-backups: 3
  max-age: 28
  compress: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
