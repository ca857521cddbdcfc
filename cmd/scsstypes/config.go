package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/scsstypes"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".scsstypes.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, unset flags only fill missing keys)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SCSSTYPES_* prefix)
	if err := k.Load(env.Provider("SCSSTYPES_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variable names to config keys:
//
//	SCSSTYPES_FILE_GLOB      -> file-glob
//	SCSSTYPES_WATCH__DEBOUNCE -> watch.debounce
//	SCSSTYPES_LOG__MAX_SIZE   -> log.max-size
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "SCSSTYPES_"))
	s = strings.ReplaceAll(s, "__", ".")
	return strings.ReplaceAll(s, "_", "-")
}

// buildOptions constructs the library's Options from koanf state.
func buildOptions() scsstypes.Options {
	d := scsstypes.DefaultOptions()

	opts := scsstypes.Options{
		Banner:               getString("banner", d.Banner),
		FileGlob:             getString("file-glob", d.FileGlob),
		Initialize:           getBool("initialize", d.Initialize),
		ModulesOnly:          getBool("modules-only", d.ModulesOnly),
		Name:                 getString("name", d.Name),
		ExportNames:          getStrings("export-name", d.ExportNames),
		RemoveOrphans:        getBool("remove-orphans", d.RemoveOrphans),
		LocalsConvention:     scsstypes.LocalsConvention(getString("locals-convention", string(d.LocalsConvention))),
		AdditionalProperties: getBool("additional-properties", d.AdditionalProperties),

		Root:            getString("root", d.Root),
		SourceRoot:      getString("source-root", d.SourceRoot),
		LoadPaths:       getStrings("load-paths", d.LoadPaths),
		ModuleSuffixes:  getStrings("module-suffixes", d.ModuleSuffixes),
		ClassNameLength: getInt("class-name-length", d.ClassNameLength),
		SassBinary:      getString("sass-binary", d.SassBinary),
		SassTimeout:     getDuration("sass-timeout", d.SassTimeout),
		Concurrency:     getInt("concurrency", d.Concurrency),
		Quiet:           getBool("quiet", d.Quiet),
		ScopedNames:     scsstypes.ScopedNames(getString("scoped-names", string(d.ScopedNames))),
	}

	return opts
}

// buildSettings constructs runtime settings from koanf state.
func buildSettings() scsstypes.Settings {
	verbose := getBool("verbose", false)
	return scsstypes.Settings{
		Output:  os.Stdout,
		Logger:  configureLogger(verbose),
		Color:   getBool("color", false),
		Verbose: verbose,
	}
}

// Flags, env and file share one key space, so each option is a single lookup.
// Empty strings and lists count as unset.

func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

func getStrings(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if k.Exists(key) {
		return k.Duration(key)
	}
	return defaultVal
}
