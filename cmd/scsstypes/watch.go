package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scsstypes"
	"github.com/yacobolo/scsstypes/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate declarations as style files change",
	Long: `Run the startup batch, then keep declarations in step with every
changed, created or deleted style file until interrupted.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.Bool("initialize", true, "Run a full batch on startup")
	f.Duration("debounce", 100*time.Millisecond, "Quiet period before a change is processed")
	f.StringSlice("ignore", nil, "Glob patterns to ignore, relative to the root")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := buildOptions()
	settings := buildSettings()

	plugin, err := scsstypes.NewPlugin(opts, settings)
	if err != nil {
		return err
	}
	defer func() { _ = plugin.Close() }()

	// Startup failures are reported and watching continues
	_ = plugin.ConfigResolved(ctx)

	root := opts.Root
	if root == "" {
		root = "."
	}

	// The watch flags map onto the watch.* config keys only when set explicitly
	debounce := getDuration("watch.debounce", 100*time.Millisecond)
	if cmd.Flags().Changed("debounce") {
		debounce, _ = cmd.Flags().GetDuration("debounce")
	}
	ignore := getStrings("watch.ignore", nil)
	if cmd.Flags().Changed("ignore") {
		ignore, _ = cmd.Flags().GetStringSlice("ignore")
	}

	w, err := watch.New(watch.Options{
		Root:       root,
		Debounce:   debounce,
		Extensions: extensions(opts.ModuleSuffixes),
		Ignore:     ignore,
		Logger:     settings.Logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	settings.Logger.Info("watching for changes", "root", root, "glob", opts.FileGlob, "plugin", plugin.Name())

	return w.Run(ctx, func(ctx context.Context, path string) {
		_ = plugin.WatchChange(ctx, path)
	})
}

// extensions returns the distinct file extensions of the module suffixes
func extensions(suffixes []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, suffix := range suffixes {
		ext := filepath.Ext(suffix)
		if ext != "" && !seen[ext] {
			seen[ext] = true
			out = append(out, ext)
		}
	}
	return out
}
