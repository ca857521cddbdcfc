package scsstypes

import (
	"context"

	"github.com/yacobolo/scsstypes/internal/dts"
)

// PluginName identifies the plugin to its host.
const PluginName = "watch-scss-modules"

// Plugin adapts an Engine to a dev-server host's lifecycle hooks.
// Hook errors are reported to the console as well as returned.
type Plugin struct {
	engine *Engine
}

// NewPlugin builds an engine for opts and wraps it.
func NewPlugin(opts Options, settings Settings) (*Plugin, error) {
	engine, err := NewEngine(opts, settings)
	if err != nil {
		return nil, err
	}
	return &Plugin{engine: engine}, nil
}

// Name returns PluginName.
func (p *Plugin) Name() string {
	return PluginName
}

// Engine returns the wrapped engine.
func (p *Plugin) Engine() *Engine {
	return p.engine
}

// ConfigResolved runs the startup batch (when Initialize is set) and reaps
// orphans (when RemoveOrphans is set).
func (p *Plugin) ConfigResolved(ctx context.Context) error {
	_, err := p.engine.runner.RunInitial(ctx)
	return err
}

// WatchChange regenerates the declaration of a changed file.
func (p *Plugin) WatchChange(ctx context.Context, path string) error {
	_, err := p.engine.runner.RunOnChange(ctx, path)
	return err
}

// Close releases the engine.
func (p *Plugin) Close() error {
	return p.engine.Close()
}

func synthesize(names []string, opts Options) (string, error) {
	return dts.Synthesize(names, dts.Options{
		Banner:               opts.Banner,
		Name:                 opts.Name,
		ExportNames:          opts.ExportNames,
		AdditionalProperties: opts.AdditionalProperties,
	})
}
