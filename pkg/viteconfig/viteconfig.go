// Package viteconfig provides the public Go library API for viteconf.
//
// A Plugin merges a typed Vite configuration over the framework defaults
// and registers a save task that produces vite.config.js during the host's
// pre-compile phase.
//
// # Basic Usage
//
//	plugin, err := viteconfig.New(&viteconfig.Config{
//	    Plugins: viteconfig.List(viteconfig.Raw("viteReact()")),
//	    Server:  &viteconfig.Server{Port: viteconfig.Int(3000)},
//	}, viteconfig.Options{
//	    Imports: []string{`import { viteReact } from "@vitejs/plugin-react";`},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render directly
//	path, text, err := plugin.Render()
//
//	// Or register with a pre-compile host
//	plugin.PreCompile(host)
package viteconfig

import (
	"fmt"
	"log/slog"

	"github.com/bianoble/viteconf/internal/render"
	"github.com/bianoble/viteconf/internal/schema"
	"github.com/bianoble/viteconf/internal/settings"
)

// Name identifies the plugin to its host.
const Name = "vite_config"

// Options configures a Plugin.
type Options struct {
	// Imports are extra import lines appended after the default imports.
	Imports []string

	// Settings supplies the frontend path and HMR flags. Nil uses defaults:
	// no frontend path, HMR on, no forced full reload.
	Settings Settings

	// Location supplies the web directory. Nil uses ".web".
	Location Location

	// Logger receives a debug record per render. Nil discards.
	Logger *slog.Logger
}

// Plugin generates vite.config.js. It is safe for concurrent use as long as
// the Config it was created with is not modified.
type Plugin struct {
	config   *Config
	renderer *render.Renderer
}

// New validates cfg and creates a Plugin for it. A nil cfg means no
// overrides.
func New(cfg *Config, opts Options) (*Plugin, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if errs := schema.Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &Plugin{
		config: cfg,
		renderer: render.New(cfg, render.Options{
			Imports:  opts.Imports,
			Settings: opts.Settings,
			Location: opts.Location,
			Logger:   opts.Logger,
		}),
	}, nil
}

// Load reads YAML overrides from path and creates a Plugin for them.
func Load(path string, opts Options) (*Plugin, error) {
	cfg, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts)
}

// Name returns "vite_config".
func (p *Plugin) Name() string {
	return Name
}

// Config returns the overrides the plugin was created with.
func (p *Plugin) Config() *Config {
	return p.config
}

// PreCompile registers exactly one save task producing vite.config.js.
func (p *Plugin) PreCompile(ctx PreCompileContext) {
	ctx.AddSaveTask(p.Render)
}

// Render returns the destination path and text of vite.config.js.
func (p *Plugin) Render() (path, text string, err error) {
	return p.renderer.Render()
}

// Merged returns the configuration tree after merging, before aliases are
// rendered as JavaScript.
func (p *Plugin) Merged() *Map {
	return p.renderer.Merged()
}

// Defaults returns the default configuration tree for s.
func Defaults(s Settings) *Map {
	if s == nil {
		s = settings.Default()
	}
	return render.BuildDefaults(s)
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg *Config, opts Options) *Plugin {
	p, err := New(cfg, opts)
	if err != nil {
		panic(fmt.Sprintf("viteconfig: %v", err))
	}
	return p
}
