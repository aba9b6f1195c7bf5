// Package render produces the text of vite.config.js from user overrides
// and the framework defaults.
package render

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bianoble/viteconf/internal/ctxlog"
	"github.com/bianoble/viteconf/internal/jsgen"
	"github.com/bianoble/viteconf/internal/settings"
	"github.com/bianoble/viteconf/internal/value"
)

// ConfigFileName is the name of the generated file inside the web directory.
const ConfigFileName = "vite.config.js"

// Location tells the renderer where the generated file belongs.
type Location interface {
	WebDir() string
}

// Source supplies the user's override tree. Each call must return a tree
// the caller may modify.
type Source interface {
	Tree() *value.Map
}

// Options configures a Renderer. Nil Settings and Location fall back to
// settings.Default(); a nil Logger discards records.
type Options struct {
	Imports  []string
	Settings settings.Provider
	Location Location
	Logger   *slog.Logger
}

// Renderer merges a Source over the defaults and serializes the result.
// It holds no mutable state, so one Renderer may render concurrently.
type Renderer struct {
	source   Source
	imports  []string
	settings settings.Provider
	location Location
	logger   *slog.Logger
}

// New creates a Renderer for source.
func New(source Source, opts Options) *Renderer {
	r := &Renderer{
		source:   source,
		imports:  append([]string(nil), opts.Imports...),
		settings: opts.Settings,
		location: opts.Location,
		logger:   opts.Logger,
	}
	if r.settings == nil {
		r.settings = settings.Default()
	}
	if r.location == nil {
		r.location = settings.Default()
	}
	if r.logger == nil {
		r.logger = ctxlog.Discard()
	}
	return r
}

// Imports returns the import lines of the generated module: the default
// imports followed by the user's.
func (r *Renderer) Imports() []string {
	out := make([]string, 0, len(DefaultImports)+len(r.imports))
	out = append(out, DefaultImports...)
	return append(out, r.imports...)
}

// Path returns the destination of the generated file.
func (r *Renderer) Path() string {
	return filepath.Join(r.location.WebDir(), ConfigFileName)
}

// Merged returns the user tree merged over fresh defaults, before aliases
// are converted to JavaScript.
func (r *Renderer) Merged() *value.Map {
	var user *value.Map
	if r.source != nil {
		user = r.source.Tree()
	}
	return value.DeepMerge(user, BuildDefaults(r.settings))
}

// Render returns the destination path and the module text.
func (r *Renderer) Render() (path, text string, err error) {
	merged := r.Merged()
	if err := convertAliases(merged); err != nil {
		return "", "", fmt.Errorf("rendering %s: %w", ConfigFileName, err)
	}

	text, err = jsgen.Module{
		Imports:   r.Imports(),
		Functions: HelperFunctions,
		Config:    jsgen.Serialize(value.MapOf(merged), 0),
	}.Render()
	if err != nil {
		return "", "", err
	}

	path = r.Path()
	r.logger.Debug("rendered vite config",
		"path", path,
		"plugins", countPlugins(merged),
		"bytes", len(text))
	return path, text, nil
}

// convertAliases replaces resolve.alias in tree with its JavaScript array.
// An alias value that is not a list is left alone.
func convertAliases(tree *value.Map) error {
	resolve, ok := tree.Get("resolve")
	if !ok || resolve.Kind() != value.KindMap {
		return nil
	}
	alias, ok := resolve.Map().Get("alias")
	if !ok || alias.Kind() != value.KindList {
		return nil
	}

	aliases, err := jsgen.AliasesFromList(alias)
	if err != nil {
		return fmt.Errorf("resolve.alias: %w", err)
	}
	resolve.Map().Set("alias", jsgen.BuildAliasArray(aliases, jsgen.DefaultAliasDepth))
	return nil
}

func countPlugins(tree *value.Map) int {
	plugins, _ := tree.Get("plugins")
	if plugins.Kind() != value.KindList {
		return 0
	}
	return len(plugins.Items())
}
