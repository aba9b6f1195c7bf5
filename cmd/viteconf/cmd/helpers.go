package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/bianoble/viteconf/internal/settings"
	"github.com/bianoble/viteconf/internal/value"
	"github.com/bianoble/viteconf/pkg/viteconfig"
)

// loadSettings discovers and merges settings layers, then applies the
// --web-dir flag.
func loadSettings() (*settings.Settings, error) {
	s, layers, err := settings.LoadLayered(settings.DiscoverOptions{ProjectPath: settingsPath})
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	for _, l := range layers {
		status := "not found"
		if l.Loaded {
			status = "loaded"
		}
		detail("settings %-8s %s (%s)", string(l.Level)+":", l.Path, status)
	}

	if webDirFlag != "" {
		s.Web = &webDirFlag
	}
	return s, nil
}

// loadPlugin reads the overrides file and builds the plugin.
func loadPlugin(s *settings.Settings, logger *slog.Logger) (*viteconfig.Plugin, error) {
	p, err := viteconfig.Load(configPath, viteconfig.Options{
		Imports:  extraImports,
		Settings: s,
		Location: s,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return p, nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpTree writes a debug dump of tree to w.
func dumpTree(w io.Writer, tree *value.Map) {
	dumpConfig.Fdump(w, tree)
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
