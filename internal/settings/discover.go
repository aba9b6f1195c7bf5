package settings

import (
	"errors"
	"os"
	"path/filepath"
)

// FileName is the settings file looked up in each layer.
const FileName = "viteconf.yaml"

const dirName = "viteconf"

// Level is the precedence level of a settings file.
type Level string

const (
	LevelUser    Level = "user"
	LevelProject Level = "project"
)

// LayerInfo describes a discovered settings file and its load status.
type LayerInfo struct {
	Err    error // non-nil if the file exists but failed to load
	Path   string
	Level  Level
	Loaded bool
}

// DiscoverOptions controls how settings paths are discovered.
type DiscoverOptions struct {
	// ProjectPath is the project-level settings path.
	ProjectPath string

	// UserPath overrides the default user settings path.
	// Empty means use the OS default. Set to a nonexistent path to skip.
	UserPath string
}

// DiscoverPaths returns the settings files to check, from lowest precedence
// (user) to highest (project). Paths are deduplicated by absolute path.
func DiscoverPaths(opts DiscoverOptions) []LayerInfo {
	var layers []LayerInfo
	seen := make(map[string]bool)

	addLayer := func(level Level, path string) {
		if path == "" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		layers = append(layers, LayerInfo{Path: path, Level: level})
	}

	userPath := opts.UserPath
	if userPath == "" {
		userPath = defaultUserPath()
	}
	addLayer(LevelUser, userPath)
	addLayer(LevelProject, opts.ProjectPath)

	return layers
}

func defaultUserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, dirName, FileName)
}

// LoadLayered loads every discovered layer that exists, merges them over
// the defaults and applies environment overrides. A layer that exists but
// fails to load is an error; the returned layer list still reports it.
func LoadLayered(opts DiscoverOptions) (*Settings, []LayerInfo, error) {
	layers := DiscoverPaths(opts)
	result := Default()

	for i := range layers {
		layer, err := Load(layers[i].Path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			layers[i].Err = err
			return nil, layers, err
		}
		layers[i].Loaded = true
		result = Merge(result, layer)
	}

	return ApplyEnv(result), layers, nil
}
