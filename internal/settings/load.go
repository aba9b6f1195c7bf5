package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvHMR             = "VITE_HMR"
	EnvForceFullReload = "VITE_FORCE_FULL_RELOAD"
	EnvFrontendPath    = "REFLEX_FRONTEND_PATH"
	EnvWebDir          = "REFLEX_WEB_DIR"
)

// Load reads a single settings file. Unknown keys are rejected.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return &s, nil
}

// Merge combines two layers where fields set in overlay win.
func Merge(base, overlay *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if overlay == nil {
		overlay = &Settings{}
	}
	return &Settings{
		Frontend:   pick(base.Frontend, overlay.Frontend),
		Web:        pick(base.Web, overlay.Web),
		HMR:        pick(base.HMR, overlay.HMR),
		FullReload: pick(base.FullReload, overlay.FullReload),
	}
}

func pick[T any](base, overlay *T) *T {
	if overlay != nil {
		v := *overlay
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

// ApplyEnv returns a copy of s with environment overrides applied. Boolean
// variables are true when set to "1" or "true" (case-insensitive) and false
// for any other non-empty value.
func ApplyEnv(s *Settings) *Settings {
	out := Merge(nil, s)
	if v, ok := lookupEnv(EnvFrontendPath); ok {
		out.Frontend = &v
	}
	if v, ok := lookupEnv(EnvWebDir); ok {
		out.Web = &v
	}
	if _, ok := lookupEnv(EnvHMR); ok {
		out.HMR = ptr(envBoolTrue(EnvHMR))
	}
	if _, ok := lookupEnv(EnvForceFullReload); ok {
		out.FullReload = ptr(envBoolTrue(EnvForceFullReload))
	}
	return out
}

// lookupEnv treats an empty variable as unset.
func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// envBoolTrue returns true if the env var is set to "1" or "true" (case-insensitive).
func envBoolTrue(key string) bool {
	v := os.Getenv(key)
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true"
}
