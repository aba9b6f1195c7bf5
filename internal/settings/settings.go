// Package settings supplies the framework settings that shape the default
// Vite configuration: the frontend path prefix, HMR toggles and the web
// directory the generated config is written to.
package settings

import "strings"

// Provider exposes the settings consulted while building defaults.
type Provider interface {
	FrontendPath() string
	HMREnabled() bool
	ForceFullReload() bool
}

// DefaultWebDir is the web directory used when none is configured.
const DefaultWebDir = ".web"

// Settings is a settings file layer. Unset fields fall back to the next
// lower layer and finally to the defaults.
type Settings struct {
	Frontend   *string `yaml:"frontend_path,omitempty"`
	Web        *string `yaml:"web_dir,omitempty"`
	HMR        *bool   `yaml:"vite_hmr,omitempty"`
	FullReload *bool   `yaml:"vite_force_full_reload,omitempty"`
}

// Default returns settings with every field at its default.
func Default() *Settings {
	return &Settings{
		Frontend:   ptr(""),
		Web:        ptr(DefaultWebDir),
		HMR:        ptr(true),
		FullReload: ptr(false),
	}
}

// FrontendPath returns the URL prefix the frontend is served under, without
// surrounding slashes.
func (s *Settings) FrontendPath() string {
	if s == nil || s.Frontend == nil {
		return ""
	}
	return strings.Trim(*s.Frontend, "/")
}

// HMREnabled reports whether hot module replacement is on. Defaults to true.
func (s *Settings) HMREnabled() bool {
	if s == nil || s.HMR == nil {
		return true
	}
	return *s.HMR
}

// ForceFullReload reports whether every change reloads the whole page.
func (s *Settings) ForceFullReload() bool {
	if s == nil || s.FullReload == nil {
		return false
	}
	return *s.FullReload
}

// WebDir returns the directory the generated config is written to.
func (s *Settings) WebDir() string {
	if s == nil || s.Web == nil || *s.Web == "" {
		return DefaultWebDir
	}
	return *s.Web
}

func ptr[T any](v T) *T {
	return &v
}
