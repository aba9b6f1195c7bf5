package viteconfig

import (
	"github.com/bianoble/viteconf/internal/host"
	"github.com/bianoble/viteconf/internal/render"
	"github.com/bianoble/viteconf/internal/schema"
	"github.com/bianoble/viteconf/internal/settings"
	"github.com/bianoble/viteconf/internal/value"
)

// Type aliases re-export the schema, value and host types as the public API.
// Users import "github.com/bianoble/viteconf/pkg/viteconfig" and use
// viteconfig.Config, viteconfig.Server, etc.

type Config = schema.Config
type Alias = schema.Alias
type Resolve = schema.Resolve
type HTML = schema.HTML
type CSS = schema.CSS
type JSON = schema.JSON
type HTTPSOptions = schema.HTTPSOptions
type HMROptions = schema.HMROptions
type WarmupOptions = schema.WarmupOptions
type ServerFSOptions = schema.ServerFSOptions
type Server = schema.Server
type ModulePreloadOptions = schema.ModulePreloadOptions
type BuildLibOptions = schema.BuildLibOptions
type BuildOptions = schema.BuildOptions
type PreviewOptions = schema.PreviewOptions
type OptimizeDepsOptions = schema.OptimizeDepsOptions
type SSRResolveOptions = schema.SSRResolveOptions
type SSROptions = schema.SSROptions
type WorkerOptions = schema.WorkerOptions
type OrSection[S any] = schema.OrSection[S]
type ValidationError = schema.ValidationError

type Value = value.Value
type Map = value.Map

type Settings = settings.Provider
type Location = render.Location

type SaveTask = host.SaveTask
type PreCompileContext = host.PreCompileContext

// SectionOf returns an OrSection holding s.
func SectionOf[S any](s S) OrSection[S] { return schema.SectionOf(s) }

// ScalarOf returns an OrSection holding the scalar alternative v.
func ScalarOf[S any](v Value) OrSection[S] { return schema.ScalarOf[S](v) }

// Raw wraps JavaScript source that is emitted verbatim.
func Raw(code string) Value { return value.Raw(code) }

// String returns a string value, serialized in single quotes.
func String(s string) Value { return value.String(s) }

// Bool returns a boolean value.
func Bool(b bool) Value { return value.Bool(b) }

// Int returns an integer number value.
func Int(i int64) Value { return value.Int(i) }

// Float returns a floating point number value.
func Float(f float64) Value { return value.Float(f) }

// Null returns the null value. Merged over a default, it replaces it.
func Null() Value { return value.Null() }

// List returns a list value holding items in order.
func List(items ...Value) Value { return value.List(items...) }

// MapOf returns a map value backed by m. A nil m yields an empty map.
func MapOf(m *Map) Value { return value.MapOf(m) }

// NewMap returns an empty insertion-ordered Map.
func NewMap() *Map { return value.NewMap() }

// Of converts a native Go value (scalars, slices, maps, Value, *Map) into a
// Value. Unknown types become a number holding fmt.Sprint(x).
func Of(x any) Value { return value.Of(x) }

// DeepMerge combines mergee into merger and returns a new Map: maps merge
// recursively, lists are appended after merger's, anything else overwrites.
// Neither input is modified.
func DeepMerge(mergee, merger *Map) *Map { return value.DeepMerge(mergee, merger) }
