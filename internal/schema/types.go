// Package schema declares the typed Vite configuration accepted from users.
//
// Fields that Vite accepts in several shapes are value.Value, annotated with
// a `vite` tag listing the permitted shapes:
//
//	string, bool, number, null, raw, map, list   any value of that kind
//	list<...>, map<...>                          collection of the inner shapes
//	'text', true, false                          that literal only
//	,required                                    must be set
//
// Validate enforces the tags; Load additionally rejects unknown keys.
package schema

import "github.com/bianoble/viteconf/internal/value"

// Config is the root of a Vite configuration.
type Config struct {
	Plugins      value.Value          `yaml:"plugins,omitempty" vite:"list<raw>|raw"`
	Root         value.Value          `yaml:"root,omitempty" vite:"string|raw"`
	Base         value.Value          `yaml:"base,omitempty" vite:"string|raw"`
	Mode         value.Value          `yaml:"mode,omitempty" vite:"'development'|'production'|raw"`
	Define       value.Value          `yaml:"define,omitempty" vite:"map<string|raw>|raw"`
	PublicDir    value.Value          `yaml:"publicDir,omitempty" vite:"string|false|raw"`
	CacheDir     value.Value          `yaml:"cacheDir,omitempty" vite:"string|raw"`
	Resolve      *Resolve             `yaml:"resolve,omitempty"`
	HTML         *HTML                `yaml:"html,omitempty"`
	CSS          *CSS                 `yaml:"css,omitempty"`
	JSON         *JSON                `yaml:"json,omitempty"`
	Server       *Server              `yaml:"server,omitempty"`
	Build        *BuildOptions        `yaml:"build,omitempty"`
	Preview      *PreviewOptions      `yaml:"preview,omitempty"`
	OptimizeDeps *OptimizeDepsOptions `yaml:"optimizeDeps,omitempty"`
	SSR          *SSROptions          `yaml:"ssr,omitempty"`
	Worker       *WorkerOptions       `yaml:"worker,omitempty"`
	Experimental value.Value          `yaml:"experimental,omitempty" vite:"map|raw"`
}

// Alias is a module path rewrite rule. A string Replacement is a path
// relative to the generated config file.
type Alias struct {
	Find        value.Value `yaml:"find" vite:"string|raw,required"`
	Replacement value.Value `yaml:"replacement" vite:"string|raw,required"`
}

// Resolve configures module resolution.
type Resolve struct {
	Alias            []Alias     `yaml:"alias,omitempty"`
	Dedupe           value.Value `yaml:"dedupe,omitempty" vite:"list<string>|raw"`
	Conditions       value.Value `yaml:"conditions,omitempty" vite:"list<string>|raw"`
	MainFields       value.Value `yaml:"mainFields,omitempty" vite:"list<string>|raw"`
	Extensions       value.Value `yaml:"extensions,omitempty" vite:"list<string>|raw"`
	PreserveSymlinks value.Value `yaml:"preserveSymlinks,omitempty" vite:"bool|raw"`
}

// HTML configures HTML handling.
type HTML struct {
	CSPNonce value.Value `yaml:"cspNonce,omitempty" vite:"string|raw"`
}

// CSS configures CSS handling.
type CSS struct {
	PostCSS                value.Value `yaml:"postcss,omitempty" vite:"string|raw"`
	PreprocessorOptions    value.Value `yaml:"preprocessorOptions,omitempty" vite:"map|raw"`
	PreprocessorMaxWorkers value.Value `yaml:"preprocessorMaxWorkers,omitempty" vite:"number|true|raw"`
}

// JSON configures JSON imports.
type JSON struct {
	NamedExports value.Value `yaml:"namedExports,omitempty" vite:"bool|raw"`
	Stringify    value.Value `yaml:"stringify,omitempty" vite:"bool|'auto'|raw"`
}

// HTTPSOptions holds the TLS key pair for the dev and preview servers.
type HTTPSOptions struct {
	Key  value.Value `yaml:"key" vite:"string|raw,required"`
	Cert value.Value `yaml:"cert" vite:"string|raw,required"`
}

// HMROptions configures the hot module replacement connection.
type HMROptions struct {
	Protocol   value.Value `yaml:"protocol,omitempty" vite:"string|raw"`
	Host       value.Value `yaml:"host,omitempty" vite:"string|raw"`
	Port       value.Value `yaml:"port,omitempty" vite:"number|raw"`
	Path       value.Value `yaml:"path,omitempty" vite:"string|raw"`
	Timeout    value.Value `yaml:"timeout,omitempty" vite:"number|raw"`
	Overlay    value.Value `yaml:"overlay,omitempty" vite:"bool|raw"`
	ClientPort value.Value `yaml:"clientPort,omitempty" vite:"number|raw"`
}

// WarmupOptions lists files to transform ahead of the first request.
type WarmupOptions struct {
	ClientFiles value.Value `yaml:"clientFiles,omitempty" vite:"list<string>|raw"`
	SSRFiles    value.Value `yaml:"ssrFiles,omitempty" vite:"list<string>|raw"`
}

// ServerFSOptions restricts which files the dev server may serve.
type ServerFSOptions struct {
	Strict value.Value `yaml:"strict,omitempty" vite:"bool|raw"`
	Allow  value.Value `yaml:"allow,omitempty" vite:"list<string>|raw"`
	Deny   value.Value `yaml:"deny,omitempty" vite:"list<string>|raw"`
}

// Server configures the development server.
type Server struct {
	Host                value.Value           `yaml:"host,omitempty" vite:"string|bool|raw"`
	AllowedHosts        value.Value           `yaml:"allowedHosts,omitempty" vite:"list<string>|true|raw"`
	Port                value.Value           `yaml:"port,omitempty" vite:"number|raw"`
	StrictPort          value.Value           `yaml:"strictPort,omitempty" vite:"bool|raw"`
	HTTPS               *HTTPSOptions         `yaml:"https,omitempty"`
	Open                value.Value           `yaml:"open,omitempty" vite:"bool|string|raw"`
	Proxy               value.Value           `yaml:"proxy,omitempty" vite:"map|raw"`
	CORS                value.Value           `yaml:"cors,omitempty" vite:"bool|map|raw"`
	Headers             value.Value           `yaml:"headers,omitempty" vite:"map<string>|raw"`
	HMR                 OrSection[HMROptions] `yaml:"hmr,omitempty" vite:"bool"`
	Warmup              *WarmupOptions        `yaml:"warmup,omitempty"`
	Watch               value.Value           `yaml:"watch,omitempty" vite:"map|null|raw"`
	MiddlewareMode      value.Value           `yaml:"middlewareMode,omitempty" vite:"bool|raw"`
	FS                  *ServerFSOptions      `yaml:"fs,omitempty"`
	Origin              value.Value           `yaml:"origin,omitempty" vite:"string|raw"`
	SourcemapIgnoreList value.Value           `yaml:"sourcemapIgnoreList,omitempty" vite:"false|raw"`
}

// ModulePreloadOptions configures the module preload polyfill.
type ModulePreloadOptions struct {
	Polyfill            value.Value `yaml:"polyfill,omitempty" vite:"bool|raw"`
	ResolveDependencies value.Value `yaml:"resolveDependencies,omitempty" vite:"raw"`
}

// BuildLibOptions configures library mode builds.
type BuildLibOptions struct {
	Entry       value.Value `yaml:"entry,omitempty" vite:"string|list<string>|raw"`
	Name        value.Value `yaml:"name,omitempty" vite:"string|raw"`
	Formats     value.Value `yaml:"formats,omitempty" vite:"list<'es'|'cjs'|'umd'|'iife'>|raw"`
	FileName    value.Value `yaml:"fileName,omitempty" vite:"string|raw"`
	CSSFileName value.Value `yaml:"cssFileName,omitempty" vite:"string|raw"`
}

// BuildOptions configures production builds.
type BuildOptions struct {
	Target                   value.Value                     `yaml:"target,omitempty" vite:"string|list<string>|raw"`
	ModulePreload            OrSection[ModulePreloadOptions] `yaml:"modulePreload,omitempty" vite:"bool|raw"`
	PolyfillModulePreload    value.Value                     `yaml:"polyfillModulePreload,omitempty" vite:"bool|raw"`
	OutDir                   value.Value                     `yaml:"outDir,omitempty" vite:"string|raw"`
	AssetsDir                value.Value                     `yaml:"assetsDir,omitempty" vite:"string|raw"`
	AssetsInlineLimit        value.Value                     `yaml:"assetsInlineLimit,omitempty" vite:"number|raw"`
	CSSCodeSplit             value.Value                     `yaml:"cssCodeSplit,omitempty" vite:"bool|raw"`
	CSSTarget                value.Value                     `yaml:"cssTarget,omitempty" vite:"string|list<string>|raw"`
	CSSMinify                value.Value                     `yaml:"cssMinify,omitempty" vite:"bool|'esbuild'|'lightningcss'|raw"`
	Sourcemap                value.Value                     `yaml:"sourcemap,omitempty" vite:"bool|'inline'|'hidden'|raw"`
	RollupOptions            value.Value                     `yaml:"rollupOptions,omitempty" vite:"map|raw"`
	CommonJSOptions          value.Value                     `yaml:"commonjsOptions,omitempty" vite:"map|raw"`
	DynamicImportVarsOptions value.Value                     `yaml:"dynamicImportVarsOptions,omitempty" vite:"map|raw"`
	Lib                      *BuildLibOptions                `yaml:"lib,omitempty"`
	Manifest                 value.Value                     `yaml:"manifest,omitempty" vite:"bool|string|raw"`
	SSRManifest              value.Value                     `yaml:"ssrManifest,omitempty" vite:"bool|string|raw"`
	SSR                      value.Value                     `yaml:"ssr,omitempty" vite:"bool|string|raw"`
	EmitAssets               value.Value                     `yaml:"emitAssets,omitempty" vite:"bool|raw"`
	SSREmitAssets            value.Value                     `yaml:"ssrEmitAssets,omitempty" vite:"bool|raw"`
	Minify                   value.Value                     `yaml:"minify,omitempty" vite:"bool|'terser'|'esbuild'|raw"`
	TerserOptions            value.Value                     `yaml:"terserOptions,omitempty" vite:"map|raw"`
	Write                    value.Value                     `yaml:"write,omitempty" vite:"bool|raw"`
	EmptyOutDir              value.Value                     `yaml:"emptyOutDir,omitempty" vite:"bool|raw"`
	CopyPublicDir            value.Value                     `yaml:"copyPublicDir,omitempty" vite:"bool|raw"`
	ReportCompressedSize     value.Value                     `yaml:"reportCompressedSize,omitempty" vite:"bool|raw"`
	ChunkSizeWarningLimit    value.Value                     `yaml:"chunkSizeWarningLimit,omitempty" vite:"number|raw"`
	Watch                    value.Value                     `yaml:"watch,omitempty" vite:"null|map|raw"`
}

// PreviewOptions configures the preview server.
type PreviewOptions struct {
	Host         value.Value   `yaml:"host,omitempty" vite:"string|bool|raw"`
	AllowedHosts value.Value   `yaml:"allowedHosts,omitempty" vite:"list<string>|true|raw"`
	Port         value.Value   `yaml:"port,omitempty" vite:"number|raw"`
	StrictPort   value.Value   `yaml:"strictPort,omitempty" vite:"bool|raw"`
	HTTPS        *HTTPSOptions `yaml:"https,omitempty"`
	Open         value.Value   `yaml:"open,omitempty" vite:"bool|string|raw"`
	Proxy        value.Value   `yaml:"proxy,omitempty" vite:"map|raw"`
	CORS         value.Value   `yaml:"cors,omitempty" vite:"bool|map|raw"`
	Headers      value.Value   `yaml:"headers,omitempty" vite:"map<string>|raw"`
}

// OptimizeDepsOptions configures dependency pre-bundling.
type OptimizeDepsOptions struct {
	Entries           value.Value `yaml:"entries,omitempty" vite:"string|list<string>|raw"`
	Exclude           value.Value `yaml:"exclude,omitempty" vite:"list<string>|raw"`
	Include           value.Value `yaml:"include,omitempty" vite:"list<string>|raw"`
	ESBuildOptions    value.Value `yaml:"esbuildOptions,omitempty" vite:"map|raw"`
	Force             value.Value `yaml:"force,omitempty" vite:"bool|raw"`
	NoDiscovery       value.Value `yaml:"noDiscovery,omitempty" vite:"bool|raw"`
	HoldUntilCrawlEnd value.Value `yaml:"holdUntilCrawlEnd,omitempty" vite:"bool|raw"`
	Disabled          value.Value `yaml:"disabled,omitempty" vite:"bool|'build'|'dev'|raw"`
}

// SSRResolveOptions configures module resolution for server rendering.
type SSRResolveOptions struct {
	Conditions         value.Value `yaml:"conditions,omitempty" vite:"list<string>|raw"`
	ExternalConditions value.Value `yaml:"externalConditions,omitempty" vite:"list<string>|raw"`
	MainFields         value.Value `yaml:"mainFields,omitempty" vite:"list<string>|raw"`
}

// SSROptions configures server-side rendering.
type SSROptions struct {
	External   value.Value        `yaml:"external,omitempty" vite:"list<string>|bool|raw"`
	NoExternal value.Value        `yaml:"noExternal,omitempty" vite:"string|list<string>|true|raw"`
	Target     value.Value        `yaml:"target,omitempty" vite:"'node'|'webworker'"`
	Resolve    *SSRResolveOptions `yaml:"resolve,omitempty"`
}

// WorkerOptions configures web worker bundling.
type WorkerOptions struct {
	Format        value.Value `yaml:"format,omitempty" vite:"'es'|'iife'"`
	Plugins       value.Value `yaml:"plugins,omitempty" vite:"raw"`
	RollupOptions value.Value `yaml:"rollupOptions,omitempty" vite:"map"`
}
