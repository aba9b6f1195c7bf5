package render

import (
	"strings"

	"github.com/bianoble/viteconf/internal/jsgen"
	"github.com/bianoble/viteconf/internal/settings"
	"github.com/bianoble/viteconf/internal/value"
)

// DefaultImports are the import lines every generated config starts with.
// User imports follow them.
var DefaultImports = []string{
	`import { fileURLToPath, URL } from "url";`,
	`import { reactRouter } from "@react-router/dev/vite";`,
	`import { defineConfig } from "vite";`,
	`import safariCacheBustPlugin from "./vite-plugin-safari-cachebust";`,
}

// HelperFunctions is the JavaScript source of the plugins referenced by the
// default plugin list.
const HelperFunctions = `// Ensure that bun always uses the react-dom/server.node functions.
function alwaysUseReactDomServerNode() {
  return {
    name: "vite-plugin-always-use-react-dom-server-node",
    enforce: "pre",

    resolveId(source, importer) {
      if (
        typeof importer === "string" &&
        importer.endsWith("/entry.server.node.tsx") &&
        source.includes("react-dom/server")
      ) {
        return this.resolve("react-dom/server.node", importer, {
          skipSelf: true,
        });
      }
      return null;
    },
  };
}

function fullReload() {
  return {
    name: "full-reload",
    enforce: "pre",
    handleHotUpdate({ server }) {
      server.ws.send({
        type: "full-reload",
      });
      return [];
    }
  };
}`

// BasePath returns the public base path for a frontend path: "/" when the
// path is empty, "/<path>/" otherwise.
func BasePath(frontendPath string) string {
	base := "/"
	if p := strings.Trim(frontendPath, "/"); p != "" {
		base += p + "/"
	}
	return base
}

// BuildDefaults returns the framework's default configuration tree for s.
// Every call builds a fresh tree.
func BuildDefaults(s settings.Provider) *value.Map {
	plugins := []value.Value{
		value.Raw("alwaysUseReactDomServerNode()"),
		value.Raw("reactRouter()"),
		value.Raw("safariCacheBustPlugin()"),
	}
	if s.ForceFullReload() {
		plugins = append(plugins, value.Raw("fullReload()"))
	}

	envGroup := value.NewMap().
		Set("test", value.Raw("/env.json/")).
		Set("name", value.String("reflex-env"))

	build := value.NewMap().
		Set("assetsDir", value.Raw(`"`+BasePath(s.FrontendPath())+`assets".slice(1)`)).
		Set("rollupOptions", value.MapOf(value.NewMap().
			Set("jsx", value.MapOf(nil)).
			Set("output", value.MapOf(value.NewMap().
				Set("advancedChunks", value.MapOf(value.NewMap().
					Set("groups", value.List(value.MapOf(envGroup)))))))))

	server := value.NewMap().
		Set("port", value.Raw("process.env.PORT")).
		Set("hmr", value.Bool(s.HMREnabled())).
		Set("watch", value.MapOf(value.NewMap().
			Set("ignored", value.Of([]string{
				"**/.web/backend/**",
				"**/.web/reflex.install_frontend_packages.cached",
			}))))

	resolve := value.NewMap().
		Set("mainFields", value.Of([]string{"browser", "module", "jsnext"})).
		Set("alias", jsgen.AliasList([]jsgen.Alias{
			{Find: value.String("@"), Replacement: value.String("./public")},
			{Find: value.String("$"), Replacement: value.String("./")},
		}))

	return value.NewMap().
		Set("plugins", value.List(plugins...)).
		Set("build", value.MapOf(build)).
		Set("experimental", value.MapOf(value.NewMap().Set("enableNativePlugin", value.Bool(false)))).
		Set("server", value.MapOf(server)).
		Set("resolve", value.MapOf(resolve))
}
