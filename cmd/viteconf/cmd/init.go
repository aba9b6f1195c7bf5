package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default vite.yaml scaffold.
const initTemplate = `# viteconf overrides, merged over the framework's default Vite config.
# Maps merge key by key, lists are appended after the defaults, and any
# other value replaces the default. Values tagged !js are written to
# vite.config.js verbatim.

# Extra plugins run after the built-in ones. Add their imports with
# --import 'import { viteReact } from "@vitejs/plugin-react";'
# plugins:
#   - !js viteReact()

server:
  # port: 3000                  # default: !js process.env.PORT
  # host: 0.0.0.0
  # hmr:
  #   overlay: false
  warmup:
    clientFiles:
      - ./app/root.jsx

build:
  sourcemap: false
  # target: es2020
  # rollupOptions:
  #   output:
  #     manualChunks: !js "(id) => id.includes('node_modules') ? 'vendor' : null"

resolve:
  # Appended to the built-in @ and $ aliases. String replacements are
  # paths relative to vite.config.js.
  alias:
    - find: "~"
      replacement: ./app
    # - find: !js /^lodash$/
    #   replacement: lodash-es

# define:
#   __APP_VERSION__: !js JSON.stringify(process.env.npm_package_version)
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter vite.yaml overrides file",
	Long: `Creates a vite.yaml file in the current directory with a commented template
covering plugins, server, build and alias overrides.

Use --force to overwrite an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the file to add your overrides")
		info("  2. Run 'viteconf render' to write vite.config.js")
		info("  3. Run 'viteconf check' in CI to catch stale output")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing overrides file")
	rootCmd.AddCommand(initCmd)
}
