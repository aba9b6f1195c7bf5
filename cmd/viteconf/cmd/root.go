package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/viteconf/internal/ctxlog"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath   string
	settingsPath string
	webDirFlag   string
	extraImports []string
	verbose      bool
	quiet        bool
	logFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "viteconf",
	Short: "Generate vite.config.js from typed overrides",
	Long: `viteconf merges user overrides from a YAML file with the framework's default
Vite configuration and writes the result as vite.config.js in the web directory.
Values tagged !js in the overrides are emitted as raw JavaScript.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logFormat != "text" && logFormat != "json" {
			return fmt.Errorf("invalid --log-format %q (want text or json)", logFormat)
		}
		logger := ctxlog.New(logLevel(), logFormat, os.Stderr)
		cmd.SetContext(ctxlog.WithLogger(commandContext(cmd), logger))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("viteconf %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "vite.yaml", "path to Vite overrides file")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "viteconf.yaml", "path to project settings file")
	rootCmd.PersistentFlags().StringVar(&webDirFlag, "web-dir", "", "web directory (overrides settings)")
	rootCmd.PersistentFlags().StringArrayVar(&extraImports, "import", nil, "extra import line for the generated module (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func logLevel() string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	default:
		return "warn"
	}
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
