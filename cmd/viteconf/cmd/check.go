package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/viteconf/internal/ctxlog"
	"github.com/bianoble/viteconf/internal/host"
	"github.com/bianoble/viteconf/internal/sink"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that vite.config.js matches the overrides",
	Long: `Renders vite.config.js in memory and compares it by hash with the file in the
web directory. Exit 0 if it matches; exit non-zero if it differs or is missing.
Suitable for CI pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		s, err := loadSettings()
		if err != nil {
			return err
		}
		plugin, err := loadPlugin(s, ctxlog.FromContext(ctx))
		if err != nil {
			return err
		}

		checker := &sink.Checker{}
		pipeline := host.New(checker)
		pipeline.PreCompile(ctx, plugin)
		if _, err := pipeline.Run(ctx); err != nil {
			return err
		}

		if checker.Clean() {
			info("All generated files are up to date.")
			return nil
		}

		drift := checker.Drift()
		for _, d := range drift {
			if d.Missing {
				info("  missing   %s", d.Path)
				continue
			}
			info("  drifted   %s", d.Path)
			detail("expected: %s", d.Expected)
			detail("actual:   %s", d.Actual)
		}
		return fmt.Errorf("check failed: %d file(s) out of sync (run 'viteconf render')", len(drift))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
