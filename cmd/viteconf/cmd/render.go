package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/viteconf/internal/ctxlog"
	"github.com/bianoble/viteconf/internal/host"
	"github.com/bianoble/viteconf/internal/sink"
)

var (
	renderDryRun bool
	renderDump   bool
	renderPrint  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate vite.config.js in the web directory",
	Long: `Merges the overrides file with the framework defaults and writes
vite.config.js into the web directory. The write is atomic and skipped when the
file already has the generated content. Writes outside the web directory are
refused.`,
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

		if renderDump {
			dumpTree(os.Stdout, plugin.Merged())
		}

		var out sink.Sink
		mem := &sink.Memory{}
		if renderPrint {
			out = mem
		} else {
			out = &sink.FileSink{Root: s.WebDir(), DryRun: renderDryRun}
		}

		pipeline := host.New(out)
		pipeline.PreCompile(ctx, plugin)
		actions, err := pipeline.Run(ctx)
		if err != nil {
			errorf("%v", err)
			return errors.New("render failed")
		}

		if renderPrint {
			for _, path := range mem.Paths() {
				text, _ := mem.Get(path)
				fmt.Println(text)
			}
			return nil
		}

		if renderDryRun {
			info("Dry run: no files written.")
		}
		for _, a := range actions {
			if a.Action == sink.ActionUnchanged {
				detail("%s  %s", a.Action, a.Path)
				continue
			}
			info("  %s  %s", a.Action, a.Path)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderDryRun, "dry-run", false, "show what would change without writing files")
	renderCmd.Flags().BoolVar(&renderDump, "dump", false, "dump the merged configuration tree before rendering")
	renderCmd.Flags().BoolVar(&renderPrint, "print", false, "print the generated file to stdout instead of writing it")
	rootCmd.AddCommand(renderCmd)
}
