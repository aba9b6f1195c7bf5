package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/viteconf/internal/jsgen"
	"github.com/bianoble/viteconf/internal/value"
	"github.com/bianoble/viteconf/pkg/viteconfig"
)

var defaultsDump bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the framework's default Vite configuration",
	Long: `Prints the default configuration object that overrides are merged into,
as JavaScript, for the current settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		tree := viteconfig.Defaults(s)
		if defaultsDump {
			dumpTree(os.Stdout, tree)
			return nil
		}
		fmt.Println(jsgen.Serialize(value.MapOf(tree), 0))
		return nil
	},
}

func init() {
	defaultsCmd.Flags().BoolVar(&defaultsDump, "dump", false, "dump the tree structure instead of JavaScript")
	rootCmd.AddCommand(defaultsCmd)
}
