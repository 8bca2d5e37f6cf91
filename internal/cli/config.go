package cli

import (
	"github.com/spf13/cobra"

	"stacky.dev/stacky/internal/actions"
	"stacky.dev/stacky/internal/cli/common"
	"stacky.dev/stacky/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var showPaths bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the merged configuration",
		Long: `Show the merged configuration as YAML.

Config files are read in this order, later files overriding earlier ones key by key:
  /etc/stackyconfig
  ~/.stackyconfig
  <repository top level>/.stackyconfig
  $STACKY_CONFIG`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunAnywhere(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigAction(ctx, actions.ConfigOptions{ShowPaths: showPaths})
			})
		},
	}

	cmd.Flags().BoolVar(&showPaths, "paths", false, "List the candidate config files and whether they exist")

	return cmd
}
