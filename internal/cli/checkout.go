package cli

import (
	"github.com/spf13/cobra"

	"stacky.dev/stacky/internal/actions"
	"stacky.dev/stacky/internal/cli/common"
	"stacky.dev/stacky/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch. If no branch is provided, opens an interactive selector.",
		Long: `Switch to a branch. If no branch is provided, opens an interactive selector.

In worktree mode the branch's worktree is created on first use and its path is
printed on stdout; nothing else is written there. Otherwise the branch is checked
out in the current working tree.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.CheckoutOptions{}
				if len(args) > 0 {
					opts.BranchName = args[0]
				}
				return actions.CheckoutAction(ctx, opts)
			})
		},
	}

	return cmd
}
