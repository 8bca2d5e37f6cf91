package cli

import (
	"github.com/spf13/cobra"

	"stacky.dev/stacky/internal/actions"
	"stacky.dev/stacky/internal/cli/common"
	"stacky.dev/stacky/internal/runtime"
)

// newIssueCmd creates the issue command
func newIssueCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "issue [branch]",
		Short:             "Print the issue marker (e.g. SRE-12) found in a branch name",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				branchName := ""
				if len(args) > 0 {
					branchName = args[0]
				}
				return actions.IssueAction(ctx, branchName)
			})
		},
	}
}
