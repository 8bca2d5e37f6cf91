package cli

import (
	"github.com/spf13/cobra"

	"stacky.dev/stacky/internal/actions"
	"stacky.dev/stacky/internal/cli/common"
	"stacky.dev/stacky/internal/runtime"
)

// newWorktreeCmd creates the worktree command and its subcommands
func newWorktreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "worktree",
		Aliases: []string{"wt"},
		Short:   "Inspect and create per-branch worktrees",
	}

	cmd.AddCommand(newWorktreeListCmd())
	cmd.AddCommand(newWorktreePathCmd())
	cmd.AddCommand(newWorktreeAddCmd())

	return cmd
}

func newWorktreeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees with their branch and issue marker",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.WorktreeListAction)
		},
	}
}

func newWorktreePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "path <branch>",
		Short:             "Print the worktree path for a branch without creating it",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.WorktreePathAction(ctx, args[0])
			})
		},
	}
}

func newWorktreeAddCmd() *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:               "add <branch>",
		Short:             "Create the worktree for a branch and print its path",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.WorktreeAddAction(ctx, actions.WorktreeAddOptions{
					BranchName: args[0],
					Create:     create,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "c", false, "Create the branch from HEAD if it does not exist")

	return cmd
}
