package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stacky.dev/stacky/internal/cli/common"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stacky",
		Short: "Stacky manages stacks of git branches, each in its own worktree",
		Long: `Stacky manages stacks of dependent git branches.

With use_worktree enabled under [UI] in .stackyconfig, every branch is checked out
in its own worktree below worktree_root, and "stacky checkout" prints the path to
switch to. Use it from a shell function such as:

  sco() { cd "$(stacky checkout "$@")"; }`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool(common.FlagDebug, false, "Write debug output to stderr")
	rootCmd.PersistentFlags().String(common.FlagCwd, "", "Run as if stacky was started in this directory")

	// Add subcommands
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newWorktreeCmd())
	rootCmd.AddCommand(newIssueCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
