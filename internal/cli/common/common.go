// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"stacky.dev/stacky/internal/git"
	"stacky.dev/stacky/internal/runtime"
)

// Flag names shared by every command
const (
	FlagDebug = "debug"
	FlagCwd   = "cwd"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	return run(cmd, false, fn)
}

// RunAnywhere is like Run but also works outside a git repository
func RunAnywhere(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	return run(cmd, true, fn)
}

func run(cmd *cobra.Command, allowOutsideRepo bool, fn func(ctx *runtime.Context) error) error {
	debug, _ := cmd.Flags().GetBool(FlagDebug)
	cwd, _ := cmd.Flags().GetString(FlagCwd)

	ctx, err := runtime.GetContext(cmd.Context(), runtime.Options{
		Dir:              cwd,
		Debug:            debug,
		Stdout:           cmd.OutOrStdout(),
		Stderr:           cmd.ErrOrStderr(),
		AllowOutsideRepo: allowOutsideRepo,
	})
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()

	return fn(ctx)
}

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns all branch
// names in the repository.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cwd, _ := cmd.Flags().GetString(FlagCwd)
	repoRoot, err := git.GetRepoRoot(cmd.Context(), cwd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := git.NewRealRunner(repoRoot).GetAllBranchNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
