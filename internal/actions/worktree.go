package actions

import (
	"fmt"
	"io"

	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/runtime"
	"stacky.dev/stacky/internal/utils"
)

// WorktreeListAction prints every worktree git knows about with its issue marker.
func WorktreeListAction(ctx *runtime.Context) error {
	infos, err := ctx.Worktrees.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list worktrees: %w", err)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		branch := info.Branch
		switch {
		case info.Bare:
			branch = "(bare)"
		case branch == "":
			branch = "(detached)"
		}

		marker, _ := utils.FindIssueMarker(info.Branch)
		rows = append(rows, []string{branch, info.Path, marker})
	}

	if len(rows) == 0 {
		ctx.Splog.Info("No worktrees.")
		return nil
	}
	_, err = io.WriteString(ctx.Stdout, output.RenderTable([]string{"BRANCH", "PATH", "ISSUE"}, rows))
	return err
}

// WorktreePathAction prints the worktree path for a branch without creating anything.
func WorktreePathAction(ctx *runtime.Context, branchName string) error {
	path, exists, err := ctx.Worktrees.WorktreePath(ctx, branchName)
	if err != nil {
		return err
	}
	if !exists {
		ctx.Splog.Tip("No worktree for %s yet; run `stacky worktree add %s` to create it.", branchName, branchName)
	}
	_, err = fmt.Fprintln(ctx.Stdout, path)
	return err
}

// WorktreeAddOptions specifies options for the worktree add command
type WorktreeAddOptions struct {
	BranchName string
	Create     bool // create the branch from HEAD when it does not exist
}

// WorktreeAddAction provisions the worktree for a branch and prints its path.
// It works regardless of the checkout behaviour, but still requires use_worktree.
func WorktreeAddAction(ctx *runtime.Context, opts WorktreeAddOptions) error {
	path, err := ctx.Worktrees.EnsureWorktree(ctx, opts.BranchName, opts.Create)
	if err != nil {
		return fmt.Errorf("failed to add worktree for %s: %w", opts.BranchName, err)
	}
	ctx.Splog.Info("Worktree for %s at %s.", output.ColorBranchName(opts.BranchName, false), output.ColorPath(path))
	_, err = fmt.Fprintln(ctx.Stdout, path)
	return err
}
