package actions

import (
	"fmt"

	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/runtime"
	"stacky.dev/stacky/internal/utils"
)

// IssueAction prints the issue marker embedded in a branch name.
// An empty branch name means the current branch.
func IssueAction(ctx *runtime.Context, branchName string) error {
	if branchName == "" {
		current, err := ctx.Git.GetCurrentBranch(ctx)
		if err != nil {
			return err
		}
		branchName = current
	}

	marker, ok := utils.FindIssueMarker(branchName)
	if !ok {
		ctx.Splog.Info("No issue marker in %s.", output.ColorBranchName(branchName, false))
		return nil
	}

	ctx.Splog.Debug("Issue for %s is %s.", branchName, output.ColorIssue(marker))
	_, err := fmt.Fprintln(ctx.Stdout, marker)
	return err
}
