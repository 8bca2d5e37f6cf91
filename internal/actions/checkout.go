package actions

import (
	"errors"
	"fmt"

	stackyerrors "stacky.dev/stacky/internal/errors"
	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/runtime"
)

// CheckoutOptions specifies options for the checkout command
type CheckoutOptions struct {
	BranchName string // Optional: branch to checkout directly
}

// CheckoutAction switches to a branch. In worktree mode the branch's worktree is
// provisioned if needed and its path is the only thing written to stdout, so a
// shell wrapper can cd into it. Otherwise the branch is checked out in place.
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	branchName := opts.BranchName
	if branchName == "" {
		selected, err := interactiveBranchSelection(ctx)
		if err != nil {
			return err
		}
		branchName = selected
	}

	if ctx.Config.UseWorktree {
		return checkoutWorktree(ctx, branchName)
	}

	currentBranch, err := ctx.Git.GetCurrentBranch(ctx)
	if err != nil && !errors.Is(err, stackyerrors.ErrNotOnBranch) {
		return err
	}
	if branchName == currentBranch {
		ctx.Splog.Info("Already on %s.", output.ColorBranchName(branchName, true))
		return nil
	}

	exists, err := ctx.Git.BranchExists(branchName)
	if err != nil {
		return err
	}
	if !exists {
		return stackyerrors.NewBranchNotFoundError(branchName)
	}

	if err := ctx.Git.CheckoutBranch(ctx, branchName); err != nil {
		return err
	}

	ctx.Splog.Info("Checked out %s.", output.ColorBranchName(branchName, false))
	return nil
}

func checkoutWorktree(ctx *runtime.Context, branchName string) error {
	path, err := ctx.Worktrees.EnsureWorktree(ctx, branchName, false)
	if err != nil {
		return fmt.Errorf("failed to prepare worktree for %s: %w", branchName, err)
	}

	ctx.Splog.Debug("Worktree for %s is %s.", branchName, path)
	if _, err := fmt.Fprintln(ctx.Stdout, path); err != nil {
		return fmt.Errorf("failed to write worktree path: %w", err)
	}
	return nil
}

// interactiveBranchSelection shows an interactive branch selector
func interactiveBranchSelection(ctx *runtime.Context) (string, error) {
	if !isInteractive() {
		return "", fmt.Errorf("no branch given: %w", ErrInteractiveDisabled)
	}

	branches, err := ctx.Git.GetAllBranchNames()
	if err != nil {
		return "", fmt.Errorf("failed to list branches: %w", err)
	}
	if len(branches) == 0 {
		return "", fmt.Errorf("no branches available to checkout")
	}

	currentBranch, err := ctx.Git.GetCurrentBranch(ctx)
	if err != nil && !errors.Is(err, stackyerrors.ErrNotOnBranch) {
		return "", err
	}

	choices := make([]branchChoice, 0, len(branches))
	initialIndex := -1
	for _, branchName := range branches {
		isCurrent := branchName == currentBranch
		if isCurrent {
			initialIndex = len(choices)
		}
		choices = append(choices, branchChoice{
			display: output.ColorBranchName(branchName, isCurrent),
			value:   branchName,
		})
	}

	return promptBranchSelection("Checkout a branch (arrow keys to navigate, type to filter)", choices, initialIndex)
}
