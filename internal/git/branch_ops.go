package git

import (
	"context"
	"fmt"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, r *CommandRunner, branchName string) error {
	_, err := r.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// GetCurrentBranch returns the branch checked out in the runner's worktree
func GetCurrentBranch(ctx context.Context, r *CommandRunner) (string, error) {
	name, err := r.Run(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if name == "" {
		return "", stackyerrors.ErrNotOnBranch
	}
	return name, nil
}
