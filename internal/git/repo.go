package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// GetRepoRoot returns the top-level directory of the Git repository containing dir.
// An empty dir means the current working directory.
func GetRepoRoot(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	// Use go-git to find the repository
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err == nil {
		worktree, wtErr := repo.Worktree()
		if wtErr == nil {
			return filepath.Clean(worktree.Filesystem.Root()), nil
		}
	}

	// go-git refuses some layouts (unknown repository extensions, bare repos);
	// ask git itself before giving up.
	root, revErr := NewCommandRunner(dir).Run(ctx, "rev-parse", "--show-toplevel")
	if revErr != nil {
		if err == nil {
			err = revErr
		}
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return filepath.Clean(root), nil
}
