package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	stackyerrors "stacky.dev/stacky/internal/errors"
	"stacky.dev/stacky/internal/git"
	"stacky.dev/stacky/testhelpers"
)

func TestWorktree(t *testing.T) {
	t.Parallel()

	t.Run("add and list worktree", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewRealRunner(scene.Dir)
		ctx := context.Background()

		// Create a branch to checkout in the worktree
		require.NoError(t, scene.Repo.CreateBranch("test-branch"))

		worktreePath := filepath.Join(filepath.Dir(scene.Dir), "worktrees", "test-branch")

		err := runner.AddWorktree(ctx, worktreePath, "test-branch", false)
		require.NoError(t, err)

		// Verify worktree exists
		_, err = os.Stat(filepath.Join(worktreePath, ".git"))
		require.NoError(t, err)

		out, err := runner.ListWorktreesPorcelain(ctx)
		require.NoError(t, err)

		table := git.ParseWorktreeList(out)
		require.Equal(t, git.WorktreeTable{
			"main":        scene.Dir,
			"test-branch": worktreePath,
		}, table)
	})

	t.Run("add worktree with new branch", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewRealRunner(scene.Dir)
		ctx := context.Background()

		worktreePath := filepath.Join(filepath.Dir(scene.Dir), "worktrees", "fresh")
		require.NoError(t, runner.AddWorktree(ctx, worktreePath, "fresh", true))

		exists, err := runner.BranchExists("fresh")
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("second add reports already exists", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner := git.NewRealRunner(scene.Dir)
		ctx := context.Background()

		require.NoError(t, scene.Repo.CreateBranch("dup"))
		worktreePath := filepath.Join(filepath.Dir(scene.Dir), "worktrees", "dup")
		require.NoError(t, runner.AddWorktree(ctx, worktreePath, "dup", false))

		err := runner.AddWorktree(ctx, worktreePath, "dup", false)
		require.Error(t, err)
		require.ErrorIs(t, err, stackyerrors.ErrExternalCommand)
		require.True(t, stackyerrors.IsAlreadyExists(err), "unexpected error: %v", err)
	})
}

func TestBranches(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	runner := git.NewRealRunner(scene.Dir)
	ctx := context.Background()

	require.NoError(t, scene.Repo.CreateBranch("b"))
	require.NoError(t, scene.Repo.CreateBranch("a"))

	names, err := runner.GetAllBranchNames()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "main"}, names)

	exists, err := runner.BranchExists("nope")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, runner.CheckoutBranch(ctx, "a"))
	current, err := runner.GetCurrentBranch(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", current)

	err = runner.CheckoutBranch(ctx, "nope")
	require.ErrorIs(t, err, stackyerrors.ErrExternalCommand)
}

func TestGetRepoRoot(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	sub := filepath.Join(scene.Dir, "nested", "dir")
	require.NoError(t, os.MkdirAll(sub, 0750))

	root, err := git.GetRepoRoot(context.Background(), sub)
	require.NoError(t, err)
	require.Equal(t, scene.Dir, root)

	_, err = git.GetRepoRoot(context.Background(), t.TempDir())
	require.Error(t, err)
}
