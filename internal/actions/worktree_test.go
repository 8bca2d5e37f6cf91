package actions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

func TestWorktreeActions(t *testing.T) {
	t.Parallel()

	t.Run("path never creates", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, true)

		require.NoError(t, WorktreePathAction(f.ctx, "feature"))
		require.Equal(t, "/repo/.stacky/worktrees/feature\n", f.stdout.String())
		require.Empty(t, f.runner.CommandsWithPrefix("worktree", "add"))
	})

	t.Run("add creates the branch on request", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, true)

		err := WorktreeAddAction(f.ctx, WorktreeAddOptions{BranchName: "SRE-99-new", Create: true})
		require.NoError(t, err)
		require.Equal(t, "/repo/.stacky/worktrees/SRE-99-new\n", f.stdout.String())
		require.Equal(t, [][]string{
			{"worktree", "add", "-b", "SRE-99-new", "/repo/.stacky/worktrees/SRE-99-new"},
		}, f.runner.CommandsWithPrefix("worktree", "add"))
	})

	t.Run("add requires worktree mode", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, false)

		err := WorktreeAddAction(f.ctx, WorktreeAddOptions{BranchName: "feature"})
		require.ErrorIs(t, err, stackyerrors.ErrConfiguration)
		require.Empty(t, f.stdout.String())
	})

	t.Run("list shows branches, detached heads and issue markers", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, true)
		f.runner.Porcelain = "worktree /repo\nHEAD aaa\nbranch refs/heads/main\n\n" +
			"worktree /repo/.stacky/worktrees/SRE-12-fix\nHEAD bbb\nbranch refs/heads/SRE-12-fix\n\n" +
			"worktree /tmp/scratch\nHEAD ccc\ndetached\n"

		require.NoError(t, WorktreeListAction(f.ctx))
		lines := strings.Split(strings.TrimRight(f.stdout.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		require.Contains(t, lines[0], "BRANCH")
		require.Contains(t, lines[2], "SRE-12-fix")
		require.Contains(t, lines[2], "SRE-12")
		require.Contains(t, lines[3], "(detached)")
		require.Contains(t, lines[3], "/tmp/scratch")
	})
}

func TestIssueAction(t *testing.T) {
	t.Parallel()

	t.Run("prints the marker of the given branch", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, false)

		require.NoError(t, IssueAction(f.ctx, "john_SRE12-find-things"))
		require.Equal(t, "SRE-12\n", f.stdout.String())
	})

	t.Run("defaults to the current branch", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, false)
		f.runner.CurrentBranch = "anna_01_01_SRE-12"

		require.NoError(t, IssueAction(f.ctx, ""))
		require.Equal(t, "SRE-12\n", f.stdout.String())
	})

	t.Run("absent marker prints nothing", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, false)

		require.NoError(t, IssueAction(f.ctx, "john_test_12"))
		require.Empty(t, f.stdout.String())
		require.Contains(t, f.stderr.String(), "No issue marker")
	})

	t.Run("detached head", func(t *testing.T) {
		t.Parallel()
		f := newActionFixture(t, false)
		f.runner.CurrentBranch = ""

		err := IssueAction(f.ctx, "")
		require.ErrorIs(t, err, stackyerrors.ErrNotOnBranch)
	})
}
