package git

import (
	"testing"

	"github.com/stretchr/testify/require"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

func TestParseWorktreeList(t *testing.T) {
	t.Parallel()

	t.Run("two branch records", func(t *testing.T) {
		t.Parallel()
		out := "worktree /repo\n" +
			"HEAD abc\n" +
			"branch refs/heads/main\n" +
			"\n" +
			"worktree /repo/.stacky/worktrees/feature\n" +
			"HEAD def\n" +
			"branch refs/heads/feature\n"

		table := ParseWorktreeList(out)
		require.Equal(t, WorktreeTable{
			"main":    "/repo",
			"feature": "/repo/.stacky/worktrees/feature",
		}, table)
	})

	t.Run("empty output", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, ParseWorktreeList(""))
	})

	t.Run("detached and bare records are not tracked", func(t *testing.T) {
		t.Parallel()
		out := "worktree /repo.git\n" +
			"bare\n" +
			"\n" +
			"worktree /repo/wt-detached\n" +
			"HEAD 123\n" +
			"detached\n" +
			"\n" +
			"worktree /repo/wt-a\n" +
			"HEAD 456\n" +
			"branch refs/heads/a\n"

		require.Equal(t, WorktreeTable{"a": "/repo/wt-a"}, ParseWorktreeList(out))
	})

	t.Run("duplicate branch last record wins", func(t *testing.T) {
		t.Parallel()
		out := "worktree /first\n" +
			"HEAD 1\n" +
			"branch refs/heads/dup\n" +
			"\n" +
			"worktree /second\n" +
			"HEAD 2\n" +
			"branch refs/heads/dup\n"

		require.Equal(t, WorktreeTable{"dup": "/second"}, ParseWorktreeList(out))
	})

	t.Run("paths with spaces and CRLF", func(t *testing.T) {
		t.Parallel()
		out := "worktree /my repo/wt\r\nHEAD 1\r\nbranch refs/heads/x\r\n"
		require.Equal(t, WorktreeTable{"x": "/my repo/wt"}, ParseWorktreeList(out))
	})

	t.Run("branch names keep slashes after refs/heads", func(t *testing.T) {
		t.Parallel()
		out := "worktree /wt\nHEAD 1\nbranch refs/heads/john/SRE-12\n"
		require.Equal(t, WorktreeTable{"john/SRE-12": "/wt"}, ParseWorktreeList(out))
	})
}

func TestParseWorktreeRecords(t *testing.T) {
	t.Parallel()

	t.Run("captures record attributes", func(t *testing.T) {
		t.Parallel()
		out := "worktree /repo\n" +
			"HEAD abc\n" +
			"branch refs/heads/main\n" +
			"\n" +
			"worktree /repo/wt\n" +
			"HEAD def\n" +
			"detached\n" +
			"locked reason here\n" +
			"prunable gitdir file points to non-existent location\n"

		infos, errs := ParseWorktreeRecords(out)
		require.Empty(t, errs)
		require.Equal(t, []WorktreeInfo{
			{Path: "/repo", Head: "abc", Branch: "main"},
			{Path: "/repo/wt", Head: "def", Detached: true, Locked: true, Prunable: true},
		}, infos)
	})

	t.Run("malformed record is skipped and reported", func(t *testing.T) {
		t.Parallel()
		out := "worktree /repo\n" +
			"HEAD abc\n" +
			"branch refs/heads/main\n" +
			"\n" +
			"HEAD 999\n" +
			"branch refs/heads/orphan\n" +
			"\n" +
			"worktree /repo/wt-b\n" +
			"HEAD def\n" +
			"branch refs/heads/b\n"

		infos, errs := ParseWorktreeRecords(out)
		require.Len(t, errs, 1)
		require.ErrorIs(t, errs[0], stackyerrors.ErrParse)

		var parseErr *stackyerrors.ParseError
		require.ErrorAs(t, errs[0], &parseErr)
		require.Equal(t, 2, parseErr.Record)

		require.Len(t, infos, 2)
		require.Equal(t, WorktreeTable{"main": "/repo", "b": "/repo/wt-b"}, ParseWorktreeList(out))
	})

	t.Run("non local branch ref is reported", func(t *testing.T) {
		t.Parallel()
		out := "worktree /repo/wt\nHEAD 1\nbranch refs/remotes/origin/x\n"

		infos, errs := ParseWorktreeRecords(out)
		require.Empty(t, infos)
		require.Len(t, errs, 1)
	})

	t.Run("missing blank separator starts a new record", func(t *testing.T) {
		t.Parallel()
		out := "worktree /a\nHEAD 1\nbranch refs/heads/a\nworktree /b\nHEAD 2\nbranch refs/heads/b\n"

		infos, errs := ParseWorktreeRecords(out)
		require.Empty(t, errs)
		require.Len(t, infos, 2)
		require.Equal(t, WorktreeTable{"a": "/a", "b": "/b"}, ParseWorktreeList(out))
	})
}
