// Package testhelpers provides testing utilities for the stacky CLI,
// including a scene system, git repository helpers, a fake git runner
// and custom assertions.
package testhelpers

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stacky.dev/stacky/internal/git"
)

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	require.NoError(t, err, "Failed to list branches")

	branches := []string{}
	for _, b := range strings.Split(output, "\n") {
		if b = strings.TrimSpace(b); b != "" {
			branches = append(branches, b)
		}
	}

	sort.Strings(branches)
	expected = append([]string(nil), expected...)
	sort.Strings(expected)

	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectWorktree asserts that git has branch checked out in a worktree at path.
func ExpectWorktree(t *testing.T, repo *GitRepo, branch, path string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("worktree", "list", "--porcelain")
	require.NoError(t, err, "Failed to list worktrees")

	table := git.ParseWorktreeList(output)
	require.Contains(t, table, branch, "No worktree for %s", branch)
	require.Equal(t, path, table[branch])
}

// ExpectNoWorktree asserts that no worktree has branch checked out.
func ExpectNoWorktree(t *testing.T, repo *GitRepo, branch string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("worktree", "list", "--porcelain")
	require.NoError(t, err, "Failed to list worktrees")
	require.NotContains(t, git.ParseWorktreeList(output), branch)
}
