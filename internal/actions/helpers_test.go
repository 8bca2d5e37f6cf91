package actions

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"stacky.dev/stacky/internal/config"
	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/runtime"
	"stacky.dev/stacky/internal/worktree"
	"stacky.dev/stacky/testhelpers"
)

type actionFixture struct {
	ctx    *runtime.Context
	runner *testhelpers.FakeRunner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newActionFixture(t *testing.T, useWorktree bool) *actionFixture {
	t.Helper()

	cfg := config.NewStackyConfig()
	cfg.UseWorktree = useWorktree

	var stdout, stderr bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.Options{Writer: &stderr})
	require.NoError(t, err)

	runner := testhelpers.NewFakeRunner("/repo")
	runner.Branches = []string{"main", "feature", "SRE-12-fix"}
	manager := worktree.NewManagerWithFS("/repo", cfg, runner, memfs.New(), splog)

	return &actionFixture{
		ctx:    runtime.NewContext(context.Background(), "/repo", cfg, runner, manager, splog, &stdout),
		runner: runner,
		stdout: &stdout,
		stderr: &stderr,
	}
}
