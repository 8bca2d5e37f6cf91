package main_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stacky.dev/stacky/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m)
}

func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(testhelpers.StackyBinary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"HOME="+t.TempDir(),
		"STACKY_CONFIG=",
		"STACKY_NON_INTERACTIVE=1",
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestCheckoutStdoutContract(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(s); err != nil {
			return err
		}
		if err := s.Repo.CreateBranch("SRE-12-feature"); err != nil {
			return err
		}
		return s.WriteConfig("[UI]\nuse_worktree = true\n")
	})
	want := filepath.Join(scene.Dir, ".stacky", "worktrees", "SRE-12-feature")

	stdout, stderr, err := run(t, scene.Dir, "checkout", "SRE-12-feature", "--debug")
	require.NoError(t, err, stderr)
	require.Equal(t, want+"\n", stdout)
	require.NotEmpty(t, stderr)
}

func TestErrorsExitNonZero(t *testing.T) {
	t.Parallel()
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(s); err != nil {
			return err
		}
		return s.WriteConfig("[UI]\nuse_worktree = perhaps\n")
	})

	stdout, stderr, err := run(t, scene.Dir, "checkout", "main")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
	require.Empty(t, stdout)
	require.Contains(t, stderr, "use_worktree")
}
