package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It never changes the process working directory, so scenes are safe in parallel tests.
// Tests are skipped when no git executable is available.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not found")
	}

	// Resolve symlinks so paths match what git reports (on macOS /var is /private/var)
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	repoDir := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(repoDir, 0750); err != nil {
		t.Fatalf("Failed to create repo dir: %v", err)
	}

	repo, err := NewGitRepo(repoDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  repoDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// WriteConfig writes a .stackyconfig at the repository root.
func (s *Scene) WriteConfig(contents string) error {
	return os.WriteFile(filepath.Join(s.Dir, ".stackyconfig"), []byte(contents), 0600)
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
