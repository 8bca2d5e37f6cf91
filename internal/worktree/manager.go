package worktree

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"stacky.dev/stacky/internal/config"
	stackyerrors "stacky.dev/stacky/internal/errors"
	"stacky.dev/stacky/internal/git"
	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/utils"
)

// Provider is what the actions need from the worktree manager.
type Provider interface {
	EnsureWorktree(ctx context.Context, branch string, create bool) (string, error)
	WorktreePath(ctx context.Context, branch string) (string, bool, error)
	List(ctx context.Context) ([]git.WorktreeInfo, error)
}

// Manager provisions one worktree per branch under the configured root.
// It holds no state between calls: every operation re-reads git's worktree list.
type Manager struct {
	repoRoot string
	cfg      *config.StackyConfig
	git      git.Runner
	fs       billy.Filesystem
	splog    *output.Splog
}

var _ Provider = (*Manager)(nil)

// NewManager creates a manager on the real filesystem.
func NewManager(repoRoot string, cfg *config.StackyConfig, runner git.Runner, splog *output.Splog) *Manager {
	return NewManagerWithFS(repoRoot, cfg, runner, osfs.New("/"), splog)
}

// NewManagerWithFS creates a manager on the given filesystem. Paths handed to fs are absolute.
func NewManagerWithFS(repoRoot string, cfg *config.StackyConfig, runner git.Runner, fsys billy.Filesystem, splog *output.Splog) *Manager {
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Manager{
		repoRoot: repoRoot,
		cfg:      cfg,
		git:      runner,
		fs:       fsys,
		splog:    splog,
	}
}

// TargetPath returns <repo top level>/<worktree_root>/<branch>, or <worktree_root>/<branch>
// when the root is absolute.
func (m *Manager) TargetPath(branch string) (string, error) {
	if err := utils.ValidateBranchName(branch); err != nil {
		return "", err
	}
	root, err := m.cfg.ResolveWorktreeRoot(m.repoRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, branch), nil
}

func (m *Manager) requireWorktreeMode() error {
	if m.cfg == nil || !m.cfg.UseWorktree {
		return stackyerrors.NewConfigurationError("UI.use_worktree", "worktree mode is disabled; set use_worktree = true under [UI]")
	}
	if m.repoRoot == "" {
		return stackyerrors.NewConfigurationError("repository", "no repository top level to place worktrees under")
	}
	return nil
}

// table lists the worktrees git currently knows about.
func (m *Manager) table(ctx context.Context) (git.WorktreeTable, error) {
	out, err := m.git.ListWorktreesPorcelain(ctx)
	if err != nil {
		return nil, err
	}
	infos, errs := git.ParseWorktreeRecords(out)
	for _, perr := range errs {
		m.splog.Debug("skipping worktree record: %v", perr)
	}
	return git.NewWorktreeTable(infos), nil
}

// EnsureWorktree returns the worktree path for branch, creating the worktree when
// neither git nor the filesystem has one yet. An existing worktree is returned as-is
// without further git calls. create allows the branch itself to be created from HEAD
// when it does not exist; it does not gate provisioning.
func (m *Manager) EnsureWorktree(ctx context.Context, branch string, create bool) (string, error) {
	if err := m.requireWorktreeMode(); err != nil {
		return "", err
	}

	target, err := m.TargetPath(branch)
	if err != nil {
		return "", err
	}

	table, err := m.table(ctx)
	if err != nil {
		return "", err
	}
	if existing, ok := table[branch]; ok {
		m.splog.Debug("Worktree for %s already at %s.", branch, existing)
		return existing, nil
	}

	present, err := m.exists(target)
	if err != nil {
		return "", err
	}
	if present {
		m.splog.Warn("%s exists but is not a registered worktree for %s; using it as-is.", target, branch)
		return target, nil
	}

	if err := m.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create worktree parent directory: %w", err)
	}

	newBranch := false
	if create {
		exists, err := m.git.BranchExists(branch)
		if err != nil {
			return "", err
		}
		newBranch = !exists
	}

	m.splog.Debug("Adding worktree for %s at %s.", branch, target)
	if err := m.git.AddWorktree(ctx, target, branch, newBranch); err != nil {
		return m.recoverFromRace(ctx, branch, target, err)
	}
	return target, nil
}

// recoverFromRace resolves a failed `worktree add` that lost against a concurrent
// identical add. Any other failure is returned unchanged.
func (m *Manager) recoverFromRace(ctx context.Context, branch, target string, addErr error) (string, error) {
	if !stackyerrors.IsAlreadyExists(addErr) {
		return "", addErr
	}

	table, err := m.table(ctx)
	if err == nil {
		if existing, ok := table[branch]; ok {
			m.splog.Warn("Worktree for %s was created concurrently at %s.", branch, existing)
			return existing, nil
		}
	}

	if present, statErr := m.exists(target); statErr == nil && present {
		m.splog.Warn("Worktree directory %s appeared concurrently; using it.", target)
		return target, nil
	}
	return "", addErr
}

// WorktreePath returns the existing worktree for branch, or the path EnsureWorktree
// would create, without running `worktree add` or touching the filesystem.
func (m *Manager) WorktreePath(ctx context.Context, branch string) (string, bool, error) {
	if err := m.requireWorktreeMode(); err != nil {
		return "", false, err
	}

	target, err := m.TargetPath(branch)
	if err != nil {
		return "", false, err
	}

	table, err := m.table(ctx)
	if err != nil {
		return "", false, err
	}
	if existing, ok := table[branch]; ok {
		return existing, true, nil
	}
	return target, false, nil
}

// List returns every worktree git reports, including detached ones.
func (m *Manager) List(ctx context.Context) ([]git.WorktreeInfo, error) {
	out, err := m.git.ListWorktreesPorcelain(ctx)
	if err != nil {
		return nil, err
	}
	infos, errs := git.ParseWorktreeRecords(out)
	for _, perr := range errs {
		m.splog.Debug("skipping worktree record: %v", perr)
	}
	return infos, nil
}

func (m *Manager) exists(path string) (bool, error) {
	_, err := m.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}
