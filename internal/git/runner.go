package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// runInternal is the internal implementation that handles directory and trimming
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", stackyerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", stackyerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// Runner defines the interface for git operations used by the worktree manager
// and the actions. This allows them to be used with both real git and fakes.
type Runner interface {
	// Branch Management
	GetCurrentBranch(ctx context.Context) (string, error)
	GetAllBranchNames() ([]string, error)
	BranchExists(branchName string) (bool, error)
	CheckoutBranch(ctx context.Context, branchName string) error

	// Worktree operations
	AddWorktree(ctx context.Context, path string, branch string, newBranch bool) error
	ListWorktreesPorcelain(ctx context.Context) (string, error)

	// Runner state
	GetWorkingDir() string
}

// NewRealRunner returns a standard implementation of Runner that runs git
// in the given directory.
func NewRealRunner(dir string) Runner {
	return &realRunner{
		cmd:        NewCommandRunner(dir),
		workingDir: dir,
	}
}

// realRunner implements Runner by calling the git executable and go-git
type realRunner struct {
	cmd        *CommandRunner
	workingDir string
	repo       *Repository
}

func (r *realRunner) GetWorkingDir() string {
	return r.workingDir
}

// repository opens the go-git repository lazily; most invocations never need it.
func (r *realRunner) repository() (*Repository, error) {
	if r.repo != nil {
		return r.repo, nil
	}
	repo, err := OpenRepository(r.workingDir)
	if err != nil {
		return nil, err
	}
	r.repo = repo
	return repo, nil
}

func (r *realRunner) GetCurrentBranch(ctx context.Context) (string, error) {
	return GetCurrentBranch(ctx, r.cmd)
}

func (r *realRunner) GetAllBranchNames() ([]string, error) {
	repo, err := r.repository()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}

func (r *realRunner) BranchExists(branchName string) (bool, error) {
	repo, err := r.repository()
	if err != nil {
		return false, err
	}
	return repo.BranchExists(branchName)
}

func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	return CheckoutBranch(ctx, r.cmd, branchName)
}

func (r *realRunner) AddWorktree(ctx context.Context, path string, branch string, newBranch bool) error {
	return AddWorktree(ctx, r.cmd, path, branch, newBranch)
}

func (r *realRunner) ListWorktreesPorcelain(ctx context.Context) (string, error) {
	return ListWorktreesPorcelain(ctx, r.cmd)
}
