package testhelpers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	stackyerrors "stacky.dev/stacky/internal/errors"
	"stacky.dev/stacky/internal/git"
)

// FakeRunner implements git.Runner in memory and records every git command it
// would have run. Worktrees added through it show up in later listings.
type FakeRunner struct {
	WorkingDir    string
	CurrentBranch string
	Branches      []string

	// Porcelain, when set, is returned verbatim by ListWorktreesPorcelain
	// instead of the listing generated from Worktrees.
	Porcelain string
	// Worktrees maps branch to path for generated listings.
	Worktrees map[string]string

	// AddErr, when set, is returned by the next AddWorktree call (and cleared).
	AddErr error
	// OnAdd runs after a failing AddWorktree, e.g. to simulate a concurrent winner.
	OnAdd func(f *FakeRunner)

	// Commands is every mutating or listing git invocation, as argv without "git".
	Commands [][]string
}

// NewFakeRunner creates a fake with a main branch checked out at dir.
func NewFakeRunner(dir string) *FakeRunner {
	return &FakeRunner{
		WorkingDir:    dir,
		CurrentBranch: "main",
		Branches:      []string{"main"},
		Worktrees:     map[string]string{},
	}
}

var _ git.Runner = (*FakeRunner)(nil)

func (f *FakeRunner) record(args ...string) {
	f.Commands = append(f.Commands, args)
}

// CommandsWithPrefix returns the recorded commands that start with the given args.
func (f *FakeRunner) CommandsWithPrefix(prefix ...string) [][]string {
	var out [][]string
	for _, cmd := range f.Commands {
		if len(cmd) < len(prefix) {
			continue
		}
		match := true
		for i, p := range prefix {
			if cmd[i] != p {
				match = false
				break
			}
		}
		if match {
			out = append(out, cmd)
		}
	}
	return out
}

func (f *FakeRunner) GetWorkingDir() string {
	return f.WorkingDir
}

func (f *FakeRunner) GetCurrentBranch(_ context.Context) (string, error) {
	if f.CurrentBranch == "" {
		return "", stackyerrors.ErrNotOnBranch
	}
	return f.CurrentBranch, nil
}

func (f *FakeRunner) GetAllBranchNames() ([]string, error) {
	names := append([]string(nil), f.Branches...)
	sort.Strings(names)
	return names, nil
}

func (f *FakeRunner) BranchExists(branchName string) (bool, error) {
	for _, b := range f.Branches {
		if b == branchName {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRunner) CheckoutBranch(_ context.Context, branchName string) error {
	f.record("checkout", branchName)
	if ok, _ := f.BranchExists(branchName); !ok {
		return stackyerrors.NewGitCommandError("git", []string{"checkout", branchName}, "",
			fmt.Sprintf("error: pathspec '%s' did not match any file(s) known to git", branchName), fmt.Errorf("exit status 1"))
	}
	f.CurrentBranch = branchName
	return nil
}

func (f *FakeRunner) AddWorktree(_ context.Context, path string, branch string, newBranch bool) error {
	if newBranch {
		f.record("worktree", "add", "-b", branch, path)
	} else {
		f.record("worktree", "add", path, branch)
	}

	if f.AddErr != nil {
		err := f.AddErr
		f.AddErr = nil
		if f.OnAdd != nil {
			f.OnAdd(f)
		}
		return err
	}

	if newBranch {
		f.Branches = append(f.Branches, branch)
	}
	f.Worktrees[branch] = path
	return nil
}

func (f *FakeRunner) ListWorktreesPorcelain(_ context.Context) (string, error) {
	f.record("worktree", "list", "--porcelain")
	if f.Porcelain != "" {
		return f.Porcelain, nil
	}

	branches := make([]string, 0, len(f.Worktrees))
	for b := range f.Worktrees {
		branches = append(branches, b)
	}
	sort.Strings(branches)

	var sb strings.Builder
	for i, b := range branches {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "worktree %s\nHEAD %040d\nbranch refs/heads/%s\n", f.Worktrees[b], i, b)
	}
	return sb.String(), nil
}
