package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"stacky.dev/stacky/internal/config"
	"stacky.dev/stacky/internal/git"
	"stacky.dev/stacky/internal/output"
	"stacky.dev/stacky/internal/worktree"
)

// Context provides access to config, git and output for commands
type Context struct {
	context.Context

	RepoRoot  string
	Config    *config.StackyConfig
	Git       git.Runner
	Worktrees worktree.Provider
	Splog     *output.Splog

	// Stdout receives machine-readable output only; messages go through Splog
	Stdout io.Writer
}

// Options controls how GetContext builds a Context
type Options struct {
	// Dir is the directory to run in; empty means the current working directory
	Dir string
	// Debug forces debug logging on
	Debug bool
	// Stdout defaults to os.Stdout
	Stdout io.Writer
	// Stderr defaults to os.Stderr
	Stderr io.Writer
	// AllowOutsideRepo lets commands such as `config --paths` run without a repository
	AllowOutsideRepo bool
}

// NewContext assembles a context from already-built parts. It is mostly used by tests.
func NewContext(ctx context.Context, repoRoot string, cfg *config.StackyConfig, runner git.Runner, provider worktree.Provider, splog *output.Splog, stdout io.Writer) *Context {
	if splog == nil {
		splog = output.NewSplog()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Context{
		Context:   ctx,
		RepoRoot:  repoRoot,
		Config:    cfg,
		Git:       runner,
		Worktrees: provider,
		Splog:     splog,
		Stdout:    stdout,
	}
}

// GetContext resolves the repository, loads the layered configuration and wires the
// git runner and worktree manager for one invocation.
func GetContext(ctx context.Context, opts Options) (*Context, error) {
	splog, err := output.NewSplogWithOptions(output.Options{
		Writer:  opts.Stderr,
		Debug:   opts.Debug || output.DebugFromEnv(),
		LogFile: os.Getenv("STACKY_LOG_FILE"),
	})
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repoRoot, err := git.GetRepoRoot(ctx, dir)
	if err != nil {
		if !opts.AllowOutsideRepo {
			return nil, fmt.Errorf("not a git repository: %w", err)
		}
		splog.Debug("No repository at %s: %v", dir, err)
		repoRoot = ""
	}

	paths := config.DefaultPaths(repoRoot)
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, err
	}
	for _, src := range cfg.Sources {
		splog.Debug("Loaded config from %s.", src)
	}

	runDir := repoRoot
	if runDir == "" {
		runDir = dir
	}
	runner := git.NewRealRunner(runDir)
	splog.Debug("Running git in %s.", runner.GetWorkingDir())
	manager := worktree.NewManager(repoRoot, cfg, runner, splog)

	return NewContext(ctx, repoRoot, cfg, runner, manager, splog, opts.Stdout), nil
}
