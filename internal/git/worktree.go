package git

import (
	"context"
	"fmt"
	"strings"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

// WorktreeTable maps a branch short name to the path of the worktree that has it checked out.
type WorktreeTable map[string]string

// WorktreeInfo is one record of `git worktree list --porcelain`.
type WorktreeInfo struct {
	Path     string
	Head     string
	Branch   string // short name, empty when detached or bare
	Detached bool
	Bare     bool
	Locked   bool
	Prunable bool
}

const (
	worktreePrefix = "worktree "
	headPrefix     = "HEAD "
	branchPrefix   = "branch "
	headsPrefix    = "refs/heads/"
)

// AddWorktree adds a new worktree at the specified path.
// When newBranch is true the branch is created from HEAD (`worktree add -b <branch> <path>`),
// otherwise the existing branch is checked out (`worktree add <path> <branch>`).
func AddWorktree(ctx context.Context, r *CommandRunner, path string, branch string, newBranch bool) error {
	args := []string{"worktree", "add"}
	if newBranch {
		args = append(args, "-b", branch, path)
	} else {
		args = append(args, path, branch)
	}

	_, err := r.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to add worktree at %s: %w", path, err)
	}
	return nil
}

// ListWorktreesPorcelain returns the raw porcelain listing of all worktrees
func ListWorktreesPorcelain(ctx context.Context, r *CommandRunner) (string, error) {
	out, err := r.RunRaw(ctx, "worktree", "list", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to list worktrees: %w", err)
	}
	return out, nil
}

// ParseWorktreeList builds the branch to path table from porcelain output.
// Detached and bare worktrees are not tracked; malformed records are skipped.
// If two records name the same branch the last one wins.
func ParseWorktreeList(output string) WorktreeTable {
	infos, _ := ParseWorktreeRecords(output)
	return NewWorktreeTable(infos)
}

// NewWorktreeTable indexes parsed records by branch; later records win.
func NewWorktreeTable(infos []WorktreeInfo) WorktreeTable {
	table := make(WorktreeTable, len(infos))
	for _, info := range infos {
		if info.Branch == "" {
			continue
		}
		table[info.Branch] = info.Path
	}
	return table
}

// ParseWorktreeRecords parses porcelain output into records. Records that cannot be
// understood are reported as *errors.ParseError and left out of the result.
func ParseWorktreeRecords(output string) ([]WorktreeInfo, []error) {
	var (
		infos   []WorktreeInfo
		errs    []error
		current *WorktreeInfo
		bad     bool
		record  int
	)

	flush := func() {
		if current != nil && !bad {
			infos = append(infos, *current)
		}
		current = nil
		bad = false
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")

		if line == "" {
			flush()
			continue
		}

		if current == nil && !bad {
			record++
		}

		switch {
		case strings.HasPrefix(line, worktreePrefix):
			if current != nil || bad {
				// Missing blank separator: treat as the start of a new record
				flush()
				record++
			}
			path := strings.TrimPrefix(line, worktreePrefix)
			if path == "" {
				errs = append(errs, stackyerrors.NewParseError(record, line, "empty worktree path"))
				bad = true
				continue
			}
			current = &WorktreeInfo{Path: path}
		case bad:
			// Rest of a record already reported
		case current == nil:
			errs = append(errs, stackyerrors.NewParseError(record, line, "record does not start with a worktree line"))
			bad = true
		case strings.HasPrefix(line, headPrefix):
			current.Head = strings.TrimPrefix(line, headPrefix)
		case strings.HasPrefix(line, branchPrefix):
			ref := strings.TrimPrefix(line, branchPrefix)
			if !strings.HasPrefix(ref, headsPrefix) || ref == headsPrefix {
				errs = append(errs, stackyerrors.NewParseError(record, line, "branch is not a local head"))
				bad = true
				continue
			}
			current.Branch = strings.TrimPrefix(ref, headsPrefix)
		case line == "detached":
			current.Detached = true
		case line == "bare":
			current.Bare = true
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.Locked = true
		case line == "prunable" || strings.HasPrefix(line, "prunable "):
			current.Prunable = true
		}
	}
	flush()

	return infos, errs
}
