// Package errors provides sentinel errors and custom error types for the stacky application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInvalidBranchName indicates a branch name that cannot be mapped to a worktree directory
	ErrInvalidBranchName = errors.New("invalid branch name")

	// ErrConfiguration indicates a required setting is absent or invalid
	ErrConfiguration = errors.New("configuration error")

	// ErrExternalCommand indicates an external process exited non-zero or could not start
	ErrExternalCommand = errors.New("external command failed")

	// ErrParse indicates malformed output from an external command
	ErrParse = errors.New("parse error")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// ConfigurationError reports a setting that is missing or unusable.
// Path is the config file involved, if any.
type ConfigurationError struct {
	Setting string
	Path    string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Setting != "" {
		msg += fmt.Sprintf(": %s", e.Setting)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Reason != "" {
		msg += fmt.Sprintf(": %s", e.Reason)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(setting, reason string) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Reason: reason}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", strings.TrimSpace(e.Stderr))
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", strings.TrimSpace(e.Stdout))
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrExternalCommand
func (e *GitCommandError) Is(target error) bool {
	return target == ErrExternalCommand
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// alreadyExistsMarkers are the stderr fragments git prints when a worktree add
// loses a race against an identical add.
var alreadyExistsMarkers = []string{
	"already exists",
	"already checked out",
	"is already used by worktree",
	"already registered",
}

// IsAlreadyExists reports whether err is a git failure caused by the worktree
// or its directory already being present.
func IsAlreadyExists(err error) bool {
	var gitErr *GitCommandError
	if !errors.As(err, &gitErr) {
		return false
	}
	stderr := strings.ToLower(gitErr.Stderr)
	for _, marker := range alreadyExistsMarkers {
		if strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}

// ParseError describes a record of command output that could not be understood.
type ParseError struct {
	Record int // 1-based record index
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("parse error in record %d: %s (line %q)", e.Record, e.Reason, e.Line)
	}
	return fmt.Sprintf("parse error in record %d: %s", e.Record, e.Reason)
}

// Is returns true if the target error is ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(record int, line, reason string) *ParseError {
	return &ParseError{Record: record, Line: line, Reason: reason}
}
