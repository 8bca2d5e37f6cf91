// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch queries and checkout
//   - Worktree listing, parsing and creation
//   - Repository discovery
//
// This package should be the only place where direct git commands are executed.
package git
