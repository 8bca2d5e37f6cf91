// Package worktree manages the lifecycle of per-branch git worktrees.
//
// Worktrees live under <repository top level>/<worktree_root>/<branch>. The
// manager reconciles against `git worktree list` on every call, creates
// missing worktrees on demand, and never removes one.
package worktree
