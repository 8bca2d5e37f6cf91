// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a stacky command (checkout, worktree, issue, config)
// and orchestrates the worktree manager, git and configuration held by a
// runtime.Context.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Config, Git, Worktrees and Splog
//   - Only machine-readable results go to ctx.Stdout; everything else goes through Splog
//   - Actions are stateless; every call re-reads git state
package actions
