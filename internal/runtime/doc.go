// Package runtime provides the execution context for stacky commands.
//
// A Context is built once per invocation by GetContext. It carries the repository
// top level, the merged configuration, the git runner and the worktree manager, so
// nothing downstream reads process-wide state.
package runtime
