package utils

import (
	"fmt"
	"strings"
	"unicode"

	stackyerrors "stacky.dev/stacky/internal/errors"
)

const (
	// MaxBranchNameByteLength is the maximum length for a branch name.
	// Git refs have a max length of 256 bytes, minus 11 for "refs/heads/"
	MaxBranchNameByteLength = 245
)

// ValidateBranchName checks that a branch name can be used as a single
// directory name under the worktree root.
func ValidateBranchName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", stackyerrors.ErrInvalidBranchName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", stackyerrors.ErrInvalidBranchName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", stackyerrors.ErrInvalidBranchName, name)
	case len(name) > MaxBranchNameByteLength:
		return fmt.Errorf("%w: %q is longer than %d bytes", stackyerrors.ErrInvalidBranchName, name, MaxBranchNameByteLength)
	}

	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", stackyerrors.ErrInvalidBranchName, name)
		}
	}
	return nil
}
