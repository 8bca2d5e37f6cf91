package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("empty rows render nothing", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, RenderTable([]string{"BRANCH"}, nil))
	})

	t.Run("columns are aligned", func(t *testing.T) {
		t.Parallel()
		out := RenderTable([]string{"BRANCH", "PATH"}, [][]string{
			{"main", "/repo"},
			{"SRE-12-fix", "/repo/.stacky/worktrees/SRE-12-fix"},
		})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 3)
		require.Contains(t, lines[0], "BRANCH")
		require.Equal(t, strings.Index(lines[1], "/repo"), strings.Index(lines[2], "/repo/.stacky"))
	})
}
