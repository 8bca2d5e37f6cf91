package actions

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigAction(t *testing.T) {
	t.Parallel()
	f := newActionFixture(t, true)
	f.ctx.Config.WorktreeRoot = "../trees"

	require.NoError(t, ConfigAction(f.ctx, ConfigOptions{}))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(f.stdout.Bytes(), &got))
	require.Equal(t, true, got["use_worktree"])
	require.Equal(t, "../trees", got["worktree_root"])
	require.Equal(t, true, got["enable_stack_comment"])
	require.Equal(t, true, got["use_force_push"])
	require.Equal(t, false, got["use_merge"])
	require.NotContains(t, got, "sources")
}
