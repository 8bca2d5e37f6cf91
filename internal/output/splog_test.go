package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Parallel()

	t.Run("writes bare messages to the configured writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(Options{Writer: &buf})
		require.NoError(t, err)

		splog.Info("Checked out %s.", "feature")
		splog.Info("100% literal")
		require.Equal(t, "Checked out feature.\n100% literal\n", buf.String())
	})

	t.Run("debug messages only in debug mode", func(t *testing.T) {
		t.Parallel()
		var quiet, loud bytes.Buffer

		s1, err := NewSplogWithOptions(Options{Writer: &quiet})
		require.NoError(t, err)
		s1.Debug("hidden")
		require.Empty(t, quiet.String())

		s2, err := NewSplogWithOptions(Options{Writer: &loud, Debug: true})
		require.NoError(t, err)
		s2.Debug("shown %d", 1)
		require.Equal(t, "shown 1\n", loud.String())
	})

	t.Run("warnings carry a prefix", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(Options{Writer: &buf})
		require.NoError(t, err)

		splog.Warn("worktree for %s already exists", "a")
		require.Contains(t, buf.String(), "worktree for a already exists")
		require.Contains(t, buf.String(), "⚠️")
	})

	t.Run("file logging captures debug messages", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logFile := filepath.Join(t.TempDir(), "logs", "stacky.log")

		splog, err := NewSplogWithOptions(Options{Writer: &buf, LogFile: logFile})
		require.NoError(t, err)
		splog.Debug("git worktree list")
		require.NoError(t, splog.Close())

		require.Empty(t, buf.String())
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "git worktree list")
		require.Contains(t, string(data), "level=DEBUG")
	})
}
