package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("home marker", func(t *testing.T) {
		got, err := Expand("~/cache/gate")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "cache", "gate"), got)
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("GATE_TEST_DIR", "/opt/gate")
		got, err := Expand("$GATE_TEST_DIR/repos")
		require.NoError(t, err)
		assert.Equal(t, "/opt/gate/repos", got)
	})

	t.Run("relative paths become absolute", func(t *testing.T) {
		got, err := Expand("relative/dir")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}
