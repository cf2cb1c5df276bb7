package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parserScript = `
function parse_command(text)
  local words = {}
  for word in string.gmatch(text, "%S+") do
    words[#words + 1] = word
  end
  if words[1] ~= "/hunt" then
    return nil
  end
  if words[2] == "go" then
    return { action = "configure", target_kind = "group", target_id = tonumber(words[3]) or 0 }
  end
  if words[2] == "claim" then
    return { action = "claim" }
  end
  return { action = "status" }
end
`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.lua")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBridge_Parse(t *testing.T) {
	bridge, err := NewBridge(writeScript(t, parserScript))
	require.NoError(t, err)

	t.Run("configure command with target", func(t *testing.T) {
		cmd, err := bridge.Parse("/hunt go 3")
		require.NoError(t, err)
		require.NotNil(t, cmd)
		assert.Equal(t, ActionConfigure, cmd.Action)
		assert.Equal(t, "group", cmd.TargetKind)
		assert.Equal(t, int64(3), cmd.TargetID)
	})

	t.Run("claim command", func(t *testing.T) {
		cmd, err := bridge.Parse("/hunt claim")
		require.NoError(t, err)
		require.NotNil(t, cmd)
		assert.Equal(t, ActionClaim, cmd.Action)
	})

	t.Run("bare command defaults to status", func(t *testing.T) {
		cmd, err := bridge.Parse("/hunt")
		require.NoError(t, err)
		require.NotNil(t, cmd)
		assert.Equal(t, ActionStatus, cmd.Action)
	})

	t.Run("non-command text passes through", func(t *testing.T) {
		cmd, err := bridge.Parse("hello everyone")
		require.NoError(t, err)
		assert.Nil(t, cmd)
	})
}

func TestBridge_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewBridge(filepath.Join(t.TempDir(), "absent.lua"))
		assert.Error(t, err)
	})

	t.Run("script without parse_command", func(t *testing.T) {
		_, err := NewBridge(writeScript(t, `x = 1`))
		assert.Error(t, err)
	})

	t.Run("script returning wrong type", func(t *testing.T) {
		bridge, err := NewBridge(writeScript(t, `function parse_command(text) return 42 end`))
		require.NoError(t, err)

		_, err = bridge.Parse("/hunt")
		assert.Error(t, err)
	})
}

func TestBridge_ReloadKeepsOldParserOnError(t *testing.T) {
	path := writeScript(t, parserScript)
	bridge, err := NewBridge(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`this is not lua (`), 0o600))
	assert.Error(t, bridge.Reload())

	cmd, err := bridge.Parse("/hunt claim")
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, ActionClaim, cmd.Action)
}
