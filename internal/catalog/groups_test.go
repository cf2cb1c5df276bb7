package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGroupsJSON = `{
  "version": "1.0",
  "groups": [
    {
      "id": 1,
      "name": "orc_valley",
      "display_name": "Orc Valley",
      "min_level": 30,
      "exp_multiplier": 1.0,
      "yang_multiplier": 1.0,
      "mobs": [
        {"monster_id": 101, "weight": 60},
        {"monster_id": 102, "weight": 40}
      ],
      "drops": [
        {"item_id": 5001, "chance": 400, "min_count": 1, "max_count": 3}
      ]
    },
    {
      "id": 2,
      "name": "flame_dungeon",
      "min_level": 75,
      "premium_only": true,
      "exp_multiplier": 1.5,
      "yang_multiplier": 1.2,
      "mobs": [
        {"monster_id": 201, "weight": 100}
      ]
    }
  ]
}`

func writeGroupsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groups.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGroups_Load(t *testing.T) {
	t.Run("loads a valid config", func(t *testing.T) {
		groups, err := NewGroups(writeGroupsFile(t, validGroupsJSON))
		require.NoError(t, err)

		assert.Equal(t, 2, groups.Len())

		group, ok := groups.Group(1)
		require.True(t, ok)
		assert.Equal(t, "orc_valley", group.Name)
		assert.Equal(t, "Orc Valley", group.DisplayName)
		assert.Equal(t, 100, group.TotalWeight())
	})

	t.Run("display name defaults to name", func(t *testing.T) {
		groups, err := NewGroups(writeGroupsFile(t, validGroupsJSON))
		require.NoError(t, err)

		group, ok := groups.Group(2)
		require.True(t, ok)
		assert.Equal(t, "flame_dungeon", group.DisplayName)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := NewGroups(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("unknown id does not resolve", func(t *testing.T) {
		groups, err := NewGroups(writeGroupsFile(t, validGroupsJSON))
		require.NoError(t, err)

		_, ok := groups.Group(999)
		assert.False(t, ok)
	})
}

func TestGroups_Validation(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"empty group list", `{"groups": []}`},
		{"duplicate id", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 1}]},
			{"id": 1, "name": "b", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 1}]}
		]}`},
		{"no mobs", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": []}
		]}`},
		{"zero total weight", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 0}]}
		]}`},
		{"negative mob weight", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 5}, {"monster_id": 2, "weight": -1}]}
		]}`},
		{"non-positive exp multiplier", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 0, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 1}]}
		]}`},
		{"drop chance out of range", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 1}],
			 "drops": [{"item_id": 9, "chance": 10001, "min_count": 1, "max_count": 1}]}
		]}`},
		{"drop count range inverted", `{"groups": [
			{"id": 1, "name": "a", "exp_multiplier": 1, "yang_multiplier": 1, "mobs": [{"monster_id": 1, "weight": 1}],
			 "drops": [{"item_id": 9, "chance": 100, "min_count": 3, "max_count": 1}]}
		]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGroups(writeGroupsFile(t, tc.json))
			assert.Error(t, err)
		})
	}
}

func TestGroups_ReloadKeepsOldSnapshotOnError(t *testing.T) {
	path := writeGroupsFile(t, validGroupsJSON)
	groups, err := NewGroups(path)
	require.NoError(t, err)
	require.Equal(t, 2, groups.Len())

	// A broken edit must not blank live configuration
	require.NoError(t, os.WriteFile(path, []byte(`{"groups": [{"id": 0}]}`), 0o600))
	assert.Error(t, groups.Reload())

	assert.Equal(t, 2, groups.Len())
	_, ok := groups.Group(1)
	assert.True(t, ok)
}

func TestGroups_Available(t *testing.T) {
	groups, err := NewGroups(writeGroupsFile(t, validGroupsJSON))
	require.NoError(t, err)

	t.Run("filters by level", func(t *testing.T) {
		available := groups.Available(30, true)
		require.Len(t, available, 1)
		assert.Equal(t, int64(1), available[0].ID)
	})

	t.Run("filters premium groups for free players", func(t *testing.T) {
		available := groups.Available(99, false)
		require.Len(t, available, 1)
		assert.Equal(t, int64(1), available[0].ID)
	})

	t.Run("premium player at level sees everything", func(t *testing.T) {
		available := groups.Available(99, true)
		require.Len(t, available, 2)
		assert.Equal(t, int64(1), available[0].ID)
		assert.Equal(t, int64(2), available[1].ID)
	})

	t.Run("underleveled player sees nothing", func(t *testing.T) {
		assert.Empty(t, groups.Available(10, true))
	})
}
