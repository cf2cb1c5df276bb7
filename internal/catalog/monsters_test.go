package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMonstersJSON = `{
  "version": "1.0",
  "monsters": [
    {
      "id": 101,
      "name": "Orc Warrior",
      "level": 33,
      "max_hp": 2200,
      "defense": 90,
      "exp_reward": 350,
      "gold_min": 50,
      "gold_max": 150,
      "kill_drops": [
        {"item_id": 5001, "chance": 400, "min_count": 1, "max_count": 3}
      ],
      "percent_drops": [
        {"item_id": 5002, "chance": 50, "min_count": 1, "max_count": 1}
      ]
    },
    {
      "id": 102,
      "name": "Orc Archer",
      "level": 34,
      "max_hp": 1800,
      "defense": 70,
      "exp_reward": 320,
      "gold_min": 40,
      "gold_max": 120
    }
  ]
}`

func writeMonstersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monsters.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileMonsters_Load(t *testing.T) {
	t.Run("loads a valid config", func(t *testing.T) {
		monsters, err := NewFileMonsters(writeMonstersFile(t, validMonstersJSON))
		require.NoError(t, err)

		mob, ok := monsters.Monster(101)
		require.True(t, ok)
		assert.Equal(t, "Orc Warrior", mob.Name)
		assert.Equal(t, int64(2200), mob.MaxHP)
	})

	t.Run("unknown id does not resolve", func(t *testing.T) {
		monsters, err := NewFileMonsters(writeMonstersFile(t, validMonstersJSON))
		require.NoError(t, err)

		_, ok := monsters.Monster(999)
		assert.False(t, ok)
	})

	t.Run("returned monster is a copy", func(t *testing.T) {
		monsters, err := NewFileMonsters(writeMonstersFile(t, validMonstersJSON))
		require.NoError(t, err)

		first, _ := monsters.Monster(101)
		first.MaxHP = 1
		second, _ := monsters.Monster(101)
		assert.Equal(t, int64(2200), second.MaxHP)
	})

	t.Run("rejects bad configs", func(t *testing.T) {
		cases := []struct {
			name string
			json string
		}{
			{"empty monster list", `{"monsters": []}`},
			{"invalid id", `{"monsters": [{"id": 0, "name": "x", "max_hp": 10}]}`},
			{"non-positive hp", `{"monsters": [{"id": 1, "name": "x", "max_hp": 0}]}`},
			{"inverted gold range", `{"monsters": [{"id": 1, "name": "x", "max_hp": 10, "gold_min": 5, "gold_max": 1}]}`},
			{"duplicate id", `{"monsters": [
				{"id": 1, "name": "x", "max_hp": 10},
				{"id": 1, "name": "y", "max_hp": 10}
			]}`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewFileMonsters(writeMonstersFile(t, tc.json))
				assert.Error(t, err)
			})
		}
	})
}

func TestFileMonsters_DropTables(t *testing.T) {
	monsters, err := NewFileMonsters(writeMonstersFile(t, validMonstersJSON))
	require.NoError(t, err)

	kills := monsters.KillDrops(101)
	require.Len(t, kills, 1)
	assert.Equal(t, int64(5001), kills[0].ItemID)

	percents := monsters.PercentDrops(101)
	require.Len(t, percents, 1)
	assert.Equal(t, int64(5002), percents[0].ItemID)

	assert.Empty(t, monsters.KillDrops(102))
	assert.Empty(t, monsters.KillDrops(999))
}

func TestFileMonsters_ReloadKeepsOldSnapshotOnError(t *testing.T) {
	path := writeMonstersFile(t, validMonstersJSON)
	monsters, err := NewFileMonsters(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))
	assert.Error(t, monsters.Reload())

	_, ok := monsters.Monster(101)
	assert.True(t, ok)
}
