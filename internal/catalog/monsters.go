package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/validation"
)

// MonstersSchemaPath is the JSON schema the monster config must satisfy
const MonstersSchemaPath = "configs/schemas/hunt_monsters.schema.json"

// MonsterCatalog is the read-only monster stat lookup consumed by the hunt
// service. The game-data catalog itself is external; this interface is the
// seam, and FileMonsters is the JSON-file implementation used in deployment.
type MonsterCatalog interface {
	Monster(id int64) (*domain.Monster, bool)
	// KillDrops returns the per-monster kill drop table (chance out of 10000)
	KillDrops(id int64) []domain.MonsterDrop
	// PercentDrops returns the per-monster percentage drop table
	PercentDrops(id int64) []domain.MonsterDrop
}

type monsterEntry struct {
	domain.Monster
	KillDrops    []domain.MonsterDrop `json:"kill_drops,omitempty"`
	PercentDrops []domain.MonsterDrop `json:"percent_drops,omitempty"`
}

type monstersFile struct {
	Version  string          `json:"version"`
	Monsters []*monsterEntry `json:"monsters"`
}

// FileMonsters is a JSON-file backed monster catalog with atomic reload
type FileMonsters struct {
	path            string
	schemaValidator validation.SchemaValidator
	snapshot        atomic.Pointer[map[int64]*monsterEntry]
}

// NewFileMonsters creates a monster catalog bound to a config file and
// performs the initial load.
func NewFileMonsters(path string) (*FileMonsters, error) {
	m := &FileMonsters{
		path:            path,
		schemaValidator: validation.NewSchemaValidator(),
	}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload parses the config file and installs a complete replacement
// snapshot. On any error the current snapshot is untouched.
func (m *FileMonsters) Reload() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read monster config: %w", err)
	}

	if err := m.schemaValidator.ValidateBytes(data, MonstersSchemaPath); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", m.path, err)
	}

	var file monstersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse monster config: %w", err)
	}
	if len(file.Monsters) == 0 {
		return fmt.Errorf("invalid monster config: no monsters defined")
	}

	byID := make(map[int64]*monsterEntry, len(file.Monsters))
	for _, entry := range file.Monsters {
		if entry.ID <= 0 {
			return fmt.Errorf("invalid monster config: monster %q has invalid id %d", entry.Name, entry.ID)
		}
		if entry.MaxHP <= 0 {
			return fmt.Errorf("invalid monster config: monster %d (%s) has non-positive max_hp", entry.ID, entry.Name)
		}
		if entry.GoldMax < entry.GoldMin {
			return fmt.Errorf("invalid monster config: monster %d (%s) has gold_max < gold_min", entry.ID, entry.Name)
		}
		if _, exists := byID[entry.ID]; exists {
			return fmt.Errorf("invalid monster config: duplicate monster id %d", entry.ID)
		}
		byID[entry.ID] = entry
	}

	m.snapshot.Store(&byID)
	slog.Default().Info("Loaded monster catalog", "path", m.path, "monsters", len(byID))
	return nil
}

// Monster returns the combat stats for a monster id
func (m *FileMonsters) Monster(id int64) (*domain.Monster, bool) {
	entry, ok := m.lookup(id)
	if !ok {
		return nil, false
	}
	monster := entry.Monster
	return &monster, true
}

// KillDrops returns the kill drop table for a monster id
func (m *FileMonsters) KillDrops(id int64) []domain.MonsterDrop {
	entry, ok := m.lookup(id)
	if !ok {
		return nil
	}
	return entry.KillDrops
}

// PercentDrops returns the percentage drop table for a monster id
func (m *FileMonsters) PercentDrops(id int64) []domain.MonsterDrop {
	entry, ok := m.lookup(id)
	if !ok {
		return nil
	}
	return entry.PercentDrops
}

func (m *FileMonsters) lookup(id int64) (*monsterEntry, bool) {
	snap := m.snapshot.Load()
	if snap == nil {
		return nil, false
	}
	entry, ok := (*snap)[id]
	return entry, ok
}
