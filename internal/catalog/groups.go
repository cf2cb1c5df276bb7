package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync/atomic"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/validation"
)

// GroupsSchemaPath is the JSON schema the group config must satisfy
const GroupsSchemaPath = "configs/schemas/hunt_groups.schema.json"

// groupsFile is the on-disk document shape for hunting group definitions
type groupsFile struct {
	Version string          `json:"version"`
	Groups  []*domain.Group `json:"groups"`
}

// groupSnapshot is one immutable loaded generation of the group catalog.
// Readers that resolved a snapshot keep simulating against it even if a
// reload installs a replacement mid-flight.
type groupSnapshot struct {
	byID  map[int64]*domain.Group
	order []int64
}

// Groups holds the hunting group catalog. Loads are all-or-nothing: a bad
// edit never blanks live configuration because the previous snapshot stays
// installed until a full replacement parses and validates.
type Groups struct {
	path            string
	schemaValidator validation.SchemaValidator
	snapshot        atomic.Pointer[groupSnapshot]
}

// NewGroups creates a group catalog bound to a config file and performs the
// initial load.
func NewGroups(path string) (*Groups, error) {
	g := &Groups{
		path:            path,
		schemaValidator: validation.NewSchemaValidator(),
	}
	if err := g.Reload(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reload parses the config file and atomically installs a complete
// replacement snapshot. On any error the current snapshot is untouched.
func (g *Groups) Reload() error {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return fmt.Errorf("failed to read group config: %w", err)
	}

	if err := g.schemaValidator.ValidateBytes(data, GroupsSchemaPath); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", g.path, err)
	}

	var file groupsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse group config: %w", err)
	}

	snap, err := buildSnapshot(&file)
	if err != nil {
		return fmt.Errorf("invalid group config: %w", err)
	}

	g.snapshot.Store(snap)
	slog.Default().Info("Loaded hunting groups", "path", g.path, "groups", len(snap.order))
	return nil
}

func buildSnapshot(file *groupsFile) (*groupSnapshot, error) {
	if len(file.Groups) == 0 {
		return nil, fmt.Errorf("no groups defined")
	}

	snap := &groupSnapshot{byID: make(map[int64]*domain.Group, len(file.Groups))}
	for _, group := range file.Groups {
		if err := validateGroup(group); err != nil {
			return nil, err
		}
		if _, exists := snap.byID[group.ID]; exists {
			return nil, fmt.Errorf("duplicate group id %d", group.ID)
		}
		if group.DisplayName == "" {
			group.DisplayName = group.Name
		}
		snap.byID[group.ID] = group
		snap.order = append(snap.order, group.ID)
	}
	sort.Slice(snap.order, func(i, j int) bool { return snap.order[i] < snap.order[j] })
	return snap, nil
}

func validateGroup(group *domain.Group) error {
	if group == nil {
		return fmt.Errorf("null group entry")
	}
	if group.ID <= 0 {
		return fmt.Errorf("group %q has invalid id %d", group.Name, group.ID)
	}
	if group.Name == "" {
		return fmt.Errorf("group %d has no name", group.ID)
	}
	// A group with no mobs or non-positive total weight can never be hunted
	if len(group.Mobs) == 0 {
		return fmt.Errorf("group %d (%s) has no mobs", group.ID, group.Name)
	}
	if group.TotalWeight() <= 0 {
		return fmt.Errorf("group %d (%s) has non-positive total weight", group.ID, group.Name)
	}
	for _, mob := range group.Mobs {
		if mob.MonsterID <= 0 {
			return fmt.Errorf("group %d (%s) has invalid monster id %d", group.ID, group.Name, mob.MonsterID)
		}
		if mob.Weight < 0 {
			return fmt.Errorf("group %d (%s) has negative weight for monster %d", group.ID, group.Name, mob.MonsterID)
		}
	}
	if group.ExpMultiplier <= 0 {
		return fmt.Errorf("group %d (%s) has non-positive exp_multiplier", group.ID, group.Name)
	}
	if group.YangMultiplier <= 0 {
		return fmt.Errorf("group %d (%s) has non-positive yang_multiplier", group.ID, group.Name)
	}
	// A group with no drops is valid; it simply yields no group-sourced items
	for _, drop := range group.Drops {
		if drop.ItemID <= 0 {
			return fmt.Errorf("group %d (%s) has invalid drop item id %d", group.ID, group.Name, drop.ItemID)
		}
		if drop.Chance < 0 || drop.Chance > 10000 {
			return fmt.Errorf("group %d (%s) drop %d has chance %d outside [0,10000]", group.ID, group.Name, drop.ItemID, drop.Chance)
		}
		if drop.MinCount < 1 || drop.MaxCount < drop.MinCount {
			return fmt.Errorf("group %d (%s) drop %d has invalid count range [%d,%d]", group.ID, group.Name, drop.ItemID, drop.MinCount, drop.MaxCount)
		}
	}
	return nil
}

// Group returns the group for an id, or false when it does not resolve
func (g *Groups) Group(id int64) (*domain.Group, bool) {
	snap := g.snapshot.Load()
	if snap == nil {
		return nil, false
	}
	group, ok := snap.byID[id]
	return group, ok
}

// Available returns the groups a player may configure, filtered by level and
// premium flag, in id order. Used by the presentation layer, not the engine.
func (g *Groups) Available(playerLevel int, premium bool) []domain.GroupSummary {
	snap := g.snapshot.Load()
	if snap == nil {
		return nil
	}

	available := make([]domain.GroupSummary, 0, len(snap.order))
	for _, id := range snap.order {
		group := snap.byID[id]
		if playerLevel < group.MinLevel {
			continue
		}
		if group.PremiumOnly && !premium {
			continue
		}
		available = append(available, domain.GroupSummary{
			ID:             group.ID,
			Name:           group.Name,
			DisplayName:    group.DisplayName,
			MinLevel:       group.MinLevel,
			PremiumOnly:    group.PremiumOnly,
			ExpMultiplier:  group.ExpMultiplier,
			YangMultiplier: group.YangMultiplier,
		})
	}
	return available
}

// Len returns the number of loaded groups
func (g *Groups) Len() int {
	snap := g.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(snap.order)
}
