package hunt

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// buildReport renders the player-facing claim summary lines
func buildReport(result *domain.ClaimResult, clipped bool) []string {
	r := result.Rewards
	lines := []string{
		fmt.Sprintf("Hunted for %s.", formatDuration(result.ElapsedSeconds)),
		fmt.Sprintf("Defeated %d monsters.", r.Kills),
	}

	if len(r.PerMonster) > 1 {
		lines = append(lines, perMonsterLines(r.PerMonster)...)
	}

	if r.Exp > 0 {
		lines = append(lines, fmt.Sprintf("Gained %d experience.", r.Exp))
	}
	if r.Gold > 0 {
		lines = append(lines, fmt.Sprintf("Collected %d gold.", r.Gold))
	}
	if len(result.ItemsGranted) > 0 {
		lines = append(lines, fmt.Sprintf("Found %d item stacks.", len(result.ItemsGranted)))
	}
	if result.InventoryFull {
		lines = append(lines, "Inventory full! Some drops were left behind.")
	}
	if clipped {
		lines = append(lines, "Daily hunting limit reached; part of the time was not counted.")
	}
	lines = append(lines, fmt.Sprintf("Time left today: %s.", formatDuration(result.TimeLeftToday)))
	return lines
}

// perMonsterLines renders the kill split in stable monster-ID order
func perMonsterLines(perMonster []domain.MonsterKills) []string {
	kills := make([]domain.MonsterKills, len(perMonster))
	copy(kills, perMonster)
	sort.Slice(kills, func(i, j int) bool { return kills[i].MonsterID < kills[j].MonsterID })

	lines := make([]string, 0, len(kills))
	for _, mk := range kills {
		lines = append(lines, fmt.Sprintf("  monster %d: %d kills", mk.MonsterID, int(mk.Kills)))
	}
	return lines
}

func formatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
