package hunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

func engineCombat(level int) domain.CombatSnapshot {
	return domain.CombatSnapshot{
		PlayerID:        1,
		Level:           level,
		AttackGrade:     120,
		AttackSpeed:     100,
		WeaponDamageMin: 40,
		WeaponDamageMax: 60,
	}
}

func engineMonster(id int64, level int) *domain.Monster {
	return &domain.Monster{
		ID:        id,
		Name:      "Test Mob",
		Level:     level,
		MaxHP:     2000,
		Defense:   80,
		ExpReward: 300,
		GoldMin:   50,
		GoldMax:   150,
	}
}

func TestEngine_Determinism(t *testing.T) {
	slots := []MonsterSlot{{Monster: engineMonster(1, 35), Weight: 1}}
	drops := []domain.GroupDrop{{ItemID: 9, Chance: 2000, MinCount: 1, MaxCount: 5}}

	a := NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, 777).Run(7200)
	b := NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, 777).Run(7200)

	assert.Equal(t, a, b)

	c := NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, 778).Run(7200)
	assert.Equal(t, a.Kills, c.Kills, "kill count is seed-independent")
	assert.Equal(t, a.Exp, c.Exp, "exp is seed-independent")
}

func TestEngine_EmptyInputs(t *testing.T) {
	summary := NewEngine(engineCombat(35), nil, nil, 1.0, 1.0, 1).Run(3600)
	assert.Zero(t, summary.Kills)
	assert.Zero(t, summary.Exp)

	slots := []MonsterSlot{{Monster: engineMonster(1, 35), Weight: 1}}
	summary = NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(0)
	assert.Zero(t, summary.Kills)
}

func TestEngine_WeightedTimeSplit(t *testing.T) {
	slots := []MonsterSlot{
		{Monster: engineMonster(1, 35), Weight: 75},
		{Monster: engineMonster(2, 35), Weight: 25},
	}

	summary := NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(10000)

	require.Len(t, summary.PerMonster, 2)
	assert.Equal(t, int64(7500), summary.PerMonster[0].Seconds)
	assert.Equal(t, int64(2500), summary.PerMonster[1].Seconds)
	// Identical stats: kills split in proportion to time share
	assert.InDelta(t, 3.0, summary.PerMonster[0].Kills/summary.PerMonster[1].Kills, 0.01)
}

func TestEngine_KillsPerHourBand(t *testing.T) {
	t.Run("tanky overleveled monster floors at the minimum rate", func(t *testing.T) {
		mob := engineMonster(1, 90)
		mob.MaxHP = 1_000_000
		mob.Defense = 200
		slots := []MonsterSlot{{Monster: mob, Weight: 1}}
		summary := NewEngine(engineCombat(10), slots, nil, 1.0, 1.0, 1).Run(3600)
		assert.InDelta(t, MinKillsPerHour, summary.PerMonster[0].KillsPerHour, 0.001)
	})

	t.Run("trivial monster caps at the maximum rate", func(t *testing.T) {
		mob := engineMonster(1, 35)
		mob.MaxHP = 1
		mob.Defense = 0
		slots := []MonsterSlot{{Monster: mob, Weight: 1}}
		summary := NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(3600)
		assert.LessOrEqual(t, summary.PerMonster[0].KillsPerHour, MaxKillsPerHour)
	})
}

func TestEngine_LevelDiffEfficiency(t *testing.T) {
	rate := func(playerLevel, mobLevel int) float64 {
		slots := []MonsterSlot{{Monster: engineMonster(1, mobLevel), Weight: 1}}
		return NewEngine(engineCombat(playerLevel), slots, nil, 1.0, 1.0, 1).Run(3600).PerMonster[0].KillsPerHour
	}

	// Hunting far below your level is throttled relative to an even match
	even := rate(40, 40)
	farBelow := rate(60, 40)
	assert.Less(t, farBelow, even)
}

func TestEngine_ExpTiers(t *testing.T) {
	exp := func(level int) int64 {
		slots := []MonsterSlot{{Monster: engineMonster(1, level), Weight: 1}}
		return NewEngine(engineCombat(level), slots, nil, 1.0, 1.0, 1).Run(3600).Exp
	}

	assert.Equal(t, 5.0, levelExpMultiplier(10))
	assert.Equal(t, 3.0, levelExpMultiplier(30))
	assert.Equal(t, 2.0, levelExpMultiplier(50))
	assert.Equal(t, 1.0, levelExpMultiplier(51))

	// Same even-match fight at different tiers: more acceleration, more exp
	assert.Greater(t, exp(30), exp(51))
}

func TestEngine_GroupMultipliers(t *testing.T) {
	slots := []MonsterSlot{{Monster: engineMonster(1, 60), Weight: 1}}

	base := NewEngine(engineCombat(60), slots, nil, 1.0, 1.0, 5).Run(7200)
	boosted := NewEngine(engineCombat(60), slots, nil, 2.0, 1.0, 5).Run(7200)

	assert.InDelta(t, float64(base.Exp)*2, float64(boosted.Exp), 2)
	assert.Equal(t, base.Gold, boosted.Gold)
}

func TestEngine_DropAggregation(t *testing.T) {
	slots := []MonsterSlot{{Monster: engineMonster(1, 35), Weight: 1}}

	t.Run("high chance drop aggregates and caps at the stack ceiling", func(t *testing.T) {
		drops := []domain.GroupDrop{{ItemID: 9, Chance: 10000, MinCount: 5, MaxCount: 5}}
		summary := NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, 1).Run(86400)

		require.Len(t, summary.Drops, 1)
		assert.Equal(t, int64(9), summary.Drops[0].ItemID)
		assert.Equal(t, MaxItemStack, summary.Drops[0].Count)
	})

	t.Run("zero effective chance yields no drops", func(t *testing.T) {
		drops := []domain.GroupDrop{{ItemID: 9, Chance: 1, MinCount: 1, MaxCount: 1}}
		// chance/2 truncates to zero
		summary := NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, 1).Run(3600)
		assert.Empty(t, summary.Drops)
	})

	t.Run("stacks sorted by item id", func(t *testing.T) {
		drops := []domain.GroupDrop{
			{ItemID: 20, Chance: 10000, MinCount: 1, MaxCount: 1},
			{ItemID: 10, Chance: 10000, MinCount: 1, MaxCount: 1},
		}
		summary := NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, 1).Run(7200)

		require.Len(t, summary.Drops, 2)
		assert.Equal(t, int64(10), summary.Drops[0].ItemID)
		assert.Equal(t, int64(20), summary.Drops[1].ItemID)
	})
}

func TestEngine_SanityClamps(t *testing.T) {
	t.Run("exp ceiling clamps and records the raw value", func(t *testing.T) {
		mob := engineMonster(1, 35)
		mob.ExpReward = 1_000_000_000
		slots := []MonsterSlot{{Monster: mob, Weight: 1}}

		summary := NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(86400)

		assert.True(t, summary.Clamped)
		assert.Equal(t, int64(MaxExpPerClaim), summary.Exp)
		assert.Greater(t, summary.RawExp, summary.Exp)
	})

	t.Run("kill ceiling clamps and records the raw value", func(t *testing.T) {
		mob := engineMonster(1, 35)
		mob.MaxHP = 1
		mob.Defense = 0
		slots := []MonsterSlot{{Monster: mob, Weight: 1}}

		// 24h at the capped 500 kills/hour overshoots the per-claim ceiling
		summary := NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(86400)

		assert.True(t, summary.Clamped)
		assert.Equal(t, MaxKillsPerClaim, summary.Kills)
		assert.Greater(t, summary.RawKills, int64(MaxKillsPerClaim))
	})

	t.Run("gold ceiling clamps and records the raw value", func(t *testing.T) {
		mob := engineMonster(1, 35)
		mob.MaxHP = 1
		mob.Defense = 0
		mob.GoldMin = 1_000_000_000
		mob.GoldMax = 1_000_000_000
		slots := []MonsterSlot{{Monster: mob, Weight: 1}}

		summary := NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(86400)

		assert.True(t, summary.Clamped)
		assert.Equal(t, int64(MaxGoldPerClaim), summary.Gold)
		assert.Greater(t, summary.RawGold, int64(MaxGoldPerClaim))
	})

	t.Run("normal run is not clamped", func(t *testing.T) {
		slots := []MonsterSlot{{Monster: engineMonster(1, 35), Weight: 1}}
		summary := NewEngine(engineCombat(35), slots, nil, 1.0, 1.0, 1).Run(7200)

		assert.False(t, summary.Clamped)
		assert.Zero(t, summary.RawExp)
	})
}

func BenchmarkEngineRun(b *testing.B) {
	slots := []MonsterSlot{
		{Monster: engineMonster(1, 35), Weight: 60},
		{Monster: engineMonster(2, 37), Weight: 40},
	}
	drops := []domain.GroupDrop{
		{ItemID: 9, Chance: 400, MinCount: 1, MaxCount: 3},
		{ItemID: 10, Chance: 100, MinCount: 1, MaxCount: 1},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		NewEngine(engineCombat(35), slots, drops, 1.0, 1.0, int64(i)).Run(28800)
	}
}
