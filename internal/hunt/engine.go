package hunt

import (
	"math"
	"math/rand"
	"sort"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// MonsterSlot is one resolved monster entry of a hunt target. Weight is the
// relative share of simulated hunting time. A single-monster hunt is the
// degenerate case of one slot with weight 1.
type MonsterSlot struct {
	Monster *domain.Monster
	Weight  int
}

// Engine runs the offline reward simulation. It is pure arithmetic over a
// constant-size input with no persistence or service dependencies; given the
// same inputs and seed it produces the same output.
type Engine struct {
	combat         domain.CombatSnapshot
	slots          []MonsterSlot
	drops          []domain.GroupDrop
	expMultiplier  float64
	yangMultiplier float64
	rng            *rand.Rand
}

// NewEngine creates a simulation engine for one claim. The drop table carries
// live-game chances (out of 10000); the engine halves them for idle hunting.
func NewEngine(combat domain.CombatSnapshot, slots []MonsterSlot, drops []domain.GroupDrop, expMultiplier, yangMultiplier float64, seed int64) *Engine {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &Engine{
		combat:         combat,
		slots:          slots,
		drops:          drops,
		expMultiplier:  expMultiplier,
		yangMultiplier: yangMultiplier,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Run simulates elapsedSeconds of hunting and returns the aggregated rewards.
// The caller must have clamped elapsedSeconds to MaxOfflineSeconds and clipped
// it to the remaining daily quota before calling.
func (e *Engine) Run(elapsedSeconds int64) *domain.RewardSummary {
	summary := &domain.RewardSummary{}
	if elapsedSeconds <= 0 || len(e.slots) == 0 {
		return summary
	}

	totalWeight := 0
	for _, slot := range e.slots {
		totalWeight += slot.Weight
	}
	if totalWeight <= 0 {
		return summary
	}

	secondsPerHit := e.secondsPerHit()

	var totalKills float64
	var totalExp float64
	var totalGold int64

	for _, slot := range e.slots {
		mob := slot.Monster
		share := float64(slot.Weight) / float64(totalWeight)
		mobSeconds := int64(float64(elapsedSeconds) * share)

		killsPerHour := e.killsPerHour(mob, secondsPerHit)
		kills := float64(mobSeconds) / 3600.0 * killsPerHour
		totalKills += kills

		summary.PerMonster = append(summary.PerMonster, domain.MonsterKills{
			MonsterID:    mob.ID,
			Seconds:      mobSeconds,
			KillsPerHour: killsPerHour,
			Kills:        kills,
		})

		totalExp += kills * float64(mob.ExpReward) * ExpRateModifier * levelExpMultiplier(e.combat.Level)
		totalGold += e.rollGold(mob, int(kills))
	}

	totalExp *= e.expMultiplier
	totalGold = int64(float64(totalGold) * e.yangMultiplier * YangRateModifier)

	summary.Kills, summary.Exp, summary.Gold = e.clamp(summary, totalKills, totalExp, totalGold)
	summary.Drops = e.rollDrops(summary.Kills)
	return summary
}

// secondsPerHit derives the attack interval from attack speed, floored so a
// slow weapon cannot stall the simulation.
func (e *Engine) secondsPerHit() float64 {
	factor := float64(e.combat.AttackSpeed) / 100.0
	if factor < MinAttackSpeedFactor {
		factor = MinAttackSpeedFactor
	}
	return BaseSecondsPerHit / factor
}

// killsPerHour computes the bounded kill throughput against one monster
func (e *Engine) killsPerHour(mob *domain.Monster, secondsPerHit float64) float64 {
	weaponDamage := (e.combat.WeaponDamageMin + e.combat.WeaponDamageMax) / 2 * 2

	baseAttack := e.combat.AttackGrade + weaponDamage - e.combat.Level*2
	totalAttack := baseAttack + e.combat.Level*2
	effectiveDamage := totalAttack - mob.Defense
	// The floor guarantees forward progress regardless of stat mismatch
	if effectiveDamage < 1 {
		effectiveDamage = 1
	}

	hitsToKill := float64(mob.MaxHP) / float64(effectiveDamage)
	perKillTime := hitsToKill*secondsPerHit + PerKillOverheadSeconds
	killsPerHour := 3600.0 / perKillTime

	killsPerHour *= killEfficiency(e.combat.Level - mob.Level)

	if killsPerHour < MinKillsPerHour {
		killsPerHour = MinKillsPerHour
	}
	if killsPerHour > MaxKillsPerHour {
		killsPerHour = MaxKillsPerHour
	}
	return killsPerHour
}

// rollGold runs one Bernoulli trial per whole kill at the reduced idle drop
// chance and sums uniform amounts in the monster's gold range.
func (e *Engine) rollGold(mob *domain.Monster, wholeKills int) int64 {
	var gold int64
	span := mob.GoldMax - mob.GoldMin
	for i := 0; i < wholeKills; i++ {
		if e.rng.Intn(100) >= IdleGoldDropChance {
			continue
		}
		gold += mob.GoldMin
		if span > 0 {
			gold += e.rng.Int63n(span + 1)
		}
	}
	return gold
}

// rollDrops rolls each drop entry once per whole kill at half its configured
// chance and aggregates the results per item id, capping each aggregate at
// the stack ceiling. Aggregation keeps inventory-grant calls to one per item.
func (e *Engine) rollDrops(kills int) []domain.ItemStack {
	if kills <= 0 || len(e.drops) == 0 {
		return nil
	}

	collected := make(map[int64]int)
	for _, drop := range e.drops {
		adjustedChance := drop.Chance / 2
		if adjustedChance <= 0 {
			continue
		}
		for i := 0; i < kills; i++ {
			if e.rng.Intn(10000) >= adjustedChance {
				continue
			}
			count := drop.MinCount
			if drop.MaxCount > drop.MinCount {
				count += e.rng.Intn(drop.MaxCount - drop.MinCount + 1)
			}
			collected[drop.ItemID] += count
		}
	}
	if len(collected) == 0 {
		return nil
	}

	stacks := make([]domain.ItemStack, 0, len(collected))
	for itemID, count := range collected {
		if count > MaxItemStack {
			count = MaxItemStack
		}
		stacks = append(stacks, domain.ItemStack{ItemID: itemID, Count: count})
	}
	sort.Slice(stacks, func(i, j int) bool { return stacks[i].ItemID < stacks[j].ItemID })
	return stacks
}

// clamp applies the post-aggregation sanity ceilings, recording raw values on
// the summary so the caller can log them for audit.
func (e *Engine) clamp(summary *domain.RewardSummary, rawKills, rawExp float64, rawGold int64) (int, int64, int64) {
	kills := int(rawKills)
	if kills < 0 {
		kills = 0
	}
	if kills > MaxKillsPerClaim {
		summary.Clamped = true
		summary.RawKills = int64(rawKills)
		kills = MaxKillsPerClaim
	}

	var exp int64
	if rawExp > float64(MaxExpPerClaim) {
		summary.Clamped = true
		summary.RawExp = int64(math.Min(rawExp, math.MaxInt64/2))
		exp = MaxExpPerClaim
	} else if rawExp > 0 {
		exp = int64(rawExp)
	}

	gold := rawGold
	if gold < 0 {
		gold = 0
	}
	if gold > MaxGoldPerClaim {
		summary.Clamped = true
		summary.RawGold = rawGold
		gold = MaxGoldPerClaim
	}

	return kills, exp, gold
}
