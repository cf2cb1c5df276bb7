package domain

// GroupMob is one weighted monster entry in a hunting group. Weight is the
// relative share of simulated hunting time; weights need not sum to any fixed
// total but the group total must be positive.
type GroupMob struct {
	MonsterID int64  `json:"monster_id"`
	Weight    int    `json:"weight"`
	Name      string `json:"name,omitempty"`
}

// GroupDrop is one drop-table entry of a hunting group. Chance is expressed
// out of 10000 as configured for live hunting; the idle simulation halves it.
type GroupDrop struct {
	ItemID   int64  `json:"item_id"`
	Chance   int    `json:"chance"`
	MinCount int    `json:"min_count"`
	MaxCount int    `json:"max_count"`
	Name     string `json:"name,omitempty"`
}

// Group is a named bundle of weighted monsters plus a shared drop table and
// reward multipliers, loaded from static config.
type Group struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	DisplayName    string      `json:"display_name"`
	Description    string      `json:"description,omitempty"`
	MinLevel       int         `json:"min_level"`
	PremiumOnly    bool        `json:"premium_only"`
	ExpMultiplier  float64     `json:"exp_multiplier"`
	YangMultiplier float64     `json:"yang_multiplier"`
	Mobs           []GroupMob  `json:"mobs"`
	Drops          []GroupDrop `json:"drops,omitempty"`
}

// TotalWeight sums the mob weights of the group
func (g *Group) TotalWeight() int {
	total := 0
	for _, m := range g.Mobs {
		total += m.Weight
	}
	return total
}

// GroupSummary is the presentation view of a group for target listings
type GroupSummary struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	DisplayName    string  `json:"display_name"`
	MinLevel       int     `json:"min_level"`
	PremiumOnly    bool    `json:"premium_only"`
	ExpMultiplier  float64 `json:"exp_multiplier"`
	YangMultiplier float64 `json:"yang_multiplier"`
}

// Monster is a read-only combat stat snapshot from the monster catalog
type Monster struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	MaxHP     int64  `json:"max_hp"`
	Defense   int    `json:"defense"`
	ExpReward int64  `json:"exp_reward"`
	GoldMin   int64  `json:"gold_min"`
	GoldMax   int64  `json:"gold_max"`
}

// MonsterDrop is one entry of a monster's kill-table or percent-table,
// used for single-monster hunts. Chance is out of 10000.
type MonsterDrop struct {
	ItemID   int64 `json:"item_id"`
	Chance   int   `json:"chance"`
	MinCount int   `json:"min_count"`
	MaxCount int   `json:"max_count"`
}
