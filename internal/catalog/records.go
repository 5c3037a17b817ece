package catalog

import (
	"slices"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/loot"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/synergy"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/tier"
)

// File is the serialized form of a catalog. It is shared by the YAML
// file format and the JSON values kept in redis.
type File struct {
	Synergies  []SynergyRecord   `yaml:"synergies" json:"synergies"`
	Tiers      []TierRecord      `yaml:"tiers" json:"tiers"`
	LootTables []LootTableRecord `yaml:"loot_tables" json:"loot_tables"`
}

// SynergyRecord is a serialized synergy.Definition
type SynergyRecord struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Tier        synergy.Tier      `yaml:"tier" json:"tier"`
	Requirement RequirementRecord `yaml:"requirement" json:"requirement"`
	Effects     []EffectRecord    `yaml:"effects" json:"effects"`
}

// RequirementRecord is the flat form of every requirement pattern. Fields a
// pattern does not use are ignored.
type RequirementRecord struct {
	Pattern           synergy.Pattern      `yaml:"pattern" json:"pattern"`
	Types             []shared.MonsterType `yaml:"types,omitempty" json:"types,omitempty"`
	Elements          []shared.Element     `yaml:"elements,omitempty" json:"elements,omitempty"`
	Biomes            []shared.Biome       `yaml:"biomes,omitempty" json:"biomes,omitempty"`
	Families          []string             `yaml:"families,omitempty" json:"families,omitempty"`
	MinCount          int                  `yaml:"min_count,omitempty" json:"min_count,omitempty"`
	AllDifferentTypes bool                 `yaml:"all_different_types,omitempty" json:"all_different_types,omitempty"`
}

// EffectRecord is a serialized synergy.Effect
type EffectRecord struct {
	Type  synergy.EffectType `yaml:"type" json:"type"`
	Value float64            `yaml:"value" json:"value"`
}

// TierRecord is a serialized tier.DifficultyTier
type TierRecord struct {
	Tier             int      `yaml:"tier" json:"tier"`
	Name             string   `yaml:"name" json:"name"`
	PowerRequirement int      `yaml:"power_requirement" json:"power_requirement"`
	EnemyMultiplier  float64  `yaml:"enemy_multiplier" json:"enemy_multiplier"`
	LootMultiplier   float64  `yaml:"loot_multiplier" json:"loot_multiplier"`
	ItemLevelBonus   int      `yaml:"item_level_bonus" json:"item_level_bonus"`
	Unlocks          []string `yaml:"unlocks,omitempty" json:"unlocks,omitempty"`
}

// LootTableRecord is a serialized loot.Table
type LootTableRecord struct {
	ZoneID     string            `yaml:"zone_id" json:"zone_id"`
	SubzoneID  string            `yaml:"subzone_id" json:"subzone_id"`
	Difficulty shared.Difficulty `yaml:"difficulty" json:"difficulty"`
	Entries    []EntryRecord     `yaml:"entries" json:"entries"`
}

// EntryRecord is a serialized loot.Entry. A missing weight means
// loot.DefaultEntryWeight.
type EntryRecord struct {
	Slot   shared.Slot   `yaml:"slot" json:"slot"`
	Rarity shared.Rarity `yaml:"rarity" json:"rarity"`
	Weight *float64      `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Requirement converts the record into the requirement sum type.
// Unrecognized patterns become synergy.Unknown and never match.
func (r RequirementRecord) Requirement() synergy.Requirement {
	switch r.Pattern {
	case synergy.PatternTypeThreshold:
		return synergy.TypeThreshold{Types: slices.Clone(r.Types), MinCount: r.MinCount}
	case synergy.PatternElementMatching:
		return synergy.ElementMatching{MinCount: r.MinCount}
	case synergy.PatternBiomeHarmony:
		return synergy.BiomeHarmony{Biomes: slices.Clone(r.Biomes), MinCount: r.MinCount}
	case synergy.PatternFamilyThreshold:
		return synergy.FamilyThreshold{Families: slices.Clone(r.Families), MinCount: r.MinCount}
	case synergy.PatternAllSameType:
		return synergy.AllSameType{Types: slices.Clone(r.Types), MinCount: r.MinCount}
	case synergy.PatternElementCombo:
		return synergy.ElementCombo{Elements: slices.Clone(r.Elements)}
	case synergy.PatternTypeElement:
		return synergy.TypeElement{Types: slices.Clone(r.Types), Elements: slices.Clone(r.Elements), MinCount: r.MinCount}
	case synergy.PatternOpposites:
		return synergy.Opposites{Elements: slices.Clone(r.Elements)}
	case synergy.PatternFullDiversity:
		return synergy.FullDiversity{AllDifferentTypes: r.AllDifferentTypes}
	default:
		return synergy.Unknown{Name: r.Pattern}
	}
}

func requirementRecord(req synergy.Requirement) RequirementRecord {
	switch r := req.(type) {
	case synergy.TypeThreshold:
		return RequirementRecord{Pattern: r.Pattern(), Types: slices.Clone(r.Types), MinCount: r.MinCount}
	case synergy.ElementMatching:
		return RequirementRecord{Pattern: r.Pattern(), MinCount: r.MinCount}
	case synergy.BiomeHarmony:
		return RequirementRecord{Pattern: r.Pattern(), Biomes: slices.Clone(r.Biomes), MinCount: r.MinCount}
	case synergy.FamilyThreshold:
		return RequirementRecord{Pattern: r.Pattern(), Families: slices.Clone(r.Families), MinCount: r.MinCount}
	case synergy.AllSameType:
		return RequirementRecord{Pattern: r.Pattern(), Types: slices.Clone(r.Types), MinCount: r.MinCount}
	case synergy.ElementCombo:
		return RequirementRecord{Pattern: r.Pattern(), Elements: slices.Clone(r.Elements)}
	case synergy.TypeElement:
		return RequirementRecord{Pattern: r.Pattern(), Types: slices.Clone(r.Types), Elements: slices.Clone(r.Elements), MinCount: r.MinCount}
	case synergy.Opposites:
		return RequirementRecord{Pattern: r.Pattern(), Elements: slices.Clone(r.Elements)}
	case synergy.FullDiversity:
		return RequirementRecord{Pattern: r.Pattern(), AllDifferentTypes: r.AllDifferentTypes}
	case synergy.Unknown:
		return RequirementRecord{Pattern: r.Name}
	default:
		return RequirementRecord{}
	}
}

// Definition converts the record into a synergy definition
func (r *SynergyRecord) Definition() synergy.Definition {
	effects := make([]synergy.Effect, 0, len(r.Effects))
	for _, e := range r.Effects {
		effects = append(effects, synergy.Effect{Type: e.Type, Value: e.Value})
	}

	return synergy.Definition{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Tier:        r.Tier,
		Requirement: r.Requirement.Requirement(),
		Effects:     effects,
	}
}

// NewSynergyRecord serializes a synergy definition
func NewSynergyRecord(d *synergy.Definition) SynergyRecord {
	effects := make([]EffectRecord, 0, len(d.Effects))
	for _, e := range d.Effects {
		effects = append(effects, EffectRecord{Type: e.Type, Value: e.Value})
	}

	return SynergyRecord{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Tier:        d.Tier,
		Requirement: requirementRecord(d.Requirement),
		Effects:     effects,
	}
}

// DifficultyTier converts the record into a difficulty tier
func (r *TierRecord) DifficultyTier() tier.DifficultyTier {
	return tier.DifficultyTier{
		Tier:             r.Tier,
		Name:             r.Name,
		PowerRequirement: r.PowerRequirement,
		EnemyMultiplier:  r.EnemyMultiplier,
		LootMultiplier:   r.LootMultiplier,
		ItemLevelBonus:   r.ItemLevelBonus,
		Unlocks:          append([]string(nil), r.Unlocks...),
	}
}

// NewTierRecord serializes a difficulty tier
func NewTierRecord(t *tier.DifficultyTier) TierRecord {
	return TierRecord{
		Tier:             t.Tier,
		Name:             t.Name,
		PowerRequirement: t.PowerRequirement,
		EnemyMultiplier:  t.EnemyMultiplier,
		LootMultiplier:   t.LootMultiplier,
		ItemLevelBonus:   t.ItemLevelBonus,
		Unlocks:          append([]string(nil), t.Unlocks...),
	}
}

// Table converts the record into a loot table
func (r *LootTableRecord) Table() loot.Table {
	entries := make([]loot.Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		weight := loot.DefaultEntryWeight
		if e.Weight != nil {
			weight = *e.Weight
		}
		entries = append(entries, loot.Entry{Slot: e.Slot, Rarity: e.Rarity, Weight: weight})
	}

	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = loot.DefaultDifficulty
	}

	return loot.Table{
		ZoneID:     r.ZoneID,
		SubzoneID:  r.SubzoneID,
		Difficulty: difficulty,
		Entries:    entries,
	}
}

// NewLootTableRecord serializes a loot table
func NewLootTableRecord(t *loot.Table) LootTableRecord {
	entries := make([]EntryRecord, 0, len(t.Entries))
	for _, e := range t.Entries {
		weight := e.Weight
		entries = append(entries, EntryRecord{Slot: e.Slot, Rarity: e.Rarity, Weight: &weight})
	}

	return LootTableRecord{
		ZoneID:     t.ZoneID,
		SubzoneID:  t.SubzoneID,
		Difficulty: t.Difficulty,
		Entries:    entries,
	}
}
