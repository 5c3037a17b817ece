package loot

import (
	"github.com/KirkDiggler/expedition-rewards/internal/dice"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/tier"
)

// Drop is a resolved piece of loot
type Drop struct {
	ZoneID            string        `json:"zone_id"`
	SubzoneID         string        `json:"subzone_id"`
	Slot              shared.Slot   `json:"slot"`
	Rarity            shared.Rarity `json:"rarity"`
	ItemLevel         int           `json:"item_level"`
	Tier              int           `json:"tier"`
	MasteryMultiplier float64       `json:"mastery_multiplier"`
}

// ResolverConfig holds configuration for the resolver
type ResolverConfig struct {
	Tables        TableSource   // Optional - every lookup synthesizes a default table if nil
	Tiers         *tier.Catalog // Optional - item levels are not tier-scaled if nil
	RarityWeights RarityWeights // Optional - defaults to DefaultRarityWeights
}

// Resolver turns a zone, tier and mastery level into a drop.
// It keeps only read-only configuration and is safe for concurrent use as
// long as each call gets its own Roller.
type Resolver struct {
	tables  TableSource
	tiers   *tier.Catalog
	weights RarityWeights
}

// NewResolver creates a new loot resolver
func NewResolver(cfg *ResolverConfig) *Resolver {
	r := &Resolver{weights: DefaultRarityWeights()}
	if cfg == nil {
		return r
	}

	r.tables = cfg.Tables
	r.tiers = cfg.Tiers
	if len(cfg.RarityWeights) > 0 {
		r.weights = cfg.RarityWeights
	}
	return r
}

// Table returns the configured table or a synthesized one
func (r *Resolver) Table(zoneID, subzoneID string) *Table {
	if r.tables != nil {
		if t, ok := r.tables.LootTable(zoneID, subzoneID); ok {
			return t
		}
	}
	return DefaultTable(zoneID, subzoneID, DefaultDifficulty)
}

// Candidates returns the tier-filtered entries for a subzone
func (r *Resolver) Candidates(zoneID, subzoneID string, tierNumber int) []Candidate {
	return FilterForTier(r.Table(zoneID, subzoneID).Entries, tierNumber, r.weights)
}

// ItemLevel stacks the tier bonus on the difficulty floor
func (r *Resolver) ItemLevel(difficulty shared.Difficulty, tierNumber int) int {
	base := BaseItemLevelForDifficulty(difficulty)
	if r.tiers == nil {
		return base
	}
	return r.tiers.CalculateItemLevel(base, tierNumber)
}

// Resolve rolls one drop. A nil result means the tier-filtered table was
// empty and nothing drops.
func (r *Resolver) Resolve(roller dice.Roller, zoneID, subzoneID string, tierNumber, masteryLevel int) *Drop {
	table := r.Table(zoneID, subzoneID)
	candidates := FilterForTier(table.Entries, tierNumber, r.weights)

	entry, ok := Roll(roller, candidates)
	if !ok {
		return nil
	}

	return &Drop{
		ZoneID:            zoneID,
		SubzoneID:         subzoneID,
		Slot:              entry.Slot,
		Rarity:            entry.Rarity,
		ItemLevel:         r.ItemLevel(table.Difficulty, tierNumber),
		Tier:              tierNumber,
		MasteryMultiplier: MasteryDropRateBonus(masteryLevel),
	}
}
