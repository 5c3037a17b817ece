package synergy

import (
	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
)

// DefaultSoftCap is the ceiling applied to each aggregate bonus
const DefaultSoftCap = 60.0

// AppliedSynergy is an active synergy for one evaluation
type AppliedSynergy struct {
	SynergyID              string     `json:"synergy_id"`
	Definition             Definition `json:"definition"`
	ContributingMonsterIDs []string   `json:"contributing_monster_ids"`
	TotalValue             float64    `json:"total_value"`
}

// CalculationResult holds the active synergies and capped bonus totals
type CalculationResult struct {
	ActiveSynergies    []AppliedSynergy `json:"active_synergies"`
	TotalPowerBonus    float64          `json:"total_power_bonus"`
	TotalLootBonus     float64          `json:"total_loot_bonus"`
	TotalDropRateBonus float64          `json:"total_drop_rate_bonus"`
	CappedAt           float64          `json:"capped_at"`
	WasCapped          bool             `json:"was_capped"`
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	SoftCap float64 // Optional - defaults to DefaultSoftCap
}

// Engine evaluates synergy catalogs against dungeon parties.
// It holds no state between calls and is safe for concurrent use.
type Engine struct {
	softCap float64
}

// NewEngine creates a new synergy engine
func NewEngine(cfg *EngineConfig) *Engine {
	e := &Engine{softCap: DefaultSoftCap}
	if cfg != nil && cfg.SoftCap > 0 {
		e.softCap = cfg.SoftCap
	}
	return e
}

// SoftCap returns the cap applied to each total
func (e *Engine) SoftCap() float64 {
	return e.softCap
}

// Evaluate evaluates the catalog using the default soft cap
func Evaluate(monsters []monster.Monster, catalog []Definition) *CalculationResult {
	return NewEngine(nil).Evaluate(monsters, catalog)
}

// Evaluate returns every catalog entry the party satisfies, in catalog order,
// with the three bonus totals clamped independently to the soft cap
func (e *Engine) Evaluate(monsters []monster.Monster, catalog []Definition) *CalculationResult {
	result := &CalculationResult{
		ActiveSynergies: []AppliedSynergy{},
		CappedAt:        e.softCap,
	}
	if len(monsters) == 0 {
		return result
	}

	var power, loot, dropRate float64
	for i := range catalog {
		def := catalog[i]
		match := Match(def.Requirement, monsters)
		if !match.Matches {
			continue
		}

		result.ActiveSynergies = append(result.ActiveSynergies, AppliedSynergy{
			SynergyID:              def.ID,
			Definition:             def,
			ContributingMonsterIDs: match.ContributingIDs,
			TotalValue:             def.TotalValue(),
		})

		for _, effect := range def.Effects {
			switch effect.Type {
			case EffectPower:
				power += effect.Value
			case EffectLootQuality:
				loot += effect.Value
			case EffectDropRate:
				dropRate += effect.Value
			}
		}
	}

	result.WasCapped = power > e.softCap || loot > e.softCap || dropRate > e.softCap
	result.TotalPowerBonus = min(power, e.softCap)
	result.TotalLootBonus = min(loot, e.softCap)
	result.TotalDropRateBonus = min(dropRate, e.softCap)

	return result
}

// NewlyDiscovered returns the IDs of active synergies missing from the
// discovered set, in catalog order
func NewlyDiscovered(result *CalculationResult, discovered []string) []string {
	if result == nil {
		return []string{}
	}

	known := make(map[string]bool, len(discovered))
	for _, id := range discovered {
		known[id] = true
	}

	fresh := []string{}
	for _, applied := range result.ActiveSynergies {
		if !known[applied.SynergyID] {
			fresh = append(fresh, applied.SynergyID)
		}
	}
	return fresh
}

// IsActive reports whether the synergy with the given ID is active
func (r *CalculationResult) IsActive(id string) bool {
	for _, applied := range r.ActiveSynergies {
		if applied.SynergyID == id {
			return true
		}
	}
	return false
}
