package synergy

import (
	"encoding/json"
	"fmt"
)

// Tier controls whether the player can see a synergy before discovering it.
// It has no effect on evaluation.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierHidden       Tier = "hidden"
)

// EffectType is the aggregate bonus an effect contributes to
type EffectType string

const (
	EffectPower       EffectType = "power"
	EffectLootQuality EffectType = "loot_quality"
	EffectDropRate    EffectType = "drop_rate"
)

// Effect is one numeric bonus granted by an active synergy
type Effect struct {
	Type  EffectType `json:"type"`
	Value float64    `json:"value"`
}

// Definition is a static catalog entry
type Definition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Tier        Tier        `json:"tier"`
	Requirement Requirement `json:"requirement"`
	Effects     []Effect    `json:"effects"`
}

// MarshalJSON adds the requirement pattern next to the requirement fields
func (d Definition) MarshalJSON() ([]byte, error) {
	type definition Definition
	var pattern Pattern
	if d.Requirement != nil {
		pattern = d.Requirement.Pattern()
	}
	return json.Marshal(struct {
		definition
		RequirementPattern Pattern `json:"requirement_pattern,omitempty"`
	}{definition: definition(d), RequirementPattern: pattern})
}

// TotalValue sums every effect value regardless of type
func (d *Definition) TotalValue() float64 {
	total := 0.0
	for _, effect := range d.Effects {
		total += effect.Value
	}
	return total
}

// IsHidden reports whether the synergy is concealed until discovered
func (d *Definition) IsHidden() bool {
	return d.Tier == TierHidden
}

// Validate reports configuration problems that would make the definition
// never match. Evaluation does not call it; malformed entries fail closed.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("synergy id is required")
	}

	switch d.Tier {
	case TierBasic, TierIntermediate, TierHidden:
	default:
		return fmt.Errorf("synergy %s: unknown tier %q", d.ID, d.Tier)
	}

	for _, effect := range d.Effects {
		switch effect.Type {
		case EffectPower, EffectLootQuality, EffectDropRate:
		default:
			return fmt.Errorf("synergy %s: unknown effect type %q", d.ID, effect.Type)
		}
	}

	if err := validateRequirement(d.Requirement); err != nil {
		return fmt.Errorf("synergy %s: %w", d.ID, err)
	}
	return nil
}

func validateRequirement(req Requirement) error {
	switch r := req.(type) {
	case nil:
		return fmt.Errorf("requirement is missing")
	case TypeThreshold:
		if len(r.Types) == 0 {
			return fmt.Errorf("%s needs at least one type", r.Pattern())
		}
	case ElementMatching, BiomeHarmony, FullDiversity:
	case FamilyThreshold:
		if len(r.Families) == 0 {
			return fmt.Errorf("%s needs at least one family", r.Pattern())
		}
	case AllSameType:
		if len(r.Types) == 0 {
			return fmt.Errorf("%s needs at least one type", r.Pattern())
		}
	case ElementCombo:
		if len(r.Elements) == 0 {
			return fmt.Errorf("%s needs at least one element", r.Pattern())
		}
	case TypeElement:
		if len(r.Types) == 0 || len(r.Elements) == 0 {
			return fmt.Errorf("%s needs types and elements", r.Pattern())
		}
	case Opposites:
		if len(r.Elements) < 2 {
			return fmt.Errorf("%s needs at least two elements", r.Pattern())
		}
	case Unknown:
		return fmt.Errorf("unknown requirement pattern %q", r.Name)
	default:
		return fmt.Errorf("unsupported requirement %T", req)
	}
	return nil
}
