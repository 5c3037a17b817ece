package tier

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

// DifficultyTier is one step of the difficulty ladder
type DifficultyTier struct {
	Tier             int
	Name             string
	PowerRequirement int
	EnemyMultiplier  float64
	LootMultiplier   float64
	ItemLevelBonus   int
	Unlocks          []string // content-gating tags, opaque to the scaler
}

// IsAccessible reports whether a party with teamPower may attempt the tier
func (t *DifficultyTier) IsAccessible(teamPower int) bool {
	return teamPower >= t.PowerRequirement
}

// ScaleEnemyPower multiplies base power by the tier's enemy multiplier
func (t *DifficultyTier) ScaleEnemyPower(basePower int) int {
	return shared.RoundInt(float64(basePower) * t.EnemyMultiplier)
}

// ScaleLootReward multiplies a reward magnitude by the tier's loot multiplier
func (t *DifficultyTier) ScaleLootReward(baseReward int) int {
	return shared.RoundInt(float64(baseReward) * t.LootMultiplier)
}

// CalculateItemLevel stacks the tier bonus on a base item level
func (t *DifficultyTier) CalculateItemLevel(base int) int {
	return base + t.ItemLevelBonus
}

// Catalog is an immutable, ascending list of difficulty tiers
type Catalog struct {
	tiers []DifficultyTier
}

// NewCatalog validates and sorts the tiers. Tier numbers must be unique and
// power requirements must not decrease as tiers go up.
func NewCatalog(tiers []DifficultyTier) (*Catalog, error) {
	sorted := make([]DifficultyTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tier < sorted[j].Tier
	})

	for i := range sorted {
		if sorted[i].Tier < 1 {
			return nil, fmt.Errorf("tier number must be at least 1, got %d", sorted[i].Tier)
		}
		if i == 0 {
			continue
		}
		if sorted[i].Tier == sorted[i-1].Tier {
			return nil, fmt.Errorf("duplicate tier %d", sorted[i].Tier)
		}
		if sorted[i].PowerRequirement < sorted[i-1].PowerRequirement {
			return nil, fmt.Errorf("tier %d requires less power than tier %d", sorted[i].Tier, sorted[i-1].Tier)
		}
	}

	return &Catalog{tiers: sorted}, nil
}

// MustCatalog is NewCatalog for static tables known to be valid
func MustCatalog(tiers []DifficultyTier) *Catalog {
	c, err := NewCatalog(tiers)
	if err != nil {
		panic(err)
	}
	return c
}

// Tiers returns a copy of the tiers in ascending order
func (c *Catalog) Tiers() []DifficultyTier {
	out := make([]DifficultyTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// Len returns the number of tiers
func (c *Catalog) Len() int {
	return len(c.tiers)
}

// Tier looks up a tier by number
func (c *Catalog) Tier(number int) (*DifficultyTier, bool) {
	for i := range c.tiers {
		if c.tiers[i].Tier == number {
			t := c.tiers[i]
			return &t, true
		}
	}
	return nil, false
}

// MinTier returns the lowest tier number, or 0 for an empty catalog
func (c *Catalog) MinTier() int {
	if len(c.tiers) == 0 {
		return 0
	}
	return c.tiers[0].Tier
}

// MaxTier returns the highest tier number, or 0 for an empty catalog
func (c *Catalog) MaxTier() int {
	if len(c.tiers) == 0 {
		return 0
	}
	return c.tiers[len(c.tiers)-1].Tier
}
