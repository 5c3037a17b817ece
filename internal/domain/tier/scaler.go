package tier

import "github.com/KirkDiggler/expedition-rewards/internal/domain/shared"

const (
	efficiencyCeiling = 1.5
	efficiencyFloor   = 0.6

	// parties at or below this tier are recommended their max tier
	noPenaltyTier = 2
)

// PowerGap describes how far a party is from the next tier
type PowerGap struct {
	CurrentTier     int     `json:"current_tier"`
	NextTier        int     `json:"next_tier"` // 0 when HasNext is false
	HasNext         bool    `json:"has_next"`
	PowerNeeded     int     `json:"power_needed"`
	ProgressPercent float64 `json:"progress_percent"`
}

// MaxAccessibleTier returns the highest tier the party may attempt. The scan
// stops at the first tier whose requirement is not met. A party below every
// requirement still gets the lowest tier.
func (c *Catalog) MaxAccessibleTier(teamPower int) int {
	maxTier := c.MinTier()
	for i := range c.tiers {
		if !c.tiers[i].IsAccessible(teamPower) {
			break
		}
		maxTier = c.tiers[i].Tier
	}
	return maxTier
}

// RecommendedTier is one below the max accessible tier, floored at the
// lowest tier. Parties whose max is tier 2 or lower get their max.
func (c *Catalog) RecommendedTier(teamPower int) int {
	maxTier := c.MaxAccessibleTier(teamPower)
	if maxTier <= noPenaltyTier {
		return maxTier
	}

	// step down one position in the ladder rather than one tier number
	for i := len(c.tiers) - 1; i > 0; i-- {
		if c.tiers[i].Tier == maxTier {
			return c.tiers[i-1].Tier
		}
	}
	return c.MinTier()
}

// ScaleEnemyPower scales base power by the tier's enemy multiplier.
// An unknown tier passes the value through unscaled.
func (c *Catalog) ScaleEnemyPower(basePower, tierNumber int) int {
	t, ok := c.Tier(tierNumber)
	if !ok {
		return basePower
	}
	return t.ScaleEnemyPower(basePower)
}

// ScaleLootReward scales a reward by the tier's loot multiplier.
// An unknown tier passes the value through unscaled.
func (c *Catalog) ScaleLootReward(baseReward, tierNumber int) int {
	t, ok := c.Tier(tierNumber)
	if !ok {
		return baseReward
	}
	return t.ScaleLootReward(baseReward)
}

// ScaleGold scales gold with the loot multiplier
func (c *Catalog) ScaleGold(baseGold, tierNumber int) int {
	return c.ScaleLootReward(baseGold, tierNumber)
}

// ScaleXP scales experience with the loot multiplier
func (c *Catalog) ScaleXP(baseXP, tierNumber int) int {
	return c.ScaleLootReward(baseXP, tierNumber)
}

// CalculateItemLevel adds the tier's item level bonus to base
func (c *Catalog) CalculateItemLevel(base, tierNumber int) int {
	t, ok := c.Tier(tierNumber)
	if !ok {
		return base
	}
	return t.CalculateItemLevel(base)
}

// TierEfficiency maps the ratio of team power to scaled threat onto a reward
// multiplier in [0.6, 1.5]
func (c *Catalog) TierEfficiency(teamPower, baseThreatPower, tierNumber int) float64 {
	scaledThreat := c.ScaleEnemyPower(baseThreatPower, tierNumber)
	if scaledThreat == 0 {
		return efficiencyCeiling
	}

	ratio := float64(teamPower) / float64(scaledThreat)
	return shared.Round3(efficiencyCurve(ratio))
}

func efficiencyCurve(ratio float64) float64 {
	switch {
	case ratio >= 2.0:
		return efficiencyCeiling
	case ratio >= 1.5:
		return 1.0 + (ratio-1.0)*0.5
	case ratio >= 1.0:
		return 1.0
	case ratio >= 0.75:
		return 0.8 + (ratio-0.75)*0.8
	case ratio >= 0.5:
		return 0.6 + (ratio-0.5)*0.8
	default:
		return efficiencyFloor
	}
}

// PowerGapToNextTier reports the current tier, the next one and the power
// still needed to reach it. A party below the lowest requirement has a
// current tier of 0 and the lowest tier as its next tier.
func (c *Catalog) PowerGapToNextTier(teamPower int) PowerGap {
	current := c.MaxAccessibleTier(teamPower)
	if len(c.tiers) > 0 && !c.tiers[0].IsAccessible(teamPower) {
		current = 0
	}
	gap := PowerGap{CurrentTier: current, ProgressPercent: 100}

	for i := range c.tiers {
		if c.tiers[i].Tier <= current {
			continue
		}
		next := c.tiers[i]
		gap.NextTier = next.Tier
		gap.HasNext = true
		gap.PowerNeeded = max(0, next.PowerRequirement-teamPower)
		if next.PowerRequirement > 0 {
			progress := float64(teamPower) / float64(next.PowerRequirement) * 100
			gap.ProgressPercent = shared.Round1(min(100, max(0, progress)))
		}
		break
	}

	return gap
}
