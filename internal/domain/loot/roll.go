package loot

import (
	"github.com/KirkDiggler/expedition-rewards/internal/dice"
)

// Candidate is an entry re-weighted for one tier
type Candidate struct {
	Entry  Entry
	Weight float64
}

// FilterForTier re-weights entries by the tier's rarity weights. Entries
// whose rarity has no weight at this tier are dropped, not down-weighted.
func FilterForTier(entries []Entry, tierNumber int, weights RarityWeights) []Candidate {
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		rarityWeight := weights.Weight(tierNumber, entry.Rarity)
		if rarityWeight <= 0 || entry.Weight <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Entry:  entry,
			Weight: entry.Weight * rarityWeight,
		})
	}
	return candidates
}

// Roll picks one candidate by weighted random sampling. It returns false
// when there is nothing to pick from.
func Roll(roller dice.Roller, candidates []Candidate) (Entry, bool) {
	total := 0.0
	for _, c := range candidates {
		total += c.Weight
	}
	if len(candidates) == 0 || total <= 0 {
		return Entry{}, false
	}

	cursor := roller.Float64() * total
	for _, c := range candidates {
		cursor -= c.Weight
		if cursor <= 0 {
			return c.Entry, true
		}
	}

	// float drift can leave a sliver past the last entry
	return candidates[len(candidates)-1].Entry, true
}
