package loot

import (
	"sort"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

// RarityWeights maps a tier number to the weight of each rarity at that tier.
// A zero or missing weight excludes the rarity at that tier.
type RarityWeights map[int]map[shared.Rarity]float64

// DefaultRarityWeights returns a fresh copy of the shipped tier table
func DefaultRarityWeights() RarityWeights {
	return RarityWeights{
		1: {shared.RarityCommon: 70, shared.RarityUncommon: 25, shared.RarityRare: 5},
		2: {shared.RarityCommon: 55, shared.RarityUncommon: 30, shared.RarityRare: 12, shared.RarityEpic: 3},
		3: {shared.RarityCommon: 40, shared.RarityUncommon: 32, shared.RarityRare: 18, shared.RarityEpic: 8, shared.RarityLegendary: 2},
		4: {shared.RarityCommon: 25, shared.RarityUncommon: 30, shared.RarityRare: 25, shared.RarityEpic: 14, shared.RarityLegendary: 5, shared.RarityMythic: 1},
		5: {shared.RarityCommon: 10, shared.RarityUncommon: 20, shared.RarityRare: 28, shared.RarityEpic: 24, shared.RarityLegendary: 13, shared.RarityMythic: 5},
		6: {shared.RarityUncommon: 5, shared.RarityRare: 15, shared.RarityEpic: 25, shared.RarityLegendary: 30, shared.RarityMythic: 25},
	}
}

// Row returns the weights for a tier. Tiers past either end of the table use
// the nearest row.
func (w RarityWeights) Row(tierNumber int) map[shared.Rarity]float64 {
	if len(w) == 0 {
		return nil
	}
	if row, ok := w[tierNumber]; ok {
		return row
	}

	tiers := make([]int, 0, len(w))
	for t := range w {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)

	if tierNumber < tiers[0] {
		return w[tiers[0]]
	}
	// highest configured tier not above tierNumber
	chosen := tiers[0]
	for _, t := range tiers {
		if t > tierNumber {
			break
		}
		chosen = t
	}
	return w[chosen]
}

// Weight returns the weight of a rarity at a tier
func (w RarityWeights) Weight(tierNumber int, rarity shared.Rarity) float64 {
	return w.Row(tierNumber)[rarity]
}
