package shared

// Rarity is the ordered quality grade of a drop
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// AllRarities returns the rarities from lowest to highest
func AllRarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityEpic,
		RarityLegendary,
		RarityMythic,
	}
}

// Rank returns the position of the rarity in the ordering, or -1 if unknown
func (r Rarity) Rank() int {
	for i, known := range AllRarities() {
		if r == known {
			return i
		}
	}
	return -1
}

// Less reports whether r ranks below other
func (r Rarity) Less(other Rarity) bool {
	return r.Rank() < other.Rank()
}

// IsValid reports whether the rarity is known
func (r Rarity) IsValid() bool {
	return r.Rank() >= 0
}
