package monster

import "github.com/KirkDiggler/expedition-rewards/internal/domain/shared"

// Monster is a dungeon occupant. Values are built once per run and never mutated.
type Monster struct {
	ID        string             `json:"id" yaml:"id"`
	Name      string             `json:"name,omitempty" yaml:"name,omitempty"`
	Type      shared.MonsterType `json:"type" yaml:"type"`
	Family    string             `json:"family" yaml:"family"`
	Element   shared.Element     `json:"element" yaml:"element"`
	Biome     shared.Biome       `json:"biome" yaml:"biome"`
	BasePower int                `json:"base_power" yaml:"base_power"`
}

// Party is the set of monsters assigned to one dungeon instance
type Party []Monster

// IDs returns the monster IDs in party order
func (p Party) IDs() []string {
	ids := make([]string, len(p))
	for i, m := range p {
		ids[i] = m.ID
	}
	return ids
}

// TotalBasePower sums the base power of every monster
func (p Party) TotalBasePower() int {
	total := 0
	for _, m := range p {
		total += m.BasePower
	}
	return total
}
