package testutils

import (
	"fmt"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

// CreateTestMonster creates a monster with a family derived from its id
func CreateTestMonster(id string, t shared.MonsterType, e shared.Element, b shared.Biome, power int) monster.Monster {
	return monster.Monster{
		ID:        id,
		Name:      fmt.Sprintf("Test %s", id),
		Type:      t,
		Family:    id,
		Element:   e,
		Biome:     b,
		BasePower: power,
	}
}

// CreateBeastPack creates n beasts with distinct elements and biomes
func CreateBeastPack(n int, power int) []monster.Monster {
	elements := []shared.Element{shared.ElementPhysical, shared.ElementNature, shared.ElementLightning}
	biomes := []shared.Biome{shared.BiomeForest, shared.BiomeSwamp, shared.BiomeMountain}

	pack := make([]monster.Monster, 0, n)
	for i := range n {
		pack = append(pack, CreateTestMonster(
			fmt.Sprintf("beast-%d", i+1),
			shared.MonsterTypeBeast,
			elements[i%len(elements)],
			biomes[i%len(biomes)],
			power,
		))
	}
	return pack
}
