package shared

// MonsterType is the coarse creature classification used by synergies
type MonsterType string

const (
	MonsterTypeBeast      MonsterType = "beast"
	MonsterTypeUndead     MonsterType = "undead"
	MonsterTypeDragon     MonsterType = "dragon"
	MonsterTypeDemon      MonsterType = "demon"
	MonsterTypeElemental  MonsterType = "elemental"
	MonsterTypeConstruct  MonsterType = "construct"
	MonsterTypeHumanoid   MonsterType = "humanoid"
	MonsterTypeAberration MonsterType = "aberration"
	MonsterTypePlant      MonsterType = "plant"
	MonsterTypeFey        MonsterType = "fey"
)

// Element is the damage/affinity element of a monster
type Element string

const (
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
	ElementNature    Element = "nature"
	ElementShadow    Element = "shadow"
	ElementHoly      Element = "holy"
	ElementPhysical  Element = "physical"
	ElementArcane    Element = "arcane"
	ElementWater     Element = "water"
)

// Biome matches the biome of the zone a monster is native to
type Biome string

const (
	BiomeForest      Biome = "forest"
	BiomeMountain    Biome = "mountain"
	BiomeSwamp       Biome = "swamp"
	BiomeDesert      Biome = "desert"
	BiomeTundra      Biome = "tundra"
	BiomeVolcanic    Biome = "volcanic"
	BiomeOcean       Biome = "ocean"
	BiomeUnderground Biome = "underground"
	BiomeCelestial   Biome = "celestial"
	BiomeAbyss       Biome = "abyss"
)
