package catalog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/expedition-rewards/internal/catalog"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/loot"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/synergy"
	rwerr "github.com/KirkDiggler/expedition-rewards/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	assert.Len(t, c.Synergies, 12)
	assert.Empty(t, c.Problems())
	assert.Equal(t, 6, c.Tiers.Len())
	assert.Equal(t, 1, c.Tiers.MinTier())
	assert.Equal(t, 6, c.Tiers.MaxTier())
	assert.Len(t, c.LootTables, 4)

	pack, ok := c.Synergy("pack_tactics")
	require.True(t, ok)
	assert.Equal(t, synergy.TypeThreshold{Types: []shared.MonsterType{shared.MonsterTypeBeast}, MinCount: 3}, pack.Requirement)
	assert.Equal(t, 8.0, pack.TotalValue())

	glade, ok := c.LootTable("verdant_wilds", "whispering_glade")
	require.True(t, ok)
	assert.Equal(t, shared.DifficultyEasy, glade.Difficulty)
	assert.Equal(t, loot.DefaultEntryWeight, glade.Entries[3].Weight, "omitted weight uses the default")
}

func TestDefault_PackTacticsScenario(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	party := []monster.Monster{
		{ID: "wolf-1", Type: shared.MonsterTypeBeast, Family: "wolf", Element: shared.ElementPhysical, Biome: shared.BiomeForest},
		{ID: "boar-1", Type: shared.MonsterTypeBeast, Family: "boar", Element: shared.ElementNature, Biome: shared.BiomeSwamp},
		{ID: "hawk-1", Type: shared.MonsterTypeBeast, Family: "hawk", Element: shared.ElementLightning, Biome: shared.BiomeMountain},
	}

	result := synergy.Evaluate(party, c.Synergies)

	require.Len(t, result.ActiveSynergies, 1)
	assert.Equal(t, "pack_tactics", result.ActiveSynergies[0].SynergyID)
	assert.Equal(t, 8.0, result.TotalPowerBonus)
}

func TestDefault_EveryTableDropsAtEveryTier(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	weights := loot.DefaultRarityWeights()
	for key, table := range c.LootTables {
		for n := c.Tiers.MinTier(); n <= c.Tiers.MaxTier(); n++ {
			assert.NotEmpty(t, loot.FilterForTier(table.Entries, n, weights), "%s at tier %d", catalog.Key(key.ZoneID, key.SubzoneID), n)
		}
	}
}

func TestParse_UnknownPatternFailsClosed(t *testing.T) {
	data := []byte(`
synergies:
  - id: moon_howl
    name: Moon Howl
    tier: hidden
    requirement:
      pattern: lunar_phase
    effects:
      - type: power
        value: 50
tiers:
  - tier: 1
    name: Normal
    enemy_multiplier: 1
    loot_multiplier: 1
`)

	c, err := catalog.Parse(data)
	require.NoError(t, err)

	def, ok := c.Synergy("moon_howl")
	require.True(t, ok)
	assert.Equal(t, synergy.Unknown{Name: "lunar_phase"}, def.Requirement)
	assert.Len(t, c.Problems(), 1)

	party := []monster.Monster{{ID: "wolf-1", Type: shared.MonsterTypeBeast}}
	result := synergy.Evaluate(party, c.Synergies)
	assert.Empty(t, result.ActiveSynergies)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed yaml",
			yaml: "synergies: [",
		},
		{
			name: "duplicate synergy",
			yaml: `
synergies:
  - {id: a, tier: basic, requirement: {pattern: element_matching}}
  - {id: a, tier: basic, requirement: {pattern: element_matching}}
`,
		},
		{
			name: "missing synergy id",
			yaml: `
synergies:
  - {name: nameless, tier: basic, requirement: {pattern: element_matching}}
`,
		},
		{
			name: "decreasing power requirement",
			yaml: `
tiers:
  - {tier: 1, power_requirement: 100}
  - {tier: 2, power_requirement: 50}
`,
		},
		{
			name: "unknown slot",
			yaml: `
loot_tables:
  - zone_id: z
    subzone_id: s
    entries:
      - {slot: cape, rarity: common}
`,
		},
		{
			name: "unknown rarity",
			yaml: `
loot_tables:
  - zone_id: z
    subzone_id: s
    entries:
      - {slot: ring, rarity: artifact}
`,
		},
		{
			name: "duplicate loot table",
			yaml: `
loot_tables:
  - {zone_id: z, subzone_id: s, entries: []}
  - {zone_id: z, subzone_id: s, entries: []}
`,
		},
		{
			name: "loot table without subzone",
			yaml: `
loot_tables:
  - {zone_id: z, entries: []}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, rwerr.IsValidation(err), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tiers:
  - {tier: 1, name: Normal, enemy_multiplier: 1, loot_multiplier: 1}
loot_tables:
  - zone_id: z
    subzone_id: s
    difficulty: hard
    entries:
      - {slot: ring, rarity: rare, weight: 2.5}
`), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)

	table, ok := c.LootTable("z", "s")
	require.True(t, ok)
	assert.Equal(t, shared.DifficultyHard, table.Difficulty)
	assert.Equal(t, 2.5, table.Entries[0].Weight)
	assert.Empty(t, c.Synergies)
}

func TestLoad_Missing(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, rwerr.IsNotFound(err))
}

func TestFile_RoundTrip(t *testing.T) {
	original, err := catalog.Default()
	require.NoError(t, err)

	data, err := json.Marshal(original.File())
	require.NoError(t, err)

	var f catalog.File
	require.NoError(t, json.Unmarshal(data, &f))

	restored, err := catalog.FromFile(&f)
	require.NoError(t, err)

	assert.Equal(t, original.Synergies, restored.Synergies)
	assert.Equal(t, original.Tiers.Tiers(), restored.Tiers.Tiers())
	assert.Equal(t, original.LootTables, restored.LootTables)
}

func TestFile_OrdersLootTables(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	f := c.File()
	require.Len(t, f.LootTables, 4)
	assert.Equal(t, "ashlands", f.LootTables[0].ZoneID)
	assert.Equal(t, "frostpeak", f.LootTables[1].ZoneID)
	assert.Equal(t, "thornheart_hollow", f.LootTables[2].SubzoneID)
	assert.Equal(t, "whispering_glade", f.LootTables[3].SubzoneID)
}

func TestFromFile_Nil(t *testing.T) {
	_, err := catalog.FromFile(nil)
	assert.True(t, rwerr.IsValidation(err))
}
