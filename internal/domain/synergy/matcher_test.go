package synergy_test

import (
	"testing"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/synergy"
	"github.com/stretchr/testify/assert"
)

func mob(id string, t shared.MonsterType, family string, e shared.Element, b shared.Biome) monster.Monster {
	return monster.Monster{ID: id, Type: t, Family: family, Element: e, Biome: b, BasePower: 50}
}

func TestMatch_TypeThreshold(t *testing.T) {
	party := []monster.Monster{
		mob("a", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("b", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("c", shared.MonsterTypeUndead, "Skeleton", shared.ElementShadow, shared.BiomeForest),
		mob("d", shared.MonsterTypeBeast, "Bear", shared.ElementNature, shared.BiomeMountain),
	}

	tests := []struct {
		name    string
		req     synergy.TypeThreshold
		want    bool
		wantIDs []string
	}{
		{
			name:    "default threshold of three",
			req:     synergy.TypeThreshold{Types: []shared.MonsterType{shared.MonsterTypeBeast}},
			want:    true,
			wantIDs: []string{"a", "b", "d"},
		},
		{
			name: "threshold not reached",
			req:  synergy.TypeThreshold{Types: []shared.MonsterType{shared.MonsterTypeBeast}, MinCount: 4},
			want: false,
		},
		{
			name:    "multiple types count together",
			req:     synergy.TypeThreshold{Types: []shared.MonsterType{shared.MonsterTypeBeast, shared.MonsterTypeUndead}, MinCount: 4},
			want:    true,
			wantIDs: []string{"a", "b", "c", "d"},
		},
		{
			name: "empty type set never matches",
			req:  synergy.TypeThreshold{MinCount: 1},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := synergy.Match(tt.req, party)
			assert.Equal(t, tt.want, result.Matches)
			if tt.want {
				assert.Equal(t, tt.wantIDs, result.ContributingIDs)
			} else {
				assert.Empty(t, result.ContributingIDs)
			}
		})
	}
}

func TestMatch_ElementMatching(t *testing.T) {
	t.Run("first qualifying group wins", func(t *testing.T) {
		party := []monster.Monster{
			mob("f1", shared.MonsterTypeDemon, "Imp", shared.ElementFire, shared.BiomeVolcanic),
			mob("i1", shared.MonsterTypeElemental, "Frost", shared.ElementIce, shared.BiomeTundra),
			mob("f2", shared.MonsterTypeDemon, "Imp", shared.ElementFire, shared.BiomeVolcanic),
			mob("i2", shared.MonsterTypeElemental, "Frost", shared.ElementIce, shared.BiomeTundra),
		}

		result := synergy.Match(synergy.ElementMatching{MinCount: 2}, party)
		assert.True(t, result.Matches)
		assert.Equal(t, []string{"f1", "f2"}, result.ContributingIDs)
	})

	t.Run("default needs three", func(t *testing.T) {
		party := []monster.Monster{
			mob("f1", shared.MonsterTypeDemon, "Imp", shared.ElementFire, shared.BiomeVolcanic),
			mob("f2", shared.MonsterTypeDemon, "Imp", shared.ElementFire, shared.BiomeVolcanic),
			mob("i1", shared.MonsterTypeElemental, "Frost", shared.ElementIce, shared.BiomeTundra),
		}

		assert.False(t, synergy.Match(synergy.ElementMatching{}, party).Matches)

		party = append(party, mob("f3", shared.MonsterTypeDragon, "Drake", shared.ElementFire, shared.BiomeVolcanic))
		result := synergy.Match(synergy.ElementMatching{}, party)
		assert.True(t, result.Matches)
		assert.Equal(t, []string{"f1", "f2", "f3"}, result.ContributingIDs)
	})
}

func TestMatch_BiomeHarmony(t *testing.T) {
	forest := []monster.Monster{
		mob("a", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("b", shared.MonsterTypePlant, "Treant", shared.ElementNature, shared.BiomeForest),
		mob("c", shared.MonsterTypeFey, "Sprite", shared.ElementArcane, shared.BiomeForest),
	}
	mixed := append([]monster.Monster{}, forest...)
	mixed = append(mixed, mob("d", shared.MonsterTypeUndead, "Ghoul", shared.ElementShadow, shared.BiomeSwamp))

	tests := []struct {
		name  string
		req   synergy.BiomeHarmony
		party []monster.Monster
		want  bool
	}{
		{"shared biome whole party", synergy.BiomeHarmony{}, forest, true},
		{"mixed biomes fail shared check", synergy.BiomeHarmony{}, mixed, false},
		{"shared biome below min count", synergy.BiomeHarmony{MinCount: 4}, forest, false},
		{"explicit biome covering party", synergy.BiomeHarmony{Biomes: []shared.Biome{shared.BiomeForest}}, forest, true},
		{"explicit biomes covering mixed party", synergy.BiomeHarmony{Biomes: []shared.Biome{shared.BiomeForest, shared.BiomeSwamp}}, mixed, true},
		{"explicit biome with an outsider", synergy.BiomeHarmony{Biomes: []shared.Biome{shared.BiomeForest}, MinCount: 3}, mixed, false},
		{"explicit biome below min count", synergy.BiomeHarmony{Biomes: []shared.Biome{shared.BiomeForest}, MinCount: 5}, forest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := synergy.Match(tt.req, tt.party)
			assert.Equal(t, tt.want, result.Matches)
			if tt.want {
				assert.Equal(t, monster.Party(tt.party).IDs(), result.ContributingIDs)
			}
		})
	}
}

func TestMatch_FamilyThreshold(t *testing.T) {
	party := []monster.Monster{
		mob("w1", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("w2", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("w3", shared.MonsterTypeBeast, "Wolf", shared.ElementIce, shared.BiomeTundra),
		mob("b1", shared.MonsterTypeBeast, "Bear", shared.ElementPhysical, shared.BiomeForest),
	}

	result := synergy.Match(synergy.FamilyThreshold{Families: []string{"Wolf"}}, party)
	assert.True(t, result.Matches)
	assert.Equal(t, []string{"w1", "w2", "w3"}, result.ContributingIDs)

	assert.False(t, synergy.Match(synergy.FamilyThreshold{Families: []string{"Bear"}}, party).Matches)
	assert.False(t, synergy.Match(synergy.FamilyThreshold{}, party).Matches)
}

func TestMatch_AllSameType(t *testing.T) {
	undead := []monster.Monster{
		mob("s1", shared.MonsterTypeUndead, "Skeleton", shared.ElementShadow, shared.BiomeUnderground),
		mob("s2", shared.MonsterTypeUndead, "Ghoul", shared.ElementShadow, shared.BiomeSwamp),
	}

	assert.True(t, synergy.Match(synergy.AllSameType{Types: []shared.MonsterType{shared.MonsterTypeUndead}}, undead).Matches)
	assert.False(t, synergy.Match(synergy.AllSameType{Types: []shared.MonsterType{shared.MonsterTypeUndead}, MinCount: 3}, undead).Matches)
	assert.False(t, synergy.Match(synergy.AllSameType{}, undead).Matches, "empty type set never matches")

	mixed := append(undead, mob("b1", shared.MonsterTypeBeast, "Bat", shared.ElementShadow, shared.BiomeUnderground))
	assert.False(t, synergy.Match(synergy.AllSameType{Types: []shared.MonsterType{shared.MonsterTypeUndead}}, mixed).Matches)
}

func TestMatch_ElementCombo(t *testing.T) {
	party := []monster.Monster{
		mob("fire", shared.MonsterTypeDemon, "Imp", shared.ElementFire, shared.BiomeVolcanic),
		mob("rock", shared.MonsterTypeConstruct, "Golem", shared.ElementPhysical, shared.BiomeMountain),
		mob("ice", shared.MonsterTypeElemental, "Frost", shared.ElementIce, shared.BiomeTundra),
	}

	result := synergy.Match(synergy.ElementCombo{Elements: []shared.Element{shared.ElementFire, shared.ElementIce}}, party)
	assert.True(t, result.Matches)
	assert.Equal(t, []string{"fire", "ice"}, result.ContributingIDs)

	missing := synergy.Match(synergy.ElementCombo{Elements: []shared.Element{shared.ElementFire, shared.ElementHoly}}, party)
	assert.False(t, missing.Matches)
	assert.Empty(t, missing.ContributingIDs)

	assert.False(t, synergy.Match(synergy.ElementCombo{}, party).Matches)
}

func TestMatch_Opposites(t *testing.T) {
	party := []monster.Monster{
		mob("angel", shared.MonsterTypeHumanoid, "Seraph", shared.ElementHoly, shared.BiomeCelestial),
		mob("fiend", shared.MonsterTypeDemon, "Shade", shared.ElementShadow, shared.BiomeAbyss),
	}

	result := synergy.Match(synergy.Opposites{Elements: []shared.Element{shared.ElementHoly, shared.ElementShadow}}, party)
	assert.True(t, result.Matches)
	assert.Equal(t, []string{"angel", "fiend"}, result.ContributingIDs)

	assert.False(t, synergy.Match(synergy.Opposites{Elements: []shared.Element{shared.ElementFire, shared.ElementIce}}, party).Matches)
}

func TestMatch_TypeElement(t *testing.T) {
	party := []monster.Monster{
		mob("red", shared.MonsterTypeDragon, "Drake", shared.ElementFire, shared.BiomeVolcanic),
		mob("white", shared.MonsterTypeDragon, "Drake", shared.ElementIce, shared.BiomeTundra),
		mob("imp", shared.MonsterTypeDemon, "Imp", shared.ElementFire, shared.BiomeVolcanic),
	}

	req := synergy.TypeElement{
		Types:    []shared.MonsterType{shared.MonsterTypeDragon},
		Elements: []shared.Element{shared.ElementFire},
	}
	result := synergy.Match(req, party)
	assert.True(t, result.Matches)
	assert.Equal(t, []string{"red"}, result.ContributingIDs, "both conditions must hold on the same monster")

	req.MinCount = 2
	assert.False(t, synergy.Match(req, party).Matches)

	assert.False(t, synergy.Match(synergy.TypeElement{Types: req.Types}, party).Matches)
}

func TestMatch_FullDiversity(t *testing.T) {
	four := []monster.Monster{
		mob("a", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("b", shared.MonsterTypeUndead, "Ghoul", shared.ElementShadow, shared.BiomeSwamp),
		mob("c", shared.MonsterTypeDragon, "Drake", shared.ElementFire, shared.BiomeVolcanic),
		mob("d", shared.MonsterTypeConstruct, "Golem", shared.ElementPhysical, shared.BiomeMountain),
	}
	twoTypes := []monster.Monster{
		mob("a", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
		mob("b", shared.MonsterTypeBeast, "Bear", shared.ElementPhysical, shared.BiomeForest),
		mob("c", shared.MonsterTypeUndead, "Ghoul", shared.ElementShadow, shared.BiomeSwamp),
	}

	req := synergy.FullDiversity{AllDifferentTypes: true}
	assert.True(t, synergy.Match(req, four).Matches)
	assert.False(t, synergy.Match(req, twoTypes).Matches)
	assert.False(t, synergy.Match(req, four[:2]).Matches, "needs at least three monsters")
	assert.False(t, synergy.Match(synergy.FullDiversity{}, four).Matches, "flag is required")
}

func TestMatch_FailsClosed(t *testing.T) {
	party := []monster.Monster{
		mob("a", shared.MonsterTypeBeast, "Wolf", shared.ElementPhysical, shared.BiomeForest),
	}

	unknown := synergy.Match(synergy.Unknown{Name: "moon_phase"}, party)
	assert.False(t, unknown.Matches)
	assert.NotNil(t, unknown.ContributingIDs)
	assert.Empty(t, unknown.ContributingIDs)

	assert.False(t, synergy.Match(nil, party).Matches)
	assert.False(t, synergy.Match(synergy.BiomeHarmony{}, nil).Matches)
}
