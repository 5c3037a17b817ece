package synergy

import "github.com/KirkDiggler/expedition-rewards/internal/domain/shared"

// Pattern names a requirement matching algorithm
type Pattern string

const (
	PatternTypeThreshold   Pattern = "type_threshold"
	PatternElementMatching Pattern = "element_matching"
	PatternBiomeHarmony    Pattern = "biome_harmony"
	PatternFamilyThreshold Pattern = "family_threshold"
	PatternAllSameType     Pattern = "all_same_type"
	PatternElementCombo    Pattern = "element_combo"
	PatternTypeElement     Pattern = "type_element"
	PatternOpposites       Pattern = "opposites"
	PatternFullDiversity   Pattern = "full_diversity"
)

// Requirement is the closed set of patterns a synergy can require.
// Only types in this file implement it.
type Requirement interface {
	Pattern() Pattern
	isRequirement()
}

// TypeThreshold needs at least MinCount monsters whose type is in Types (default 3)
type TypeThreshold struct {
	Types    []shared.MonsterType `json:"types,omitempty"`
	MinCount int                  `json:"min_count,omitempty"`
}

// ElementMatching needs one element group of at least MinCount monsters (default 3)
type ElementMatching struct {
	MinCount int `json:"min_count,omitempty"`
}

// BiomeHarmony needs the whole party inside Biomes, or sharing one biome when
// Biomes is empty. MinCount defaults to the party size.
type BiomeHarmony struct {
	Biomes   []shared.Biome `json:"biomes,omitempty"`
	MinCount int            `json:"min_count,omitempty"`
}

// FamilyThreshold needs at least MinCount monsters whose family is in Families (default 3)
type FamilyThreshold struct {
	Families []string `json:"families,omitempty"`
	MinCount int      `json:"min_count,omitempty"`
}

// AllSameType needs every monster's type in Types and at least MinCount monsters (default 1)
type AllSameType struct {
	Types    []shared.MonsterType `json:"types,omitempty"`
	MinCount int                  `json:"min_count,omitempty"`
}

// ElementCombo needs at least one monster of every element in Elements
type ElementCombo struct {
	Elements []shared.Element `json:"elements,omitempty"`
}

// TypeElement needs at least MinCount monsters matching both a type in Types
// and an element in Elements (default 1)
type TypeElement struct {
	Types    []shared.MonsterType `json:"types,omitempty"`
	Elements []shared.Element     `json:"elements,omitempty"`
	MinCount int                  `json:"min_count,omitempty"`
}

// Opposites pairs two or more opposing elements. It matches like ElementCombo.
type Opposites struct {
	Elements []shared.Element `json:"elements,omitempty"`
}

// FullDiversity needs at least three monsters that all have distinct types
type FullDiversity struct {
	AllDifferentTypes bool `json:"all_different_types,omitempty"`
}

// Unknown holds a pattern this build does not recognize. It never matches.
type Unknown struct {
	Name Pattern `json:"name,omitempty"`
}

func (TypeThreshold) Pattern() Pattern   { return PatternTypeThreshold }
func (ElementMatching) Pattern() Pattern { return PatternElementMatching }
func (BiomeHarmony) Pattern() Pattern    { return PatternBiomeHarmony }
func (FamilyThreshold) Pattern() Pattern { return PatternFamilyThreshold }
func (AllSameType) Pattern() Pattern     { return PatternAllSameType }
func (ElementCombo) Pattern() Pattern    { return PatternElementCombo }
func (TypeElement) Pattern() Pattern     { return PatternTypeElement }
func (Opposites) Pattern() Pattern       { return PatternOpposites }
func (FullDiversity) Pattern() Pattern   { return PatternFullDiversity }
func (u Unknown) Pattern() Pattern       { return u.Name }

func (TypeThreshold) isRequirement()   {}
func (ElementMatching) isRequirement() {}
func (BiomeHarmony) isRequirement()    {}
func (FamilyThreshold) isRequirement() {}
func (AllSameType) isRequirement()     {}
func (ElementCombo) isRequirement()    {}
func (TypeElement) isRequirement()     {}
func (Opposites) isRequirement()       {}
func (FullDiversity) isRequirement()   {}
func (Unknown) isRequirement()         {}
