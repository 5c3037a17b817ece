package synergy

import (
	"slices"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

const (
	defaultThresholdCount = 3
	defaultTypeCount      = 1
	minDiversityParty     = 3
)

// MatchResult is the outcome of checking one requirement against a party
type MatchResult struct {
	Matches         bool
	ContributingIDs []string
}

func noMatch() MatchResult {
	return MatchResult{Matches: false, ContributingIDs: []string{}}
}

func matched(ids []string) MatchResult {
	return MatchResult{Matches: true, ContributingIDs: ids}
}

// Match checks a requirement against the full monster list
func Match(req Requirement, monsters []monster.Monster) MatchResult {
	if req == nil || len(monsters) == 0 {
		return noMatch()
	}

	switch r := req.(type) {
	case TypeThreshold:
		return matchTypeThreshold(r, monsters)
	case ElementMatching:
		return matchElementMatching(r, monsters)
	case BiomeHarmony:
		return matchBiomeHarmony(r, monsters)
	case FamilyThreshold:
		return matchFamilyThreshold(r, monsters)
	case AllSameType:
		return matchAllSameType(r, monsters)
	case ElementCombo:
		return matchElementsPresent(r.Elements, monsters)
	case TypeElement:
		return matchTypeElement(r, monsters)
	case Opposites:
		return matchElementsPresent(r.Elements, monsters)
	case FullDiversity:
		return matchFullDiversity(r, monsters)
	case Unknown:
		return noMatch()
	default:
		return noMatch()
	}
}

func minCountOr(count, fallback int) int {
	if count <= 0 {
		return fallback
	}
	return count
}

func matchTypeThreshold(r TypeThreshold, monsters []monster.Monster) MatchResult {
	if len(r.Types) == 0 {
		return noMatch()
	}

	ids := idsWhere(monsters, func(m monster.Monster) bool {
		return slices.Contains(r.Types, m.Type)
	})
	if len(ids) < minCountOr(r.MinCount, defaultThresholdCount) {
		return noMatch()
	}
	return matched(ids)
}

func matchElementMatching(r ElementMatching, monsters []monster.Monster) MatchResult {
	order := []shared.Element{}
	groups := map[shared.Element][]string{}
	for _, m := range monsters {
		if _, seen := groups[m.Element]; !seen {
			order = append(order, m.Element)
		}
		groups[m.Element] = append(groups[m.Element], m.ID)
	}

	// First group at or above the threshold wins; ties are not broken.
	need := minCountOr(r.MinCount, defaultThresholdCount)
	for _, element := range order {
		if len(groups[element]) >= need {
			return matched(groups[element])
		}
	}
	return noMatch()
}

func matchBiomeHarmony(r BiomeHarmony, monsters []monster.Monster) MatchResult {
	partySize := len(monsters)
	need := minCountOr(r.MinCount, partySize)

	if len(r.Biomes) > 0 {
		ids := idsWhere(monsters, func(m monster.Monster) bool {
			return slices.Contains(r.Biomes, m.Biome)
		})
		if len(ids) >= need && len(ids) == partySize {
			return matched(ids)
		}
		return noMatch()
	}

	common := monsters[0].Biome
	for _, m := range monsters[1:] {
		if m.Biome != common {
			return noMatch()
		}
	}
	if partySize < need {
		return noMatch()
	}
	return matched(monster.Party(monsters).IDs())
}

func matchFamilyThreshold(r FamilyThreshold, monsters []monster.Monster) MatchResult {
	if len(r.Families) == 0 {
		return noMatch()
	}

	ids := idsWhere(monsters, func(m monster.Monster) bool {
		return slices.Contains(r.Families, m.Family)
	})
	if len(ids) < minCountOr(r.MinCount, defaultThresholdCount) {
		return noMatch()
	}
	return matched(ids)
}

func matchAllSameType(r AllSameType, monsters []monster.Monster) MatchResult {
	if len(r.Types) == 0 {
		return noMatch()
	}

	for _, m := range monsters {
		if !slices.Contains(r.Types, m.Type) {
			return noMatch()
		}
	}
	if len(monsters) < minCountOr(r.MinCount, defaultTypeCount) {
		return noMatch()
	}
	return matched(monster.Party(monsters).IDs())
}

// matchElementsPresent credits the first monster found for each required element
func matchElementsPresent(elements []shared.Element, monsters []monster.Monster) MatchResult {
	if len(elements) == 0 {
		return noMatch()
	}

	ids := make([]string, 0, len(elements))
	credited := map[string]bool{}
	for _, element := range elements {
		found := false
		for _, m := range monsters {
			if m.Element == element {
				if !credited[m.ID] {
					credited[m.ID] = true
					ids = append(ids, m.ID)
				}
				found = true
				break
			}
		}
		if !found {
			return noMatch()
		}
	}
	return matched(ids)
}

func matchTypeElement(r TypeElement, monsters []monster.Monster) MatchResult {
	if len(r.Types) == 0 || len(r.Elements) == 0 {
		return noMatch()
	}

	ids := idsWhere(monsters, func(m monster.Monster) bool {
		return slices.Contains(r.Types, m.Type) && slices.Contains(r.Elements, m.Element)
	})
	if len(ids) < minCountOr(r.MinCount, defaultTypeCount) {
		return noMatch()
	}
	return matched(ids)
}

func matchFullDiversity(r FullDiversity, monsters []monster.Monster) MatchResult {
	if !r.AllDifferentTypes || len(monsters) < minDiversityParty {
		return noMatch()
	}

	seen := map[shared.MonsterType]bool{}
	for _, m := range monsters {
		if seen[m.Type] {
			return noMatch()
		}
		seen[m.Type] = true
	}
	return matched(monster.Party(monsters).IDs())
}

func idsWhere(monsters []monster.Monster, keep func(monster.Monster) bool) []string {
	ids := []string{}
	for _, m := range monsters {
		if keep(m) {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
