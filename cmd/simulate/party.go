package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

// parseParty reads a comma separated list of type:element:biome:power[:family].
// Monster IDs are assigned by position (m1, m2, ...). Family defaults to the type.
func parseParty(list string) ([]monster.Monster, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	party := make([]monster.Monster, 0, len(parts))
	for i, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 4 && len(fields) != 5 {
			return nil, fmt.Errorf("monster %d: expected type:element:biome:power[:family], got %q", i+1, part)
		}

		power, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("monster %d: invalid power %q: %w", i+1, fields[3], err)
		}
		if power < 0 {
			return nil, fmt.Errorf("monster %d: power must be non-negative", i+1)
		}

		m := monster.Monster{
			ID:        fmt.Sprintf("m%d", i+1),
			Type:      shared.MonsterType(strings.ToLower(fields[0])),
			Element:   shared.Element(strings.ToLower(fields[1])),
			Biome:     shared.Biome(strings.ToLower(fields[2])),
			Family:    strings.ToLower(fields[0]),
			BasePower: power,
		}
		if len(fields) == 5 && fields[4] != "" {
			m.Family = fields[4]
		}
		party = append(party, m)
	}

	return party, nil
}
