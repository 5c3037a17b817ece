package monster_test

import (
	"testing"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/monster"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestParty_Helpers(t *testing.T) {
	party := monster.Party{
		{ID: "wolf-1", Type: shared.MonsterTypeBeast, BasePower: 40},
		{ID: "wolf-2", Type: shared.MonsterTypeBeast, BasePower: 35},
		{ID: "lich", Type: shared.MonsterTypeUndead, BasePower: 120},
	}

	assert.Equal(t, []string{"wolf-1", "wolf-2", "lich"}, party.IDs())
	assert.Equal(t, 195, party.TotalBasePower())
}

func TestParty_Empty(t *testing.T) {
	var party monster.Party

	assert.Empty(t, party.IDs())
	assert.Equal(t, 0, party.TotalBasePower())
}
