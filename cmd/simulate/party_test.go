package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

func TestParseParty(t *testing.T) {
	party, err := parseParty("beast:physical:forest:120, dragon:fire:volcanic:300:wyrm")
	require.NoError(t, err)
	require.Len(t, party, 2)

	assert.Equal(t, "m1", party[0].ID)
	assert.Equal(t, shared.MonsterTypeBeast, party[0].Type)
	assert.Equal(t, shared.ElementPhysical, party[0].Element)
	assert.Equal(t, shared.BiomeForest, party[0].Biome)
	assert.Equal(t, "beast", party[0].Family)
	assert.Equal(t, 120, party[0].BasePower)

	assert.Equal(t, "m2", party[1].ID)
	assert.Equal(t, "wyrm", party[1].Family)
	assert.Equal(t, 300, party[1].BasePower)
}

func TestParseParty_Empty(t *testing.T) {
	party, err := parseParty("  ")
	require.NoError(t, err)
	assert.Empty(t, party)
}

func TestParseParty_Errors(t *testing.T) {
	tests := []struct {
		name string
		list string
	}{
		{name: "too few fields", list: "beast:physical:forest"},
		{name: "too many fields", list: "beast:physical:forest:10:a:b"},
		{name: "bad power", list: "beast:physical:forest:lots"},
		{name: "negative power", list: "beast:physical:forest:-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseParty(tt.list)
			assert.Error(t, err)
		})
	}
}
