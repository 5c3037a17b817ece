package loot

import (
	"github.com/KirkDiggler/expedition-rewards/internal/domain/shared"
)

// DefaultEntryWeight is the flat weight of every entry in a synthesized table
const DefaultEntryWeight = 10.0

// DefaultDifficulty labels synthesized tables whose subzone is unknown
const DefaultDifficulty = shared.DifficultyEasy

// Entry is one possible outcome of a drop roll
type Entry struct {
	Slot   shared.Slot
	Rarity shared.Rarity
	Weight float64 // relative weight within its rarity bucket
}

// TableKey identifies the loot table of a subzone
type TableKey struct {
	ZoneID    string
	SubzoneID string
}

// Table is the weighted catalog of outcomes for one zone/subzone
type Table struct {
	ZoneID     string
	SubzoneID  string
	Difficulty shared.Difficulty
	Entries    []Entry
	Synthetic  bool // true when built by DefaultTable
}

// Key returns the lookup key of the table
func (t *Table) Key() TableKey {
	return TableKey{ZoneID: t.ZoneID, SubzoneID: t.SubzoneID}
}

// TableSource finds configured loot tables
type TableSource interface {
	LootTable(zoneID, subzoneID string) (*Table, bool)
}

// TableSet is an in-memory TableSource
type TableSet map[TableKey]Table

// LootTable implements TableSource. The returned table is a copy.
func (s TableSet) LootTable(zoneID, subzoneID string) (*Table, bool) {
	t, ok := s[TableKey{ZoneID: zoneID, SubzoneID: subzoneID}]
	if !ok {
		return nil, false
	}
	t.Entries = append([]Entry{}, t.Entries...)
	return &t, true
}

// Add stores a table under its key, replacing any previous table
func (s TableSet) Add(t Table) {
	s[t.Key()] = t
}

// DefaultTable synthesizes a table covering every slot and rarity at a flat
// weight. The tier rarity weights decide what can actually drop.
func DefaultTable(zoneID, subzoneID string, difficulty shared.Difficulty) *Table {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	slots := shared.AllSlots()
	rarities := shared.AllRarities()
	entries := make([]Entry, 0, len(slots)*len(rarities))
	for _, slot := range slots {
		for _, rarity := range rarities {
			entries = append(entries, Entry{Slot: slot, Rarity: rarity, Weight: DefaultEntryWeight})
		}
	}

	return &Table{
		ZoneID:     zoneID,
		SubzoneID:  subzoneID,
		Difficulty: difficulty,
		Entries:    entries,
		Synthetic:  true,
	}
}

// BaseItemLevelForDifficulty is the item level floor of a subzone difficulty.
// Unknown labels use the easy floor.
func BaseItemLevelForDifficulty(d shared.Difficulty) int {
	switch d {
	case shared.DifficultyMedium:
		return 10
	case shared.DifficultyHard:
		return 15
	case shared.DifficultyExtreme:
		return 20
	default:
		return 5
	}
}

// MasteryDropRateBonus is the drop quantity multiplier for a mastery level.
// It steps at 33, 66 and 100 and is never interpolated.
func MasteryDropRateBonus(masteryLevel int) float64 {
	switch {
	case masteryLevel >= 100:
		return 1.5
	case masteryLevel >= 66:
		return 1.3
	case masteryLevel >= 33:
		return 1.15
	default:
		return 1.0
	}
}
