// Package catalog loads the static synergy, tier and loot tables the reward
// engines read from.
package catalog

import (
	"cmp"
	_ "embed"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/expedition-rewards/internal/domain/loot"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/synergy"
	"github.com/KirkDiggler/expedition-rewards/internal/domain/tier"
	rwerr "github.com/KirkDiggler/expedition-rewards/internal/errors"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is a validated set of static tables
type Catalog struct {
	Synergies  []synergy.Definition
	Tiers      *tier.Catalog
	LootTables loot.TableSet
}

// LootTable implements loot.TableSource
func (c *Catalog) LootTable(zoneID, subzoneID string) (*loot.Table, bool) {
	if c.LootTables == nil {
		return nil, false
	}
	return c.LootTables.LootTable(zoneID, subzoneID)
}

// Synergy returns the definition with the given id
func (c *Catalog) Synergy(id string) (*synergy.Definition, bool) {
	i := slices.IndexFunc(c.Synergies, func(d synergy.Definition) bool { return d.ID == id })
	if i < 0 {
		return nil, false
	}
	def := c.Synergies[i]
	return &def, true
}

// Problems lists synergy definitions that can never match. They stay in the
// catalog and fail closed during evaluation.
func (c *Catalog) Problems() []error {
	var problems []error
	for i := range c.Synergies {
		if err := c.Synergies[i].Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	return problems
}

// File serializes the catalog. Loot tables are ordered by zone then subzone.
func (c *Catalog) File() *File {
	f := &File{
		Synergies:  make([]SynergyRecord, 0, len(c.Synergies)),
		Tiers:      []TierRecord{},
		LootTables: make([]LootTableRecord, 0, len(c.LootTables)),
	}

	for i := range c.Synergies {
		f.Synergies = append(f.Synergies, NewSynergyRecord(&c.Synergies[i]))
	}

	if c.Tiers != nil {
		for _, t := range c.Tiers.Tiers() {
			f.Tiers = append(f.Tiers, NewTierRecord(&t))
		}
	}

	for _, key := range SortedKeys(c.LootTables) {
		t := c.LootTables[key]
		f.LootTables = append(f.LootTables, NewLootTableRecord(&t))
	}

	return f
}

// FromFile validates a serialized catalog
func FromFile(f *File) (*Catalog, error) {
	if f == nil {
		return nil, rwerr.Validation("catalog is empty")
	}

	c := &Catalog{
		Synergies:  make([]synergy.Definition, 0, len(f.Synergies)),
		LootTables: loot.TableSet{},
	}

	seen := make(map[string]struct{}, len(f.Synergies))
	for i := range f.Synergies {
		def := f.Synergies[i].Definition()
		if def.ID == "" {
			return nil, rwerr.Validation("synergy at index %d has no id", i)
		}
		if _, dup := seen[def.ID]; dup {
			return nil, rwerr.Validation("duplicate synergy id %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		c.Synergies = append(c.Synergies, def)
	}

	tiers := make([]tier.DifficultyTier, 0, len(f.Tiers))
	for i := range f.Tiers {
		tiers = append(tiers, f.Tiers[i].DifficultyTier())
	}
	tierCatalog, err := tier.NewCatalog(tiers)
	if err != nil {
		return nil, rwerr.WrapWithCode(err, rwerr.CodeValidation, "invalid tiers")
	}
	c.Tiers = tierCatalog

	for i := range f.LootTables {
		table := f.LootTables[i].Table()
		if err := validateTable(&table); err != nil {
			return nil, err
		}
		if _, dup := c.LootTables[table.Key()]; dup {
			return nil, rwerr.Validation("duplicate loot table %s", Key(table.ZoneID, table.SubzoneID))
		}
		c.LootTables.Add(table)
	}

	return c, nil
}

func validateTable(t *loot.Table) error {
	if t.ZoneID == "" || t.SubzoneID == "" {
		return rwerr.Validation("loot table needs zone_id and subzone_id")
	}
	for _, e := range t.Entries {
		if !e.Slot.IsValid() {
			return rwerr.Validation("loot table %s: unknown slot %q", Key(t.ZoneID, t.SubzoneID), e.Slot).
				WithMeta("zone_id", t.ZoneID).
				WithMeta("subzone_id", t.SubzoneID)
		}
		if !e.Rarity.IsValid() {
			return rwerr.Validation("loot table %s: unknown rarity %q", Key(t.ZoneID, t.SubzoneID), e.Rarity).
				WithMeta("zone_id", t.ZoneID).
				WithMeta("subzone_id", t.SubzoneID)
		}
		if e.Weight < 0 {
			return rwerr.Validation("loot table %s: negative weight", Key(t.ZoneID, t.SubzoneID))
		}
	}
	return nil
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, rwerr.WrapWithCode(err, rwerr.CodeValidation, "failed to decode catalog")
	}
	return FromFile(&f)
}

// Load reads and validates a YAML catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rwerr.WrapWithCode(err, rwerr.CodeNotFound, "catalog file not found").
				WithMeta("path", path)
		}
		return nil, rwerr.Wrap(err, "failed to read catalog %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, rwerr.Wrap(err, "failed to parse catalog").WithMeta("path", path)
	}
	return c, nil
}

// Default returns the catalog shipped with the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Key is the "zone:subzone" form of a loot table key
func Key(zoneID, subzoneID string) string {
	return zoneID + ":" + subzoneID
}

// SortedKeys returns the table keys ordered by zone then subzone
func SortedKeys(tables loot.TableSet) []loot.TableKey {
	keys := make([]loot.TableKey, 0, len(tables))
	for key := range tables {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b loot.TableKey) int {
		if c := cmp.Compare(a.ZoneID, b.ZoneID); c != 0 {
			return c
		}
		return cmp.Compare(a.SubzoneID, b.SubzoneID)
	})
	return keys
}
