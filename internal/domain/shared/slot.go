package shared

// Slot is an equipment slot a drop can fill
type Slot string

const (
	SlotWeapon  Slot = "weapon"
	SlotOffHand Slot = "offhand"
	SlotHelmet  Slot = "helmet"
	SlotChest   Slot = "chest"
	SlotGloves  Slot = "gloves"
	SlotBoots   Slot = "boots"
	SlotRing    Slot = "ring"
	SlotAmulet  Slot = "amulet"
)

// AllSlots lists every equipment slot in display order
func AllSlots() []Slot {
	return []Slot{
		SlotWeapon,
		SlotOffHand,
		SlotHelmet,
		SlotChest,
		SlotGloves,
		SlotBoots,
		SlotRing,
		SlotAmulet,
	}
}

// IsValid reports whether the slot is one of the known slots
func (s Slot) IsValid() bool {
	for _, known := range AllSlots() {
		if s == known {
			return true
		}
	}
	return false
}
