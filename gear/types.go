package gear

import (
	"strings"

	"gear-optimizer/affix"
)

// SlotKey identifies one of the fixed equipment slots of a loadout.
type SlotKey int

const (
	SlotArmor SlotKey = iota
	SlotMainHand
	SlotOffHand
	SlotBelt
	SlotBoots
	SlotBracers
	SlotCloak
	SlotGloves
	SlotGoggles
	SlotHelm
	SlotNecklace
	SlotRing1
	SlotRing2
	SlotTrinket

	SlotCount
)

var slotNames = [SlotCount]string{
	"armor", "mainHand", "offHand", "belt", "boots", "bracers", "cloak",
	"gloves", "goggles", "helm", "necklace", "ring1", "ring2", "trinket",
}

func (k SlotKey) String() string {
	if k < 0 || k >= SlotCount {
		return "unknown"
	}
	return slotNames[k]
}

// ParseSlotKey maps a loadout key such as "mainHand" or "ring2".
func ParseSlotKey(s string) (SlotKey, bool) {
	for k, name := range slotNames {
		if strings.EqualFold(s, name) {
			return SlotKey(k), true
		}
	}
	return 0, false
}

// AllSlots lists the slot keys in loadout order.
func AllSlots() []SlotKey {
	out := make([]SlotKey, SlotCount)
	for i := range out {
		out[i] = SlotKey(i)
	}
	return out
}

// SlotsFor returns the loadout slots an item of the given catalog slot can
// occupy. Rings fit either ring slot; weapons fit the main hand.
func SlotsFor(itemSlot string) []SlotKey {
	switch strings.ToLower(strings.TrimSpace(itemSlot)) {
	case "ring", "ring1", "ring2", "finger":
		return []SlotKey{SlotRing1, SlotRing2}
	case "weapon", "mainhand", "main hand":
		return []SlotKey{SlotMainHand}
	case "offhand", "off hand", "shield", "orb", "runearm":
		return []SlotKey{SlotOffHand}
	case "neck", "necklace":
		return []SlotKey{SlotNecklace}
	case "wrist", "wrists", "bracers":
		return []SlotKey{SlotBracers}
	case "eyes", "goggles":
		return []SlotKey{SlotGoggles}
	case "head", "helm", "helmet":
		return []SlotKey{SlotHelm}
	case "feet", "boots":
		return []SlotKey{SlotBoots}
	case "hands", "gloves":
		return []SlotKey{SlotGloves}
	case "back", "cloak":
		return []SlotKey{SlotCloak}
	case "waist", "belt":
		return []SlotKey{SlotBelt}
	case "body", "armor":
		return []SlotKey{SlotArmor}
	case "trinket":
		return []SlotKey{SlotTrinket}
	}
	return nil
}

// Item is an equippable piece of gear.
type Item struct {
	Name     string
	ML       int
	Slot     string
	Affixes  []affix.Affix
	Crafting []string // socket types, in order
	Sets     []string
	Artifact bool
}

// CraftingOption is one choice for a crafting socket. Selecting an option
// with Set grants membership in that set.
type CraftingOption struct {
	Name    string
	ML      int // 0 = no level requirement
	Affixes []affix.Affix
	Set     string
}

// AnyItem keys crafting options usable on every item.
const AnyItem = "*"

// CraftingData maps socket type -> item name (or AnyItem) -> options.
type CraftingData map[string]map[string][]CraftingOption

// SetBonus is the reward for reaching Threshold members of a set.
type SetBonus struct {
	Threshold int
	Affixes   []affix.Affix
}

// SetsData maps set name to its bonuses, lowest threshold first.
type SetsData map[string][]SetBonus

// Setup is a loadout: at most one item per slot.
type Setup [SlotCount]*Item

// Selection is the chosen option for one socket. Option is nil when the
// socket is left empty.
type Selection struct {
	SlotType string
	Option   *CraftingOption
}

// Selections holds, per slot, one Selection per socket of the equipped item.
type Selections [SlotCount][]Selection

// NewSelections returns empty selections index-aligned with every equipped
// item's sockets.
func NewSelections(s *Setup) Selections {
	var sel Selections
	for k, it := range s {
		if it == nil {
			continue
		}
		row := make([]Selection, len(it.Crafting))
		for i, st := range it.Crafting {
			row[i] = Selection{SlotType: st}
		}
		sel[k] = row
	}
	return sel
}
