package gear

import "strings"

// Category is the kind of a crafting socket.
type Category int

const (
	AffixSelectionSlot Category = iota
	AugmentSlot
	SetBonusSlot
	RandomSlot
)

func (c Category) String() string {
	switch c {
	case AugmentSlot:
		return "augment"
	case SetBonusSlot:
		return "set bonus"
	case RandomSlot:
		return "random"
	}
	return "affix selection"
}

// augmentSlots lists the socket types of the nine augment colors.
var augmentSlots = map[string]Color{
	"Colorless Augment Slot": ColorColorless,
	"Red Augment Slot":       ColorRed,
	"Blue Augment Slot":      ColorBlue,
	"Yellow Augment Slot":    ColorYellow,
	"Green Augment Slot":     ColorGreen,
	"Purple Augment Slot":    ColorPurple,
	"Orange Augment Slot":    ColorOrange,
	"Moon Augment Slot":      ColorMoon,
	"Sun Augment Slot":       ColorSun,
}

// randomPrefixes mark sockets whose content is rolled, not chosen. Some of
// them also contain a set-bonus marker, so they are matched first.
var randomPrefixes = []string{
	"Random",
	"Choice of Random",
	"Mythic Random",
	"Reaper Random",
}

var setBonusMarkers = []string{
	"Set Bonus",
	"Set Augment",
	"Isle of Dread: Set",
	"Lamordia: Set",
	"Feywild: Set",
}

// Classify returns the category of a socket type. Rules are evaluated in order:
// augment colors, random prefixes, set-bonus markers, then affix selection.
func Classify(slotType string) Category {
	if _, ok := augmentSlots[slotType]; ok {
		return AugmentSlot
	}
	for _, p := range randomPrefixes {
		if strings.HasPrefix(slotType, p) {
			return RandomSlot
		}
	}
	for _, m := range setBonusMarkers {
		if strings.Contains(slotType, m) {
			return SetBonusSlot
		}
	}
	return AffixSelectionSlot
}

// IsAugment reports whether slotType is one of the colored augment sockets.
func IsAugment(slotType string) bool { return Classify(slotType) == AugmentSlot }

// IsSetBonus reports whether slotType grants a set bonus choice.
func IsSetBonus(slotType string) bool { return Classify(slotType) == SetBonusSlot }

// IsRandom reports whether slotType is rolled rather than chosen.
func IsRandom(slotType string) bool { return Classify(slotType) == RandomSlot }
