package gear

import (
	"math"

	"gear-optimizer/affix"
)

// CraftingAffixes returns the affixes of every selected crafting option.
func CraftingAffixes(s *Setup, sel Selections) []affix.Affix {
	var out []affix.Affix
	for k, it := range s {
		if it == nil {
			continue
		}
		for _, c := range sel[k] {
			if c.Option != nil {
				out = append(out, c.Option.Affixes...)
			}
		}
	}
	return out
}

// ItemAffixes returns the affixes granted directly by equipped items.
func ItemAffixes(s *Setup) []affix.Affix {
	var out []affix.Affix
	for _, it := range s {
		if it != nil {
			out = append(out, it.Affixes...)
		}
	}
	return out
}

// SetMemberships counts, per set, the equipped items listing it plus the
// selected options granting it.
func SetMemberships(s *Setup, sel Selections) map[string]int {
	counts := make(map[string]int)
	for k, it := range s {
		if it == nil {
			continue
		}
		for _, name := range it.Sets {
			counts[name]++
		}
		for _, c := range sel[k] {
			if c.Option != nil && c.Option.Set != "" {
				counts[c.Option.Set]++
			}
		}
	}
	return counts
}

// minThreshold returns the lowest positive threshold of a set, or false when
// the set has none.
func minThreshold(bonuses []SetBonus) (int, bool) {
	lo := math.MaxInt
	for _, b := range bonuses {
		if b.Threshold > 0 && b.Threshold < lo {
			lo = b.Threshold
		}
	}
	return lo, lo != math.MaxInt
}

// SetBonusAffixes returns the affixes of every set bonus whose threshold is
// met by the given membership counts. Sets missing from sets contribute nothing.
func SetBonusAffixes(memberships map[string]int, sets SetsData) []affix.Affix {
	var out []affix.Affix
	for name, n := range memberships {
		for _, b := range sets[name] {
			if b.Threshold > 0 && n >= b.Threshold {
				out = append(out, b.Affixes...)
			}
		}
	}
	return out
}

// SetupAffixes returns everything a loadout grants: item affixes, selected
// crafting affixes and unlocked set bonuses.
func SetupAffixes(s *Setup, sel Selections, sets SetsData) []affix.Affix {
	out := ItemAffixes(s)
	out = append(out, CraftingAffixes(s, sel)...)
	return append(out, SetBonusAffixes(SetMemberships(s, sel), sets)...)
}

// CountAugmentSlots counts the augment sockets across a loadout.
func CountAugmentSlots(s *Setup) int {
	n := 0
	for _, it := range s {
		if it == nil {
			continue
		}
		for _, st := range it.Crafting {
			if IsAugment(st) {
				n++
			}
		}
	}
	return n
}

// CountUnusedAugmentSlots counts augment sockets with no selected option.
func CountUnusedAugmentSlots(s *Setup, sel Selections) int {
	n := 0
	for k, it := range s {
		if it == nil {
			continue
		}
		for i, st := range it.Crafting {
			if !IsAugment(st) {
				continue
			}
			if i >= len(sel[k]) || sel[k][i].Option == nil {
				n++
			}
		}
	}
	return n
}
