package gear

import (
	"testing"

	"gear-optimizer/affix"
)

func testSetup() *Setup {
	var s Setup
	s[SlotArmor] = &Item{
		Name:     "Bone Armor",
		Sets:     []string{"Dread Bone"},
		Affixes:  []affix.Affix{affix.New("Physical Sheltering", "Enhancement", 30)},
		Crafting: []string{"Blue Augment Slot", "Random Effect"},
	}
	s[SlotHelm] = &Item{
		Name:     "Bone Helm",
		Sets:     []string{"Dread Bone"},
		Crafting: []string{"Yellow Augment Slot", "Isle Augment"},
	}
	return &s
}

func TestSetMembershipsAndBonuses(t *testing.T) {
	s := testSetup()
	sel := NewSelections(s)
	sel[SlotHelm][1].Option = &CraftingOption{Name: "Bone Gem", Set: "Dread Bone"}

	m := SetMemberships(s, sel)
	if m["Dread Bone"] != 3 {
		t.Fatalf("memberships = %v", m)
	}

	sets := SetsData{
		"Dread Bone": {
			{Threshold: 2, Affixes: []affix.Affix{affix.New("Strength", "Profane", 2)}},
			{Threshold: 3, Affixes: []affix.Affix{affix.New("Dexterity", "Profane", 3)}},
			{Threshold: 4, Affixes: []affix.Affix{affix.New("Wisdom", "Profane", 4)}},
		},
	}
	c := affix.Combine(SetBonusAffixes(m, sets))
	if c.Total("Strength", false) != 2 || c.Total("Dexterity", false) != 3 || c.Total("Wisdom", false) != 0 {
		t.Errorf("set bonuses = %v", c.Names())
	}
	if got := SetBonusAffixes(map[string]int{"Unknown": 9}, sets); len(got) != 0 {
		t.Errorf("unknown set = %v", got)
	}

	all := affix.Combine(SetupAffixes(s, sel, sets))
	if all.Total("Physical Sheltering", false) != 30 || all.Total("Dexterity", false) != 3 {
		t.Errorf("setup affixes = %v", all.Names())
	}
}

func TestCraftingAffixes(t *testing.T) {
	s := testSetup()
	sel := NewSelections(s)
	if len(sel[SlotArmor]) != 2 || sel[SlotArmor][1].SlotType != "Random Effect" {
		t.Fatalf("selections not aligned: %v", sel[SlotArmor])
	}
	sel[SlotArmor][0].Option = &CraftingOption{Name: "Sapphire", Affixes: []affix.Affix{affix.New("Doublestrike", "Enhancement", 6)}}
	got := CraftingAffixes(s, sel)
	if len(got) != 1 || got[0].Name != "Doublestrike" {
		t.Errorf("CraftingAffixes = %v", got)
	}
}

func TestCountAugmentSlots(t *testing.T) {
	s := testSetup()
	if got := CountAugmentSlots(s); got != 2 {
		t.Errorf("CountAugmentSlots = %d, want 2", got)
	}
	sel := NewSelections(s)
	sel[SlotHelm][0].Option = &CraftingOption{Name: "Topaz"}
	if got := CountUnusedAugmentSlots(s, sel); got != 1 {
		t.Errorf("CountUnusedAugmentSlots = %d, want 1", got)
	}
	if got := CountUnusedAugmentSlots(s, Selections{}); got != 2 {
		t.Errorf("unused with no selections = %d, want 2", got)
	}
}
