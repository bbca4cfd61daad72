package gear

import (
	"math"
	"testing"

	"gear-optimizer/affix"
)

func selectedNames(sel Selections, k SlotKey) []string {
	out := make([]string, len(sel[k]))
	for i, s := range sel[k] {
		if s.Option != nil {
			out[i] = s.Option.Name
		}
	}
	return out
}

func countFilled(sel Selections) int {
	n := 0
	for _, row := range sel {
		for _, s := range row {
			if s.Option != nil {
				n++
			}
		}
	}
	return n
}

func TestAutoSelectEndToEnd(t *testing.T) {
	var setup Setup
	setup[SlotRing1] = &Item{Name: "Ring of Deadliness", ML: 20, Slot: "Ring", Crafting: []string{"Blue Augment Slot"}}
	data := CraftingData{
		"Blue Augment Slot": {
			AnyItem: {
				opt("Deadly+6", affix.New("Doublestrike", "Enhancement", 6)),
				opt("Deadly+3", affix.New("Doublestrike", "Enhancement", 3)),
			},
		},
	}
	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Doublestrike"}})

	got := selectedNames(sel, SlotRing1)
	if len(got) != 1 || got[0] != "Deadly+6" {
		t.Fatalf("ring1 = %v, want [Deadly+6]", got)
	}
	if sel[SlotRing1][0].SlotType != "Blue Augment Slot" {
		t.Errorf("slot type = %q", sel[SlotRing1][0].SlotType)
	}
}

func TestAutoSelectAvoidsRedundancy(t *testing.T) {
	var setup Setup
	setup[SlotRing1] = &Item{Name: "Ring", ML: 20, Crafting: []string{"Yellow Augment Slot"}}
	setup[SlotRing2] = &Item{Name: "Ring", ML: 20, Crafting: []string{"Yellow Augment Slot"}}
	data := CraftingData{
		"Yellow Augment Slot": {
			AnyItem: {opt("Topaz of Accuracy", affix.New("Accuracy", "Enhancement", 10))},
		},
	}
	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Accuracy"}})
	if n := countFilled(sel); n != 1 {
		t.Fatalf("filled = %d, want 1", n)
	}
	if sel[SlotRing1][0].Option == nil || sel[SlotRing2][0].Option != nil {
		t.Errorf("ring1 = %v, ring2 = %v", sel[SlotRing1][0].Option, sel[SlotRing2][0].Option)
	}
}

func TestAutoSelectRespectsBaseAffixes(t *testing.T) {
	var setup Setup
	setup[SlotHelm] = &Item{Name: "Helm", ML: 20, Crafting: []string{"Blue Augment Slot", "Green Augment Slot"}}
	data := CraftingData{
		"Blue Augment Slot":  {AnyItem: {opt("Sapphire of Deadly +6", affix.New("Doublestrike", "Enhancement", 6))}},
		"Green Augment Slot": {AnyItem: {opt("Emerald of Insightful Deadly", affix.New("Doublestrike", "Insight", 3))}},
	}
	sel := AutoSelect(AutoSelectInput{
		Setup:       &setup,
		Crafting:    data,
		Priorities:  []string{"Doublestrike"},
		BaseAffixes: []affix.Affix{affix.New("Doublestrike", "Enhancement", 8)},
	})
	got := selectedNames(sel, SlotHelm)
	// The +6 enhancement is shadowed by the item's +8; the insight bonus is new.
	// The green socket also accepts the blue augment, but the insight one is
	// the only one adding value there.
	if got[0] != "" {
		t.Errorf("blue socket = %q, want empty", got[0])
	}
	if got[1] != "Emerald of Insightful Deadly" {
		t.Errorf("green socket = %q", got[1])
	}
}

func TestAutoSelectSetThreshold(t *testing.T) {
	var setup Setup
	for _, k := range []SlotKey{SlotBelt, SlotBoots, SlotBracers, SlotCloak, SlotGloves} {
		setup[k] = &Item{Name: k.String(), ML: 30, Crafting: []string{"Isle Augment"}}
	}
	data := CraftingData{
		"Isle Augment": {AnyItem: {{Name: "Dinosaur Bone Gem", Set: "Dread Bone"}}},
	}
	sets := SetsData{
		"Dread Bone": {
			{Threshold: 3, Affixes: []affix.Affix{affix.New("Strength", "Profane", 3)}},
			{Threshold: 5, Affixes: []affix.Affix{affix.New("Strength", "Profane", 5)}},
		},
	}

	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, Sets: sets})
	if n := countFilled(sel); n != 3 {
		t.Errorf("relevant set filled %d sockets, want 3", n)
	}
	if got := SetMemberships(&setup, sel)["Dread Bone"]; got != 3 {
		t.Errorf("memberships = %d, want 3", got)
	}

	sel = AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Dexterity"}, Sets: sets})
	if n := countFilled(sel); n != 0 {
		t.Errorf("irrelevant set filled %d sockets, want 0", n)
	}

	sel = AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, Sets: sets, ExcludeSetOptions: true})
	if n := countFilled(sel); n != 0 {
		t.Errorf("excluded set options filled %d sockets, want 0", n)
	}
}

func TestAutoSelectUnlockedSetBonusIsCovered(t *testing.T) {
	var setup Setup
	for _, k := range []SlotKey{SlotBelt, SlotBoots, SlotBracers} {
		setup[k] = &Item{Name: k.String(), ML: 30, Crafting: []string{"Isle Augment"}}
	}
	setup[SlotHelm] = &Item{Name: "Helm", ML: 30, Crafting: []string{"Red Augment Slot"}}
	data := CraftingData{
		"Isle Augment":     {AnyItem: {{Name: "Dinosaur Bone Gem", Set: "Dread Bone"}}},
		"Red Augment Slot": {AnyItem: {opt("Ruby of Profane Might", affix.New("Strength", "Profane", 3))}},
	}
	sets := SetsData{"Dread Bone": {{Threshold: 3, Affixes: []affix.Affix{affix.New("Strength", "Profane", 3)}}}}

	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, Sets: sets})
	if got := SetMemberships(&setup, sel)["Dread Bone"]; got != 3 {
		t.Fatalf("memberships = %d, want 3", got)
	}
	// the set bonus already grants Profane +3, so the ruby adds nothing
	if got := selectedNames(sel, SlotHelm); got[0] != "" {
		t.Errorf("helm = %q, want empty", got)
	}

	// a bigger bonus of the same type is still worth a socket
	data["Red Augment Slot"] = map[string][]CraftingOption{
		AnyItem: {opt("Ruby of Greater Profane Might", affix.New("Strength", "Profane", 5))},
	}
	sel = AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, Sets: sets})
	if got := selectedNames(sel, SlotHelm); got[0] != "Ruby of Greater Profane Might" {
		t.Errorf("helm = %q, want the +5 ruby", got)
	}
}

func TestAutoSelectSetBonusSocketUnlocksBonus(t *testing.T) {
	var setup Setup
	setup[SlotArmor] = &Item{Name: "Bone Armor", Sets: []string{"Dread Bone"}}
	setup[SlotNecklace] = &Item{Name: "Necklace", ML: 30, Crafting: []string{"Legendary Set Bonus", "Red Augment Slot"}}
	data := CraftingData{
		"Legendary Set Bonus": {AnyItem: {{Name: "Legendary Dread Bone", Set: "Dread Bone",
			Affixes: []affix.Affix{affix.New("Melee Power", "Legendary", 5)}}}},
		"Red Augment Slot": {AnyItem: {opt("Ruby of Profane Might", affix.New("Strength", "Profane", 3))}},
	}
	sets := SetsData{"Dread Bone": {{Threshold: 2, Affixes: []affix.Affix{affix.New("Strength", "Profane", 3)}}}}

	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength", "Melee Power"}, Sets: sets})
	got := selectedNames(sel, SlotNecklace)
	if got[0] != "Legendary Dread Bone" || got[1] != "" {
		t.Errorf("necklace = %q, want [Legendary Dread Bone, empty]", got)
	}
}

func TestAutoSelectIgnoresNonFiniteBase(t *testing.T) {
	var setup Setup
	setup[SlotRing1] = &Item{Name: "Ring", ML: 20, Crafting: []string{"Blue Augment Slot"}}
	data := CraftingData{
		"Blue Augment Slot": {AnyItem: {opt("Deadly+6", affix.New("Doublestrike", "Enhancement", 6))}},
	}
	sel := AutoSelect(AutoSelectInput{
		Setup:       &setup,
		Crafting:    data,
		Priorities:  []string{"Doublestrike"},
		BaseAffixes: []affix.Affix{affix.New("Doublestrike", "Enhancement", math.NaN())},
	})
	if got := selectedNames(sel, SlotRing1); got[0] != "Deadly+6" {
		t.Errorf("ring1 = %q, want [Deadly+6]", got)
	}
}

func TestAutoSelectSetCountsEquippedMembers(t *testing.T) {
	var setup Setup
	setup[SlotArmor] = &Item{Name: "Bone Armor", Sets: []string{"Dread Bone"}}
	setup[SlotHelm] = &Item{Name: "Bone Helm", Sets: []string{"Dread Bone"}}
	for _, k := range []SlotKey{SlotBelt, SlotBoots, SlotBracers} {
		setup[k] = &Item{Name: k.String(), Crafting: []string{"Isle Augment"}}
	}
	data := CraftingData{
		"Isle Augment": {AnyItem: {{Name: "Dinosaur Bone Gem", Set: "Dread Bone"}}},
	}
	sets := SetsData{"Dread Bone": {{Threshold: 3, Affixes: []affix.Affix{affix.New("Strength", "Profane", 3)}}}}

	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, Sets: sets})
	if n := countFilled(sel); n != 1 {
		t.Errorf("filled = %d, want 1", n)
	}
}

func TestAutoSelectSetUnreachable(t *testing.T) {
	var setup Setup
	setup[SlotBelt] = &Item{Name: "Belt", Crafting: []string{"Isle Augment", "Isle Augment"}}
	data := CraftingData{
		"Isle Augment": {AnyItem: {{Name: "Dinosaur Bone Gem", Set: "Dread Bone"}}},
	}
	sets := SetsData{"Dread Bone": {{Threshold: 3, Affixes: []affix.Affix{affix.New("Strength", "Profane", 3)}}}}
	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, Sets: sets})
	if n := countFilled(sel); n != 0 {
		t.Errorf("filled = %d, want 0", n)
	}
}

func TestAutoSelectSetBonusSocket(t *testing.T) {
	var setup Setup
	setup[SlotNecklace] = &Item{Name: "Necklace", ML: 30, Crafting: []string{"Legendary Set Bonus", "Blue Augment Slot"}}
	data := CraftingData{
		"Legendary Set Bonus": {AnyItem: {
			{Name: "Legendary Dread Bone", Set: "Dread Bone", Affixes: []affix.Affix{affix.New("Strength", "Enhancement", 4)}},
			{Name: "Legendary Wisdom", Affixes: []affix.Affix{affix.New("Wisdom", "Enhancement", 9)}},
		}},
		"Blue Augment Slot": {AnyItem: {opt("Sapphire of Strength", affix.New("Strength", "Enhancement", 4))}},
	}
	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}})
	got := selectedNames(sel, SlotNecklace)
	if got[0] != "Legendary Dread Bone" {
		t.Errorf("set bonus socket = %q", got[0])
	}
	if got[1] != "" {
		t.Errorf("augment = %q, want empty (already covered)", got[1])
	}

	sel = AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Strength"}, ExcludeSetOptions: true})
	got = selectedNames(sel, SlotNecklace)
	if got[0] != "" || got[1] != "Sapphire of Strength" {
		t.Errorf("excluding sets = %v", got)
	}
}

func TestAutoSelectNeverFillsRandomSockets(t *testing.T) {
	var setup Setup
	setup[SlotTrinket] = &Item{Name: "Trinket", Crafting: []string{"Random Set Bonus", "Random Effect", "Nearly Finished"}}
	useful := []CraftingOption{opt("Power", affix.New("Melee Power", "Enhancement", 20))}
	data := CraftingData{
		"Random Set Bonus": {AnyItem: useful},
		"Random Effect":    {AnyItem: useful},
		"Nearly Finished":  {AnyItem: useful},
	}
	sel := AutoSelect(AutoSelectInput{Setup: &setup, Crafting: data, Priorities: []string{"Melee Power"}})
	if sel[SlotTrinket][0].Option != nil || sel[SlotTrinket][1].Option != nil {
		t.Error("random socket filled")
	}
	if sel[SlotTrinket][2].Option == nil {
		t.Error("affix selection socket left empty")
	}
	if len(sel[SlotTrinket]) != 3 {
		t.Errorf("selection length = %d, want 3", len(sel[SlotTrinket]))
	}
}

func TestAutoSelectEmptySetup(t *testing.T) {
	sel := AutoSelect(AutoSelectInput{})
	if countFilled(sel) != 0 {
		t.Error("nil setup produced selections")
	}
	var setup Setup
	sel = AutoSelect(AutoSelectInput{Setup: &setup, Priorities: []string{"Strength"}})
	for _, row := range sel {
		if row != nil {
			t.Error("empty slot has selections")
		}
	}
}
