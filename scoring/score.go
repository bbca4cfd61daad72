package scoring

import (
	"slices"

	"gear-optimizer/affix"
	"gear-optimizer/gear"
)

// weights maps each listed property to n-i for the i-th of n entries.
func weights(priorities []string) map[string]float64 {
	w := make(map[string]float64, len(priorities))
	for i, p := range priorities {
		p = affix.Normalize(p)
		if _, dup := w[p]; !dup {
			w[p] = float64(len(priorities) - i)
		}
	}
	return w
}

// CalculateScore returns the weighted sum of priority property totals granted
// by a loadout, set bonuses included. Crafting sockets are not counted.
func CalculateScore(s *gear.Setup, priorities []string, sets gear.SetsData) float64 {
	c := affix.Combine(gear.SetupAffixes(s, gear.Selections{}, sets))
	return WeightedTotal(c, priorities)
}

// WeightedTotal sums each listed property's total times its priority weight.
func WeightedTotal(c affix.Combined, priorities []string) float64 {
	var score float64
	for p, w := range weights(priorities) {
		score += c.Total(p, false) * w
	}
	return score
}

// extraProperties counts aggregated properties that are not on the priority
// list, directly or through a listed composite.
func extraProperties(c affix.Combined, priorities []string) int {
	w := weights(priorities)
	n := 0
	for _, name := range c.Names() {
		if w[name] > 0 {
			continue
		}
		listed := false
		for _, parent := range affix.Composites(name) {
			if w[parent] > 0 {
				listed = true
				break
			}
		}
		if !listed {
			n++
		}
	}
	return n
}

// itemContribution is the unweighted sum of the priority totals one item grants.
func itemContribution(it *gear.Item, priorities []string) float64 {
	c := affix.Combine(it.Affixes)
	var sum float64
	for p := range weights(priorities) {
		sum += c.Total(p, false)
	}
	return sum
}

// AllAvailableProperties returns the sorted names of every numeric property
// offered by items or crafting options.
func AllAvailableProperties(items []gear.Item, crafting gear.CraftingData) []string {
	seen := make(map[string]bool)
	add := func(list []affix.Affix) {
		for _, a := range list {
			if !a.Type.IsBool() {
				seen[affix.Normalize(a.Name)] = true
			}
		}
	}
	for i := range items {
		add(items[i].Affixes)
	}
	for _, byItem := range crafting {
		for _, opts := range byItem {
			for _, o := range opts {
				add(o.Affixes)
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
