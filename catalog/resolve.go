package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"gear-optimizer/affix"
	"gear-optimizer/gear"
	"gear-optimizer/scoring"
)

// Resolved is a plan bound to catalog entries.
type Resolved struct {
	Plan       Plan
	Setup      gear.Setup
	Priorities []string
	// Notes lists fuzzy matches and names that could not be resolved.
	Notes []string
}

// Resolve binds a plan's item and property names to the catalog. Misspelled
// names are matched by edit distance; unknown items leave their slot empty and
// unknown properties are kept as written. Neither is an error.
func (c *Catalog) Resolve(p Plan) Resolved {
	r := Resolved{Plan: p}

	for _, k := range gear.AllSlots() {
		name, ok := lookupSlot(p.Loadout, k)
		if !ok || name == "" {
			continue
		}
		match, exact := matchName(name, c.names)
		if match == "" {
			r.Notes = append(r.Notes, fmt.Sprintf("%s: unknown item %q", k, name))
			continue
		}
		if !exact {
			r.Notes = append(r.Notes, fmt.Sprintf("%s: %q matched %q", k, name, match))
		}
		it, _ := c.Item(match)
		if !slices.Contains(gear.SlotsFor(it.Slot), k) {
			r.Notes = append(r.Notes, fmt.Sprintf("%s: %q is a %s item", k, it.Name, it.Slot))
		}
		if p.Level > 0 && it.ML > p.Level {
			r.Notes = append(r.Notes, fmt.Sprintf("%s: %q requires level %d", k, it.Name, it.ML))
		}
		r.Setup[k] = it
	}

	known := append(c.Properties(), affix.ComplexNames()...)
	for _, name := range p.Priorities {
		name = affix.Normalize(strings.TrimSpace(name))
		match, exact := matchName(name, known)
		switch {
		case match == "":
			r.Notes = append(r.Notes, fmt.Sprintf("priority %q matches no property", name))
			r.Priorities = append(r.Priorities, name)
		case !exact:
			r.Notes = append(r.Notes, fmt.Sprintf("priority %q matched %q", name, match))
			r.Priorities = append(r.Priorities, match)
		default:
			r.Priorities = append(r.Priorities, match)
		}
	}
	return r
}

// Properties returns every property name the catalog offers, composite
// properties included, sorted.
func (c *Catalog) Properties() []string {
	names := scoring.AllAvailableProperties(c.Items, c.Crafting)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, bonuses := range c.Sets {
		for _, b := range bonuses {
			for _, a := range b.Affixes {
				if n := affix.Normalize(a.Name); !a.Type.IsBool() && !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
			}
		}
	}
	for _, n := range slices.Clone(names) {
		for _, comp := range affix.Components(n) {
			if !seen[comp] {
				seen[comp] = true
				names = append(names, comp)
			}
		}
	}
	slices.Sort(names)
	return names
}

func lookupSlot(loadout map[string]string, k gear.SlotKey) (string, bool) {
	if v, ok := loadout[k.String()]; ok {
		return v, true
	}
	for key, v := range loadout {
		if strings.EqualFold(key, k.String()) {
			return v, true
		}
	}
	return "", false
}

// matchName finds name among candidates: exact, then case-insensitive, then
// the closest by edit distance within a length-scaled limit. Ties go to the
// first candidate.
func matchName(name string, candidates []string) (match string, exact bool) {
	if slices.Contains(candidates, name) {
		return name, true
	}
	lower := strings.ToLower(name)
	for _, c := range candidates {
		if strings.ToLower(c) == lower {
			return c, false
		}
	}
	if len(lower) < 3 {
		return "", false
	}
	best, bestDist := "", -1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if dist > levenshteinLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, false
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
