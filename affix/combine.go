package affix

import (
	"math"
	"slices"
)

// PropertyValue is the aggregated value of one property. Bonuses holds the
// highest value seen per bonus type; Total is their sum.
type PropertyValue struct {
	Name    string
	Bonuses map[string]float64
	Total   float64
}

// Combined maps property name to its aggregated value.
type Combined map[string]*PropertyValue

// Combine aggregates affixes under the stacking rules: same-type bonuses to one
// property keep only the maximum, different types add up. Composite
// properties are expanded first, boolean and non-finite values are skipped.
func Combine(list []Affix) Combined {
	c := make(Combined)
	for _, a := range list {
		for _, e := range Expand(a) {
			c.add(e)
		}
	}
	for _, pv := range c {
		pv.Total = 0
		for _, v := range pv.Bonuses {
			pv.Total += v
		}
	}
	return c
}

func (c Combined) add(a Affix) {
	if !a.Numeric() {
		return
	}
	pv, ok := c[a.Name]
	if !ok {
		pv = &PropertyValue{Name: a.Name, Bonuses: make(map[string]float64)}
		c[a.Name] = pv
	}
	bt := a.Type.BonusType()
	if cur, ok := pv.Bonuses[bt]; !ok || a.Value > cur {
		pv.Bonuses[bt] = a.Value
	}
}

func (c Combined) plainTotal(name string) float64 {
	if pv, ok := c[name]; ok {
		return pv.Total
	}
	return 0
}

// Total returns the value of a property. For a composite property it returns
// the sum of component totals, or the lowest component total when forDisplay
// is set (the value every component is guaranteed to have).
func (c Combined) Total(name string, forDisplay bool) float64 {
	name = Normalize(name)
	comps, ok := complexProperties[name]
	if !ok {
		return c.plainTotal(name)
	}
	if forDisplay {
		lo := math.Inf(1)
		for _, comp := range comps {
			lo = math.Min(lo, c.plainTotal(comp))
		}
		return lo
	}
	var sum float64
	for _, comp := range comps {
		sum += c.plainTotal(comp)
	}
	return sum
}

// Breakdown returns the per-bonus-type values of a property. For a composite
// property each bonus type carries its lowest value across components; types
// missing from any component are left out.
func (c Combined) Breakdown(name string) map[string]float64 {
	name = Normalize(name)
	comps, ok := complexProperties[name]
	if !ok {
		out := make(map[string]float64)
		if pv, ok := c[name]; ok {
			for bt, v := range pv.Bonuses {
				out[bt] = v
			}
		}
		return out
	}

	out := make(map[string]float64)
	first, ok := c[comps[0]]
	if !ok {
		return out
	}
	for bt, v := range first.Bonuses {
		lo := v
		for _, comp := range comps[1:] {
			pv, ok := c[comp]
			if !ok {
				lo = 0
				break
			}
			cv, ok := pv.Bonuses[bt]
			if !ok {
				lo = 0
				break
			}
			lo = math.Min(lo, cv)
		}
		if lo != 0 {
			out[bt] = lo
		}
	}
	return out
}

// Names returns the aggregated property names in sorted order.
func (c Combined) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
