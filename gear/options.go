package gear

import "gear-optimizer/affix"

// priorities weighs properties by their position in an ordered list: the first
// of n entries weighs n, the last weighs 1.
type priorities struct {
	weight map[string]float64
}

func newPriorities(list []string) priorities {
	p := priorities{weight: make(map[string]float64, len(list))}
	for i, name := range list {
		name = affix.Normalize(name)
		if _, dup := p.weight[name]; dup {
			continue
		}
		p.weight[name] = float64(len(list) - i)
	}
	return p
}

// relevant reports whether a concrete (already expanded) property is listed,
// directly or through a composite that contains it.
func (p priorities) relevant(name string) bool {
	if p.weight[name] > 0 {
		return true
	}
	for _, parent := range affix.Composites(name) {
		if p.weight[parent] > 0 {
			return true
		}
	}
	return false
}

// score sums value * weight over the numeric affixes touching a listed
// property. A composite affix scores once if the composite itself is listed,
// otherwise once per listed component. A component that is not listed itself
// weighs as much as its heaviest listed composite.
func (p priorities) score(list []affix.Affix) float64 {
	var total float64
	for _, a := range list {
		if !a.Numeric() {
			continue
		}
		name := affix.Normalize(a.Name)
		if w := p.weight[name]; w > 0 {
			total += a.Value * w
			continue
		}
		if affix.IsComplex(name) {
			for _, comp := range affix.Components(name) {
				total += a.Value * p.weight[comp]
			}
			continue
		}
		total += a.Value * p.parentWeight(name)
	}
	return total
}

func (p priorities) parentWeight(name string) float64 {
	var w float64
	for _, parent := range affix.Composites(name) {
		w = max(w, p.weight[parent])
	}
	return w
}

func (p priorities) touches(list []affix.Affix) bool {
	for _, a := range affix.ExpandAll(list) {
		if !a.Type.IsBool() && p.relevant(a.Name) {
			return true
		}
	}
	return false
}

// FilterByML keeps the options an item of itemLevel can take: options without
// a level requirement and those with ML <= itemLevel.
func FilterByML(options []CraftingOption, itemLevel int) []CraftingOption {
	out := make([]CraftingOption, 0, len(options))
	for _, o := range options {
		if o.ML <= itemLevel || o.ML <= 0 {
			out = append(out, o)
		}
	}
	return out
}

// ScoreOption weighs an option against an ordered priority list. Options
// touching no listed property score 0.
func ScoreOption(o CraftingOption, priorityProps []string) float64 {
	return newPriorities(priorityProps).score(o.Affixes)
}

// FindBest returns the highest-scoring option for a socket, the first one
// winning ties. It returns nil for random sockets and when no eligible option
// scores above zero.
func FindBest(options []CraftingOption, priorityProps []string, slotType string, itemLevel int, excludeSets bool) *CraftingOption {
	if Classify(slotType) == RandomSlot {
		return nil
	}
	p := newPriorities(priorityProps)
	var best *CraftingOption
	var bestScore float64
	for _, o := range FilterByML(options, itemLevel) {
		if excludeSets && o.Set != "" {
			continue
		}
		s := p.score(o.Affixes)
		if s <= 0 || (best != nil && s <= bestScore) {
			continue
		}
		best, bestScore = &o, s
	}
	return best
}
