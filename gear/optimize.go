package gear

import (
	"sort"

	"gear-optimizer/affix"
)

// AutoSelectInput is everything AutoSelect needs for one pass.
type AutoSelectInput struct {
	Setup      *Setup
	Crafting   CraftingData
	Priorities []string
	// BaseAffixes are bonuses the loadout already grants; only value beyond
	// them counts when filling sockets.
	BaseAffixes       []affix.Affix
	Sets              SetsData
	ExcludeSetOptions bool
}

// ── Accumulators ────────────────────────────────────────────────────

// coverage tracks property -> bonus type -> highest value already granted.
// Values only ever go up.
type coverage map[string]map[string]float64

func newCoverage(base []affix.Affix) coverage {
	c := make(coverage)
	c.fold(base)
	return c
}

func (c coverage) get(prop, bt string) float64 {
	return c[prop][bt]
}

func (c coverage) fold(list []affix.Affix) {
	for _, a := range affix.ExpandAll(list) {
		if !a.Numeric() {
			continue
		}
		bt := a.Type.BonusType()
		m, ok := c[a.Name]
		if !ok {
			m = make(map[string]float64)
			c[a.Name] = m
		}
		if cur, ok := m[bt]; !ok || a.Value > cur {
			m[bt] = a.Value
		}
	}
}

// gain returns the value list would add on listed properties beyond what is
// already covered. Within list the best value per (property, bonus type) counts once.
func (c coverage) gain(list []affix.Affix, p priorities) float64 {
	type key struct{ prop, bt string }
	best := make(map[key]float64)
	var order []key
	for _, a := range affix.ExpandAll(list) {
		if !a.Numeric() || !p.relevant(a.Name) {
			continue
		}
		k := key{a.Name, a.Type.BonusType()}
		cur, ok := best[k]
		if !ok {
			order = append(order, k)
		}
		if !ok || a.Value > cur {
			best[k] = a.Value
		}
	}
	var total float64
	for _, k := range order {
		if d := best[k] - c.get(k.prop, k.bt); d > 0 {
			total += d
		}
	}
	return total
}

type socketRef struct {
	slot  SlotKey
	index int
}

// filledSockets records the sockets already given an option in this pass.
type filledSockets map[socketRef]bool

type candidate struct {
	ref    socketRef
	option CraftingOption
	score  float64
}

// ── Selection state ─────────────────────────────────────────────────

type autoSelector struct {
	in          AutoSelectInput
	prio        priorities
	sel         Selections
	covered     coverage
	filled      filledSockets
	memberships map[string]int

	setCands   []candidate
	plainCands []candidate
}

func (a *autoSelector) fill(c candidate) {
	opt := c.option
	a.sel[c.ref.slot][c.ref.index].Option = &opt
	a.filled[c.ref] = true
	a.covered.fold(opt.Affixes)
	if opt.Set != "" {
		a.memberships[opt.Set]++
		// a bonus unlocked by this piece counts as covered from now on
		for _, b := range a.in.Sets[opt.Set] {
			if b.Threshold > 0 && b.Threshold == a.memberships[opt.Set] {
				a.covered.fold(b.Affixes)
			}
		}
	}
}

// collect resolves set-bonus sockets right away and gathers the candidates of
// every augment and affix-selection socket.
func (a *autoSelector) collect() {
	for k, it := range a.in.Setup {
		if it == nil {
			continue
		}
		slot := SlotKey(k)
		for i, st := range it.Crafting {
			ref := socketRef{slot, i}
			switch Classify(st) {
			case RandomSlot:
				continue
			case SetBonusSlot:
				opts := AvailableOptions(a.in.Crafting, st, it.Name)
				if best := FindBest(opts, a.in.Priorities, st, it.ML, a.in.ExcludeSetOptions); best != nil {
					a.fill(candidate{ref: ref, option: *best})
				}
			default:
				for _, o := range FilterByML(AvailableOptions(a.in.Crafting, st, it.Name), it.ML) {
					c := candidate{ref: ref, option: o, score: a.prio.score(o.Affixes)}
					if o.Set == "" {
						a.plainCands = append(a.plainCands, c)
					} else if !a.in.ExcludeSetOptions {
						a.setCands = append(a.setCands, c)
					}
				}
			}
		}
	}
}

// fillSets spends sockets on set-granting options, for every set whose bonuses
// touch a listed property, until its lowest threshold is met and no further.
// A set that cannot reach its threshold with the free sockets gets none of
// them, since a partial fill unlocks nothing.
func (a *autoSelector) fillSets() {
	var names []string
	bySet := make(map[string][]candidate)
	for _, c := range a.setCands {
		if _, ok := bySet[c.option.Set]; !ok {
			names = append(names, c.option.Set)
		}
		bySet[c.option.Set] = append(bySet[c.option.Set], c)
	}

	for _, name := range names {
		bonuses := a.in.Sets[name]
		threshold, ok := minThreshold(bonuses)
		if !ok || !a.setRelevant(bonuses) {
			continue
		}
		need := threshold - a.memberships[name]
		if need <= 0 {
			continue
		}

		// one candidate per free socket, in enumeration order
		var picks []candidate
		seen := make(map[socketRef]bool)
		for _, c := range bySet[name] {
			if a.filled[c.ref] || seen[c.ref] {
				continue
			}
			seen[c.ref] = true
			picks = append(picks, c)
		}
		if len(picks) < need {
			continue
		}
		for _, c := range picks[:need] {
			a.fill(c)
		}
	}
}

func (a *autoSelector) setRelevant(bonuses []SetBonus) bool {
	for _, b := range bonuses {
		if a.prio.touches(b.Affixes) {
			return true
		}
	}
	return false
}

// fillPlain walks plain candidates best score first and keeps only those that
// add value not already covered.
func (a *autoSelector) fillPlain() {
	sort.SliceStable(a.plainCands, func(i, j int) bool {
		return a.plainCands[i].score > a.plainCands[j].score
	})
	for _, c := range a.plainCands {
		if a.filled[c.ref] {
			continue
		}
		if a.covered.gain(c.option.Affixes, a.prio) <= 0 {
			continue
		}
		a.fill(c)
	}
}

// AutoSelect picks crafting options for every socket of the loadout. Each
// socket is filled at most once; random sockets are never filled; sockets with
// nothing useful to add stay nil.
func AutoSelect(in AutoSelectInput) Selections {
	if in.Setup == nil {
		return Selections{}
	}
	a := &autoSelector{
		in:          in,
		prio:        newPriorities(in.Priorities),
		sel:         NewSelections(in.Setup),
		covered:     newCoverage(in.BaseAffixes),
		filled:      make(filledSockets),
		memberships: SetMemberships(in.Setup, Selections{}),
	}
	a.collect()
	a.fillSets()
	a.fillPlain()
	return a.sel
}
