package scoring

import (
	"sort"

	"gear-optimizer/affix"
	"gear-optimizer/gear"
)

// Config holds the search limits. Env tags let the CLI override them.
type Config struct {
	// TopPerSlot is how many ranked items are kept per slot.
	TopPerSlot int `env:"TOP_PER_SLOT" envDefault:"20"`
	// AlternateDepth is the deepest rank tried in single-slot swaps (2 = runner-up only).
	AlternateDepth int `env:"ALTERNATE_DEPTH" envDefault:"3"`
	// Limit is the number of loadouts returned.
	Limit int `env:"LIMIT" envDefault:"10"`
}

// DefaultConfig returns the limits used when a Config field is zero.
func DefaultConfig() Config {
	return Config{TopPerSlot: 20, AlternateDepth: 3, Limit: 10}
}

// Input is the item pool and goals for a loadout search.
type Input struct {
	Items      []gear.Item
	Sets       gear.SetsData
	Priorities []string
	// Level excludes items above it when positive.
	Level int
}

// Result is one scored loadout.
type Result struct {
	Setup              gear.Setup
	Score              float64
	UnusedAugmentSlots int
	ExtraProperties    int
}

// ── Optimizer ───────────────────────────────────────────────────────

// Optimizer ranks items per slot and explores single-slot swaps around the
// best-ranked loadout.
type Optimizer struct {
	in  Input
	cfg Config

	ranked [gear.SlotCount][]itemRank
}

type itemRank struct {
	idx   int // into in.Items
	score float64
}

// NewOptimizer ranks the item pool for every slot.
func NewOptimizer(in Input, cfg Config) *Optimizer {
	if cfg.TopPerSlot <= 0 {
		cfg.TopPerSlot = DefaultConfig().TopPerSlot
	}
	if cfg.AlternateDepth <= 0 {
		cfg.AlternateDepth = DefaultConfig().AlternateDepth
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultConfig().Limit
	}
	o := &Optimizer{in: in, cfg: cfg}
	o.rankSlots()
	return o
}

// ── Item ranking ────────────────────────────────────────────────────

func (o *Optimizer) rankSlots() {
	for i := range o.in.Items {
		it := &o.in.Items[i]
		if o.in.Level > 0 && it.ML > o.in.Level {
			continue
		}
		score := itemContribution(it, o.in.Priorities)
		for _, k := range gear.SlotsFor(it.Slot) {
			o.ranked[k] = append(o.ranked[k], itemRank{i, score})
		}
	}
	for k := range o.ranked {
		r := o.ranked[k]
		sort.SliceStable(r, func(i, j int) bool { return r[i].score > r[j].score })
		if len(r) > o.cfg.TopPerSlot {
			o.ranked[k] = r[:o.cfg.TopPerSlot]
		}
	}
}

// Ranked returns the item names kept for a slot, best first.
func (o *Optimizer) Ranked(k gear.SlotKey) []string {
	out := make([]string, len(o.ranked[k]))
	for i, r := range o.ranked[k] {
		out[i] = o.in.Items[r.idx].Name
	}
	return out
}

// ── Loadout constraints ─────────────────────────────────────────────

// allowed reports whether item idx can go into slot k of s: an item is worn
// once, and at most one artifact is worn.
func (o *Optimizer) allowed(s *gear.Setup, k gear.SlotKey, idx int) bool {
	cand := &o.in.Items[idx]
	for other, it := range s {
		if gear.SlotKey(other) == k || it == nil {
			continue
		}
		if it == cand {
			return false
		}
		if cand.Artifact && it.Artifact {
			return false
		}
	}
	return true
}

func (o *Optimizer) baseline() gear.Setup {
	var s gear.Setup
	for k := range o.ranked {
		for _, r := range o.ranked[k] {
			if o.allowed(&s, gear.SlotKey(k), r.idx) {
				s[k] = &o.in.Items[r.idx]
				break
			}
		}
	}
	return s
}

// alternates swaps one slot at a time to its 2nd..AlternateDepth-ranked item.
func (o *Optimizer) alternates(base gear.Setup) []gear.Setup {
	var out []gear.Setup
	for k := range o.ranked {
		limit := min(o.cfg.AlternateDepth, len(o.ranked[k]))
		for rank := 1; rank < limit; rank++ {
			idx := o.ranked[k][rank].idx
			if base[k] == &o.in.Items[idx] || !o.allowed(&base, gear.SlotKey(k), idx) {
				continue
			}
			alt := base
			alt[k] = &o.in.Items[idx]
			out = append(out, alt)
		}
	}
	return out
}

func (o *Optimizer) evaluate(s gear.Setup) Result {
	c := affix.Combine(gear.SetupAffixes(&s, gear.Selections{}, o.in.Sets))
	return Result{
		Setup:              s,
		Score:              WeightedTotal(c, o.in.Priorities),
		UnusedAugmentSlots: gear.CountAugmentSlots(&s),
		ExtraProperties:    extraProperties(c, o.in.Priorities),
	}
}

// ── Fingerprint dedup ───────────────────────────────────────────────

func setupFingerprint(s *gear.Setup) [gear.SlotCount]string {
	var fp [gear.SlotCount]string
	for k, it := range s {
		if it != nil {
			fp[k] = it.Name
		}
	}
	return fp
}

// ── Main entry point ────────────────────────────────────────────────

// Optimize scores the baseline and its single-slot alternates. Loadouts with
// more free augment sockets come first, then those with more extra
// properties, then the higher score.
func (o *Optimizer) Optimize() []Result {
	base := o.baseline()
	cands := append([]gear.Setup{base}, o.alternates(base)...)

	seen := make(map[[gear.SlotCount]string]bool, len(cands))
	results := make([]Result, 0, len(cands))
	for i := range cands {
		fp := setupFingerprint(&cands[i])
		if seen[fp] {
			continue
		}
		seen[fp] = true
		results = append(results, o.evaluate(cands[i]))
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.UnusedAugmentSlots != b.UnusedAugmentSlots {
			return a.UnusedAugmentSlots > b.UnusedAugmentSlots
		}
		if a.ExtraProperties != b.ExtraProperties {
			return a.ExtraProperties > b.ExtraProperties
		}
		return a.Score > b.Score
	})
	if len(results) > o.cfg.Limit {
		results = results[:o.cfg.Limit]
	}
	return results
}

// Optimize is shorthand for NewOptimizer(in, cfg).Optimize().
func Optimize(in Input, cfg Config) []Result {
	return NewOptimizer(in, cfg).Optimize()
}
