package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"gear-optimizer/affix"
	"gear-optimizer/catalog"
	"gear-optimizer/gear"
	"gear-optimizer/scoring"
)

// SocketResult is one crafting socket of one slot in the output.
type SocketResult struct {
	SlotType string `json:"slotType"`
	Category string `json:"category"`
	Option   string `json:"option,omitempty"`
}

// SlotResult is one equipped item and its chosen crafting options.
type SlotResult struct {
	Slot    string         `json:"slot"`
	Item    string         `json:"item"`
	Sockets []SocketResult `json:"sockets,omitempty"`
}

// PropertyResult is the displayed total of one priority property.
type PropertyResult struct {
	Name    string             `json:"name"`
	Total   float64            `json:"total"`
	Bonuses map[string]float64 `json:"bonuses,omitempty"`
}

// Suggestion is one whole-item loadout proposed by the scoring engine.
type Suggestion struct {
	Score              float64           `json:"score"`
	UnusedAugmentSlots int               `json:"unusedAugmentSlots"`
	ExtraProperties    int               `json:"extraProperties"`
	Loadout            map[string]string `json:"loadout"`
}

// PlanResult holds the crafting selections and totals for a single plan.
type PlanResult struct {
	Name               string           `json:"name"`
	Score              float64          `json:"score"`
	Slots              []SlotResult     `json:"slots"`
	Properties         []PropertyResult `json:"properties"`
	SetMemberships     map[string]int   `json:"setMemberships,omitempty"`
	UnusedAugmentSlots int              `json:"unusedAugmentSlots"`
	Notes              []string         `json:"notes,omitempty"`
	Suggestions        []Suggestion     `json:"suggestions,omitempty"`
	TimeMs             int64            `json:"timeMs"`
}

func runPlan(cat *catalog.Catalog, p catalog.Plan, cfg Config) PlanResult {
	start := time.Now()
	r := cat.Resolve(p)

	base := gear.SetupAffixes(&r.Setup, gear.Selections{}, cat.Sets)
	sel := gear.AutoSelect(gear.AutoSelectInput{
		Setup:             &r.Setup,
		Crafting:          cat.Crafting,
		Priorities:        r.Priorities,
		BaseAffixes:       base,
		Sets:              cat.Sets,
		ExcludeSetOptions: p.ExcludeSetOptions || cfg.ExcludeSetOptions,
	})
	combined := affix.Combine(gear.SetupAffixes(&r.Setup, sel, cat.Sets))

	out := PlanResult{
		Name:               p.Name,
		Score:              scoring.WeightedTotal(combined, r.Priorities),
		SetMemberships:     gear.SetMemberships(&r.Setup, sel),
		UnusedAugmentSlots: gear.CountUnusedAugmentSlots(&r.Setup, sel),
		Notes:              r.Notes,
	}
	for _, k := range gear.AllSlots() {
		it := r.Setup[k]
		if it == nil {
			continue
		}
		sr := SlotResult{Slot: k.String(), Item: it.Name}
		for _, s := range sel[k] {
			sock := SocketResult{SlotType: s.SlotType, Category: gear.Classify(s.SlotType).String()}
			if s.Option != nil {
				sock.Option = s.Option.Name
			}
			sr.Sockets = append(sr.Sockets, sock)
		}
		out.Slots = append(out.Slots, sr)
	}
	for _, name := range r.Priorities {
		out.Properties = append(out.Properties, PropertyResult{
			Name:    name,
			Total:   combined.Total(name, true),
			Bonuses: combined.Breakdown(name),
		})
	}

	if cfg.Suggest {
		results := scoring.Optimize(scoring.Input{
			Items:      cat.Items,
			Sets:       cat.Sets,
			Priorities: r.Priorities,
			Level:      p.Level,
		}, cfg.Scoring)
		for _, res := range results {
			s := Suggestion{
				Score:              res.Score,
				UnusedAugmentSlots: res.UnusedAugmentSlots,
				ExtraProperties:    res.ExtraProperties,
				Loadout:            make(map[string]string),
			}
			for k, it := range res.Setup {
				if it != nil {
					s.Loadout[gear.SlotKey(k).String()] = it.Name
				}
			}
			out.Suggestions = append(out.Suggestions, s)
		}
	}

	out.TimeMs = time.Since(start).Milliseconds()
	return out
}

// runPlans optimizes every plan concurrently and returns results in plan order.
func runPlans(ctx context.Context, cat *catalog.Catalog, plans []catalog.Plan, cfg Config) ([]PlanResult, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]PlanResult, len(plans))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range plans {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if Verbose {
				fmt.Fprintf(logw(), "[verbose] plan %q: %d slots in loadout, %d priorities\n",
					plans[i].Name, len(plans[i].Loadout), len(plans[i].Priorities))
			}
			results[i] = runPlan(cat, plans[i], cfg)
			fmt.Fprintf(logw(), "[plan] %s: score=%.1f in %dms\n", results[i].Name, results[i].Score, results[i].TimeMs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func logw() *os.File { return os.Stderr }
