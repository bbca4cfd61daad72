//go:build !lambda

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"gear-optimizer/catalog"
)

// BenchOutput is the JSON-serializable result of a run over several plans.
type BenchOutput struct {
	Date    string       `json:"date"`
	Workers int          `json:"workers"`
	Results []PlanResult `json:"results"`
	TotalMs int64        `json:"totalMs"`
}

func runAll(ctx context.Context, cat *catalog.Catalog, plans []catalog.Plan, cfg Config) error {
	start := time.Now()
	results, err := runPlans(ctx, cat, plans, cfg)
	if err != nil {
		return err
	}
	totalMs := time.Since(start).Milliseconds()

	if cfg.JSON {
		workers := cfg.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(BenchOutput{
			Date:    time.Now().UTC().Format(time.RFC3339),
			Workers: workers,
			Results: results,
			TotalMs: totalMs,
		})
	}

	for _, r := range results {
		fmt.Println(FormatResult(r))
	}
	printTable(results, totalMs)
	return nil
}

func printTable(results []PlanResult, totalMs int64) {
	fmt.Printf("%-24s %10s %8s %8s\n", "Plan", "Score", "Unused", "Time")
	fmt.Printf("%-24s %10s %8s %8s\n", "------------------------", "----------", "--------", "--------")
	for _, r := range results {
		printer.Printf("%-24s %10.1f %8d %7.3fs\n", r.Name, r.Score, r.UnusedAugmentSlots, float64(r.TimeMs)/1000)
	}
	fmt.Printf("%-24s %10s %8s %8s\n", "------------------------", "----------", "--------", "--------")
	fmt.Printf("%-24s %10s %8s %7.3fs\n", "TOTAL", "", "", float64(totalMs)/1000)
}

const usage = `Usage: gear-optimizer [flags] <catalog.json> <plans.yaml> [plan]

Positional arguments:
  catalog.json   Item, crafting and set data
  plans.yaml     Gear plans (loadout and property priorities)
  plan           Plan name (omitted = run all)

Environment variables prefixed GEAROPT_ set defaults; flags override them.

Flags:
`

func main() {
	fs := flag.NewFlagSet("gear-optimizer", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	cfg, err := ParseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := fs.Args()
	if len(args) < 2 {
		fs.Usage()
		os.Exit(1)
	}

	Verbose = cfg.Verbose

	cat, err := catalog.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	plans, err := catalog.LoadPlans(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(logw(), "[load] %d items, %d crafting slot types, %d sets, %d plans\n",
		len(cat.Items), len(cat.Crafting), len(cat.Sets), len(plans))

	if len(args) >= 3 {
		p := catalog.FindPlan(plans, args[2])
		if p == nil {
			fmt.Fprintf(os.Stderr, "plan %q not found\n", args[2])
			os.Exit(1)
		}
		plans = []catalog.Plan{*p}
	}

	if err := runAll(context.Background(), cat, plans, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
