package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"gear-optimizer/scoring"
)

// Config holds run settings. Environment variables set the defaults and
// command-line flags override them.
type Config struct {
	// Scoring tunes the loadout suggestion search.
	Scoring scoring.Config `envPrefix:"GEAROPT_SCORING_"`
	// Workers bounds how many plans run at once; 0 means GOMAXPROCS.
	Workers int `env:"GEAROPT_WORKERS" envDefault:"0"`
	// ExcludeSetOptions keeps set-granting crafting options out of every plan.
	ExcludeSetOptions bool `env:"GEAROPT_EXCLUDE_SET_OPTIONS"`
	// Suggest also runs the whole-item loadout search for each plan.
	Suggest bool `env:"GEAROPT_SUGGEST"`
	// JSON switches the CLI output from the text report to one JSON document.
	JSON bool `env:"GEAROPT_JSON"`
	// Verbose prints per-plan progress detail to stderr.
	Verbose bool `env:"GEAROPT_VERBOSE"`
}

// Verbose controls whether detailed progress is printed to stderr.
var Verbose bool

// ParseConfig reads the environment, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Output results as JSON")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print detailed progress to stderr")
	fs.BoolVar(&cfg.Suggest, "suggest", cfg.Suggest, "Also suggest whole-item loadouts")
	fs.BoolVar(&cfg.ExcludeSetOptions, "no-sets", cfg.ExcludeSetOptions, "Never pick set-granting crafting options")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Plans optimized concurrently (0 = GOMAXPROCS)")
	fs.IntVar(&cfg.Scoring.Limit, "top", cfg.Scoring.Limit, "Number of suggested loadouts")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
