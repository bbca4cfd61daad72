package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatResult produces the human-readable report for one plan.
func FormatResult(r PlanResult) string {
	var b strings.Builder

	printer.Fprintf(&b, "Plan: %s  score %.1f  unused augment slots %d\n",
		r.Name, r.Score, r.UnusedAugmentSlots)

	for _, s := range r.Slots {
		fmt.Fprintf(&b, "%-9s %s\n", s.Slot+":", s.Item)
		for _, sock := range s.Sockets {
			opt := sock.Option
			if opt == "" {
				opt = "-"
			}
			fmt.Fprintf(&b, "          [%s] %s -> %s\n", sock.Category, sock.SlotType, opt)
		}
	}

	if len(r.Properties) > 0 {
		b.WriteString("Properties:\n")
		for _, p := range r.Properties {
			printer.Fprintf(&b, "  %-28s %8.1f", p.Name, p.Total)
			if len(p.Bonuses) > 0 {
				var parts []string
				for _, bt := range slices.Sorted(maps.Keys(p.Bonuses)) {
					parts = append(parts, printer.Sprintf("%s %.1f", bt, p.Bonuses[bt]))
				}
				fmt.Fprintf(&b, "  (%s)", strings.Join(parts, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(r.SetMemberships) > 0 {
		b.WriteString("Sets:\n")
		for _, name := range slices.Sorted(maps.Keys(r.SetMemberships)) {
			fmt.Fprintf(&b, "  %s: %d pieces\n", name, r.SetMemberships[name])
		}
	}

	for _, n := range r.Notes {
		fmt.Fprintf(&b, "note: %s\n", n)
	}

	for i, s := range r.Suggestions {
		if i == 0 {
			b.WriteString("Suggested loadouts:\n")
		}
		printer.Fprintf(&b, "  #%d score %.1f, %d free augment slots, %d extra properties\n",
			i+1, s.Score, s.UnusedAugmentSlots, s.ExtraProperties)
		for _, slot := range slices.Sorted(maps.Keys(s.Loadout)) {
			fmt.Fprintf(&b, "      %-9s %s\n", slot+":", s.Loadout[slot])
		}
	}

	return b.String()
}
