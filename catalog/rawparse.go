package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"gear-optimizer/affix"
	"gear-optimizer/gear"
)

// Catalog is the parsed item, crafting and set data.
type Catalog struct {
	Items    []gear.Item
	Crafting gear.CraftingData
	Sets     gear.SetsData

	byName map[string]int // exact item name -> index into Items
	names  []string       // sorted item names, for fuzzy lookup
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a Catalog from raw JSON. Entries without a name and affixes
// with unparsable values are dropped.
func Parse(dataJSON string) (*Catalog, error) {
	if !gjson.Valid(dataJSON) {
		return nil, errors.New("invalid JSON")
	}
	c := &Catalog{
		Crafting: buildCraftingTable(dataJSON),
		Sets:     buildSetsTable(dataJSON),
		byName:   make(map[string]int),
	}

	gjson.Get(dataJSON, "items").ForEach(func(_, v gjson.Result) bool {
		name := strings.TrimSpace(v.Get("name").String())
		if name == "" {
			return true
		}
		c.Items = append(c.Items, gear.Item{
			Name:     name,
			ML:       int(v.Get("ml").Int()),
			Slot:     v.Get("slot").String(),
			Affixes:  readAffixes(v.Get("affixes")),
			Crafting: readStringSlice(v.Get("crafting")),
			Sets:     readStringSlice(v.Get("sets")),
			Artifact: toBool(v.Get("artifact")),
		})
		return true
	})

	for i := range c.Items {
		if _, dup := c.byName[c.Items[i].Name]; !dup {
			c.byName[c.Items[i].Name] = i
			c.names = append(c.names, c.Items[i].Name)
		}
	}
	slices.Sort(c.names)
	return c, nil
}

// Item returns the item with exactly the given name.
func (c *Catalog) Item(name string) (*gear.Item, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.Items[i], true
}

func buildCraftingTable(dataJSON string) gear.CraftingData {
	data := make(gear.CraftingData)
	gjson.Get(dataJSON, "crafting").ForEach(func(slotType, byItem gjson.Result) bool {
		m := make(map[string][]gear.CraftingOption)
		byItem.ForEach(func(itemName, opts gjson.Result) bool {
			var list []gear.CraftingOption
			opts.ForEach(func(_, o gjson.Result) bool {
				name := o.Get("name").String()
				if name == "" {
					return true
				}
				list = append(list, gear.CraftingOption{
					Name:    name,
					ML:      int(o.Get("ml").Int()),
					Affixes: readAffixes(o.Get("affixes")),
					Set:     o.Get("set").String(),
				})
				return true
			})
			m[itemName.String()] = list
			return true
		})
		data[slotType.String()] = m
		return true
	})
	return data
}

func buildSetsTable(dataJSON string) gear.SetsData {
	sets := make(gear.SetsData)
	gjson.Get(dataJSON, "sets").ForEach(func(name, bonuses gjson.Result) bool {
		var list []gear.SetBonus
		bonuses.ForEach(func(_, b gjson.Result) bool {
			list = append(list, gear.SetBonus{
				Threshold: int(b.Get("threshold").Int()),
				Affixes:   readAffixes(b.Get("affixes")),
			})
			return true
		})
		slices.SortStableFunc(list, func(a, b gear.SetBonus) int { return a.Threshold - b.Threshold })
		sets[name.String()] = list
		return true
	})
	return sets
}

func readAffixes(v gjson.Result) []affix.Affix {
	var out []affix.Affix
	v.ForEach(func(_, e gjson.Result) bool {
		if a, ok := parseAffix(e); ok {
			out = append(out, a)
		}
		return true
	})
	return out
}

func parseAffix(e gjson.Result) (affix.Affix, bool) {
	name := strings.TrimSpace(e.Get("name").String())
	if name == "" {
		return affix.Affix{}, false
	}
	typ := affix.ParseType(e.Get("type").String())
	if typ.IsBool() {
		return affix.Affix{Name: name, Type: typ, Value: 1}, true
	}

	val := e.Get("value")
	var v float64
	switch val.Type {
	case gjson.Number:
		v = val.Float()
	case gjson.String:
		var ok bool
		if v, ok = affix.ParseValue(val.String()); !ok {
			return affix.Affix{}, false
		}
	case gjson.True:
		v = 1
	default:
		return affix.Affix{}, false
	}
	return affix.Affix{Name: name, Type: typ, Value: v}, true
}

func readStringSlice(v gjson.Result) []string {
	if !v.Exists() || !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, item.String())
	}
	return out
}

func toBool(v gjson.Result) bool {
	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Float() != 0
	case gjson.String:
		return strings.EqualFold(v.String(), "true")
	}
	return false
}
