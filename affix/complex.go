package affix

import "slices"

var schools = [8]string{
	"Abjuration",
	"Conjuration",
	"Divination",
	"Enchantment",
	"Evocation",
	"Illusion",
	"Necromancy",
	"Transmutation",
}

func perSchool(suffix string) []string {
	out := make([]string, len(schools))
	for i, s := range schools {
		out[i] = s + " " + suffix
	}
	return out
}

// complexProperties maps a composite property to its components, in order.
var complexProperties = map[string][]string{
	"Well Rounded":         {"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"},
	"Sheltering":           {"Physical Sheltering", "Magical Sheltering"},
	"Spell Focus Mastery":  perSchool("Focus"),
	"Spell DCs":            perSchool("DC"),
	"Resistance":           {"Fortitude Save", "Reflex Save", "Will Save"},
	"Elemental Resistance": {"Acid Resistance", "Cold Resistance", "Electric Resistance", "Fire Resistance", "Sonic Resistance"},
}

var aliases = map[string]string{
	"Spell Focus": "Spell Focus Mastery",
}

// parents maps each component back to the composites containing it.
var parents = func() map[string][]string {
	m := make(map[string][]string)
	for name, comps := range complexProperties {
		for _, c := range comps {
			m[c] = append(m[c], name)
		}
	}
	for _, names := range m {
		slices.Sort(names)
	}
	return m
}()

// Normalize resolves property aliases.
func Normalize(name string) string {
	if to, ok := aliases[name]; ok {
		return to
	}
	return name
}

// IsComplex reports whether name (after alias resolution) is a composite property.
func IsComplex(name string) bool {
	_, ok := complexProperties[Normalize(name)]
	return ok
}

// Components returns the components of a composite property, or nil.
// The returned slice must not be modified.
func Components(name string) []string {
	return complexProperties[Normalize(name)]
}

// ComplexNames returns every composite property name, sorted.
func ComplexNames() []string {
	names := make([]string, 0, len(complexProperties))
	for n := range complexProperties {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Composites returns the composite properties that include component.
func Composites(component string) []string {
	return parents[component]
}

// Expand replaces a composite affix with one affix per component carrying the
// same type and value. Other affixes pass through with the alias resolved.
func Expand(a Affix) []Affix {
	a.Name = Normalize(a.Name)
	comps, ok := complexProperties[a.Name]
	if !ok {
		return []Affix{a}
	}
	out := make([]Affix, len(comps))
	for i, c := range comps {
		out[i] = Affix{Name: c, Type: a.Type, Value: a.Value}
	}
	return out
}

// ExpandAll expands every affix in list.
func ExpandAll(list []Affix) []Affix {
	out := make([]Affix, 0, len(list))
	for _, a := range list {
		out = append(out, Expand(a)...)
	}
	return out
}
