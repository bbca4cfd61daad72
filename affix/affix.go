package affix

import (
	"math"
	"strconv"
	"strings"
)

// Type is the stacking key of an affix: either a named bonus type or the
// boolean marker for flags that carry no number.
type Type struct {
	bonus   string
	boolean bool
}

// Bool marks an affix as a non-numeric flag. Boolean affixes never aggregate.
var Bool = Type{boolean: true}

// Untyped is the bonus type given to numeric affixes with no declared type.
const Untyped = "Untyped"

// Bonus returns the numeric stacking key with the given name.
func Bonus(name string) Type {
	if name == "" {
		name = Untyped
	}
	return Type{bonus: name}
}

// ParseType maps a raw catalog type string. "bool" is the only boolean marker.
func ParseType(s string) Type {
	if strings.EqualFold(strings.TrimSpace(s), "bool") {
		return Bool
	}
	return Bonus(strings.TrimSpace(s))
}

// IsBool reports whether the type marks a boolean flag.
func (t Type) IsBool() bool { return t.boolean }

// BonusType returns the stacking key, or "" for boolean affixes.
func (t Type) BonusType() string {
	if t.boolean {
		return ""
	}
	if t.bonus == "" {
		return Untyped
	}
	return t.bonus
}

func (t Type) String() string {
	if t.boolean {
		return "bool"
	}
	return t.BonusType()
}

// Affix is a single named property modifier.
type Affix struct {
	Name  string
	Type  Type
	Value float64
}

// New returns a numeric affix.
func New(name, bonusType string, value float64) Affix {
	return Affix{Name: name, Type: Bonus(bonusType), Value: value}
}

// Flag returns a boolean affix.
func Flag(name string) Affix {
	return Affix{Name: name, Type: Bool, Value: 1}
}

// Numeric reports whether the affix takes part in aggregation: it is not a
// flag and its value is finite.
func (a Affix) Numeric() bool {
	return !a.Type.IsBool() && !math.IsNaN(a.Value) && !math.IsInf(a.Value, 0)
}

// ParseValue parses catalog values such as "+6", "6", "-2" or "1.5".
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
