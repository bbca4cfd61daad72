package gear

import (
	"strings"
	"unicode"
)

// Color is an augment or augment-socket color.
type Color int

const (
	ColorNone Color = iota
	ColorColorless
	ColorRed
	ColorBlue
	ColorYellow
	ColorGreen
	ColorPurple
	ColorOrange
	ColorMoon
	ColorSun
)

var colorNames = [...]string{"", "Colorless", "Red", "Blue", "Yellow", "Green", "Purple", "Orange", "Moon", "Sun"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return ""
	}
	return colorNames[c]
}

// fitsIn lists, per augment color, the socket colors it can be slotted into.
var fitsIn = map[Color][]Color{
	ColorColorless: {ColorRed, ColorBlue, ColorYellow, ColorGreen, ColorPurple, ColorOrange},
	ColorRed:       {ColorRed, ColorPurple, ColorOrange},
	ColorBlue:      {ColorBlue, ColorGreen, ColorPurple},
	ColorYellow:    {ColorYellow, ColorGreen, ColorOrange},
	ColorGreen:     {ColorGreen},
	ColorPurple:    {ColorPurple},
	ColorOrange:    {ColorOrange},
	ColorMoon:      {ColorMoon},
	ColorSun:       {ColorSun},
}

// Fits reports whether an augment of color aug can go into a socket of color socket.
// Every augment fits a socket of its own color.
func Fits(aug, socket Color) bool {
	if aug == ColorNone || socket == ColorNone {
		return false
	}
	if aug == socket {
		return true
	}
	for _, c := range fitsIn[aug] {
		if c == socket {
			return true
		}
	}
	return false
}

// SocketColor returns the color of an augment socket type, or ColorNone.
func SocketColor(slotType string) Color {
	return augmentSlots[slotType]
}

// socketType is the inverse of SocketColor.
func socketType(c Color) string {
	return c.String() + " Augment Slot"
}

var nameColors = map[string]Color{
	"colorless": ColorColorless,
	"diamond":   ColorColorless,
	"red":       ColorRed,
	"ruby":      ColorRed,
	"blue":      ColorBlue,
	"sapphire":  ColorBlue,
	"yellow":    ColorYellow,
	"topaz":     ColorYellow,
	"green":     ColorGreen,
	"emerald":   ColorGreen,
	"purple":    ColorPurple,
	"amethyst":  ColorPurple,
	"orange":    ColorOrange,
	"jacinth":   ColorOrange,
	"moon":      ColorMoon,
	"lunar":     ColorMoon,
	"sun":       ColorSun,
	"solar":     ColorSun,
}

// ColorFromName infers an augment's color from words in its display name,
// e.g. "Sapphire of Deadly +6" or "Red Augment: Strength".
func ColorFromName(name string) Color {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if c, ok := nameColors[strings.ToLower(w)]; ok {
			return c
		}
	}
	return ColorNone
}

func lookupOptions(data CraftingData, slotType, itemName string) []CraftingOption {
	byItem, ok := data[slotType]
	if !ok {
		return nil
	}
	if opts, ok := byItem[itemName]; ok && len(opts) > 0 {
		return opts
	}
	return byItem[AnyItem]
}

// AvailableOptions returns the options for one socket of itemName: the
// item-specific list if there is one, else the universal list. Augment sockets
// also accept augments of every other color that fits them.
func AvailableOptions(data CraftingData, slotType, itemName string) []CraftingOption {
	base := lookupOptions(data, slotType, itemName)
	if Classify(slotType) != AugmentSlot {
		return append([]CraftingOption(nil), base...)
	}

	out := append([]CraftingOption(nil), base...)
	seen := make(map[string]bool, len(base))
	for _, o := range base {
		seen[o.Name] = true
	}
	socket := SocketColor(slotType)
	for c := ColorColorless; c <= ColorSun; c++ {
		if c == socket || !Fits(c, socket) {
			continue
		}
		for _, o := range lookupOptions(data, socketType(c), itemName) {
			if seen[o.Name] {
				continue
			}
			seen[o.Name] = true
			out = append(out, o)
		}
	}
	return out
}
