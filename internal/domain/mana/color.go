package mana

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKey is the stable identifier of a mana color
type ColorKey string

const (
	ColorWhite     ColorKey = "W"
	ColorBlue      ColorKey = "U"
	ColorBlack     ColorKey = "B"
	ColorRed       ColorKey = "R"
	ColorGreen     ColorKey = "G"
	ColorColorless ColorKey = "C"
	ColorPhyrexian ColorKey = "P"
)

// Color describes one mana color
type Color struct {
	Key     ColorKey `json:"key"`
	Name    string   `json:"name"`
	Hex     string   `json:"hex"`
	Primary bool     `json:"primary"` // Primary colors can be paid with cards
}

// RGBA renders the color's hex value as a css rgba() string with the given alpha.
// Unparseable hex values render as black.
func (c Color) RGBA(alpha float64) string {
	n, err := strconv.ParseUint(strings.TrimPrefix(c.Hex, "#"), 16, 32)
	if err != nil {
		n = 0
	}
	r := (n >> 16) & 0xff
	g := (n >> 8) & 0xff
	b := n & 0xff
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// Palette is the fixed, ordered set of colors a pool is built from
type Palette []Color

// DefaultPalette returns the five primary colors followed by the two auxiliary ones
func DefaultPalette() Palette {
	return Palette{
		{Key: ColorWhite, Name: "White", Hex: "#f8f6d8", Primary: true},
		{Key: ColorBlue, Name: "Blue", Hex: "#0e68ab", Primary: true},
		{Key: ColorBlack, Name: "Black", Hex: "#150b00", Primary: true},
		{Key: ColorRed, Name: "Red", Hex: "#d3202a", Primary: true},
		{Key: ColorGreen, Name: "Green", Hex: "#00733e", Primary: true},
		{Key: ColorColorless, Name: "Colorless", Hex: "#beb9b2"},
		{Key: ColorPhyrexian, Name: "Phyrexian", Hex: "#6b4a7a"},
	}
}

// Lookup finds a color by key
func (p Palette) Lookup(key ColorKey) (Color, bool) {
	for _, c := range p {
		if c.Key == key {
			return c, true
		}
	}
	return Color{}, false
}

// Contains reports whether key belongs to the palette
func (p Palette) Contains(key ColorKey) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Keys returns the color keys in palette order
func (p Palette) Keys() []ColorKey {
	keys := make([]ColorKey, len(p))
	for i, c := range p {
		keys[i] = c.Key
	}
	return keys
}

// ParseColorKey normalizes user input ("w", " U ") into a palette key
func (p Palette) ParseColorKey(raw string) (ColorKey, bool) {
	key := ColorKey(strings.ToUpper(strings.TrimSpace(raw)))
	if !p.Contains(key) {
		return "", false
	}
	return key, true
}
