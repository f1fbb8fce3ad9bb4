package mana

import (
	"math"
)

// DefaultMaxCapacity is the slot count a color is capped at unless configured otherwise
const DefaultMaxCapacity = 100

// SlotConfig maps each color to the number of slots a character has for it
type SlotConfig map[ColorKey]int

// Capacity returns the configured slot count for a color, 0 when unset
func (c SlotConfig) Capacity(key ColorKey) int {
	if c == nil {
		return 0
	}
	n := c[key]
	if n < 0 {
		return 0
	}
	return n
}

// Clone returns an independent copy
func (c SlotConfig) Clone() SlotConfig {
	out := make(SlotConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ClampCapacity turns raw input into a slot count: NaN, infinities and
// negative values become 0, fractions are floored.
func ClampCapacity(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(v))
}

// NormalizeSlotConfig produces a config holding exactly the palette's colors.
// Colors missing from raw read as 0, keys outside the palette are dropped and
// values above maxCapacity (when positive) are capped.
func NormalizeSlotConfig(palette Palette, raw map[ColorKey]float64, maxCapacity int) SlotConfig {
	cfg := make(SlotConfig, len(palette))
	for _, color := range palette {
		v, ok := raw[color.Key]
		if !ok {
			cfg[color.Key] = 0
			continue
		}
		n := ClampCapacity(v)
		if maxCapacity > 0 && n > maxCapacity {
			n = maxCapacity
		}
		cfg[color.Key] = n
	}
	return cfg
}

// ResolveSlotConfig fills every palette color from a stored config, defaulting to 0
func ResolveSlotConfig(palette Palette, stored SlotConfig) SlotConfig {
	cfg := make(SlotConfig, len(palette))
	for _, color := range palette {
		cfg[color.Key] = stored.Capacity(color.Key)
	}
	return cfg
}
