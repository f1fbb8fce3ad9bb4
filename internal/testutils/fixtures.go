package testutils

import (
	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
)

// SlotConfig builds a config with every default palette color set to 0,
// overridden by slots
func SlotConfig(slots map[mana.ColorKey]int) mana.SlotConfig {
	cfg := mana.ResolveSlotConfig(mana.DefaultPalette(), nil)
	for key, n := range slots {
		cfg[key] = n
	}
	return cfg
}

// ActiveBar returns a bar whose first active slots are on
func ActiveBar(capacity, active int) mana.Bar {
	bar := mana.NewBar(capacity)
	for i := 0; i < active && i < capacity; i++ {
		bar.Active[i] = true
	}
	return bar
}

// BarFrom builds a bar from explicit slot flags
func BarFrom(active, slotLocked []bool, barLocked bool) mana.Bar {
	bar := mana.NewBar(len(active))
	copy(bar.Active, active)
	copy(bar.SlotLocked, slotLocked)
	bar.BarLocked = barLocked
	return bar
}

// PoolState builds a normalized state for cfg with the given bars laid over it
func PoolState(cfg mana.SlotConfig, bars map[mana.ColorKey]mana.Bar) mana.PoolState {
	return mana.NormalizeState(mana.DefaultPalette(), cfg, mana.PoolState(bars))
}
