package mana

// PoolState holds every bar of one character, keyed by color
type PoolState map[ColorKey]Bar

// Clone returns a deep copy of the state
func (s PoolState) Clone() PoolState {
	out := make(PoolState, len(s))
	for k, bar := range s {
		out[k] = bar.Clone()
	}
	return out
}

// Bar returns the bar for a color, or a zero-capacity bar when absent
func (s PoolState) Bar(key ColorKey) Bar {
	if bar, ok := s[key]; ok {
		return bar
	}
	return NewBar(0)
}

// Equal reports whether two states hold the same bars
func (s PoolState) Equal(other PoolState) bool {
	if len(s) != len(other) {
		return false
	}
	for k, a := range s {
		b, ok := other[k]
		if !ok || a.BarLocked != b.BarLocked ||
			!equalBools(a.Active, b.Active) || !equalBools(a.SlotLocked, b.SlotLocked) {
			return false
		}
	}
	return true
}

// NormalizeState builds the canonical view of a character's pool: one bar per
// palette color, each exactly as long as its configured capacity. Bars missing
// from stored are synthesized blank and colors outside the palette are dropped.
// Neither argument is modified.
func NormalizeState(palette Palette, cfg SlotConfig, stored PoolState) PoolState {
	out := make(PoolState, len(palette))
	for _, color := range palette {
		out[color.Key] = Normalize(stored[color.Key], cfg.Capacity(color.Key))
	}
	return out
}

// BlankState is the normalized state of a character nothing was stored for
func BlankState(palette Palette, cfg SlotConfig) PoolState {
	return NormalizeState(palette, cfg, nil)
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
