package mana

// Bar is one character's slots for a single color
type Bar struct {
	Active     []bool `json:"active"`
	SlotLocked []bool `json:"slot_locked"`
	BarLocked  bool   `json:"bar_locked"`
}

// NewBar returns a blank bar: every slot inactive and unlocked
func NewBar(capacity int) Bar {
	if capacity < 0 {
		capacity = 0
	}
	return Bar{
		Active:     make([]bool, capacity),
		SlotLocked: make([]bool, capacity),
	}
}

// Normalize returns a copy of bar resized to capacity. Surviving slots keep
// their state, trailing slots are dropped, new slots are inactive and unlocked.
// The input is never modified.
func Normalize(bar Bar, capacity int) Bar {
	out := NewBar(capacity)
	copy(out.Active, bar.Active)
	copy(out.SlotLocked, bar.SlotLocked)
	out.BarLocked = bar.BarLocked
	return out
}

// Clone returns a deep copy of the bar
func (b Bar) Clone() Bar {
	return Normalize(b, len(b.Active))
}

// Capacity is the number of slots in the bar
func (b Bar) Capacity() int {
	return len(b.Active)
}

// InRange reports whether index addresses a slot of the bar
func (b Bar) InRange(index int) bool {
	return index >= 0 && index < len(b.Active)
}

// IsLocked reports whether the slot is frozen for non-privileged callers,
// either by its own lock or by the bar lock
func (b Bar) IsLocked(index int) bool {
	if b.BarLocked {
		return true
	}
	return b.InRange(index) && b.SlotLocked[index]
}

// NextActivatable is the lowest index that is inactive and unlocked, -1 if none
func (b Bar) NextActivatable() int {
	for i := range b.Active {
		if !b.Active[i] && !b.SlotLocked[i] {
			return i
		}
	}
	return -1
}

// LastSpendable is the highest index that is active and unlocked, -1 if none
func (b Bar) LastSpendable() int {
	for i := len(b.Active) - 1; i >= 0; i-- {
		if b.Active[i] && !b.SlotLocked[i] {
			return i
		}
	}
	return -1
}

// Available counts active, unlocked slots
func (b Bar) Available() int {
	n := 0
	for i := range b.Active {
		if b.Active[i] && !b.SlotLocked[i] {
			n++
		}
	}
	return n
}

// ActiveCount counts active slots, locked or not
func (b Bar) ActiveCount() int {
	n := 0
	for _, a := range b.Active {
		if a {
			n++
		}
	}
	return n
}

// Spend deactivates amount eligible slots from the highest index down, in
// place on the bar's slot slices. It is all-or-nothing: when fewer than
// amount slots are eligible the bar is left untouched and nil is returned.
// On success the spent indices are returned.
func (b Bar) Spend(amount int) []int {
	if amount <= 0 || b.Available() < amount {
		return nil
	}

	spent := make([]int, 0, amount)
	for i := len(b.Active) - 1; i >= 0 && len(spent) < amount; i-- {
		if b.Active[i] && !b.SlotLocked[i] {
			b.Active[i] = false
			spent = append(spent, i)
		}
	}
	return spent
}

// Regenerate activates the lowest eligible slot in place unless the bar is
// locked. Returns the activated index or -1.
func (b Bar) Regenerate() int {
	if b.BarLocked {
		return -1
	}
	idx := b.NextActivatable()
	if idx >= 0 {
		b.Active[idx] = true
	}
	return idx
}
