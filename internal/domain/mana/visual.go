package mana

import (
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
)

// Fill describes how a slot's face is painted
type Fill string

const (
	FillEmpty Fill = "empty" // transparent
	FillSolid Fill = "solid" // solid fill of the color's hex
	FillIcon  Fill = "icon"  // custom image configured for the color
)

// barTint is the alpha used for a bar's background wash
const barTint = 0.7

// VisualSpec is what a presentation layer needs to draw one slot
type VisualSpec struct {
	Index  int    `json:"index"`
	Active bool   `json:"active"`
	Locked bool   `json:"locked"`
	Fill   Fill   `json:"fill"`
	Color  string `json:"color,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// BarVisual is the drawable form of a whole bar
type BarVisual struct {
	Color      Color        `json:"color"`
	Background string       `json:"background"`
	BarLocked  bool         `json:"bar_locked"`
	Slots      []VisualSpec `json:"slots"`
}

// VisualFor decides how a slot is drawn. Active slots show the custom icon
// when one is configured and a solid fill of fallbackHex otherwise; inactive
// slots are empty. Either lock marks the slot locked.
func VisualFor(bar Bar, index int, fallbackHex, customIcon string) (VisualSpec, error) {
	if !bar.InRange(index) {
		return VisualSpec{}, manaerr.InvalidArgumentf("slot index %d out of range for capacity %d", index, bar.Capacity()).
			WithMeta("index", index)
	}

	spec := VisualSpec{
		Index:  index,
		Active: bar.Active[index],
		Locked: bar.IsLocked(index),
		Fill:   FillEmpty,
	}

	if !spec.Active {
		return spec, nil
	}

	if customIcon != "" {
		spec.Fill = FillIcon
		spec.Icon = customIcon
		return spec, nil
	}

	spec.Fill = FillSolid
	spec.Color = fallbackHex
	return spec, nil
}

// VisualizeBar renders every slot of a bar for the given color
func VisualizeBar(color Color, bar Bar, customIcon string) BarVisual {
	out := BarVisual{
		Color:      color,
		Background: color.RGBA(barTint),
		BarLocked:  bar.BarLocked,
		Slots:      make([]VisualSpec, 0, bar.Capacity()),
	}
	for i := range bar.Active {
		// index is always in range here
		spec, _ := VisualFor(bar, i, color.Hex, customIcon)
		out.Slots = append(out.Slots, spec)
	}
	return out
}
