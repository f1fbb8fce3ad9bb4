package mana

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeState(t *testing.T) {
	palette := DefaultPalette()
	cfg := SlotConfig{ColorWhite: 3, ColorRed: 1}
	stored := PoolState{
		ColorWhite: {Active: []bool{true}, SlotLocked: []bool{false}, BarLocked: true},
		ColorRed:   {Active: []bool{true, true, true}, SlotLocked: []bool{true, true, true}},
		"X":        {Active: []bool{true}, SlotLocked: []bool{false}},
	}

	state := NormalizeState(palette, cfg, stored)

	require.Len(t, state, len(palette))
	assert.NotContains(t, state, ColorKey("X"))

	white := state[ColorWhite]
	assert.Equal(t, []bool{true, false, false}, white.Active)
	assert.Equal(t, []bool{false, false, false}, white.SlotLocked)
	assert.True(t, white.BarLocked)

	red := state[ColorRed]
	assert.Equal(t, []bool{true}, red.Active)
	assert.Equal(t, []bool{true}, red.SlotLocked)

	// Unconfigured colors exist with zero capacity
	assert.Equal(t, 0, state[ColorBlue].Capacity())

	// Stored state untouched by the read
	assert.Len(t, stored[ColorRed].Active, 3)
}

func TestBlankState(t *testing.T) {
	state := BlankState(DefaultPalette(), SlotConfig{ColorGreen: 4})

	green := state[ColorGreen]
	assert.Equal(t, 4, green.Capacity())
	assert.Equal(t, 0, green.ActiveCount())
	assert.False(t, green.BarLocked)
}

func TestPoolState_CloneAndEqual(t *testing.T) {
	state := BlankState(DefaultPalette(), SlotConfig{ColorWhite: 2})
	clone := state.Clone()
	assert.True(t, state.Equal(clone))

	bar := clone[ColorWhite]
	bar.Active[0] = true
	assert.False(t, state.Equal(clone))
	assert.False(t, state[ColorWhite].Active[0])

	assert.Equal(t, 0, state.Bar("missing").Capacity())
}

func TestClampCapacity(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 5, want: 5},
		{in: 2.9, want: 2},
		{in: 0, want: 0},
		{in: -4, want: 0},
		{in: math.NaN(), want: 0},
		{in: math.Inf(1), want: 0},
		{in: math.Inf(-1), want: 0},
		{in: 1e20, want: math.MaxInt32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampCapacity(tt.in), "input %v", tt.in)
	}
}

func TestNormalizeSlotConfig(t *testing.T) {
	palette := DefaultPalette()

	cfg := NormalizeSlotConfig(palette, map[ColorKey]float64{
		ColorWhite: 5.7,
		ColorBlue:  -2,
		ColorRed:   250,
		"Z":        9,
	}, 100)

	assert.Len(t, cfg, len(palette))
	assert.Equal(t, 5, cfg[ColorWhite])
	assert.Equal(t, 0, cfg[ColorBlue])
	assert.Equal(t, 100, cfg[ColorRed])
	assert.Equal(t, 0, cfg[ColorGreen])
	assert.NotContains(t, cfg, ColorKey("Z"))

	unbounded := NormalizeSlotConfig(palette, map[ColorKey]float64{ColorRed: 250}, 0)
	assert.Equal(t, 250, unbounded[ColorRed])
}

func TestResolveSlotConfig(t *testing.T) {
	cfg := ResolveSlotConfig(DefaultPalette(), SlotConfig{ColorBlack: 3, ColorGreen: -1})

	assert.Equal(t, 3, cfg[ColorBlack])
	assert.Equal(t, 0, cfg[ColorGreen])
	assert.Equal(t, 0, cfg[ColorPhyrexian])

	assert.Equal(t, 0, SlotConfig(nil).Capacity(ColorWhite))
}

func TestPalette(t *testing.T) {
	palette := DefaultPalette()

	assert.Equal(t, []ColorKey{"W", "U", "B", "R", "G", "C", "P"}, palette.Keys())

	key, ok := palette.ParseColorKey(" r ")
	assert.True(t, ok)
	assert.Equal(t, ColorRed, key)

	_, ok = palette.ParseColorKey("x")
	assert.False(t, ok)

	red, ok := palette.Lookup(ColorRed)
	require.True(t, ok)
	assert.True(t, red.Primary)

	colorless, _ := palette.Lookup(ColorColorless)
	assert.False(t, colorless.Primary)
}

func TestColor_RGBA(t *testing.T) {
	c := Color{Hex: "#d3202a"}
	assert.Equal(t, "rgba(211,32,42,0.7)", c.RGBA(0.7))

	bad := Color{Hex: "not-a-color"}
	assert.Equal(t, "rgba(0,0,0,1)", bad.RGBA(1))
}
