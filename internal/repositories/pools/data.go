package pools

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
)

// BarData is the serialized form of a bar
type BarData struct {
	Active     []bool `json:"active"`
	SlotLocked []bool `json:"slot_locked"`
	BarLocked  bool   `json:"bar_locked"`
}

// PoolData is the serialized form of a pool state
type PoolData struct {
	Bars map[string]BarData `json:"bars"`
}

// SlotConfigData is the serialized form of a slot configuration
type SlotConfigData struct {
	Slots map[string]int `json:"slots"`
}

func toPoolData(state mana.PoolState) *PoolData {
	data := &PoolData{Bars: make(map[string]BarData, len(state))}
	for key, bar := range state {
		clone := bar.Clone()
		data.Bars[string(key)] = BarData{
			Active:     clone.Active,
			SlotLocked: clone.SlotLocked,
			BarLocked:  clone.BarLocked,
		}
	}
	return data
}

func fromPoolData(data *PoolData) mana.PoolState {
	state := make(mana.PoolState, len(data.Bars))
	for key, bar := range data.Bars {
		state[mana.ColorKey(key)] = mana.Bar{
			Active:     bar.Active,
			SlotLocked: bar.SlotLocked,
			BarLocked:  bar.BarLocked,
		}
	}
	return state
}

func toSlotConfigData(cfg mana.SlotConfig) *SlotConfigData {
	data := &SlotConfigData{Slots: make(map[string]int, len(cfg))}
	for key, n := range cfg {
		data.Slots[string(key)] = n
	}
	return data
}

func fromSlotConfigData(data *SlotConfigData) mana.SlotConfig {
	cfg := make(mana.SlotConfig, len(data.Slots))
	for key, n := range data.Slots {
		cfg[mana.ColorKey(key)] = n
	}
	return cfg
}

func marshalState(state mana.PoolState) ([]byte, error) {
	payload, err := json.Marshal(toPoolData(state))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pool state: %w", err)
	}
	return payload, nil
}

func unmarshalState(payload []byte) (mana.PoolState, error) {
	var data PoolData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pool state: %w", err)
	}
	return fromPoolData(&data), nil
}

func marshalSlotConfig(cfg mana.SlotConfig) ([]byte, error) {
	payload, err := json.Marshal(toSlotConfigData(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal slot config: %w", err)
	}
	return payload, nil
}

func unmarshalSlotConfig(payload []byte) (mana.SlotConfig, error) {
	var data SlotConfigData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slot config: %w", err)
	}
	return fromSlotConfigData(&data), nil
}
