package events

// Pool event types
const (
	OnSlotToggled       EventType = "on_slot_toggled"
	OnBarLockChanged    EventType = "on_bar_lock_changed"
	OnSlotLockChanged   EventType = "on_slot_lock_changed"
	OnManaSpent         EventType = "on_mana_spent"
	OnManaRegenerated   EventType = "on_mana_regenerated"
	OnSlotConfigChanged EventType = "on_slot_config_changed"
)

// PoolEventTypes lists every event the mana service emits
var PoolEventTypes = []EventType{
	OnSlotToggled,
	OnBarLockChanged,
	OnSlotLockChanged,
	OnManaSpent,
	OnManaRegenerated,
	OnSlotConfigChanged,
}
