package mana

// Caller identifies who is invoking a lock-gated operation.
// Privileged callers (the GM) bypass slot and bar locks.
type Caller struct {
	UserID     string
	Privileged bool
}

// GM returns a privileged caller
func GM(userID string) Caller {
	return Caller{UserID: userID, Privileged: true}
}

// Player returns a non-privileged caller
func Player(userID string) Caller {
	return Caller{UserID: userID}
}
