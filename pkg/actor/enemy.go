package actor

import "strings"

// Enemy represents a creature the player can fight. Enemies belong to
// exactly one room for their whole lifetime; a defeated enemy stays in
// the room's list but is excluded from targeting and descriptions.
type Enemy struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Health      int    `json:"health"`
	Attack      int    `json:"attack"`
}

// TakeDamage reduces the enemy's health by the specified amount.
// Health cannot go below 0, and a defeated enemy never heals,
// so aliveness is monotonic.
func (e *Enemy) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.Health -= n
	if e.Health < 0 {
		e.Health = 0
	}
}

// IsAlive reports whether the enemy can still fight.
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// Matches reports whether name refers to this enemy (case-insensitive).
func (e *Enemy) Matches(name string) bool {
	return strings.EqualFold(e.Name, name)
}
