package item

import (
	"fmt"
	"strings"
)

// Item is a thing the player can find, carry and use. Items are value
// types: they never change after creation, they only move between a
// room's item list and the player's inventory.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Heal        int    `json:"heal,omitempty"`         // HP restored when used; 0 means not consumable
	AttackBonus int    `json:"attack_bonus,omitempty"` // Added to the player's attack while carried
}

// IsHealing reports whether using the item restores health.
// Only healing items are consumed on use.
func (i Item) IsHealing() bool {
	return i.Heal > 0
}

// Matches reports whether name refers to this item. Item names are
// matched case-insensitively everywhere.
func (i Item) Matches(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// String renders the item for inventory and room listings,
// e.g. "small potion (heals 10)" or "rusty sword (atk +3)".
func (i Item) String() string {
	parts := []string{strings.ToLower(i.Name)}
	if i.Heal > 0 {
		parts = append(parts, fmt.Sprintf("(heals %d)", i.Heal))
	}
	if i.AttackBonus > 0 {
		parts = append(parts, fmt.Sprintf("(atk +%d)", i.AttackBonus))
	}
	return strings.Join(parts, " ")
}
