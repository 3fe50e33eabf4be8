package actor

import (
	"errors"
	"fmt"

	"github.com/jwebster45206/d20"

	"github.com/jwebster45206/wraithkeep/pkg/item"
)

// ErrItemNotFound is returned when an item name matches nothing in the
// player's inventory.
var ErrItemNotFound = errors.New("item not found")

// PlayerSpec is the serializable definition of the player character.
type PlayerSpec struct {
	Name       string         `json:"name"`
	Health     int            `json:"health"`
	Attack     int            `json:"attack"` // base attack before item bonuses
	AC         int            `json:"ac,omitempty"`
	Attributes map[string]int `json:"attributes,omitempty"` // e.g. "strength": 14
}

// Player is the runtime representation of the player character.
//
// Current health is tracked directly rather than on the d20 actor:
// healing in this game has no upper cap, while actor HP is clamped to
// its maximum. The actor carries the static stat block (AC, attributes,
// combat modifiers) behind the character sheet.
type Player struct {
	Spec  *PlayerSpec
	Actor *d20.Actor // Built at construction from PlayerSpec

	Health    int
	Inventory []item.Item
	Location  string // key of the current room
}

// NewPlayer builds a Player and its d20 stat block from a spec.
func NewPlayer(spec *PlayerSpec) (*Player, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec cannot be nil")
	}

	attrs := make(map[string]int, len(spec.Attributes))
	for k, v := range spec.Attributes {
		attrs[k] = v
	}

	actor, err := d20.NewActor(spec.Name).
		WithHP(spec.Health).
		WithAC(spec.AC).
		WithAttributes(attrs).
		WithCombatModifiers(map[string]int{"base attack": spec.Attack}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}

	return &Player{
		Spec:      spec,
		Actor:     actor,
		Health:    spec.Health,
		Inventory: make([]item.Item, 0),
	}, nil
}

// IsAlive reports whether the player can keep playing.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// AttackValue is the player's total attack: base attack plus the attack
// bonuses of every item currently carried.
func (p *Player) AttackValue() int {
	total := p.Spec.Attack
	for _, it := range p.Inventory {
		total += it.AttackBonus
	}
	return total
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(it item.Item) {
	p.Inventory = append(p.Inventory, it)
}

// TakeDamage reduces the player's health. Health may go to zero or below;
// callers clamp for display.
func (p *Player) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	p.Health -= n
}

// UseItem uses the named inventory item. A healing item restores its
// heal amount (health has no cap) and is consumed; any other item is
// left in the inventory and consumed reports false. Returns
// ErrItemNotFound when the player does not carry the item.
func (p *Player) UseItem(name string) (used item.Item, consumed bool, err error) {
	for i, it := range p.Inventory {
		if !it.Matches(name) {
			continue
		}
		if !it.IsHealing() {
			return it, false, nil
		}
		p.Health += it.Heal
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		return it, true, nil
	}
	return item.Item{}, false, ErrItemNotFound
}
