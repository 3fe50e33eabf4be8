// Package combat resolves fights between the player and a single enemy
// as an explicit state machine. Each round the player strikes first;
// between rounds the encounter accepts one of a closed set of actions
// (continue, use an item, flee) rather than re-entering the general
// command dispatcher.
package combat

import (
	"fmt"

	"github.com/jwebster45206/wraithkeep/pkg/actor"
	"github.com/jwebster45206/wraithkeep/pkg/item"
	"github.com/jwebster45206/wraithkeep/pkg/world"
)

// State is the resolution state of an encounter.
type State string

const (
	StateOngoing State = "ongoing"
	StateWon     State = "player-wins"
	StateDied    State = "player-dies"
	StateFled    State = "player-flees"
)

// ActionKind enumerates what the player may do between rounds.
type ActionKind string

const (
	ActionContinue ActionKind = "continue"
	ActionUse      ActionKind = "use"
	ActionFlee     ActionKind = "flee"
)

// Action is one between-round request: a kind plus the item name for
// ActionUse.
type Action struct {
	Kind ActionKind
	Item string
}

const (
	// playerRollMax bounds the player's random damage contribution:
	// uniform in [0,3].
	playerRollMax = 4
	// enemyRollMax bounds the enemy's random damage contribution:
	// uniform in [0,2].
	enemyRollMax = 3
	// lootChance is the probability a defeated enemy drops a potion.
	lootChance = 0.4
)

// lootItem is the potion a defeated enemy may drop into the room.
var lootItem = item.Item{
	Name:        "small potion",
	Description: "A potion dropped by the enemy.",
	Heal:        8,
}

const actionPrompt = "Type 'c' to continue fighting, 'use <item>' to use an item, or 'flee' to run."

// UseItemFunc runs the game's use-item handler inline during combat and
// returns its output lines.
type UseItemFunc func(name string) []string

// Encounter is a fight in progress between the player and one enemy.
type Encounter struct {
	player   *actor.Player
	enemy    *actor.Enemy
	room     *world.Room // where loot drops
	safeRoom *world.Room // where a fleeing player is relocated
	dice     Dice
	useItem  UseItemFunc
	state    State
}

// New starts an encounter in the ongoing state. The enemy must be alive
// and present in room; callers resolve targeting before constructing.
func New(player *actor.Player, enemy *actor.Enemy, room, safeRoom *world.Room, dice Dice, useItem UseItemFunc) *Encounter {
	return &Encounter{
		player:   player,
		enemy:    enemy,
		room:     room,
		safeRoom: safeRoom,
		dice:     dice,
		useItem:  useItem,
		state:    StateOngoing,
	}
}

// State returns the encounter's resolution state.
func (e *Encounter) State() State {
	return e.state
}

// Enemy returns the enemy being fought.
func (e *Encounter) Enemy() *actor.Enemy {
	return e.enemy
}

// Start announces the fight and resolves the first round.
func (e *Encounter) Start() []string {
	lines := []string{fmt.Sprintf("You engage the %s!", e.enemy.Name)}
	return append(lines, e.round()...)
}

// Apply resolves one between-round action. Using an item does not cost
// the round: the use handler runs inline and the next round follows.
// Fleeing relocates the player to the safe room with both combatants'
// health unchanged. Apply on a resolved encounter returns nothing.
func (e *Encounter) Apply(a Action) []string {
	if e.state != StateOngoing {
		return nil
	}

	switch a.Kind {
	case ActionFlee:
		e.state = StateFled
		e.player.Location = e.safeRoom.Key
		return []string{fmt.Sprintf("You flee back to the %s to safety.", e.safeRoom.Name)}

	case ActionUse:
		lines := e.useItem(a.Item)
		return append(lines, e.round()...)

	default: // ActionContinue
		return e.round()
	}
}

// round runs one full exchange: player attack, then, if the enemy still
// stands, the enemy's counterattack. Both damage totals are floored at
// 1 so a zero roll still lands a hit.
func (e *Encounter) round() []string {
	var lines []string

	dmgToEnemy := e.player.AttackValue() + e.dice.IntN(playerRollMax)
	if dmgToEnemy < 1 {
		dmgToEnemy = 1
	}
	e.enemy.TakeDamage(dmgToEnemy)
	lines = append(lines, fmt.Sprintf("You hit the %s for %d damage. %s health is now %d.",
		e.enemy.Name, dmgToEnemy, e.enemy.Name, e.enemy.Health))

	if !e.enemy.IsAlive() {
		e.state = StateWon
		lines = append(lines, fmt.Sprintf("You defeated the %s!", e.enemy.Name))
		if e.dice.Float64() < lootChance {
			e.room.AddItem(lootItem)
			lines = append(lines, fmt.Sprintf("The %s dropped a small potion.", e.enemy.Name))
		}
		return lines
	}

	dmgToPlayer := e.enemy.Attack + e.dice.IntN(enemyRollMax)
	if dmgToPlayer < 1 {
		dmgToPlayer = 1
	}
	e.player.TakeDamage(dmgToPlayer)
	lines = append(lines, fmt.Sprintf("The %s hits you for %d. Your health is now %d.",
		e.enemy.Name, dmgToPlayer, max(0, e.player.Health)))

	if !e.player.IsAlive() {
		e.state = StateDied
		return append(lines, "You were slain in battle...")
	}

	return append(lines, actionPrompt)
}
