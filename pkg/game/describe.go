package game

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// describeInventory renders the player summary line and carried items.
func (g *Game) describeInventory() []string {
	p := g.Player
	lines := []string{fmt.Sprintf("%s (HP: %d, ATK: %d)", p.Spec.Name, p.Health, p.AttackValue())}
	if len(p.Inventory) == 0 {
		return append(lines, "Inventory is empty.")
	}
	lines = append(lines, "Inventory:")
	for _, it := range p.Inventory {
		lines = append(lines, " - "+it.String())
	}
	return lines
}

// describeStats renders the character sheet from the player's stat
// block: armor class, attributes and attack modifiers.
func (g *Game) describeStats() []string {
	p := g.Player
	lines := []string{
		fmt.Sprintf("%s, character sheet", p.Spec.Name),
		fmt.Sprintf("HP: %d", p.Health),
		fmt.Sprintf("AC: %d", p.Actor.AC()),
		fmt.Sprintf("Attack: %d (base %d)", p.AttackValue(), p.Spec.Attack),
	}

	attrNames := make([]string, 0, len(p.Spec.Attributes))
	for name := range p.Spec.Attributes {
		attrNames = append(attrNames, name)
	}
	sort.Strings(attrNames)
	for _, name := range attrNames {
		if val, ok := p.Actor.Attribute(name); ok {
			lines = append(lines, fmt.Sprintf("%s: %d", titleCaser.String(name), val))
		}
	}

	for _, mod := range p.Actor.GetCombatModifiers() {
		lines = append(lines, fmt.Sprintf("%s: +%d", titleCaser.String(mod.Reason), mod.Value))
	}
	return lines
}
