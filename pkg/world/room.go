package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/wraithkeep/pkg/actor"
	"github.com/jwebster45206/wraithkeep/pkg/item"
)

// Room is a place in the game world. It owns its item and enemy lists;
// all mutation of those lists goes through Room methods. The exit map
// is fixed after world construction: exits are directed edges keyed by
// direction, and one-way passages are legal by omission of the reverse.
type Room struct {
	Key         string            `json:"-"` // map key in World.Rooms
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Exits       map[string]string `json:"exits,omitempty"` // direction -> room key
	Items       []item.Item       `json:"items,omitempty"`
	Enemies     []*actor.Enemy    `json:"enemies,omitempty"`
}

// Exit resolves a direction (case-insensitive) to a room key.
func (r *Room) Exit(direction string) (string, bool) {
	key, ok := r.Exits[strings.ToLower(direction)]
	return key, ok
}

// TakeItem removes the named item from the room and returns it.
// The name match is case-insensitive. Returns false with the room
// unchanged when no item matches.
func (r *Room) TakeItem(name string) (item.Item, bool) {
	for i, it := range r.Items {
		if it.Matches(name) {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return it, true
		}
	}
	return item.Item{}, false
}

// AddItem places an item in the room. Used at world construction and
// for loot dropped after combat.
func (r *Room) AddItem(it item.Item) {
	r.Items = append(r.Items, it)
}

// FindEnemy returns the first alive enemy matching name, or nil.
// Dead enemies stay in the list but can never be targeted again.
func (r *Room) FindEnemy(name string) *actor.Enemy {
	for _, e := range r.Enemies {
		if e.Matches(name) && e.IsAlive() {
			return e
		}
	}
	return nil
}

// AliveEnemies returns the names of enemies still standing, in the
// order they were placed.
func (r *Room) AliveEnemies() []string {
	var names []string
	for _, e := range r.Enemies {
		if e.IsAlive() {
			names = append(names, e.Name)
		}
	}
	return names
}

// ExitDirections returns the available directions, sorted for stable
// display.
func (r *Room) ExitDirections() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Describe renders the full room description: name, flavor text, items,
// alive enemies and exits. Empty sections are omitted.
func (r *Room) Describe() string {
	lines := []string{fmt.Sprintf("You are in %s.", r.Name)}
	if r.Description != "" {
		lines = append(lines, r.Description)
	}
	if len(r.Items) > 0 {
		names := make([]string, 0, len(r.Items))
		for _, it := range r.Items {
			names = append(names, strings.ToLower(it.Name))
		}
		lines = append(lines, "You see the following items: "+strings.Join(names, ", "))
	}
	if alive := r.AliveEnemies(); len(alive) > 0 {
		lines = append(lines, "Enemies here: "+strings.Join(alive, ", "))
	}
	if len(r.Exits) > 0 {
		lines = append(lines, "Exits: "+strings.Join(r.ExitDirections(), ", "))
	}
	return strings.Join(lines, "\n")
}
