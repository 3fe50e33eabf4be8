// Package scenario defines the static world data a game session is
// built from. The shipped scenario is embedded at compile time; the
// game performs no file I/O at runtime and constructs a fresh world
// and player on every run.
package scenario

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jwebster45206/wraithkeep/pkg/actor"
	"github.com/jwebster45206/wraithkeep/pkg/world"
)

//go:embed castle.json
var castleJSON []byte

// Scenario is the template for one game: the room graph, its contents
// and the player definition.
type Scenario struct {
	Name     string                 `json:"name"`
	Start    string                 `json:"start"`     // room key the player begins in
	SafeRoom string                 `json:"safe_room"` // room key a fleeing player is sent to
	Player   actor.PlayerSpec       `json:"player"`
	Rooms    map[string]*world.Room `json:"rooms"`
}

// Castle returns a fresh copy of the shipped castle scenario. Each call
// unmarshals the embedded data anew, so sessions never share state.
func Castle() (*Scenario, error) {
	return Load(castleJSON)
}

// Load parses and validates scenario JSON.
func Load(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// Validate checks the scenario's internal consistency: the start and
// safe rooms exist, every exit targets a defined room, and all stat
// values are in range.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Rooms) == 0 {
		return fmt.Errorf("scenario has no rooms")
	}
	if _, ok := s.Rooms[s.Start]; !ok {
		return fmt.Errorf("start room %q is not defined", s.Start)
	}
	if _, ok := s.Rooms[s.SafeRoom]; !ok {
		return fmt.Errorf("safe room %q is not defined", s.SafeRoom)
	}

	for key, room := range s.Rooms {
		if room.Name == "" {
			return fmt.Errorf("room %q has no name", key)
		}
		for dir, target := range room.Exits {
			if _, ok := s.Rooms[target]; !ok {
				return fmt.Errorf("room %q exit %q targets undefined room %q", key, dir, target)
			}
		}
		for _, it := range room.Items {
			if it.Name == "" {
				return fmt.Errorf("room %q has an unnamed item", key)
			}
			if it.Heal < 0 || it.AttackBonus < 0 {
				return fmt.Errorf("item %q in room %q has negative stats", it.Name, key)
			}
		}
		for _, e := range room.Enemies {
			if e.Name == "" {
				return fmt.Errorf("room %q has an unnamed enemy", key)
			}
			if e.Health <= 0 || e.Attack <= 0 {
				return fmt.Errorf("enemy %q in room %q must have positive health and attack", e.Name, key)
			}
		}
	}

	if s.Player.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if s.Player.Health <= 0 || s.Player.Attack <= 0 {
		return fmt.Errorf("player must have positive health and attack")
	}
	return nil
}

// Build constructs the session world and player. The scenario's rooms
// become the world's rooms directly, so a Scenario value builds one
// session; use Castle or Load for each new game.
func (s *Scenario) Build() (*world.World, *actor.Player, error) {
	for key, room := range s.Rooms {
		room.Key = key
	}
	w := &world.World{
		Rooms:    s.Rooms,
		Start:    s.Start,
		SafeRoom: s.SafeRoom,
	}

	player, err := actor.NewPlayer(&s.Player)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build player: %w", err)
	}
	player.Location = s.Start
	return w, player, nil
}
