package world

import "fmt"

// World is the fixed room graph for one game session. The graph never
// changes after construction; only the contents of rooms do.
type World struct {
	Rooms    map[string]*Room
	Start    string // key of the room the player begins in
	SafeRoom string // key of the room a fleeing player is sent to
}

// Room looks up a room by key.
func (w *World) Room(key string) (*Room, bool) {
	r, ok := w.Rooms[key]
	return r, ok
}

// MustRoom looks up a room that is known to exist, such as the start or
// safe room after validation. It panics on a missing key, which can only
// mean a bug in world construction.
func (w *World) MustRoom(key string) *Room {
	r, ok := w.Rooms[key]
	if !ok {
		panic(fmt.Sprintf("world: no room %q", key))
	}
	return r
}
