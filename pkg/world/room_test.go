package world

import (
	"strings"
	"testing"

	"github.com/jwebster45206/wraithkeep/pkg/actor"
	"github.com/jwebster45206/wraithkeep/pkg/item"
)

func testRoom() *Room {
	return &Room{
		Key:         "cellar",
		Name:        "Cellar",
		Description: "Damp and dark. You can hear something moving.",
		Exits:       map[string]string{"up": "kitchen"},
		Items:       []item.Item{{Name: "small potion", Heal: 10}},
		Enemies:     []*actor.Enemy{{Name: "giant rat", Health: 8, Attack: 2}},
	}
}

func TestRoom_TakeItem(t *testing.T) {
	r := testRoom()

	it, ok := r.TakeItem("Small Potion")
	if !ok {
		t.Fatal("expected to take the potion")
	}
	if it.Heal != 10 {
		t.Errorf("Heal = %d, want 10", it.Heal)
	}
	if len(r.Items) != 0 {
		t.Errorf("room items = %d, want 0", len(r.Items))
	}

	// The item exists in exactly one place: taking it again must fail.
	if _, ok := r.TakeItem("small potion"); ok {
		t.Error("second take should fail")
	}
}

func TestRoom_TakeItem_Missing(t *testing.T) {
	r := testRoom()
	if _, ok := r.TakeItem("excalibur"); ok {
		t.Error("unexpected take")
	}
	if len(r.Items) != 1 {
		t.Errorf("room items = %d, want 1 (unchanged on failure)", len(r.Items))
	}
}

func TestRoom_FindEnemy(t *testing.T) {
	r := testRoom()

	e := r.FindEnemy("Giant Rat")
	if e == nil {
		t.Fatal("expected to find the rat")
	}

	// Dead enemies stay in the list but can never be targeted.
	e.TakeDamage(99)
	if r.FindEnemy("giant rat") != nil {
		t.Error("dead enemy should not be targetable")
	}
	if len(r.Enemies) != 1 {
		t.Errorf("enemies = %d, want 1 (dead enemies are kept)", len(r.Enemies))
	}
}

func TestRoom_Exit(t *testing.T) {
	r := testRoom()
	if key, ok := r.Exit("UP"); !ok || key != "kitchen" {
		t.Errorf("Exit(UP) = %q, %v; want kitchen, true", key, ok)
	}
	if _, ok := r.Exit("north"); ok {
		t.Error("unexpected exit north")
	}
}

func TestRoom_Describe(t *testing.T) {
	r := testRoom()
	desc := r.Describe()

	for _, want := range []string{
		"You are in Cellar.",
		"Damp and dark.",
		"You see the following items: small potion",
		"Enemies here: giant rat",
		"Exits: up",
	} {
		if !strings.Contains(desc, want) {
			t.Errorf("Describe() missing %q:\n%s", want, desc)
		}
	}
}

func TestRoom_Describe_OmitsEmptySectionsAndDead(t *testing.T) {
	r := testRoom()
	r.Enemies[0].TakeDamage(99)
	r.TakeItem("small potion")

	desc := r.Describe()
	if strings.Contains(desc, "Enemies here") {
		t.Error("dead enemies should not be listed")
	}
	if strings.Contains(desc, "You see the following items") {
		t.Error("empty item list should be omitted")
	}
}

func TestRoom_ExitDirections_Sorted(t *testing.T) {
	r := &Room{
		Name:  "Great Hall",
		Exits: map[string]string{"west": "kitchen", "east": "armory", "south": "foyer", "up": "tower"},
	}
	dirs := r.ExitDirections()
	want := []string{"east", "south", "up", "west"}
	if len(dirs) != len(want) {
		t.Fatalf("directions = %v, want %v", dirs, want)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Fatalf("directions = %v, want %v", dirs, want)
		}
	}
}

func TestWorld_Room(t *testing.T) {
	w := &World{
		Rooms:    map[string]*Room{"foyer": {Key: "foyer", Name: "Foyer"}},
		Start:    "foyer",
		SafeRoom: "foyer",
	}
	if _, ok := w.Room("foyer"); !ok {
		t.Error("expected foyer")
	}
	if _, ok := w.Room("moat"); ok {
		t.Error("unexpected room")
	}
	if w.MustRoom("foyer").Name != "Foyer" {
		t.Error("MustRoom returned wrong room")
	}
}
