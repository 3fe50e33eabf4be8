package item

import "testing"

func TestItem_String(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "healing item",
			item: Item{Name: "small potion", Heal: 10},
			want: "small potion (heals 10)",
		},
		{
			name: "weapon",
			item: Item{Name: "rusty sword", AttackBonus: 3},
			want: "rusty sword (atk +3)",
		},
		{
			name: "plain item",
			item: Item{Name: "glowing gem"},
			want: "glowing gem",
		},
		{
			name: "mixed case name is lowered",
			item: Item{Name: "Small Potion", Heal: 8},
			want: "small potion (heals 8)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItem_Matches(t *testing.T) {
	it := Item{Name: "small potion"}
	if !it.Matches("Small Potion") {
		t.Error("expected case-insensitive match")
	}
	if !it.Matches("small potion") {
		t.Error("expected exact match")
	}
	if it.Matches("large potion") {
		t.Error("unexpected match")
	}
	if it.Matches("") {
		t.Error("empty name should not match")
	}
}

func TestItem_IsHealing(t *testing.T) {
	if !(Item{Name: "potion", Heal: 1}).IsHealing() {
		t.Error("heal 1 should be healing")
	}
	if (Item{Name: "gem"}).IsHealing() {
		t.Error("heal 0 should not be healing")
	}
}
