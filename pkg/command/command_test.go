package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{name: "empty input", input: "", want: Command{Type: CmdNone}},
		{name: "whitespace only", input: "   ", want: Command{Type: CmdNone}},
		{name: "help", input: "help", want: Command{Type: CmdHelp}},
		{name: "look", input: "look", want: Command{Type: CmdLook}},
		{name: "look alias", input: "l", want: Command{Type: CmdLook}},
		{name: "inventory alias", input: "i", want: Command{Type: CmdInventory}},
		{name: "stats", input: "stats", want: Command{Type: CmdStats}},
		{name: "go with direction", input: "go north", want: Command{Type: CmdGo, Arg: "north"}},
		{name: "go missing direction", input: "go", want: Command{Type: CmdGo}},
		{name: "uppercase is lowered", input: "GO NORTH", want: Command{Type: CmdGo, Arg: "north"}},
		{name: "multi-word argument", input: "take small potion", want: Command{Type: CmdTake, Arg: "small potion"}},
		{name: "fight", input: "fight giant rat", want: Command{Type: CmdFight, Arg: "giant rat"}},
		{name: "use", input: "use large potion", want: Command{Type: CmdUse, Arg: "large potion"}},
		{name: "quit", input: "quit", want: Command{Type: CmdQuit}},
		{name: "exit maps to quit", input: "exit", want: Command{Type: CmdQuit}},
		{name: "unknown verb", input: "dance", want: Command{Type: CmdUnknown, Arg: "dance"}},
		{name: "unknown verb with args", input: "open door", want: Command{Type: CmdUnknown, Arg: "open"}},
		{name: "surrounding whitespace", input: "  take  small potion ", want: Command{Type: CmdTake, Arg: "small potion"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNeedsArg(t *testing.T) {
	for _, typ := range []Type{CmdGo, CmdTake, CmdFight, CmdUse} {
		if !NeedsArg(typ) {
			t.Errorf("NeedsArg(%s) = false, want true", typ)
		}
	}
	for _, typ := range []Type{CmdHelp, CmdLook, CmdInventory, CmdStats, CmdQuit, CmdNone, CmdUnknown} {
		if NeedsArg(typ) {
			t.Errorf("NeedsArg(%s) = true, want false", typ)
		}
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{CmdGo, "Go where? Usage: go <direction>"},
		{CmdTake, "Take what? Usage: take <item>"},
		{CmdFight, "Fight whom? Usage: fight <enemy>"},
		{CmdUse, "Use what? Usage: use <item>"},
		{CmdUnknown, "Unknown command. Type 'help' for commands."},
	}
	for _, tt := range tests {
		if got := Usage(tt.typ); got != tt.want {
			t.Errorf("Usage(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
