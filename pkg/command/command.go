// Package command parses player input into a closed set of game
// commands. Parsing never fails: unrecognized input maps to CmdUnknown
// and the engine answers with guidance, leaving game state untouched.
package command

import "strings"

type Type string

const (
	CmdHelp      Type = "help"
	CmdLook      Type = "look"
	CmdInventory Type = "inventory"
	CmdStats     Type = "stats"
	CmdGo        Type = "go"
	CmdTake      Type = "take"
	CmdFight     Type = "fight"
	CmdUse       Type = "use"
	CmdQuit      Type = "quit"
	CmdUnknown   Type = ""
	CmdNone      Type = "none" // empty input, ignored by the loop
)

// Command is one parsed line of player input: a verb and its argument
// (direction, item name or enemy name; empty when the verb takes none).
type Command struct {
	Type Type
	Arg  string
}

var verbs = map[string]Type{
	"help":      CmdHelp,
	"h":         CmdHelp,
	"look":      CmdLook,
	"l":         CmdLook,
	"inventory": CmdInventory,
	"i":         CmdInventory,
	"stats":     CmdStats,
	"go":        CmdGo,
	"g":         CmdGo,
	"take":      CmdTake,
	"t":         CmdTake,
	"fight":     CmdFight,
	"f":         CmdFight,
	"use":       CmdUse,
	"u":         CmdUse,
	"quit":      CmdQuit,
	"exit":      CmdQuit,
	"q":         CmdQuit,
}

// needsArg lists the verbs that require an argument.
var needsArg = map[Type]bool{
	CmdGo:    true,
	CmdTake:  true,
	CmdFight: true,
	CmdUse:   true,
}

// Parse lowercases and trims input, then splits it into a verb and a
// remainder. Multi-word arguments ("take small potion") stay intact.
func Parse(input string) Command {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return Command{Type: CmdNone}
	}

	verb, rest, _ := strings.Cut(trimmed, " ")
	t, ok := verbs[verb]
	if !ok {
		return Command{Type: CmdUnknown, Arg: verb}
	}
	return Command{Type: t, Arg: strings.TrimSpace(rest)}
}

// NeedsArg reports whether the command type requires an argument.
func NeedsArg(t Type) bool {
	return needsArg[t]
}

// Usage returns the corrective message for a verb missing its argument.
func Usage(t Type) string {
	switch t {
	case CmdGo:
		return "Go where? Usage: go <direction>"
	case CmdTake:
		return "Take what? Usage: take <item>"
	case CmdFight:
		return "Fight whom? Usage: fight <enemy>"
	case CmdUse:
		return "Use what? Usage: use <item>"
	default:
		return "Unknown command. Type 'help' for commands."
	}
}

// Help is the text printed for the help command.
const Help = `Commands:
  go <direction>      Move to a room (north, south, east, west, up, down).
  look                Show the current room description again.
  take <item>         Pick up an item.
  inventory           Show your items and stats.
  stats               Show your character sheet.
  use <item>          Use an item from inventory (e.g. potion).
  fight <enemy>       Engage an enemy in the room.
  help                Show this help text.
  quit                Quit the game.`
