// Package game is the engine that drives one adventure session. It
// dispatches parsed commands against the world and player, and runs
// combat encounters as an inner mode with its own closed action set.
// All output is returned to the caller; the engine never prints.
package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/wraithkeep/pkg/actor"
	"github.com/jwebster45206/wraithkeep/pkg/combat"
	"github.com/jwebster45206/wraithkeep/pkg/command"
	"github.com/jwebster45206/wraithkeep/pkg/world"
)

const (
	WelcomeText  = "Welcome to Wraithkeep! Type 'help' for a list of commands."
	FarewellText = "Thanks for playing. Goodbye!"
	GameOverText = "You have perished. Game over."
)

// Response is the outcome of executing one line of input.
type Response struct {
	Lines    []string // output to show the player, in order
	Quit     bool     // the player asked to leave
	GameOver bool     // the player died; the session is over
}

// Game is the state of one adventure session.
type Game struct {
	ID     uuid.UUID
	World  *world.World
	Player *actor.Player

	dice      combat.Dice
	logger    *slog.Logger
	encounter *combat.Encounter // non-nil while fighting
}

// New creates a session over a freshly built world and player.
// A nil dice uses the default random source; a nil logger uses the
// process default.
func New(w *world.World, p *actor.Player, dice combat.Dice, logger *slog.Logger) *Game {
	if dice == nil {
		dice = combat.NewDice()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		ID:     uuid.New(),
		World:  w,
		Player: p,
		dice:   dice,
		logger: logger,
	}
}

// CurrentRoom is the room the player is in.
func (g *Game) CurrentRoom() *world.Room {
	return g.World.MustRoom(g.Player.Location)
}

// InCombat reports whether an encounter is running. While in combat,
// input is interpreted as combat actions rather than commands.
func (g *Game) InCombat() bool {
	return g.encounter != nil
}

// CombatEnemy returns the enemy being fought, or nil outside combat.
func (g *Game) CombatEnemy() *actor.Enemy {
	if g.encounter == nil {
		return nil
	}
	return g.encounter.Enemy()
}

// Intro returns the opening text shown once at the start of a session.
func (g *Game) Intro() []string {
	return []string{WelcomeText, "", g.CurrentRoom().Describe()}
}

// Execute runs one line of player input and returns the resulting
// output. Empty input outside combat is ignored. Failed lookups of any
// kind report a corrective message and leave all state unchanged.
func (g *Game) Execute(input string) Response {
	if g.encounter != nil {
		return g.executeCombat(input)
	}

	cmd := command.Parse(input)
	g.logger.Debug("command dispatched", "type", cmd.Type, "arg", cmd.Arg)

	if command.NeedsArg(cmd.Type) && cmd.Arg == "" {
		return Response{Lines: []string{command.Usage(cmd.Type)}}
	}

	switch cmd.Type {
	case command.CmdNone:
		return Response{}
	case command.CmdQuit:
		return Response{Lines: []string{FarewellText}, Quit: true}
	case command.CmdHelp:
		return Response{Lines: strings.Split(command.Help, "\n")}
	case command.CmdLook:
		return Response{Lines: []string{g.CurrentRoom().Describe()}}
	case command.CmdInventory:
		return Response{Lines: g.describeInventory()}
	case command.CmdStats:
		return Response{Lines: g.describeStats()}
	case command.CmdGo:
		return Response{Lines: g.handleGo(cmd.Arg)}
	case command.CmdTake:
		return Response{Lines: g.handleTake(cmd.Arg)}
	case command.CmdUse:
		return Response{Lines: g.handleUse(cmd.Arg)}
	case command.CmdFight:
		return g.handleFight(cmd.Arg)
	default:
		return Response{Lines: []string{command.Usage(command.CmdUnknown)}}
	}
}

func (g *Game) handleGo(direction string) []string {
	room := g.CurrentRoom()
	key, ok := room.Exit(direction)
	if !ok {
		return []string{"You can't go that way."}
	}
	g.Player.Location = key
	next := g.World.MustRoom(key)
	g.logger.Debug("player moved", "from", room.Key, "to", key)
	return []string{
		fmt.Sprintf("You go %s to the %s.", strings.ToLower(direction), next.Name),
		next.Describe(),
	}
}

func (g *Game) handleTake(name string) []string {
	it, ok := g.CurrentRoom().TakeItem(name)
	if !ok {
		return []string{"No such item here."}
	}
	g.Player.AddItem(it)
	return []string{fmt.Sprintf("You took the %s.", strings.ToLower(it.Name))}
}

func (g *Game) handleUse(name string) []string {
	it, consumed, err := g.Player.UseItem(name)
	if err != nil {
		return []string{"You don't have that item."}
	}
	if !consumed {
		// Non-healing items are deliberately left in the inventory.
		return []string{fmt.Sprintf("You used %s, but nothing notable happened.", strings.ToLower(it.Name))}
	}
	return []string{fmt.Sprintf("You used %s and restored %d HP. Your health is now %d.",
		strings.ToLower(it.Name), it.Heal, g.Player.Health)}
}

func (g *Game) handleFight(name string) Response {
	room := g.CurrentRoom()
	enemy := room.FindEnemy(name)
	if enemy == nil {
		return Response{Lines: []string{"No such enemy here."}}
	}

	safe := g.World.MustRoom(g.World.SafeRoom)
	g.encounter = combat.New(g.Player, enemy, room, safe, g.dice, g.handleUse)
	g.logger.Debug("combat started", "enemy", enemy.Name, "room", room.Key)
	return g.resolve(g.encounter.Start())
}

// executeCombat interprets input as one of the closed combat actions:
// continue (explicit or empty), use an item, or flee. Anything else
// warns and continues the fight.
func (g *Game) executeCombat(input string) Response {
	trimmed := strings.TrimSpace(strings.ToLower(input))

	var warning []string
	a := combat.Action{Kind: combat.ActionContinue}
	switch {
	case trimmed == "" || trimmed == "c" || trimmed == "continue":
		// continue
	case trimmed == "flee":
		a = combat.Action{Kind: combat.ActionFlee}
	case strings.HasPrefix(trimmed, "use "):
		a = combat.Action{
			Kind: combat.ActionUse,
			Item: strings.TrimSpace(strings.TrimPrefix(trimmed, "use ")),
		}
	default:
		warning = []string{"Unknown option; continuing the fight."}
	}

	return g.resolve(append(warning, g.encounter.Apply(a)...))
}

// resolve inspects the encounter state after a start or action and
// leaves combat mode when the fight is over.
func (g *Game) resolve(lines []string) Response {
	state := g.encounter.State()
	if state == combat.StateOngoing {
		return Response{Lines: lines}
	}

	g.logger.Debug("combat resolved", "state", state, "enemy", g.encounter.Enemy().Name)
	g.encounter = nil

	switch state {
	case combat.StateFled:
		lines = append(lines, g.CurrentRoom().Describe())
		return Response{Lines: lines}
	case combat.StateDied:
		lines = append(lines, GameOverText)
		return Response{Lines: lines, GameOver: true}
	default: // StateWon
		return Response{Lines: lines}
	}
}
