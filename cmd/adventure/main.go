package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/wraithkeep/internal/config"
	"github.com/jwebster45206/wraithkeep/internal/logger"
	"github.com/jwebster45206/wraithkeep/pkg/game"
	"github.com/jwebster45206/wraithkeep/pkg/scenario"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	scn, err := scenario.Castle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scenario: %v\n", err)
		os.Exit(1)
	}

	w, p, err := scn.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build world: %v\n", err)
		os.Exit(1)
	}

	g := game.New(w, p, nil, log)
	log.Debug("session created", "id", g.ID, "scenario", scn.Name)

	prog := tea.NewProgram(NewConsoleUI(g, scn.Name),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	m, err := prog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// The alt screen is gone by now; repeat the closing line so it
	// survives on the terminal. Every exit path is code 0.
	if ui, ok := m.(ConsoleUI); ok && ui.farewell != "" {
		fmt.Println(ui.farewell)
	}
}
