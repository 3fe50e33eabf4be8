package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/wraithkeep/pkg/game"
)

const PlaceHolderText = "Type a command (help for a list)..."

const (
	rolePlayer = "player"
	roleGame   = "game"
	roleNote   = "note"
)

// entry is one line group in the transcript.
type entry struct {
	role string
	text string
}

// ConsoleUI is the BubbleTea model that runs the game in the terminal.
// It owns presentation only; every line of input goes through
// game.Execute and every state read goes through the Game accessors.
type ConsoleUI struct {
	game  *game.Game
	title string

	transcript   []entry
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	// Quit confirmation state
	showQuitModal bool

	// farewell is printed by main after the program exits.
	farewell string
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

func NewConsoleUI(g *game.Game, title string) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	ui := ConsoleUI{
		game:         g,
		title:        title,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
	for _, line := range g.Intro() {
		ui.transcript = append(ui.transcript, entry{role: roleGame, text: line})
	}
	return ui
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(m.transcriptText()); err == nil {
				m.transcript = append(m.transcript, entry{role: roleNote, text: "(transcript copied to clipboard)"})
				m.writeChatContent()
			}
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// submit runs one line of input through the engine. Empty input is
// only meaningful in combat, where it means "continue fighting".
func (m ConsoleUI) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	m.textarea.Reset()
	if input == "" && !m.game.InCombat() {
		return m, nil
	}

	m.transcript = append(m.transcript, entry{role: rolePlayer, text: "> " + input})
	resp := m.game.Execute(input)
	for _, line := range resp.Lines {
		m.transcript = append(m.transcript, entry{role: roleGame, text: line})
	}
	m.writeChatContent()
	m.metaViewport.SetContent(m.writeMetadata())

	if resp.Quit {
		m.farewell = game.FarewellText
		return m, tea.Quit
	}
	if resp.GameOver {
		m.farewell = game.GameOverText
		return m, tea.Quit
	}
	return m, nil
}

func (m *ConsoleUI) layout() {
	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	m.chatViewport.Width = chatWidth - 2
	m.chatViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(chatWidth - 4)
}

// writeChatContent reformats the whole transcript for the current
// viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render(strings.ToUpper(m.title)) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(1, chatWidth-6))) + "\n\n")

	for _, e := range m.transcript {
		wrapped := wordwrap.String(e.text, max(10, chatWidth))
		switch e.role {
		case rolePlayer:
			content.WriteString(playerStyle.Render(wrapped) + "\n")
		case roleNote:
			content.WriteString(noteStyle.Render(wrapped) + "\n")
		default:
			content.WriteString(gameStyle.Render(wrapped) + "\n")
		}
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func (m ConsoleUI) writeMetadata() string {
	g := m.game
	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURER") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(g.ID.String()[:8] + "...\n\n")

	content.WriteString("Room:\n")
	content.WriteString(g.CurrentRoom().Name + "\n\n")

	content.WriteString(fmt.Sprintf("HP: %d\n", g.Player.Health))
	content.WriteString(fmt.Sprintf("ATK: %d\n\n", g.Player.AttackValue()))

	if enemy := g.CombatEnemy(); enemy != nil {
		content.WriteString("Fighting:\n")
		content.WriteString(fmt.Sprintf("%s (HP: %d)\n\n", enemy.Name, enemy.Health))
	}

	content.WriteString("Inventory:\n")
	if len(g.Player.Inventory) == 0 {
		content.WriteString("Empty\n")
	} else {
		for _, it := range g.Player.Inventory {
			content.WriteString("• " + it.String() + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Ctrl+Y: Copy log\n")
	content.WriteString("• Enter: Send\n")

	return content.String()
}

func (m ConsoleUI) transcriptText() string {
	lines := make([]string, 0, len(m.transcript))
	for _, e := range m.transcript {
		lines = append(lines, e.text)
	}
	return strings.Join(lines, "\n")
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			m.farewell = game.FarewellText
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				m.farewell = game.FarewellText
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to abandon your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(1, chatWidth-4))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
