package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tmallory/chronicler/internal/handlers"
)

const (
	AgentName       = "Chronicler"
	PlaceHolderText = "Describe what happens this turn..."
)

var boardTypes = []string{"town", "travel", "dungeon", "combat"}

type turnEntry struct {
	input     string
	boardText string
	text      string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	logViewport  viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	sessionID    string
	turn         int
	tone         string
	history      []turnEntry
	lastResponse *handlers.NarrateResponse

	// Board selection state
	showBoardModal bool
	selectedBoard  int
	currentBoard   string
	pendingBoard   bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int

	notice string
}

type narrateResponseMsg struct {
	response *handlers.NarrateResponse
	err      error
}

type progressTickMsg struct{}

var (
	logPanelStyle = lipgloss.NewStyle().
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

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
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

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:         cfg,
		client:         client,
		textarea:       ta,
		logViewport:    logVp,
		metaViewport:   metaVp,
		tone:           cfg.Tone,
		ready:          false,
		showBoardModal: true,
		selectedBoard:  0,
	}
}

// writeLogContent rebuilds the narration log for the current viewport
// width.
func (m *ConsoleUI) writeLogContent() {
	logWidth := m.logViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render("CHRONICLER") + "\n\n")
	content.WriteString("Describe each turn below; the engine narrates it.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", logWidth-6)) + "\n\n")

	for _, entry := range m.history {
		if entry.input != "" {
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(entry.input, logWidth-6) + "\n\n")
		}
		if entry.boardText != "" {
			content.WriteString(boardStyle.Render(wordwrap.String(entry.boardText, logWidth)) + "\n\n")
		}
		content.WriteString(narratorStyle.Render(AgentName+": ") + wordwrap.String(entry.text, logWidth-len(AgentName)-2) + "\n\n")
	}

	if m.notice != "" {
		content.WriteString(promptStyle.Render(m.notice) + "\n\n")
	}

	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() {
	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Campaign:\n")
	content.WriteString(m.config.CampaignSeed + "\n\n")

	if m.sessionID != "" {
		content.WriteString("Session ID:\n")
		content.WriteString(m.sessionID[:8] + "...\n\n")
	}

	content.WriteString("Board:\n")
	content.WriteString(m.currentBoard + "\n\n")

	content.WriteString("Tone:\n")
	content.WriteString(m.tone + "\n\n")

	content.WriteString("Turns:\n")
	content.WriteString(strconv.Itoa(m.turn) + "\n\n")

	if m.lastResponse != nil {
		content.WriteString("Last trace:\n")
		for _, pick := range m.lastResponse.Trace.Picks {
			content.WriteString(fmt.Sprintf("• %s: %s\n", pick.Purpose, pick.Choice))
		}
		content.WriteString("\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /copy: Copy line\n")
	content.WriteString("• /board: Change board\n")
	content.WriteString("• /tone <t>: Set tone\n")

	m.metaViewport.SetContent(content.String())
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showBoardModal {
		return m.updateBoardModal(msg)
	}

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
		m.logViewport, vpCmd = m.logViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanels()
		m.writeLogContent()
		m.writeMetadata()
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			m.textarea.Reset()
			m.loading = true
			m.err = nil
			m.notice = ""
			m.progressTick = 0
			m.turn++

			m.history = append(m.history, turnEntry{input: input})
			m.writeLogContent()

			return m, tea.Batch(m.sendTurn(input), progressTick())
		}

	case narrateResponseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			// Drop the pending entry; the turn did not land.
			if n := len(m.history); n > 0 && m.history[n-1].text == "" {
				m.history = m.history[:n-1]
			}
		} else {
			m.sessionID = msg.response.SessionID
			m.lastResponse = msg.response
			m.pendingBoard = false
			if n := len(m.history); n > 0 {
				m.history[n-1].text = msg.response.Text
				m.history[n-1].boardText = msg.response.BoardText
			}
		}
		m.writeLogContent()
		m.writeMetadata()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeLogContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ConsoleUI) resizePanels() {
	logWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - logWidth - 6

	m.logViewport.Width = logWidth - 2
	m.logViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(logWidth - 4)
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.TrimSpace(input)
	m.textarea.Reset()
	m.err = nil

	switch {
	case cmd == "/help":
		m.notice = strings.TrimSpace(`
Commands:
/help - Show this help
/copy - Copy the last narration to the clipboard
/board - Pick a new board (town, travel, dungeon, combat)
/tone <tone> - Set the narration tone (grim, heroic, wry, ominous, whimsy, neutral)

Type anything else and press Enter to play a turn.`)

	case cmd == "/copy":
		if m.lastResponse == nil {
			m.notice = "Nothing to copy yet."
		} else if err := clipboard.WriteAll(m.lastResponse.Text); err != nil {
			m.err = fmt.Errorf("clipboard write failed: %w", err)
		} else {
			m.notice = "Narration copied to clipboard."
		}

	case cmd == "/board":
		m.showBoardModal = true
		m.notice = ""
		return m, nil

	case strings.HasPrefix(cmd, "/tone "):
		tone := strings.TrimSpace(strings.TrimPrefix(cmd, "/tone "))
		if tone == "" {
			m.notice = "Usage: /tone <tone>"
		} else {
			m.tone = tone
			m.notice = "Tone set to " + tone + "."
		}
		m.writeMetadata()

	default:
		m.notice = "Unknown command. Try /help."
	}

	m.writeLogContent()
	return m, nil
}

func (m ConsoleUI) sendTurn(input string) tea.Cmd {
	req := handlers.NarrateRequest{
		SessionID:     m.sessionID,
		CampaignSeed:  m.config.CampaignSeed,
		EventID:       "turn-" + strconv.Itoa(m.turn),
		Tone:          m.tone,
		ActionSummary: input,
	}
	if m.pendingBoard {
		req.Board = m.currentBoard
	}

	return func() tea.Msg {
		resp, err := narrate(m.client, m.config.APIBaseURL, req)
		return narrateResponseMsg{resp, err}
	}
}

func (m ConsoleUI) updateBoardModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			m.showBoardModal = false
			return m, nil
		case tea.KeyUp:
			if m.selectedBoard > 0 {
				m.selectedBoard--
			}
		case tea.KeyDown:
			if m.selectedBoard < len(boardTypes)-1 {
				m.selectedBoard++
			}
		case tea.KeyEnter:
			m.currentBoard = boardTypes[m.selectedBoard]
			m.pendingBoard = true
			m.showBoardModal = false
			if m.width > 0 && m.height > 0 {
				m.resizePanels()
				m.ready = true
			}
			m.writeLogContent()
			m.writeMetadata()
			m.textarea.Focus()
			return m, textarea.Blink
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
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
	content.WriteString(modalTitleStyle.Render("Quit?"))
	content.WriteString("\n\n")
	content.WriteString("Leave this session? The server keeps its memory of it.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderBoardModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Where does the next scene open?"))
	content.WriteString("\n\n")

	for i, board := range boardTypes {
		if i == m.selectedBoard {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", board)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", board)))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showBoardModal {
		return m.renderBoardModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - logWidth - 6

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", logWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.logViewport.Width - 6
	if usable <= 0 {
		usable = 30 // fallback before sizing
	}

	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
