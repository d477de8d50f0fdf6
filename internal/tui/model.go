// Package tui is the interactive terminal chat client for the advisor.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const banner = `Beauty Clinic Advisor
Ask about salons, nails, lashes and esthetics in Japan.
Commands: /help  /top  /stats  /quit`

// Responder is the TUI-facing subset of the advisor.
type Responder interface {
	Respond(ctx context.Context, utterance string) string
}

// Model is the Bubble Tea model for the chat client.
type Model struct {
	advisor    Responder
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	ready      bool
}

// New creates a chat model over the given advisor.
func New(advisor Responder) Model {
	ti := textinput.New()
	ti.Prompt = "You: "
	ti.Placeholder = "Ask about beauty clinics, or /help"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{advisor: advisor, input: ti, viewport: vp}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := strings.Count(banner, "\n") + 2 + ih
		vh := msg.Height - reserved - fh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n"))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			utterance := strings.TrimSpace(m.input.Value())
			if utterance == "" {
				return m, nil
			}
			if strings.EqualFold(utterance, "/quit") || strings.EqualFold(utterance, "quit") {
				return m, tea.Quit
			}
			reply := m.advisor.Respond(context.Background(), utterance)
			m.transcript = append(m.transcript,
				userStyle.Render("You: ")+utterance,
				advisorStyle.Render("Advisor:")+"\n"+reply,
				"",
			)
			m.input.SetValue("")
			m.viewport.SetContent(strings.Join(m.transcript, "\n"))
			m.viewport.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the banner, transcript and input line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := bannerStyle.Render(banner)
	chat := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	return header + "\n" + chat + "\n" + input
}

var (
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	chatBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	advisorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
