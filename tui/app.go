// app.go is the top-level Bubble Tea model: a single chat surface over
// the response pipeline.
//
// Key design decisions:
//   - The pipeline round runs inside a tea.Cmd goroutine; the UI stays
//     responsive and re-renders the transcript only when the round
//     completes, keeping conversation access strictly sequential.
//   - While a round is in flight the just-submitted question is echoed
//     optimistically; the authoritative transcript arrives with
//     RoundDoneMsg.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/elborak3000/nessie/applog"
	"github.com/elborak3000/nessie/chat"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const roundTimeout = 2 * time.Minute

const disclaimer = "Nessie can become confused just like us. If you don't like the query she came up with, try wording your question a different way. Validate all responses against official sources."

// App is the root Bubble Tea model.
type App struct {
	pipe *chat.Pipeline
	conv *chat.Conversation

	providerName string
	tableName    string

	transcript []chat.RenderedTurn
	viewport   *Viewport
	input      string
	pending    string // question echoed while a round is in flight
	thinking   bool
	statusMsg  string

	width  int
	height int
}

// NewApp creates the chat application.
func NewApp(pipe *chat.Pipeline, conv *chat.Conversation, providerName, tableName string) *App {
	return &App{
		pipe:         pipe,
		conv:         conv,
		providerName: providerName,
		tableName:    tableName,
		transcript:   conv.Render(),
		viewport:     NewViewport(80, 20),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.refresh()
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// header(1) + disclaimer(1) + prompt(1) + status(1) = 4 lines of chrome
		a.viewport.SetSize(a.width, a.height-4)
		a.refresh()
		return a, nil

	case RoundDoneMsg:
		a.thinking = false
		a.pending = ""
		if msg.Err != nil {
			a.statusMsg = msg.Err.Error()
		} else {
			a.statusMsg = ""
			a.transcript = msg.Transcript
		}
		a.refresh()
		a.viewport.End()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	case "enter":
		return a, a.submit()
	case "ctrl+k", "up":
		a.viewport.ScrollUp(1)
	case "ctrl+j", "down":
		a.viewport.ScrollDown(1)
	case "pgup":
		a.viewport.PageUp()
	case "pgdown":
		a.viewport.PageDown()
	case "backspace":
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			a.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			a.input += " "
		}
	}
	return a, nil
}

// submit launches one pipeline round for the typed question.
func (a *App) submit() tea.Cmd {
	question := strings.TrimSpace(a.input)
	if question == "" || a.thinking {
		return nil
	}

	a.input = ""
	a.pending = question
	a.thinking = true
	a.refresh()
	a.viewport.End()

	pipe, conv := a.pipe, a.conv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), roundTimeout)
		defer cancel()

		_, err := pipe.Respond(ctx, conv, question)
		if err != nil {
			applog.Error("round failed: %v", err)
			return RoundDoneMsg{Err: err}
		}
		return RoundDoneMsg{Transcript: conv.Render()}
	}
}

// refresh rebuilds the viewport content from the current transcript.
func (a *App) refresh() {
	lines := renderTranscript(a.transcript, a.contentWidth())
	if a.pending != "" {
		lines = append(lines, StyleUserLabel.Render("You: ")+a.pending, "")
	}
	if a.thinking {
		lines = append(lines, StyleDimmed.Render("  ⏳ Thinking..."))
	}
	a.viewport.SetContentLines(lines)
}

func (a *App) contentWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

// View implements tea.Model.
func (a *App) View() string {
	header := StyleTitle.Render("🌊 Lake Explorer Nessie") + " " +
		StyleDimmed.Render("("+a.providerName+" · "+a.tableName+")")

	prompt := StylePrompt.Render("Ask> ") + a.input + "█"
	if a.thinking {
		prompt = StylePrompt.Render("Ask> ") + StyleDimmed.Render("waiting for response...")
	}

	status := a.statusMsg
	if status == "" {
		status = StyleHelpKey.Render("Enter") + StyleHelpDesc.Render(" send  ") +
			StyleHelpKey.Render("↑/↓") + StyleHelpDesc.Render(" scroll  ") +
			StyleHelpKey.Render("Esc") + StyleHelpDesc.Render(" quit")
	} else {
		status = StyleError.Render(status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		StyleDimmed.Render("ℹ "+disclaimer),
		a.viewport.Render(),
		prompt,
		StyleStatusBar.Render(status),
	)
}
