package tui

import (
	"github.com/elborak3000/nessie/chat"
	tea "github.com/charmbracelet/bubbletea"
)

// Start launches the chat TUI over an assembled pipeline.
func Start(pipe *chat.Pipeline, conv *chat.Conversation, providerName, tableName string) error {
	app := NewApp(pipe, conv, providerName, tableName)
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
