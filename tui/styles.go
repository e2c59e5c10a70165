package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Simple palette inspired by standard terminal dark themes
var (
	ColorPrimary   = lipgloss.Color("255") // White
	ColorSecondary = lipgloss.Color("240") // Dark Gray
	ColorAccent    = lipgloss.Color("39")  // Blue / Cyan
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorDim       = lipgloss.Color("240") // Dimmed text
)

// Shared styles - minimal and clean
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleDimmed = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).MarginBottom(1)
	StylePrompt = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// Speaker labels in the transcript
	StyleUserLabel      = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	StyleAssistantLabel = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	// Fenced SQL shown inside assistant turns
	StyleSQL = lipgloss.NewStyle().Foreground(ColorWarning)

	// Bottom bar
	StyleStatusBar = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleHelpKey   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleHelpDesc  = lipgloss.NewStyle().Foreground(ColorDim)
)
