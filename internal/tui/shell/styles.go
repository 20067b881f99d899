// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     shell
// Description: Lipgloss styles for the interactive shell
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package shell

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	OperationStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
