// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Lipgloss styles for command output
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			MarginTop(1)
)
