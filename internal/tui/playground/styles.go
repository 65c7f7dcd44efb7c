// ============================================================================
// textkit - Pattern Matching and String Transforms
// ============================================================================
//
// Package:     playground
// Description: Styles for the pattern playground TUI
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette shared with the other textkit terminal output
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorMatchBg   = lipgloss.Color("#3B0764") // Purple 950
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Width(10)

	FocusedLabelStyle = LabelStyle.
				Foreground(ColorPrimary).
				Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	// MatchStyle marks matched text in the subject preview
	MatchStyle = lipgloss.NewStyle().
			Background(ColorMatchBg).
			Foreground(ColorText).
			Underline(true)

	StatusMatchedStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusNoMatchStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
