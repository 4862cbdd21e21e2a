// Package ui holds the shared lipgloss styles for CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorInfo    = lipgloss.Color("86")  // Cyan
	ColorText    = lipgloss.Color("252") // Light gray
	ColorSubtle  = lipgloss.Color("241") // Medium gray
)

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
)
