package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
