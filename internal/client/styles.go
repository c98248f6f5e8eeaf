// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	freeStyle   = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyles = map[string]lipgloss.Style{
		"Booked":          lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		"In Use":          lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"Awaiting Return": lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		"Returned":        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"Cancelled":       lipgloss.NewStyle().Faint(true),
	}
)
