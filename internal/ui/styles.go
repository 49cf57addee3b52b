// Package ui holds the operator-facing console styling and interaction
// primitives.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorWhite = lipgloss.Color("#f9fafb")
	colorDim   = lipgloss.Color("#6b7280")

	// Styles
	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	dangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	plainStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// OK prints a success line.
func OK(format string, args ...any) {
	fmt.Println(okStyle.Render(fmt.Sprintf(format, args...)))
}

// Danger prints a destructive or secret-bearing line.
func Danger(format string, args ...any) {
	fmt.Println(dangerStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a neutral line.
func Info(format string, args ...any) {
	fmt.Println(plainStyle.Render(fmt.Sprintf(format, args...)))
}

// Dim prints a low-emphasis line.
func Dim(format string, args ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Secret renders a secret for inline display in a Danger-styled context.
func Secret(s string) string {
	return dangerStyle.Render(s)
}
