package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders a bottom help bar showing contextual key hints.
type StatusBar struct {
	style lipgloss.Style
}

// NewStatusBar creates a StatusBar drawn with style.
func NewStatusBar(style lipgloss.Style) StatusBar {
	return StatusBar{style: style}
}

// Render returns the status bar string for the given width and items.
// Items are joined with "  |  " and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	return s.style.Width(width).Render(strings.Join(items, "  |  "))
}
