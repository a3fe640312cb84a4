// Package styles builds the lipgloss styles for the light and dark themes.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tasktracker/internal/storage"
	"github.com/pablasso/tasktracker/internal/task"
)

// Palette is the set of colors a theme is drawn with.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Dimmed    lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	High      lipgloss.Color
	Medium    lipgloss.Color
	Low       lipgloss.Color
}

var (
	lightPalette = Palette{
		Primary:   lipgloss.Color("#2F7F7F"), // Deep teal
		Secondary: lipgloss.Color("#6C6C6C"),
		Text:      lipgloss.Color("#1C1C1C"),
		Dimmed:    lipgloss.Color("#A8A8A8"),
		Success:   lipgloss.Color("#4E7F4E"),
		Error:     lipgloss.Color("#AF3F3F"),
		High:      lipgloss.Color("#AF3F3F"),
		Medium:    lipgloss.Color("#AF7F1F"),
		Low:       lipgloss.Color("#3F6FAF"),
	}

	darkPalette = Palette{
		Primary:   lipgloss.Color("#5FAFAF"), // Teal accent
		Secondary: lipgloss.Color("#8A8A8A"),
		Text:      lipgloss.Color("#E4E4E4"),
		Dimmed:    lipgloss.Color("#585858"),
		Success:   lipgloss.Color("#87AF87"), // Muted sage
		Error:     lipgloss.Color("#AF5F5F"), // Muted terracotta
		High:      lipgloss.Color("#D7875F"),
		Medium:    lipgloss.Color("#D7AF5F"),
		Low:       lipgloss.Color("#87AFD7"),
	}
)

// PaletteFor returns the palette for a theme. Anything but dark is light.
func PaletteFor(theme storage.Theme) Palette {
	if theme == storage.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Styles holds every style the views render with.
type Styles struct {
	Theme storage.Theme

	Title     lipgloss.Style // headers
	Text      lipgloss.Style
	Subtle    lipgloss.Style // hints and help text
	Selected  lipgloss.Style // the row under the cursor
	Completed lipgloss.Style // completed task rows
	StatusBar lipgloss.Style
	Box       lipgloss.Style // panel borders
	Input     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Notice    lipgloss.Style // blocking notices

	priority map[task.Priority]lipgloss.Style
}

// New builds the styles for theme.
func New(theme storage.Theme) Styles {
	p := PaletteFor(theme)

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Text: lipgloss.NewStyle().
			Foreground(p.Text),

		Subtle: lipgloss.NewStyle().
			Foreground(p.Secondary),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Completed: lipgloss.NewStyle().
			Foreground(p.Dimmed).
			Strikethrough(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Secondary),

		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Secondary).
			Padding(1, 2),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(p.Success),

		Error: lipgloss.NewStyle().
			Foreground(p.Error),

		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Error).
			Padding(0, 2),

		priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(p.High),
			task.PriorityMedium: lipgloss.NewStyle().Foreground(p.Medium),
			task.PriorityLow:    lipgloss.NewStyle().Foreground(p.Low),
		},
	}
}

// Priority returns the style for a priority label. Unknown priorities use
// the subtle style.
func (s Styles) Priority(p task.Priority) lipgloss.Style {
	if st, ok := s.priority[p]; ok {
		return st
	}
	return s.Subtle
}
