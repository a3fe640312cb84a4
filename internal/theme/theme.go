// Package theme toggles and persists the light/dark display preference.
package theme

import "github.com/pablasso/tasktracker/internal/storage"

// Preferences loads and saves the theme preference.
type Preferences interface {
	LoadTheme() storage.Theme
	SaveTheme(storage.Theme) error
}

// Controller holds the current theme.
type Controller struct {
	prefs   Preferences
	current storage.Theme
}

// New reads the persisted preference. Only an explicit "dark" selects
// the dark theme; anything else starts light.
func New(prefs Preferences) *Controller {
	current := storage.ThemeLight
	if prefs.LoadTheme() == storage.ThemeDark {
		current = storage.ThemeDark
	}
	return &Controller{prefs: prefs, current: current}
}

// Current returns the active theme.
func (c *Controller) Current() storage.Theme {
	return c.current
}

// IsDark reports whether the dark theme is active.
func (c *Controller) IsDark() bool {
	return c.current == storage.ThemeDark
}

// Toggle flips the theme and persists the result.
func (c *Controller) Toggle() error {
	if c.IsDark() {
		c.current = storage.ThemeLight
	} else {
		c.current = storage.ThemeDark
	}
	return c.prefs.SaveTheme(c.current)
}
