package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pablasso/tasktracker/internal/store"
	"github.com/pablasso/tasktracker/internal/tui/msgs"
	"github.com/pablasso/tasktracker/internal/tui/styles"
	"github.com/pablasso/tasktracker/internal/tui/views"
)

// Minimum terminal dimensions for proper display.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// View represents the different screens in the TUI.
type View int

const (
	ViewList View = iota
	ViewForm
	ViewEdit
)

// changeQueue collects store events between updates. The store notifies
// synchronously from inside Update, so events are queued and delivered
// afterwards as a TasksChangedMsg.
type changeQueue struct {
	events []store.Event
}

func (q *changeQueue) push(ev store.Event) {
	q.events = append(q.events, ev)
}

func (q *changeQueue) drain() tea.Cmd {
	if len(q.events) == 0 {
		return nil
	}
	events := q.events
	q.events = nil
	return func() tea.Msg { return msgs.TasksChangedMsg{Events: events} }
}

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	list views.TaskListModel
	form views.TaskFormModel
	edit views.EditPromptModel

	store  TaskStore
	theme  ThemeController
	styles styles.Styles
	logger *log.Logger

	changes     *changeQueue
	unsubscribe func()
	err         error
}

// Run starts the TUI application.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// New builds the root model and subscribes it to the store.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := styles.New(opts.Theme.Current())
	m := Model{
		currentView: ViewList,
		store:       opts.Store,
		theme:       opts.Theme,
		styles:      s,
		logger:      logger,
		changes:     &changeQueue{},
	}
	m.unsubscribe = opts.Store.Subscribe(m.changes.push)

	m.list = views.NewTaskListModel(opts.Store, s)
	m.form = views.NewTaskFormModel(opts.Store, s)
	m.edit = views.NewEditPromptModel(opts.Store, s)
	return m
}

// Close removes the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Tasks")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViews()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.err = nil
		cmd = m.updateCurrentView(msg)

	case msgs.GoToListMsg:
		m.currentView = ViewList

	case msgs.GoToFormMsg:
		m.currentView = ViewForm
		m.form.Reset()
		cmd = m.form.Focus()

	case msgs.GoToEditMsg:
		t, ok := m.store.Get(msg.TaskID)
		if !ok {
			return m, nil
		}
		m.currentView = ViewEdit
		cmd = m.edit.Start(t)

	case msgs.ToggleThemeMsg:
		if err := m.theme.Toggle(); err != nil {
			m.setError(fmt.Errorf("save theme: %w", err))
		}
		m.applyStyles(styles.New(m.theme.Current()))
		m.logger.Debug("theme toggled", "theme", m.theme.Current())

	case msgs.TasksChangedMsg:
		m.list, cmd = m.list.Update(msg)

	case msgs.ErrorMsg:
		m.setError(msg.Err)

	default:
		cmd = m.updateCurrentView(msg)
	}

	return m, batch(cmd, m.changes.drain())
}

func (m *Model) updateCurrentView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return cmd
}

// batch avoids wrapping a single command so callers can inspect it.
func batch(a, b tea.Cmd) tea.Cmd {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return tea.Batch(a, b)
}

func (m *Model) setError(err error) {
	m.err = err
	m.logger.Error("operation failed", "err", err)
}

func (m *Model) applyStyles(s styles.Styles) {
	m.styles = s
	m.list.SetStyles(s)
	m.form.SetStyles(s)
	m.edit.SetStyles(s)
}

// resizeViews gives every view the screen minus the error line.
func (m *Model) resizeViews() {
	h := max(m.height-1, 0)
	m.list.SetSize(m.width, h)
	m.form.SetSize(m.width, h)
	m.edit.SetSize(m.width, h)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	var content string
	switch m.currentView {
	case ViewForm:
		content = m.form.View()
	case ViewEdit:
		content = m.edit.View()
	default:
		content = m.list.View()
	}

	errLine := ""
	if m.err != nil {
		errLine = m.styles.Error.Render("Error: " + m.err.Error())
	}
	return content + "\n" + errLine
}

// renderTerminalTooSmall renders a message when the terminal is too small.
func (m Model) renderTerminalTooSmall() string {
	lines := []string{
		m.styles.Error.Render("Terminal too small"),
		"",
		m.styles.Subtle.Render(fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight)),
		m.styles.Subtle.Render(fmt.Sprintf("Current: %dx%d", m.width, m.height)),
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// CurrentView returns the active screen.
func (m Model) CurrentView() View {
	return m.currentView
}

// Err returns the error shown in the error line.
func (m Model) Err() error {
	return m.err
}
